package api

import (
	"net/http"
	"strings"

	"travel-booking/internal/domain/catalog"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary Get catalog item
// @Description Get a hotel, flight, tour or car transfer by ID
// @Tags catalog
// @Produce json
// @Param type path string true "Item type (hotels, flights, tours, cars)"
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /catalog/{type}/{id} [get]
func (h *CatalogHandler) GetItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	view, err := h.q.GetItem(c.Request.Context(), itemTypeFromPath(c.Param("type")), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromItemView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get hotel room
// @Description Get a room of a hotel
// @Tags catalog
// @Produce json
// @Param id path string true "Hotel ID"
// @Param roomId path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /catalog/hotels/{id}/rooms/{roomId} [get]
func (h *CatalogHandler) GetRoom(c *gin.Context) {
	if itemTypeFromPath(c.Param("type")) != catalog.ItemTypeHotel.String() {
		httperr.AbortWithError(c, http.StatusNotFound, queries.ErrItemNotFound, "Item not found", nil)
		return
	}

	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel ID format", nil)
		return
	}
	roomID, err := uuid.Parse(c.Param("roomId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	view, err := h.q.GetRoom(c.Request.Context(), hotelID, roomID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromRoomView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List applicable promotions
// @Description List promotions valid now for an item type, general promotions included
// @Tags catalog
// @Produce json
// @Param itemType query string false "hotel, flight, tour or car; omit for general promotions only"
// @Success 200 {array} resdto.PromotionResponse
// @Failure 400 {object} httperr.Response
// @Router /promotions [get]
func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	views, err := h.q.ListApplicablePromotions(c.Request.Context(), c.Query("itemType"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromPromotionViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// itemTypeFromPath accepts both the plural path segment and the singular item type.
func itemTypeFromPath(segment string) string {
	return strings.TrimSuffix(strings.ToLower(segment), "s")
}
