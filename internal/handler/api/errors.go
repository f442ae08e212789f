package api

import (
	"net/http"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Error codes returned in error.code.
const (
	CodeInvalidDateRange         = "INVALID_DATE_RANGE"
	CodeInvalidBookingParameters = "INVALID_BOOKING_PARAMETERS"
	CodeInvalidItemType          = "INVALID_ITEM_TYPE"
	CodeInvalidCursor            = "INVALID_CURSOR"
	CodeItemNotFound             = "ITEM_NOT_FOUND"
	CodeBookingNotFound          = "BOOKING_NOT_FOUND"
	CodeBookingAccessDenied      = "BOOKING_ACCESS_DENIED"
	CodeInvalidStatusTransition  = "INVALID_STATUS_TRANSITION"
	CodeIdempotencyKeyReused     = "IDEMPOTENCY_KEY_REUSED"
	CodeIdempotencyInProgress    = "IDEMPOTENCY_IN_PROGRESS"
	CodeInternal                 = "INTERNAL"
)

// abortWithUseCaseError maps use case failures to HTTP responses.
// Validation failures carry the error text as detail so clients can see which field was wrong.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, booking.ErrInvalidDateRange):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeInvalidDateRange, "Check-out date must not precede check-in date", nil)
	case errs.Is(err, booking.ErrInvalidBookingParameters):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeInvalidBookingParameters, "Invalid booking parameters", err.Error())
	case errs.Is(err, queries.ErrInvalidItemType):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeInvalidItemType, "Invalid item type", nil)
	case errs.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeInvalidCursor, "Invalid cursor", nil)
	case errs.Is(err, booking.ErrItemNotFound), errs.Is(err, queries.ErrItemNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, CodeItemNotFound, "Item not found", nil)
	case errs.Is(err, queries.ErrBookingNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, CodeBookingNotFound, "Booking not found", nil)
	case errs.Is(err, queries.ErrBookingAccess):
		httperr.AbortWithCode(c, http.StatusForbidden, err, CodeBookingAccessDenied, "Access denied", nil)
	case errs.Is(err, booking.ErrInvalidStatusTransition):
		httperr.AbortWithCode(c, http.StatusConflict, err, CodeInvalidStatusTransition, "Invalid status transition", nil)
	case errs.Is(err, commands.ErrIdempotencyKeyReused):
		httperr.AbortWithCode(c, http.StatusConflict, err, CodeIdempotencyKeyReused, "Idempotency key was already used for a different request", nil)
	case errs.Is(err, commands.ErrIdempotencyInProgress):
		httperr.AbortWithCode(c, http.StatusConflict, err, CodeIdempotencyInProgress, "Booking request is currently being processed", nil)
	default:
		httperr.AbortWithCode(c, http.StatusInternalServerError, err, CodeInternal, "Internal server error", nil)
	}
}
