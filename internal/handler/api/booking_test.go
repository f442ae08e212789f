//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/api"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
	"travel-booking/internal/usecase/shared"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/common/testutil"
	commandsmock "travel-booking/tests/mock/commands"
	queriesmock "travel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const roleHeader = "X-Test-Role"

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		role := user.RoleCustomer
		if r := c.GetHeader(roleHeader); r != "" {
			role = user.Role(r)
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", role)
		c.Next()
	}

	s.router.POST("/api/bookings/quote", s.handler.Quote)
	s.router.POST("/api/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/api/bookings", authMiddleware, s.handler.List)
	s.router.GET("/api/bookings/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/api/bookings/:id/status", authMiddleware, s.handler.UpdateStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func mustCents(c int64) money.Money {
	m, err := money.FromCents(c)
	if err != nil {
		panic(err)
	}
	return m
}

func (s *BookingHandlerTestSuite) actor(role user.Role) shared.Actor {
	return shared.Actor{UserID: s.userID, Role: role}
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"
	key := uuid.New()
	headers := map[string]string{api.IdempotencyKeyHeader: key.String()}

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView(uuid.New())

	s.Run("success: returns 201 Created with the booking", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, s.userID, key).
			Return(&commands.CreateBookingResult{Booking: view}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", headers)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("600.00", body.TotalPrice)
		s.Equal("confirmed", body.Status)
		s.Require().NotNil(body.CheckInDate)
		s.Equal("2024-01-01", *body.CheckInDate)
		s.Nil(body.Advisory)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location":                   "/api/bookings/" + view.ID.String(),
			api.IdempotentReplayedHeader: "",
		})
	})

	s.Run("success: advisory is returned when the promo code was not applied", func() {
		advisory := booking.AdvisoryPromoExpired
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID, key).
			Return(&commands.CreateBookingResult{Booking: view, Advisory: &advisory}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", headers)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.Advisory)
		s.Equal("PROMO_EXPIRED", body.Advisory.Code)
		s.NotEmpty(body.Advisory.Message)
	})

	s.Run("success: replay returns 200 OK with the replay header", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, s.userID, key).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", headers)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.IdempotentReplayedHeader: "true"})
	})

	s.Run("error: 400 Bad Request on request validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: itemType (required)", mutate: testutil.Field("itemType", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: itemId (required)", mutate: testutil.Field("itemId", nil), expectCode: http.StatusBadRequest},
			{name: "malformed itemId", mutate: testutil.Field("itemId", "not-a-uuid"), expectCode: http.StatusBadRequest},
			{name: "guests as string", mutate: testutil.Field("numberOfGuests", "two"), expectCode: http.StatusBadRequest},
			{name: "guests above the maximum", mutate: testutil.Field("numberOfGuests", booking.MaxGuests+1), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token", headers)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: 400 Bad Request without Idempotency-Key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key header is required")
	})

	s.Run("error: 400 Bad Request for malformed Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{api.IdempotencyKeyHeader: "abc"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid Idempotency-Key format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "invalid parameters", commandsError: booking.ErrInvalidBookingParameters, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid booking parameters"},
			{name: "inverted dates", commandsError: booking.ErrInvalidDateRange, expectedStatus: http.StatusBadRequest, expectedMsg: "Check-out date"},
			{name: "missing item", commandsError: booking.ErrItemNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Item not found"},
			{name: "key reused", commandsError: commands.ErrIdempotencyKeyReused, expectedStatus: http.StatusConflict, expectedMsg: "already used"},
			{name: "key in progress", commandsError: commands.ErrIdempotencyInProgress, expectedStatus: http.StatusConflict, expectedMsg: "currently being processed"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, s.userID, key).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", headers)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: usecase errors carry a stable error code", func() {
		testCases := []struct {
			err    error
			status int
			code   string
		}{
			{err: booking.ErrInvalidDateRange, status: http.StatusBadRequest, code: api.CodeInvalidDateRange},
			{err: booking.ErrItemNotFound, status: http.StatusNotFound, code: api.CodeItemNotFound},
			{err: commands.ErrIdempotencyKeyReused, status: http.StatusConflict, code: api.CodeIdempotencyKeyReused},
			{err: errors.New("database error"), status: http.StatusInternalServerError, code: api.CodeInternal},
		}

		for _, tc := range testCases {
			s.Run(tc.code, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, s.userID, key).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", headers)
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *BookingHandlerTestSuite) TestQuote() {
	url := "/api/bookings/quote"
	b := builder.NewBookingBuilder().WithPromoCode("SUMMER20")
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns the price breakdown without authentication", func() {
		promo, err := builder.NewPromotionBuilder().BuildDomain()
		s.Require().NoError(err)
		price := &booking.PriceResult{
			Base:      mustCents(60000),
			Discount:  mustCents(12000),
			Total:     mustCents(48000),
			Promotion: promo,
		}
		s.mockCommands.EXPECT().Quote(gomock.Any(), reqBody).Return(price, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("600.00", body.BasePrice)
		s.Equal("120.00", body.Discount)
		s.Equal("480.00", body.TotalPrice)
		s.Require().NotNil(body.PromoCode)
		s.Equal("SUMMER20", *body.PromoCode)
		s.Nil(body.Advisory)
	})

	s.Run("error: 404 Not Found for missing item", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), reqBody).Return(nil, booking.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/api/bookings/" + bookingID.String()
	view := builder.NewBookingBuilder().BuildView(bookingID)

	s.Run("success: returns 200 OK for the owner", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(user.RoleCustomer), bookingID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID, body.ID)
		s.Equal("hotel", body.BookingType)
	})

	s.Run("success: staff role is passed through", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(user.RoleAdmin), bookingID).Return(view, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, url, nil, "bearer-token",
			map[string]string{roleHeader: "admin"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "booking not found", queriesError: queries.ErrBookingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
			{name: "another user's booking", queriesError: queries.ErrBookingAccess, expectedStatus: http.StatusForbidden, expectedMsg: "Access denied"},
			{name: "query failed", queriesError: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), bookingID).Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	url := "/api/bookings"
	items := []*queries.BookingListItem{
		{ID: uuid.New(), BookingType: "tour", ItemName: "Kyoto Temple Walk", BookingDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), NumberOfGuests: 1, TotalPriceCents: 8000, Status: "confirmed"},
	}

	s.Run("success: default limit and next cursor", func() {
		next := &queries.Cursor{After: "djE6MTIz"}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal("80.00", body.Items[0].TotalPrice)
		s.Require().NotNil(body.NextCursor)
		s.Equal("djE6MTIz", *body.NextCursor)
	})

	s.Run("success: limit and cursor are forwarded", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.BookingListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5&after=abc", nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Nil(body.NextCursor)
	})

	s.Run("error: 400 Bad Request for non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=ten", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 400 Bad Request for malformed cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, gomock.Any(), queries.DefaultListLimit).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=%21%21", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()
	url := "/api/bookings/" + bookingID.String() + "/status"
	view := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildView(bookingID)

	s.Run("success: returns the updated booking", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID,
			commands.StatusChange{Target: "cancelled", Reason: "plans changed"}, s.actor(user.RoleCustomer)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "cancelled", "reason": " plans changed "}, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 400 Bad Request without status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown status", commandsError: booking.ErrInvalidBookingParameters, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid booking parameters"},
			{name: "not the owner", commandsError: commands.ErrBookingAccess, expectedStatus: http.StatusForbidden, expectedMsg: "Access denied"},
			{name: "missing booking", commandsError: commands.ErrBookingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
			{name: "terminal status", commandsError: booking.ErrInvalidStatusTransition, expectedStatus: http.StatusConflict, expectedMsg: "Invalid status transition"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "completed"}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
