//go:build unit

package request_test

import (
	"strings"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateBookingRequest_ToDomain(t *testing.T) {
	itemID := uuid.New()

	t.Run("success: calendar dates and defaults", func(t *testing.T) {
		req := request.CreateBookingRequest{
			ItemType:     " hotel ",
			ItemID:       itemID,
			CheckInDate:  ptr("2024-01-01"),
			CheckOutDate: ptr("2024-01-04"),
			PromoCode:    ptr("  summer20 "),
		}

		actual, err := req.ToDomain()
		require.NoError(t, err)
		assert.Equal(t, catalog.ItemTypeHotel, actual.ItemType)
		assert.Equal(t, itemID, actual.ItemID)
		assert.Equal(t, 1, actual.Guests)
		assert.Equal(t, "summer20", actual.PromoCode)
		nights, ok := actual.Stay.Nights()
		require.True(t, ok)
		assert.Equal(t, 3, nights)
	})

	t.Run("success: RFC 3339 timestamps are accepted", func(t *testing.T) {
		req := request.CreateBookingRequest{
			ItemType:     "hotel",
			ItemID:       itemID,
			CheckInDate:  ptr("2024-01-01T15:00:00+09:00"),
			CheckOutDate: ptr("2024-01-02T10:00:00Z"),
		}

		actual, err := req.ToDomain()
		require.NoError(t, err)
		require.NotNil(t, actual.Stay.CheckIn())
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *actual.Stay.CheckIn())
	})

	t.Run("success: flight without dates", func(t *testing.T) {
		actual, err := request.CreateBookingRequest{ItemType: "flight", ItemID: itemID, NumberOfGuests: ptr(3)}.ToDomain()
		require.NoError(t, err)
		assert.False(t, actual.Stay.HasAnyDate())
		assert.Equal(t, 3, actual.Guests)
	})

	tests := []struct {
		name string
		req  request.CreateBookingRequest
	}{
		{name: "error: unknown item type", req: request.CreateBookingRequest{ItemType: "cruise", ItemID: itemID}},
		{name: "error: malformed check-in", req: request.CreateBookingRequest{ItemType: "hotel", ItemID: itemID, CheckInDate: ptr("01/02/2024")}},
		{name: "error: malformed check-out", req: request.CreateBookingRequest{ItemType: "hotel", ItemID: itemID, CheckOutDate: ptr("tomorrow")}},
		{
			name: "error: special requests too long",
			req: request.CreateBookingRequest{
				ItemType:        "tour",
				ItemID:          itemID,
				SpecialRequests: ptr(strings.Repeat("a", booking.MaxSpecialRequestsLength+1)),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToDomain()
			assert.ErrorIs(t, err, booking.ErrInvalidBookingParameters)
		})
	}
}

func TestUpdateBookingStatusRequest_GetReason(t *testing.T) {
	assert.Equal(t, "", request.UpdateBookingStatusRequest{Status: "cancelled"}.GetReason())
	assert.Equal(t, "sick", request.UpdateBookingStatusRequest{Status: "cancelled", Reason: ptr(" sick ")}.GetReason())
}
