package converter

import (
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/money"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	ref := b.Item()
	stay := b.Stay()

	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		UserID:          b.UserID(),
		BookingType:     ref.Type().String(),
		HotelID:         pgconv.UUIDPtrToPgtype(ref.HotelID()),
		RoomID:          pgconv.UUIDPtrToPgtype(ref.RoomID()),
		FlightID:        pgconv.UUIDPtrToPgtype(ref.FlightID()),
		TourID:          pgconv.UUIDPtrToPgtype(ref.TourID()),
		CarID:           pgconv.UUIDPtrToPgtype(ref.CarID()),
		BookingDate:     pgconv.TimeToPgtype(b.BookingDate()),
		CheckInDate:     pgconv.DatePtrToPgtype(stay.CheckIn()),
		CheckOutDate:    pgconv.DatePtrToPgtype(stay.CheckOut()),
		NumberOfGuests:  int32(b.Guests()), // #nosec G115 -- guests are validated positive and small
		SpecialRequests: b.SpecialRequests().String(),
		PromotionID:     pgconv.UUIDPtrToPgtype(b.PromotionID()),
		BasePrice:       pgconv.CentsToNumeric(b.BasePrice().Cents()),
		Discount:        pgconv.CentsToNumeric(b.Discount().Cents()),
		TotalPrice:      pgconv.CentsToNumeric(b.TotalPrice().Cents()),
		Status:          b.Status().String(),
		ServiceEndsAt:   pgconv.TimePtrToPgtype(b.ServiceEndsAt()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromInfra(row sqlc.Bookings) (*booking.Booking, error) {
	itemType, err := catalog.ParseItemType(row.BookingType)
	if err != nil {
		return nil, err
	}

	ref, err := booking.NewItemRef(itemType, itemIDForType(itemType, row), pgconv.UUIDPtrFromPgtype(row.RoomID))
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s has an inconsistent item reference", row.ID)
	}

	checkIn, err := pgconv.DatePtrFromPgtype(row.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := pgconv.DatePtrFromPgtype(row.CheckOutDate)
	if err != nil {
		return nil, err
	}

	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}

	base, err := moneyFromNumeric(row.BasePrice)
	if err != nil {
		return nil, err
	}
	discount, err := moneyFromNumeric(row.Discount)
	if err != nil {
		return nil, err
	}
	total, err := moneyFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:              row.ID,
		UserID:          row.UserID,
		Item:            ref,
		BookingDate:     pgconv.TimeFromPgtype(row.BookingDate),
		Stay:            booking.NewStay(checkIn, checkOut),
		Guests:          int(row.NumberOfGuests),
		SpecialRequests: row.SpecialRequests,
		PromotionID:     pgconv.UUIDPtrFromPgtype(row.PromotionID),
		BasePrice:       base,
		Discount:        discount,
		TotalPrice:      total,
		Status:          status,
		ServiceEndsAt:   pgconv.TimePtrFromPgtype(row.ServiceEndsAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func itemIDForType(itemType catalog.ItemType, row sqlc.Bookings) uuid.UUID {
	var id pgtype.UUID
	switch itemType {
	case catalog.ItemTypeHotel:
		id = row.HotelID
	case catalog.ItemTypeFlight:
		id = row.FlightID
	case catalog.ItemTypeTour:
		id = row.TourID
	case catalog.ItemTypeCar:
		id = row.CarID
	}
	return uuid.UUID(id.Bytes)
}

func moneyFromNumeric(n pgtype.Numeric) (money.Money, error) {
	cents, err := pgconv.CentsFromNumeric(n)
	if err != nil {
		return money.Zero(), err
	}
	return money.FromCents(cents)
}
