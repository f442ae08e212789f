package readstore

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/repository/converter"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListBookingsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserFirstPageParams) ([]sqlc.ListBookingsByUserFirstPageRow, error)
	ListBookingsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserKeysetParams) ([]sqlc.ListBookingsByUserKeysetRow, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListCompletableBookingsForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCompletableBookingsForUpdateParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view, err := rowToBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking record", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	params := sqlc.ListBookingsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	}

	rows, err := r.queries.ListBookingsByUserFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings first page", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		item, err := toBookingListItem(listRow(row))
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking record", err)
		}
		result[i] = item
	}

	return result, nil
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastBookingDate time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	params := sqlc.ListBookingsByUserKeysetParams{
		UserID:      userID,
		BookingDate: pgconv.TimeToPgtype(lastBookingDate),
		ID:          lastID,
		RowLimit:    limit,
	}

	rows, err := r.queries.ListBookingsByUserKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings keyset", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		item, err := toBookingListItem(listRow(row))
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking record", err)
		}
		result[i] = item
	}

	return result, nil
}

// FindForUpdate loads the booking aggregate and locks its row within tx.
func (r *BookingReadStore) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	b, err := converter.BookingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking record", err)
	}
	return b, nil
}

func (r *BookingReadStore) FindCompletableForUpdate(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]*booking.Booking, error) {
	params := sqlc.ListCompletableBookingsForUpdateParams{
		Now:        pgconv.TimeToPgtype(now),
		BatchLimit: limit,
	}

	rows, err := r.queries.ListCompletableBookingsForUpdate(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock completable bookings", err)
	}

	result := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BookingFromInfra(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking record", err)
		}
		result = append(result, b)
	}

	return result, nil
}

func rowToBookingView(row sqlc.GetBookingViewRow) (*queries.BookingView, error) {
	checkIn, err := pgconv.DatePtrFromPgtype(row.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := pgconv.DatePtrFromPgtype(row.CheckOutDate)
	if err != nil {
		return nil, err
	}
	base, err := pgconv.CentsFromNumeric(row.BasePrice)
	if err != nil {
		return nil, err
	}
	discount, err := pgconv.CentsFromNumeric(row.Discount)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.CentsFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}

	return &queries.BookingView{
		ID:              row.ID,
		UserID:          row.UserID,
		BookingType:     row.BookingType,
		ItemID:          firstValidUUID(row.HotelID, row.FlightID, row.TourID, row.CarID),
		ItemName:        row.ItemName,
		RoomID:          pgconv.UUIDPtrFromPgtype(row.RoomID),
		RoomName:        pgconv.StringPtrFromPgtype(row.RoomName),
		BookingDate:     pgconv.TimeFromPgtype(row.BookingDate),
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  int(row.NumberOfGuests),
		SpecialRequests: row.SpecialRequests,
		PromotionID:     pgconv.UUIDPtrFromPgtype(row.PromotionID),
		PromoCode:       pgconv.StringPtrFromPgtype(row.PromoCode),
		BasePriceCents:  base,
		DiscountCents:   discount,
		TotalPriceCents: total,
		Status:          row.Status,
		ServiceEndsAt:   pgconv.TimePtrFromPgtype(row.ServiceEndsAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// listRow unifies the two list query rows, which share their columns.
type listRow struct {
	ID             uuid.UUID
	BookingType    string
	BookingDate    pgtype.Timestamptz
	CheckInDate    pgtype.Date
	CheckOutDate   pgtype.Date
	NumberOfGuests int32
	TotalPrice     pgtype.Numeric
	Status         string
	ItemName       string
}

func toBookingListItem(row listRow) (*queries.BookingListItem, error) {
	checkIn, err := pgconv.DatePtrFromPgtype(row.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := pgconv.DatePtrFromPgtype(row.CheckOutDate)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.CentsFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}

	return &queries.BookingListItem{
		ID:              row.ID,
		BookingType:     row.BookingType,
		ItemName:        row.ItemName,
		BookingDate:     pgconv.TimeFromPgtype(row.BookingDate),
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  int(row.NumberOfGuests),
		TotalPriceCents: total,
		Status:          row.Status,
	}, nil
}

func firstValidUUID(ids ...pgtype.UUID) uuid.UUID {
	for _, id := range ids {
		if id.Valid {
			return id.Bytes
		}
	}
	return uuid.Nil
}
