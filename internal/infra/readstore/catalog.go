package readstore

import (
	"context"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	GetHotelItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetHotelItemRow, error)
	GetFlightItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetFlightItemRow, error)
	GetTourItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetTourItemRow, error)
	GetCarTransferItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCarTransferItemRow, error)
	GetRoomOfHotel(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRoomOfHotelParams) (sqlc.GetRoomOfHotelRow, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) ItemByID(ctx context.Context, itemType catalog.ItemType, id uuid.UUID) (*shared.ItemSnapshot, error) {
	var (
		snap *shared.ItemSnapshot
		err  error
	)

	switch itemType {
	case catalog.ItemTypeHotel:
		snap, err = r.hotel(ctx, id)
	case catalog.ItemTypeFlight:
		snap, err = r.flight(ctx, id)
	case catalog.ItemTypeTour:
		snap, err = r.tour(ctx, id)
	case catalog.ItemTypeCar:
		snap, err = r.car(ctx, id)
	default:
		return nil, infra.WrapRepoErr("unknown item type "+itemType.String(), nil, infra.KindNotFound)
	}
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(itemType.String()+" not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find "+itemType.String()+" by ID", err)
	}

	return snap, nil
}

func (r *CatalogReadStore) RoomOfHotel(ctx context.Context, roomID, hotelID uuid.UUID) (*shared.RoomSnapshot, error) {
	row, err := r.queries.GetRoomOfHotel(ctx, r.db, sqlc.GetRoomOfHotelParams{ID: roomID, HotelID: hotelID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room of hotel", err)
	}

	price, err := pgconv.CentsFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid room price", err)
	}

	return &shared.RoomSnapshot{
		ID:          row.ID,
		HotelID:     row.HotelID,
		Name:        row.Name,
		RoomType:    row.RoomType,
		BedType:     row.BedType,
		PriceCents:  price,
		Capacity:    row.Capacity,
		IsAvailable: row.IsAvailable,
	}, nil
}

func (r *CatalogReadStore) hotel(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	row, err := r.queries.GetHotelItem(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.CentsFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return &shared.ItemSnapshot{
		Type:         catalog.ItemTypeHotel.String(),
		ID:           row.ID,
		Name:         row.Name,
		LocationName: row.LocationName,
		PriceCents:   price,
		Rating:       row.Rating,
	}, nil
}

func (r *CatalogReadStore) flight(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	row, err := r.queries.GetFlightItem(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.CentsFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return &shared.ItemSnapshot{
		Type:            catalog.ItemTypeFlight.String(),
		ID:              row.ID,
		Name:            row.FlightNumber,
		LocationName:    row.DestinationName,
		PriceCents:      price,
		Rating:          row.Rating,
		Airline:         row.Airline,
		OriginName:      row.OriginName,
		DestinationName: row.DestinationName,
		DepartureTime:   pgconv.TimePtrFromPgtype(row.DepartureTime),
		ArrivalTime:     pgconv.TimePtrFromPgtype(row.ArrivalTime),
	}, nil
}

func (r *CatalogReadStore) tour(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	row, err := r.queries.GetTourItem(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.CentsFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return &shared.ItemSnapshot{
		Type:         catalog.ItemTypeTour.String(),
		ID:           row.ID,
		Name:         row.Name,
		LocationName: row.LocationName,
		PriceCents:   price,
		Rating:       row.Rating,
		DurationDays: row.DurationDays,
	}, nil
}

func (r *CatalogReadStore) car(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	row, err := r.queries.GetCarTransferItem(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.CentsFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return &shared.ItemSnapshot{
		Type:         catalog.ItemTypeCar.String(),
		ID:           row.ID,
		Name:         row.Name,
		LocationName: row.LocationName,
		PriceCents:   price,
		Rating:       row.Rating,
		CarType:      row.CarType,
		Capacity:     row.Capacity,
	}, nil
}
