//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultLocationName = "Tokyo"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, role, is_active) VALUES ($1, $2, $3, true) ON CONFLICT (email) DO NOTHING",
		userID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false, updated_at = now() WHERE id = $1", userID)
	require.NoError(t, err)
}

func defaultLocationID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM locations WHERE name = $1 LIMIT 1", DefaultLocationName).Scan(&id)
	require.NoError(t, err)
	return id
}

// Prices are given in cents and stored as NUMERIC(10, 2).

func CreateTestHotel(t *testing.T, db DBLike, name string, priceCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO hotels (id, location_id, name, stars, price, rating) VALUES ($1, $2, $3, 4, $4::bigint / 100.0, 4.5)",
		id, defaultLocationID(t, db), name, priceCents)
	require.NoError(t, err)
	return id
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID uuid.UUID, name string, priceCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, hotel_id, name, room_type, bed_type, price, capacity) VALUES ($1, $2, $3, 'deluxe', 'twin', $4::bigint / 100.0, 2)",
		id, hotelID, name, priceCents)
	require.NoError(t, err)
	return id
}

func CreateTestFlight(t *testing.T, db DBLike, flightNumber string, priceCents int64, arrival time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	location := defaultLocationID(t, db)
	_, err := db.Exec(context.Background(),
		`INSERT INTO flight_tickets (id, flight_number, airline, origin_id, destination_id, departure_time, arrival_time, price, available_seats)
		 VALUES ($1, $2, 'JAL', $3, $3, $4, $5, $6::bigint / 100.0, 100)`,
		id, flightNumber, location, arrival.Add(-2*time.Hour), arrival, priceCents)
	require.NoError(t, err)
	return id
}

func CreateTestTour(t *testing.T, db DBLike, name string, priceCents int64, durationDays int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO tours (id, location_id, name, price, duration_days) VALUES ($1, $2, $3, $4::bigint / 100.0, $5)",
		id, defaultLocationID(t, db), name, priceCents, durationDays)
	require.NoError(t, err)
	return id
}

func CreateTestCar(t *testing.T, db DBLike, name string, priceCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO car_transfers (id, location_id, name, price) VALUES ($1, $2, $3, $4::bigint / 100.0)",
		id, defaultLocationID(t, db), name, priceCents)
	require.NoError(t, err)
	return id
}

type PromotionFixture struct {
	Code                string
	Type                string
	DiscountPercent     int
	DiscountAmountCents int64
	StartDate           time.Time
	EndDate             time.Time
	Inactive            bool
}

func CreateTestPromotion(t *testing.T, db DBLike, p PromotionFixture) uuid.UUID {
	t.Helper()

	var code *string
	if p.Code != "" {
		c := strings.ToUpper(p.Code)
		code = &c
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO promotions (id, title, promotion_type, promo_code, discount_percent, discount_amount, start_date, end_date, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6::bigint / 100.0, $7, $8, $9)`,
		id, "Promotion "+p.Code, p.Type, code, p.DiscountPercent, p.DiscountAmountCents, p.StartDate, p.EndDate, !p.Inactive)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// StatusHistory returns the to_status column of a booking's events, oldest first.
func StatusHistory(t *testing.T, db DBLike, bookingID uuid.UUID) []string {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT to_status FROM booking_status_events WHERE booking_id = $1 ORDER BY created_at, id", bookingID)
	require.NoError(t, err)
	history, err := pgx.CollectRows(rows, pgx.RowTo[string])
	require.NoError(t, err)
	return history
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO locations (id, name, is_popular)
		SELECT gen_random_uuid(), $1, true
		WHERE NOT EXISTS (SELECT 1 FROM locations WHERE name = $1);
	`, DefaultLocationName)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
