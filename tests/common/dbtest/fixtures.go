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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type ServiceFixture struct {
	Name         string
	Price        int64
	Currency     string
	DepositType  string
	DepositValue *string
	PaymentModes []string
}

func DefaultService() ServiceFixture {
	return ServiceFixture{Name: "Haircut", Price: 10000, Currency: "EUR", DepositType: "none"}
}

func CreateTestService(t *testing.T, db DBLike, f ServiceFixture) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO services (id, name, price_amount, currency_code, deposit_type, deposit_value, payment_modes_allowed)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7)`,
		id, f.Name, f.Price, f.Currency, f.DepositType, f.DepositValue, f.PaymentModes)
	require.NoError(t, err)
	return id
}

func SetBookingSettings(t *testing.T, db DBLike, windowHours, holdMinutes int, allowGuests bool, timezone string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		UPDATE booking_settings
		SET cancellation_window_hours = $1, default_hold_duration_minutes = $2,
		    allow_guest_bookings = $3, timezone = $4, updated_at = now()`,
		windowHours, holdMinutes, allowGuests, timezone)
	require.NoError(t, err)
}

// CreateWorkingHours opens staffID on weekday between the given minutes after
// local midnight.
func CreateWorkingHours(t *testing.T, db DBLike, staffID uuid.UUID, weekday time.Weekday, opensAt, closesAt int) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO staff_working_hours (staff_id, weekday, opens_at_minute, closes_at_minute)
		VALUES ($1, $2, $3, $4)`,
		staffID, int16(weekday), opensAt, closesAt)
	require.NoError(t, err)
}

func CreateTimeOff(t *testing.T, db DBLike, staffID uuid.UUID, start, end time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO staff_time_off (staff_id, starts_at, ends_at, reason) VALUES ($1, $2, $3, 'test')`,
		staffID, start, end)
	require.NoError(t, err)
}

// ExpireHold moves a held booking's expiry into the past.
func ExpireHold(t *testing.T, db DBLike, bookingID uuid.UUID, at time.Time) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		`UPDATE bookings SET hold_expires_at = $2 WHERE id = $1 AND status = 'held'`, bookingID, at)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "booking %s is not held", bookingID)
}

func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) (string, bool) {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), `SELECT status FROM bookings WHERE id = $1`, bookingID).Scan(&status)
	if err != nil {
		return "", false
	}
	return status, true
}

func CountBookings(t *testing.T, db DBLike, staffID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM bookings WHERE staff_id = $1`, staffID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `INSERT INTO booking_settings (id) VALUES (true) ON CONFLICT (id) DO NOTHING`)
	return err
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
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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

// MarkConfirmed puts a held booking into confirmed status as if its payment
// had arrived for orderID.
func MarkConfirmed(t *testing.T, db DBLike, bookingID, orderID uuid.UUID, amountPaid int64) {
	t.Helper()

	tag, err := db.Exec(context.Background(), `
		UPDATE bookings
		SET status = 'confirmed', hold_expires_at = NULL, confirmed_at = now(),
		    order_id = $2, amount_paid = $3, updated_at = now()
		WHERE id = $1 AND status = 'held'`,
		bookingID, orderID, amountPaid)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "booking %s is not held", bookingID)
}
