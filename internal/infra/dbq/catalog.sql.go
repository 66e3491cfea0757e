package dbq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const getService = `-- name: GetService :one
SELECT id, name, price_amount, currency_code, deposit_type, deposit_value::text, payment_modes_allowed
FROM services
WHERE id = $1`

type ServiceRow struct {
	ID                  uuid.UUID
	Name                string
	PriceAmount         int64
	CurrencyCode        string
	DepositType         string
	DepositValue        pgtype.Text
	PaymentModesAllowed []string
}

func (q *Queries) GetService(ctx context.Context, db DBTX, id uuid.UUID) (ServiceRow, error) {
	rows, err := db.Query(ctx, getService, id)
	if err != nil {
		return ServiceRow{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[ServiceRow])
}

const getBookingSettings = `-- name: GetBookingSettings :one
SELECT cancellation_window_hours, default_hold_duration_minutes, allow_guest_bookings, timezone
FROM booking_settings
LIMIT 1`

type BookingSettingsRow struct {
	CancellationWindowHours    int32
	DefaultHoldDurationMinutes int32
	AllowGuestBookings         bool
	Timezone                   string
}

func (q *Queries) GetBookingSettings(ctx context.Context, db DBTX) (BookingSettingsRow, error) {
	var i BookingSettingsRow
	err := db.QueryRow(ctx, getBookingSettings).Scan(
		&i.CancellationWindowHours,
		&i.DefaultHoldDurationMinutes,
		&i.AllowGuestBookings,
		&i.Timezone,
	)
	return i, err
}

const listWorkingHours = `-- name: ListWorkingHours :many
SELECT staff_id, weekday, opens_at_minute, closes_at_minute
FROM staff_working_hours
WHERE staff_id = $1
ORDER BY weekday, opens_at_minute`

type WorkingHoursRow struct {
	StaffID        uuid.UUID
	Weekday        int16
	OpensAtMinute  int32
	ClosesAtMinute int32
}

func (q *Queries) ListWorkingHours(ctx context.Context, db DBTX, staffID uuid.UUID) ([]WorkingHoursRow, error) {
	rows, err := db.Query(ctx, listWorkingHours, staffID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[WorkingHoursRow])
}

const listTimeOff = `-- name: ListTimeOff :many
SELECT staff_id, starts_at, ends_at, reason
FROM staff_time_off
WHERE staff_id = $1 AND tstzrange(starts_at, ends_at, '[)') && tstzrange($2, $3, '[)')
ORDER BY starts_at`

type TimeOffRow struct {
	StaffID  uuid.UUID
	StartsAt time.Time
	EndsAt   time.Time
	Reason   string
}

func (q *Queries) ListTimeOff(ctx context.Context, db DBTX, staffID uuid.UUID, from, to time.Time) ([]TimeOffRow, error) {
	rows, err := db.Query(ctx, listTimeOff, staffID, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[TimeOffRow])
}
