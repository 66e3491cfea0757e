package dbq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, display_number, staff_id, service_id, customer_id, start_at, end_at, status,
	hold_expires_at, service_name, price_amount, currency_code, deposit_amount, payment_mode, amount_paid,
	customer_email, customer_phone, customer_name, order_id, confirmed_at, cancelled_at, completed_at,
	notes, internal_notes, metadata, created_at, updated_at`

type BookingRow struct {
	ID            uuid.UUID
	DisplayNumber int64
	StaffID       uuid.UUID
	ServiceID     uuid.UUID
	CustomerID    pgtype.UUID
	StartAt       time.Time
	EndAt         time.Time
	Status        string
	HoldExpiresAt pgtype.Timestamptz
	ServiceName   string
	PriceAmount   int64
	CurrencyCode  string
	DepositAmount int64
	PaymentMode   string
	AmountPaid    int64
	CustomerEmail pgtype.Text
	CustomerPhone pgtype.Text
	CustomerName  pgtype.Text
	OrderID       pgtype.UUID
	ConfirmedAt   pgtype.Timestamptz
	CancelledAt   pgtype.Timestamptz
	CompletedAt   pgtype.Timestamptz
	Notes         string
	InternalNotes string
	Metadata      []byte
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func scanBooking(row pgx.Row) (BookingRow, error) {
	var i BookingRow
	err := row.Scan(
		&i.ID,
		&i.DisplayNumber,
		&i.StaffID,
		&i.ServiceID,
		&i.CustomerID,
		&i.StartAt,
		&i.EndAt,
		&i.Status,
		&i.HoldExpiresAt,
		&i.ServiceName,
		&i.PriceAmount,
		&i.CurrencyCode,
		&i.DepositAmount,
		&i.PaymentMode,
		&i.AmountPaid,
		&i.CustomerEmail,
		&i.CustomerPhone,
		&i.CustomerName,
		&i.OrderID,
		&i.ConfirmedAt,
		&i.CancelledAt,
		&i.CompletedAt,
		&i.Notes,
		&i.InternalNotes,
		&i.Metadata,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectBookings(rows pgx.Rows) ([]BookingRow, error) {
	defer rows.Close()
	var items []BookingRow
	for rows.Next() {
		i, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const insertBooking = `-- name: InsertBooking :one
INSERT INTO bookings (
    id, staff_id, service_id, customer_id, start_at, end_at, status, hold_expires_at,
    service_name, price_amount, currency_code, deposit_amount, payment_mode, amount_paid,
    customer_email, customer_phone, customer_name, notes, metadata, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $20
)
RETURNING display_number, created_at`

type InsertBookingParams struct {
	ID            uuid.UUID
	StaffID       uuid.UUID
	ServiceID     uuid.UUID
	CustomerID    pgtype.UUID
	StartAt       time.Time
	EndAt         time.Time
	Status        string
	HoldExpiresAt pgtype.Timestamptz
	ServiceName   string
	PriceAmount   int64
	CurrencyCode  string
	DepositAmount int64
	PaymentMode   string
	AmountPaid    int64
	CustomerEmail pgtype.Text
	CustomerPhone pgtype.Text
	CustomerName  pgtype.Text
	Notes         string
	Metadata      []byte
	CreatedAt     time.Time
}

type InsertBookingRow struct {
	DisplayNumber int64
	CreatedAt     time.Time
}

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) (InsertBookingRow, error) {
	row := db.QueryRow(ctx, insertBooking,
		arg.ID,
		arg.StaffID,
		arg.ServiceID,
		arg.CustomerID,
		arg.StartAt,
		arg.EndAt,
		arg.Status,
		arg.HoldExpiresAt,
		arg.ServiceName,
		arg.PriceAmount,
		arg.CurrencyCode,
		arg.DepositAmount,
		arg.PaymentMode,
		arg.AmountPaid,
		arg.CustomerEmail,
		arg.CustomerPhone,
		arg.CustomerName,
		arg.Notes,
		arg.Metadata,
		arg.CreatedAt,
	)
	var i InsertBookingRow
	err := row.Scan(&i.DisplayNumber, &i.CreatedAt)
	return i, err
}

const getBookingByID = `-- name: GetBookingByID :one
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingRow, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

const bookingExists = `-- name: BookingExists :one
SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1 AND deleted_at IS NULL)`

func (q *Queries) BookingExists(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, bookingExists, id).Scan(&exists)
	return exists, err
}

const deleteBooking = `-- name: DeleteBooking :execrows
DELETE FROM bookings WHERE id = $1`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Each column is written only when its Set flag is true, so one statement
// serves every transition and every restore. The guard columns are optional.
const updateBookingFields = `-- name: UpdateBookingFields :execrows
UPDATE bookings SET
    status          = CASE WHEN $2::boolean THEN $3::text ELSE status END,
    hold_expires_at = CASE WHEN $4::boolean THEN $5::timestamptz ELSE hold_expires_at END,
    confirmed_at    = CASE WHEN $6::boolean THEN $7::timestamptz ELSE confirmed_at END,
    cancelled_at    = CASE WHEN $8::boolean THEN $9::timestamptz ELSE cancelled_at END,
    completed_at    = CASE WHEN $10::boolean THEN $11::timestamptz ELSE completed_at END,
    amount_paid     = CASE WHEN $12::boolean THEN $13::bigint ELSE amount_paid END,
    order_id        = CASE WHEN $14::boolean THEN $15::uuid ELSE order_id END,
    updated_at      = $16
WHERE id = $1
  AND deleted_at IS NULL
  AND ($17::text IS NULL OR status = $17::text)
  AND ($18::timestamptz IS NULL OR hold_expires_at IS NULL OR hold_expires_at >= $18::timestamptz)`

type UpdateBookingFieldsParams struct {
	ID               uuid.UUID
	SetStatus        bool
	Status           pgtype.Text
	SetHoldExpiresAt bool
	HoldExpiresAt    pgtype.Timestamptz
	SetConfirmedAt   bool
	ConfirmedAt      pgtype.Timestamptz
	SetCancelledAt   bool
	CancelledAt      pgtype.Timestamptz
	SetCompletedAt   bool
	CompletedAt      pgtype.Timestamptz
	SetAmountPaid    bool
	AmountPaid       pgtype.Int8
	SetOrderID       bool
	OrderID          pgtype.UUID
	UpdatedAt        time.Time
	GuardStatus      pgtype.Text
	GuardNotExpired  pgtype.Timestamptz
}

func (q *Queries) UpdateBookingFields(ctx context.Context, db DBTX, arg UpdateBookingFieldsParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBookingFields,
		arg.ID,
		arg.SetStatus,
		arg.Status,
		arg.SetHoldExpiresAt,
		arg.HoldExpiresAt,
		arg.SetConfirmedAt,
		arg.ConfirmedAt,
		arg.SetCancelledAt,
		arg.CancelledAt,
		arg.SetCompletedAt,
		arg.CompletedAt,
		arg.SetAmountPaid,
		arg.AmountPaid,
		arg.SetOrderID,
		arg.OrderID,
		arg.UpdatedAt,
		arg.GuardStatus,
		arg.GuardNotExpired,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listExpiredHoldIDs = `-- name: ListExpiredHoldIDs :many
SELECT id FROM bookings
WHERE status = 'held' AND hold_expires_at < $1 AND deleted_at IS NULL
ORDER BY hold_expires_at`

func (q *Queries) ListExpiredHoldIDs(ctx context.Context, db DBTX, now time.Time) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listExpiredHoldIDs, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

// The status and expiry are re-checked so a hold confirmed after it was
// listed survives.
const deleteExpiredHolds = `-- name: DeleteExpiredHolds :many
DELETE FROM bookings
WHERE id = ANY($1::uuid[]) AND status = 'held' AND hold_expires_at < $2
RETURNING id`

func (q *Queries) DeleteExpiredHolds(ctx context.Context, db DBTX, ids []uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, deleteExpiredHolds, ids, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

const listBlockingSlots = `-- name: ListBlockingSlots :many
SELECT start_at, end_at FROM bookings
WHERE staff_id = $1
  AND status IN ('held', 'confirmed')
  AND deleted_at IS NULL
  AND slot && tstzrange($2, $3, '[)')
ORDER BY start_at`

type SlotRow struct {
	StartAt time.Time
	EndAt   time.Time
}

func (q *Queries) ListBlockingSlots(ctx context.Context, db DBTX, staffID uuid.UUID, from, to time.Time) ([]SlotRow, error) {
	rows, err := db.Query(ctx, listBlockingSlots, staffID, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[SlotRow])
}

const listBookings = `-- name: ListBookings :many
SELECT ` + bookingColumns + `
FROM bookings
WHERE deleted_at IS NULL
  AND ($1::uuid IS NULL OR staff_id = $1)
  AND ($2::uuid IS NULL OR customer_id = $2)
  AND ($3::text IS NULL OR status = $3)
  AND ($4::timestamptz IS NULL OR end_at > $4)
  AND ($5::timestamptz IS NULL OR start_at < $5)
  AND ($6::timestamptz IS NULL OR (start_at, id) > ($6, $7::uuid))
ORDER BY start_at, id
LIMIT $8`

type ListBookingsParams struct {
	StaffID    pgtype.UUID
	CustomerID pgtype.UUID
	Status     pgtype.Text
	From       pgtype.Timestamptz
	To         pgtype.Timestamptz
	AfterStart pgtype.Timestamptz
	AfterID    pgtype.UUID
	Limit      int32
}

func (q *Queries) ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listBookings,
		arg.StaffID,
		arg.CustomerID,
		arg.Status,
		arg.From,
		arg.To,
		arg.AfterStart,
		arg.AfterID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}
