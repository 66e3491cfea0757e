package queries

import (
	"context"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingView is the read model served to API callers.
type BookingView struct {
	ID            uuid.UUID      `json:"id"`
	DisplayNumber int64          `json:"display_number"`
	StaffID       uuid.UUID      `json:"staff_id"`
	ServiceID     uuid.UUID      `json:"service_id"`
	CustomerID    *uuid.UUID     `json:"customer_id,omitempty"`
	StartAt       time.Time      `json:"start_at"`
	EndAt         time.Time      `json:"end_at"`
	Status        string         `json:"status"`
	HoldExpiresAt *time.Time     `json:"hold_expires_at,omitempty"`
	ServiceName   string         `json:"service_name"`
	PriceAmount   int64          `json:"price_amount"`
	CurrencyCode  string         `json:"currency_code"`
	DepositAmount int64          `json:"deposit_amount"`
	PaymentMode   string         `json:"payment_mode"`
	AmountPaid    int64          `json:"amount_paid"`
	CustomerEmail *string        `json:"customer_email,omitempty"`
	CustomerPhone *string        `json:"customer_phone,omitempty"`
	CustomerName  *string        `json:"customer_name,omitempty"`
	OrderID       *uuid.UUID     `json:"order_id,omitempty"`
	ConfirmedAt   *time.Time     `json:"confirmed_at,omitempty"`
	CancelledAt   *time.Time     `json:"cancelled_at,omitempty"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
	Notes         string         `json:"notes"`
	InternalNotes string         `json:"internal_notes,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type BookingFilter struct {
	StaffID    *uuid.UUID
	CustomerID *uuid.UUID
	Status     *booking.Status
	From       *time.Time
	To         *time.Time
}

// Keyset is the (start_at, id) position after which a page starts.
type Keyset struct {
	StartAt time.Time
	ID      uuid.UUID
}

type Viewer struct {
	UserID  *uuid.UUID
	IsAdmin bool
}

type BookingQueries interface {
	GetByID(ctx context.Context, viewer Viewer, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, viewer Viewer, filter BookingFilter, after *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, after *Keyset, limit int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

// GetByID: admins see everything; others see their own bookings and guest
// bookings, whose unguessable id is the only credential a guest holds.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, viewer Viewer, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFoundf("booking %s not found", id)
		}
		return nil, err
	}
	if !viewer.IsAdmin {
		if view.CustomerID != nil && (viewer.UserID == nil || *viewer.UserID != *view.CustomerID) {
			return nil, errs.NotFoundf("booking %s not found", id)
		}
		view.InternalNotes = ""
	}
	return view, nil
}

// List pages by start_at then id. Non-admin viewers only ever see their own
// bookings.
func (q *bookingQueriesImpl) List(ctx context.Context, viewer Viewer, filter BookingFilter, after *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if !viewer.IsAdmin {
		if viewer.UserID == nil {
			return nil, nil, errs.NotAllowedf("listing bookings requires a signed-in customer")
		}
		filter.CustomerID = viewer.UserID
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, nil, errs.InvalidDataf("from %s must be before to %s",
			filter.From.Format(time.RFC3339), filter.To.Format(time.RFC3339))
	}

	var keyset *Keyset
	if after != nil && after.After != "" {
		startAt, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.AsKind(errs.Wrap(err, "decode cursor"), errs.KindInvalidData)
		}
		keyset = &Keyset{StartAt: startAt, ID: id}
	}

	limit = ValidateLimit(limit)
	// One extra row tells whether another page exists.
	rows, err := q.repo.List(ctx, filter, keyset, limit+1)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.StartAt, last.ID)}
	}
	if !viewer.IsAdmin {
		for _, r := range rows {
			r.InternalNotes = ""
		}
	}
	return rows, next, nil
}
