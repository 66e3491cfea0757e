package response

import (
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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
	Notes         string         `json:"notes,omitempty"`
	InternalNotes string         `json:"internal_notes,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type HoldResponse struct {
	Booking       *BookingResponse `json:"booking"`
	PayableAmount int64            `json:"payable_amount"`
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingViews(views []*queries.BookingView, next *queries.Cursor) (*BookingListResponse, error) {
	res := &BookingListResponse{Items: make([]*BookingResponse, 0, len(views))}
	for _, v := range views {
		item, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		res.Items = append(res.Items, item)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}

// FromBooking renders a command result. Internal notes are never part of a
// command response.
func FromBooking(b *booking.Booking) *BookingResponse {
	c := b.Commercial()
	g := b.Guest()
	return &BookingResponse{
		ID:            b.ID(),
		DisplayNumber: b.DisplayNumber(),
		StaffID:       b.StaffID(),
		ServiceID:     b.ServiceID(),
		CustomerID:    b.CustomerID(),
		StartAt:       b.Slot().Start(),
		EndAt:         b.Slot().End(),
		Status:        b.Status().String(),
		HoldExpiresAt: b.HoldExpiresAt(),
		ServiceName:   c.ServiceName,
		PriceAmount:   c.PriceAmount.Amount(),
		CurrencyCode:  c.CurrencyCode,
		DepositAmount: c.DepositAmount.Amount(),
		PaymentMode:   c.PaymentMode.String(),
		AmountPaid:    c.AmountPaid.Amount(),
		CustomerEmail: optional(g.Email),
		CustomerPhone: optional(g.Phone),
		CustomerName:  optional(g.Name),
		OrderID:       b.OrderID(),
		ConfirmedAt:   b.ConfirmedAt(),
		CancelledAt:   b.CancelledAt(),
		CompletedAt:   b.CompletedAt(),
		Notes:         b.Notes(),
		Metadata:      b.Metadata(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

func FromHoldResult(b *booking.Booking, payable booking.Money) *HoldResponse {
	return &HoldResponse{
		Booking:       FromBooking(b),
		PayableAmount: payable.Amount(),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
