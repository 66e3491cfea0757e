package request

import (
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type HoldBookingRequest struct {
	StaffID     uuid.UUID      `json:"staff_id" binding:"required"`
	ServiceID   uuid.UUID      `json:"service_id" binding:"required"`
	CustomerID  *uuid.UUID     `json:"customer_id"`
	StartAt     time.Time      `json:"start_at" binding:"required"`
	EndAt       time.Time      `json:"end_at" binding:"required"`
	PaymentMode string         `json:"payment_mode" binding:"required,payment_mode"`
	Guest       *GuestContact  `json:"guest"`
	Notes       string         `json:"notes" binding:"max=2000"`
	Metadata    map[string]any `json:"metadata"`
}

type GuestContact struct {
	Email string `json:"email" binding:"omitempty,email,max=254"`
	Phone string `json:"phone" binding:"omitempty,max=32"`
	Name  string `json:"name" binding:"omitempty,max=200"`
}

// ToCommand uses customerID as the booking owner; the handler decides who
// that may be.
func (r *HoldBookingRequest) ToCommand(customerID *uuid.UUID) commands.HoldRequest {
	var guest booking.GuestContact
	if r.Guest != nil {
		guest = booking.NewGuestContact(r.Guest.Email, r.Guest.Phone, r.Guest.Name)
	}
	return commands.HoldRequest{
		StaffID:     r.StaffID,
		ServiceID:   r.ServiceID,
		CustomerID:  customerID,
		StartAt:     r.StartAt,
		EndAt:       r.EndAt,
		PaymentMode: booking.PaymentMode(r.PaymentMode),
		Guest:       guest,
		Notes:       r.Notes,
		Metadata:    r.Metadata,
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ListBookingsQuery struct {
	StaffID    string     `form:"staff_id" binding:"omitempty,uuid"`
	CustomerID string     `form:"customer_id" binding:"omitempty,uuid"`
	Status     string     `form:"status" binding:"omitempty,booking_status"`
	From       *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To         *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Cursor     string     `form:"cursor"`
	Limit      int        `form:"limit" binding:"omitempty,min=1"`
}

func (q *ListBookingsQuery) ToFilter() queries.BookingFilter {
	f := queries.BookingFilter{From: q.From, To: q.To}
	if q.StaffID != "" {
		id := uuid.MustParse(q.StaffID)
		f.StaffID = &id
	}
	if q.CustomerID != "" {
		id := uuid.MustParse(q.CustomerID)
		f.CustomerID = &id
	}
	if q.Status != "" {
		s := booking.Status(q.Status)
		f.Status = &s
	}
	return f
}
