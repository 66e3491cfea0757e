package booking

import (
	"time"

	"salon-booking/internal/domain/settings"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type Booking struct {
	id            uuid.UUID
	displayNumber int64
	staffID       uuid.UUID
	serviceID     uuid.UUID
	customerID    *uuid.UUID
	slot          TimeSlot
	status        Status
	holdExpiresAt *time.Time
	commercial    CommercialSnapshot
	guest         GuestContact
	orderID       *uuid.UUID
	confirmedAt   *time.Time
	cancelledAt   *time.Time
	completedAt   *time.Time
	notes         string
	internalNotes string
	metadata      map[string]any
	createdAt     time.Time
	updatedAt     time.Time
}

type HoldParams struct {
	StaffID     uuid.UUID
	CustomerID  *uuid.UUID
	Slot        TimeSlot
	PaymentMode PaymentMode
	Guest       GuestContact
	Notes       string
	Metadata    map[string]any
}

// NewHold builds a booking in held status. It runs every check that needs no
// I/O: slot not in the past, guest policy, payment mode and deposit rules.
func NewHold(p HoldParams, svc ServiceSpec, cfg settings.BookingSettings, now time.Time) (*Booking, error) {
	if p.StaffID == uuid.Nil {
		return nil, errs.InvalidDataf("staff_id is required")
	}
	if p.Slot.Start().Before(now) {
		return nil, errs.InvalidDataf("cannot hold a slot starting in the past (%s)", p.Slot.Start().Format(time.RFC3339))
	}

	guest := p.Guest
	if p.CustomerID == nil {
		if !cfg.AllowGuestBookings {
			return nil, errs.NotAllowedf("guest bookings are disabled")
		}
		if guest.Email == "" {
			return nil, errs.InvalidDataf("guest bookings require a contact email")
		}
	} else {
		guest = GuestContact{}
	}

	if err := ValidatePaymentMode(p.PaymentMode, svc); err != nil {
		return nil, err
	}

	deposit := NewMoney(0)
	if p.PaymentMode == PaymentModeDeposit {
		amount, err := svc.Deposit.Amount(svc.Price)
		if err != nil {
			return nil, err
		}
		deposit = amount
	}

	expiresAt := now.Add(cfg.HoldDuration())
	metadata := p.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	return &Booking{
		id:            uuid.New(),
		staffID:       p.StaffID,
		serviceID:     svc.ID,
		customerID:    p.CustomerID,
		slot:          p.Slot,
		status:        StatusHeld,
		holdExpiresAt: &expiresAt,
		commercial: CommercialSnapshot{
			ServiceName:   svc.Name,
			PriceAmount:   svc.Price,
			CurrencyCode:  svc.CurrencyCode,
			DepositAmount: deposit,
			PaymentMode:   p.PaymentMode,
			AmountPaid:    NewMoney(0),
		},
		guest:     guest,
		notes:     p.Notes,
		metadata:  metadata,
		createdAt: now,
		updatedAt: now,
	}, nil
}

type ReconstructParams struct {
	ID            uuid.UUID
	DisplayNumber int64
	StaffID       uuid.UUID
	ServiceID     uuid.UUID
	CustomerID    *uuid.UUID
	Slot          TimeSlot
	Status        Status
	HoldExpiresAt *time.Time
	Commercial    CommercialSnapshot
	Guest         GuestContact
	OrderID       *uuid.UUID
	ConfirmedAt   *time.Time
	CancelledAt   *time.Time
	CompletedAt   *time.Time
	Notes         string
	InternalNotes string
	Metadata      map[string]any
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructBooking(p ReconstructParams) *Booking {
	return &Booking{
		id:            p.ID,
		displayNumber: p.DisplayNumber,
		staffID:       p.StaffID,
		serviceID:     p.ServiceID,
		customerID:    p.CustomerID,
		slot:          p.Slot,
		status:        p.Status,
		holdExpiresAt: p.HoldExpiresAt,
		commercial:    p.Commercial,
		guest:         p.Guest,
		orderID:       p.OrderID,
		confirmedAt:   p.ConfirmedAt,
		cancelledAt:   p.CancelledAt,
		completedAt:   p.CompletedAt,
		notes:         p.Notes,
		internalNotes: p.InternalNotes,
		metadata:      p.Metadata,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) DisplayNumber() int64           { return b.displayNumber }
func (b *Booking) StaffID() uuid.UUID             { return b.staffID }
func (b *Booking) ServiceID() uuid.UUID           { return b.serviceID }
func (b *Booking) CustomerID() *uuid.UUID         { return b.customerID }
func (b *Booking) Slot() TimeSlot                 { return b.slot }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) HoldExpiresAt() *time.Time      { return b.holdExpiresAt }
func (b *Booking) Commercial() CommercialSnapshot { return b.commercial }
func (b *Booking) Guest() GuestContact            { return b.guest }
func (b *Booking) OrderID() *uuid.UUID            { return b.orderID }
func (b *Booking) ConfirmedAt() *time.Time        { return b.confirmedAt }
func (b *Booking) CancelledAt() *time.Time        { return b.cancelledAt }
func (b *Booking) CompletedAt() *time.Time        { return b.completedAt }
func (b *Booking) Notes() string                  { return b.notes }
func (b *Booking) InternalNotes() string          { return b.internalNotes }
func (b *Booking) Metadata() map[string]any       { return b.metadata }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time           { return b.updatedAt }

func (b *Booking) IsGuest() bool {
	return b.customerID == nil
}

// HoldExpired is false when the hold has no expiry or expires at/after now.
func (b *Booking) HoldExpired(now time.Time) bool {
	return b.holdExpiresAt != nil && b.holdExpiresAt.Before(now)
}

// WithIdentity returns a copy carrying the identity assigned by storage.
func (b *Booking) WithIdentity(id uuid.UUID, displayNumber int64, createdAt time.Time) *Booking {
	cp := *b
	cp.id = id
	cp.displayNumber = displayNumber
	if !createdAt.IsZero() {
		cp.createdAt = createdAt
		cp.updatedAt = createdAt
	}
	return &cp
}
