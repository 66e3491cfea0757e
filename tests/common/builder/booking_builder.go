//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/settings"

	"github.com/google/uuid"
)

var BaseTime = time.Date(2030, 6, 3, 8, 0, 0, 0, time.UTC)

type ServiceBuilder struct {
	ID           uuid.UUID
	Name         string
	Price        int64
	CurrencyCode string
	Deposit      booking.DepositPolicy
	Categories   []booking.PaymentCategory
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:           uuid.New(),
		Name:         "Haircut",
		Price:        10000,
		CurrencyCode: "EUR",
		Deposit:      booking.NoDeposit(),
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) WithDeposit(p booking.DepositPolicy) *ServiceBuilder {
	b.Deposit = p
	return b
}

func (b *ServiceBuilder) WithCategories(c ...booking.PaymentCategory) *ServiceBuilder {
	b.Categories = c
	return b
}

func (b *ServiceBuilder) Build() booking.ServiceSpec {
	return booking.ServiceSpec{
		ID:                  b.ID,
		Name:                b.Name,
		Price:               booking.NewMoney(b.Price),
		CurrencyCode:        b.CurrencyCode,
		Deposit:             b.Deposit,
		PaymentModesAllowed: b.Categories,
	}
}

type BookingBuilder struct {
	StaffID     uuid.UUID
	CustomerID  *uuid.UUID
	Start       time.Time
	End         time.Time
	PaymentMode booking.PaymentMode
	Guest       booking.GuestContact
	Notes       string
	Now         time.Time
	Settings    settings.BookingSettings
	Service     *ServiceBuilder
}

func NewBookingBuilder() *BookingBuilder {
	customerID := uuid.New()
	start := BaseTime.Add(26 * time.Hour)
	return &BookingBuilder{
		StaffID:     uuid.New(),
		CustomerID:  &customerID,
		Start:       start,
		End:         start.Add(30 * time.Minute),
		PaymentMode: booking.PaymentModeFull,
		Notes:       "first visit",
		Now:         BaseTime,
		Settings:    settings.Default(),
		Service:     NewServiceBuilder(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) AsGuest(email string) *BookingBuilder {
	b.CustomerID = nil
	b.Guest = booking.NewGuestContact(email, "+49 30 1234567", "Guest Customer")
	return b
}

func (b *BookingBuilder) Slot() booking.TimeSlot {
	slot, err := booking.NewTimeSlot(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	return slot
}

func (b *BookingBuilder) HoldParams() booking.HoldParams {
	return booking.HoldParams{
		StaffID:     b.StaffID,
		CustomerID:  b.CustomerID,
		Slot:        b.Slot(),
		PaymentMode: b.PaymentMode,
		Guest:       b.Guest,
		Notes:       b.Notes,
	}
}

// BuildHold creates a fresh held booking through the domain factory.
func (b *BookingBuilder) BuildHold() (*booking.Booking, error) {
	return booking.NewHold(b.HoldParams(), b.Service.Build(), b.Settings, b.Now)
}

// BuildWithStatus reconstructs a booking already in status, with the
// timestamps that status implies.
func (b *BookingBuilder) BuildWithStatus(status booking.Status) *booking.Booking {
	svc := b.Service.Build()
	p := booking.ReconstructParams{
		ID:            uuid.New(),
		DisplayNumber: 1,
		StaffID:       b.StaffID,
		ServiceID:     svc.ID,
		CustomerID:    b.CustomerID,
		Slot:          b.Slot(),
		Status:        status,
		Commercial: booking.CommercialSnapshot{
			ServiceName:  svc.Name,
			PriceAmount:  svc.Price,
			CurrencyCode: svc.CurrencyCode,
			PaymentMode:  b.PaymentMode,
		},
		Guest:     b.Guest,
		Notes:     b.Notes,
		Metadata:  map[string]any{},
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
	at := b.Now
	switch status {
	case booking.StatusHeld:
		exp := b.Now.Add(b.Settings.HoldDuration())
		p.HoldExpiresAt = &exp
	case booking.StatusConfirmed:
		p.ConfirmedAt = &at
		p.Commercial.AmountPaid = svc.Price
	case booking.StatusCancelled:
		p.CancelledAt = &at
	case booking.StatusCompleted:
		p.ConfirmedAt = &at
		p.CompletedAt = &at
	case booking.StatusNoShow:
		p.ConfirmedAt = &at
	}
	return booking.ReconstructBooking(p)
}
