package booking

import (
	"fmt"
	"strings"
	"time"

	"salon-booking/internal/pkg/errs"
)

// TimeSlot is a half-open range [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() {
		return TimeSlot{}, errs.InvalidDataf("start_at and end_at are required")
	}
	if !start.Before(end) {
		return TimeSlot{}, errs.InvalidDataf("start_at %s must be before end_at %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

func (ts TimeSlot) String() string {
	return ts.start.Format(time.RFC3339) + "/" + ts.end.Format(time.RFC3339)
}

// Money is an amount in the currency's minor unit.
type Money struct {
	amount int64
}

func NewMoney(amount int64) Money {
	return Money{amount: amount}
}

func NewMoneyNonNegative(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.InvalidDataf("amount %d cannot be negative", amount)
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

type GuestContact struct {
	Email string
	Phone string
	Name  string
}

func NewGuestContact(email, phone, name string) GuestContact {
	return GuestContact{
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
		Name:  strings.TrimSpace(name),
	}
}

func (g GuestContact) IsEmpty() bool {
	return g.Email == "" && g.Phone == "" && g.Name == ""
}

// CommercialSnapshot is copied from the service when the hold is created and
// never re-derived afterwards.
type CommercialSnapshot struct {
	ServiceName   string
	PriceAmount   Money
	CurrencyCode  string
	DepositAmount Money
	PaymentMode   PaymentMode
	AmountPaid    Money
}
