package booking

import (
	"strings"

	"salon-booking/internal/pkg/errs"
)

type Status string

const (
	StatusHeld      Status = "held"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

// held is the only initial state; the last three have no outgoing edges.
var transitions = map[Status][]Status{
	StatusHeld:      {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted, StatusNoShow},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusHeld, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

// Blocks reports whether a booking in this status occupies its slot.
func (s Status) Blocks() bool {
	return s == StatusHeld || s == StatusConfirmed
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", errs.InvalidDataf("unknown booking status %q", raw)
	}
	return s, nil
}

type PaymentCategory string

const (
	CategoryInPerson PaymentCategory = "in_person"
	CategoryOnline   PaymentCategory = "online"
)

func ParsePaymentCategory(raw string) (PaymentCategory, error) {
	c := PaymentCategory(strings.ToLower(strings.TrimSpace(raw)))
	switch c {
	case CategoryInPerson, CategoryOnline:
		return c, nil
	default:
		return "", errs.InvalidDataf("unknown payment category %q", raw)
	}
}

type PaymentMode string

const (
	PaymentModePayInStore PaymentMode = "pay_in_store"
	PaymentModeDeposit    PaymentMode = "deposit"
	PaymentModeFull       PaymentMode = "full"
)

func (m PaymentMode) String() string {
	return string(m)
}

func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModePayInStore, PaymentModeDeposit, PaymentModeFull:
		return true
	default:
		return false
	}
}

// Category maps each mode to exactly one payment category.
func (m PaymentMode) Category() PaymentCategory {
	if m == PaymentModePayInStore {
		return CategoryInPerson
	}
	return CategoryOnline
}

func ParsePaymentMode(raw string) (PaymentMode, error) {
	m := PaymentMode(strings.ToLower(strings.TrimSpace(raw)))
	if !m.IsValid() {
		return "", errs.InvalidDataf("unknown payment mode %q", raw)
	}
	return m, nil
}
