package availability

import (
	"context"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/staff"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// BookingReader returns the slots of held or confirmed bookings for staffID
// that overlap window.
type BookingReader interface {
	ListBlockingSlots(ctx context.Context, staffID uuid.UUID, window booking.TimeSlot) ([]booking.TimeSlot, error)
}

type RuleReader interface {
	StaffRules(ctx context.Context, staffID uuid.UUID, window booking.TimeSlot) (staff.Rules, error)
}

// Checker answers whether a slot is free. It is a pre-check only; the
// bookings exclusion constraint is what actually prevents double booking.
type Checker struct {
	bookings BookingReader
	rules    RuleReader
}

func NewChecker(bookings BookingReader, rules RuleReader) *Checker {
	return &Checker{bookings: bookings, rules: rules}
}

// IsAvailable has no side effects. loc is the salon timezone used to read
// working hours.
func (c *Checker) IsAvailable(ctx context.Context, staffID uuid.UUID, slot booking.TimeSlot, loc *time.Location) (bool, error) {
	blocking, err := c.bookings.ListBlockingSlots(ctx, staffID, slot)
	if err != nil {
		return false, errs.Wrapf(err, "list bookings for staff %s", staffID)
	}
	if lo.SomeBy(blocking, slot.Overlaps) {
		return false, nil
	}

	rules, err := c.rules.StaffRules(ctx, staffID, slot)
	if err != nil {
		return false, errs.Wrapf(err, "load availability rules for staff %s", staffID)
	}
	return rules.Permits(slot.Start(), slot.End(), loc), nil
}
