package booking

import (
	"time"

	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Field names a mutable booking column touched by a transition.
type Field string

const (
	FieldStatus        Field = "status"
	FieldHoldExpiresAt Field = "hold_expires_at"
	FieldConfirmedAt   Field = "confirmed_at"
	FieldCancelledAt   Field = "cancelled_at"
	FieldCompletedAt   Field = "completed_at"
	FieldAmountPaid    Field = "amount_paid"
	FieldOrderID       Field = "order_id"
)

// Changes maps fields to the values a write will set. A nil value clears the
// column.
type Changes map[Field]any

func (c Changes) Fields() []Field {
	fields := make([]Field, 0, len(c))
	for f := range c {
		fields = append(fields, f)
	}
	return fields
}

// Guard is the precondition a conditional write re-checks at write time.
type Guard struct {
	Status Status
	// NotExpiredAt, when set, also requires hold_expires_at IS NULL or >= it.
	NotExpiredAt *time.Time
}

// Transition is a validated status change ready to be written.
type Transition struct {
	BookingID uuid.UUID
	From      Status
	To        Status
	Guard     Guard
	Changes   Changes
}

func (b *Booking) transitionError(to Status) error {
	if b.status.IsTerminal() || to == StatusConfirmed {
		return errs.NotAllowedf("booking %s cannot move to %s: current status is %s", b.id, to, b.status)
	}
	return errs.InvalidDataf("booking %s: unsupported transition %s -> %s", b.id, b.status, to)
}

// Confirm moves a live hold to confirmed, stamping confirmed_at and the paid
// amount and clearing the hold expiry. orderID may be uuid.Nil.
func (b *Booking) Confirm(now time.Time, amountPaid Money, orderID uuid.UUID) (Transition, error) {
	if b.status != StatusHeld {
		return Transition{}, b.transitionError(StatusConfirmed)
	}
	if b.HoldExpired(now) {
		return Transition{}, errs.NotAllowedf("hold on booking %s expired at %s (now %s)",
			b.id, b.holdExpiresAt.Format(time.RFC3339), now.Format(time.RFC3339))
	}
	if amountPaid.Amount() < 0 {
		return Transition{}, errs.InvalidDataf("amount paid %d cannot be negative", amountPaid.Amount())
	}

	changes := Changes{
		FieldStatus:        StatusConfirmed,
		FieldConfirmedAt:   now,
		FieldHoldExpiresAt: nil,
		FieldAmountPaid:    amountPaid.Amount(),
	}
	if orderID != uuid.Nil {
		changes[FieldOrderID] = orderID
	}
	at := now
	return Transition{
		BookingID: b.id,
		From:      b.status,
		To:        StatusConfirmed,
		Guard:     Guard{Status: StatusHeld, NotExpiredAt: &at},
		Changes:   changes,
	}, nil
}

// Cancel applies the cancellation window unless isAdmin.
func (b *Booking) Cancel(now time.Time, isAdmin bool, windowHours int) (Transition, error) {
	if !b.status.CanTransitionTo(StatusCancelled) {
		return Transition{}, b.transitionError(StatusCancelled)
	}
	if err := CanCancel(isAdmin, b.slot.Start(), now, windowHours); err != nil {
		return Transition{}, errs.Wrapf(err, "booking %s", b.id)
	}

	changes := Changes{
		FieldStatus:      StatusCancelled,
		FieldCancelledAt: now,
	}
	if b.holdExpiresAt != nil {
		changes[FieldHoldExpiresAt] = nil
	}
	return Transition{
		BookingID: b.id,
		From:      b.status,
		To:        StatusCancelled,
		Guard:     Guard{Status: b.status},
		Changes:   changes,
	}, nil
}

func (b *Booking) Complete(now time.Time) (Transition, error) {
	if !b.status.CanTransitionTo(StatusCompleted) {
		return Transition{}, b.transitionError(StatusCompleted)
	}
	return Transition{
		BookingID: b.id,
		From:      b.status,
		To:        StatusCompleted,
		Guard:     Guard{Status: b.status},
		Changes: Changes{
			FieldStatus:      StatusCompleted,
			FieldCompletedAt: now,
		},
	}, nil
}

func (b *Booking) MarkNoShow() (Transition, error) {
	if !b.status.CanTransitionTo(StatusNoShow) {
		return Transition{}, b.transitionError(StatusNoShow)
	}
	return Transition{
		BookingID: b.id,
		From:      b.status,
		To:        StatusNoShow,
		Guard:     Guard{Status: b.status},
		Changes: Changes{
			FieldStatus: StatusNoShow,
		},
	}, nil
}

// Snapshot captures the current values of fields, in the same shape as
// Changes, so that writing it back undoes a transition.
func (b *Booking) Snapshot(fields []Field) Changes {
	before := make(Changes, len(fields))
	for _, f := range fields {
		switch f {
		case FieldStatus:
			before[f] = b.status
		case FieldHoldExpiresAt:
			before[f] = timeOrNil(b.holdExpiresAt)
		case FieldConfirmedAt:
			before[f] = timeOrNil(b.confirmedAt)
		case FieldCancelledAt:
			before[f] = timeOrNil(b.cancelledAt)
		case FieldCompletedAt:
			before[f] = timeOrNil(b.completedAt)
		case FieldAmountPaid:
			before[f] = b.commercial.AmountPaid.Amount()
		case FieldOrderID:
			if b.orderID == nil {
				before[f] = nil
			} else {
				before[f] = *b.orderID
			}
		}
	}
	return before
}

// Apply returns a copy of b with changes applied; used after a successful write.
func (b *Booking) Apply(changes Changes, now time.Time) *Booking {
	cp := *b
	for f, v := range changes {
		switch f {
		case FieldStatus:
			if s, ok := v.(Status); ok {
				cp.status = s
			}
		case FieldHoldExpiresAt:
			cp.holdExpiresAt = timePtr(v)
		case FieldConfirmedAt:
			cp.confirmedAt = timePtr(v)
		case FieldCancelledAt:
			cp.cancelledAt = timePtr(v)
		case FieldCompletedAt:
			cp.completedAt = timePtr(v)
		case FieldAmountPaid:
			if a, ok := v.(int64); ok {
				cp.commercial.AmountPaid = NewMoney(a)
			}
		case FieldOrderID:
			if id, ok := v.(uuid.UUID); ok {
				cp.orderID = &id
			} else {
				cp.orderID = nil
			}
		}
	}
	cp.updatedAt = now
	return &cp
}

func timeOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func timePtr(v any) *time.Time {
	if t, ok := v.(time.Time); ok {
		return &t
	}
	return nil
}
