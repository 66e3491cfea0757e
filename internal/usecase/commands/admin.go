package commands

import (
	"context"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/usecase/saga"

	"github.com/google/uuid"
)

// CompleteBooking and MarkNoShow are staff-side closures of a confirmed
// booking. Authorization happens at the HTTP layer.
func (uc *bookingCommandsImpl) CompleteBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return uc.closeBooking(ctx, "complete_booking", id, func(b *booking.Booking, now time.Time) (booking.Transition, error) {
		return b.Complete(now)
	})
}

func (uc *bookingCommandsImpl) MarkNoShow(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return uc.closeBooking(ctx, "mark_no_show", id, func(b *booking.Booking, _ time.Time) (booking.Transition, error) {
		return b.MarkNoShow()
	})
}

func (uc *bookingCommandsImpl) closeBooking(
	ctx context.Context,
	name string,
	id uuid.UUID,
	decide func(*booking.Booking, time.Time) (booking.Transition, error),
) (*booking.Booking, error) {
	b, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	tr, err := decide(b, now)
	if err != nil {
		return nil, err
	}

	wf := uc.workflow(name)
	if _, err = saga.Run(ctx, wf, uc.updateStep(b, tr, now)); err != nil {
		return nil, err
	}
	return saga.Run(ctx, wf, uc.reloadStep(id))
}
