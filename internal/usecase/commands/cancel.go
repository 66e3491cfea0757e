package commands

import (
	"context"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/saga"
)

func (uc *bookingCommandsImpl) CancelBooking(ctx context.Context, req CancelRequest) (*booking.Booking, error) {
	b, err := uc.load(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if !req.Actor.IsAdmin && !ownedBy(b, req.Actor) {
		return nil, errs.NotAllowedf("booking %s does not belong to the caller", b.ID())
	}

	cfg, err := uc.settings.Load(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load booking settings")
	}

	now := uc.clock.Now()
	tr, err := b.Cancel(now, req.Actor.IsAdmin, cfg.CancellationWindowHours)
	if err != nil {
		return nil, err
	}

	wf := uc.workflow("cancel_booking")

	if orderID := b.OrderID(); orderID != nil {
		// An issued refund cannot be taken back, so this step has no compensation.
		_, err = saga.Run(ctx, wf, saga.Step[struct{}]{
			Name: "cancel_order",
			Invoke: func(ctx context.Context) (saga.StepResult[struct{}], error) {
				if err := uc.orders.CancelOrder(ctx, *orderID, req.Reason); err != nil {
					return saga.StepResult[struct{}]{}, errs.Wrapf(err, "cancel order %s", *orderID)
				}
				return saga.StepResult[struct{}]{}, nil
			},
		})
		if err != nil {
			return nil, err
		}
	}

	if _, err = saga.Run(ctx, wf, uc.updateStep(b, tr, now)); err != nil {
		return nil, err
	}
	cancelled, err := saga.Run(ctx, wf, uc.reloadStep(b.ID()))
	if err != nil {
		return nil, err
	}

	uc.logger.Info("booking cancelled",
		"booking_id", b.ID(),
		"from", tr.From,
		"admin", req.Actor.IsAdmin,
		"reason", req.Reason)
	return cancelled, nil
}

func ownedBy(b *booking.Booking, actor Actor) bool {
	return actor.UserID != nil && b.CustomerID() != nil && *b.CustomerID() == *actor.UserID
}
