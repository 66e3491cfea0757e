package commands

import (
	"context"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/saga"

	"github.com/google/uuid"
)

type customerLink struct {
	customerID uuid.UUID
	bookingID  uuid.UUID
}

// HoldBooking reserves a slot in held status until the configured hold
// duration elapses.
func (uc *bookingCommandsImpl) HoldBooking(ctx context.Context, req HoldRequest) (*HoldResult, error) {
	res, err := uc.hold(ctx, req)
	if err != nil {
		uc.metrics.HoldsRejected.WithLabelValues(string(errs.KindOf(err))).Inc()
		return nil, err
	}
	uc.metrics.HoldsCreated.Inc()
	return res, nil
}

func (uc *bookingCommandsImpl) hold(ctx context.Context, req HoldRequest) (*HoldResult, error) {
	slot, err := booking.NewTimeSlot(req.StartAt, req.EndAt)
	if err != nil {
		return nil, err
	}
	cfg, err := uc.settings.Load(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load booking settings")
	}
	svc, err := uc.catalog.FindService(ctx, req.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.AsKind(errs.Wrapf(err, "service %s", req.ServiceID), errs.KindNotFound)
		}
		return nil, errs.Wrapf(err, "load service %s", req.ServiceID)
	}

	now := uc.clock.Now()
	draft, err := booking.NewHold(booking.HoldParams{
		StaffID:     req.StaffID,
		CustomerID:  req.CustomerID,
		Slot:        slot,
		PaymentMode: req.PaymentMode,
		Guest:       req.Guest,
		Notes:       req.Notes,
		Metadata:    req.Metadata,
	}, svc, cfg, now)
	if err != nil {
		return nil, err
	}
	payable, err := booking.PayableAmount(req.PaymentMode, svc)
	if err != nil {
		return nil, err
	}

	unlock, err := uc.locker.Lock(ctx, req.StaffID)
	if err != nil {
		return nil, errs.Wrapf(err, "lock staff %s", req.StaffID)
	}
	defer func() {
		if uerr := unlock(context.WithoutCancel(ctx)); uerr != nil {
			uc.logger.Warn("failed to release staff lock", "staff_id", req.StaffID, "error", uerr.Error())
		}
	}()

	wf := uc.workflow("hold_booking")

	_, err = saga.Run(ctx, wf, saga.Step[struct{}]{
		Name: "check_availability",
		Invoke: func(ctx context.Context) (saga.StepResult[struct{}], error) {
			ok, err := uc.availability.IsAvailable(ctx, req.StaffID, slot, cfg.Location())
			if err != nil {
				return saga.StepResult[struct{}]{}, err
			}
			if !ok {
				return saga.StepResult[struct{}]{}, errs.NotAllowedf("staff %s is not available for %s", req.StaffID, slot)
			}
			return saga.StepResult[struct{}]{}, nil
		},
	})
	if err != nil {
		return nil, err
	}

	created, err := saga.Run(ctx, wf, saga.Step[*booking.Booking]{
		Name: "create_booking",
		Invoke: func(ctx context.Context) (saga.StepResult[*booking.Booking], error) {
			b, err := uc.uow.Bookings().Create(ctx, draft)
			if err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return saga.StepResult[*booking.Booking]{}, errs.AsKind(
						errs.Wrapf(err, "slot %s for staff %s was taken concurrently", slot, req.StaffID), errs.KindNotAllowed)
				}
				return saga.StepResult[*booking.Booking]{}, errs.Wrap(err, "create booking")
			}
			return saga.StepResult[*booking.Booking]{Value: b, Undo: b.ID()}, nil
		},
		Compensate: func(ctx context.Context, undo any) error {
			id, ok := undo.(uuid.UUID)
			if !ok {
				return errs.New("create_booking: unexpected undo payload")
			}
			return uc.uow.Bookings().Delete(ctx, id)
		},
	})
	if err != nil {
		return nil, err
	}

	if req.CustomerID != nil {
		link := customerLink{customerID: *req.CustomerID, bookingID: created.ID()}
		_, err = saga.Run(ctx, wf, saga.Step[struct{}]{
			Name: "link_customer",
			Invoke: func(ctx context.Context) (saga.StepResult[struct{}], error) {
				if err := uc.uow.Links().LinkCustomer(ctx, link.customerID, link.bookingID); err != nil {
					return saga.StepResult[struct{}]{}, errs.Wrapf(err, "link customer %s", link.customerID)
				}
				return saga.StepResult[struct{}]{Undo: link}, nil
			},
			Compensate: func(ctx context.Context, undo any) error {
				l, ok := undo.(customerLink)
				if !ok {
					return errs.New("link_customer: unexpected undo payload")
				}
				return uc.uow.Links().UnlinkCustomer(ctx, l.customerID, l.bookingID)
			},
		})
		if err != nil {
			return nil, err
		}
	}

	held, err := saga.Run(ctx, wf, uc.reloadStep(created.ID()))
	if err != nil {
		return nil, err
	}

	uc.logger.Info("booking held",
		"booking_id", held.ID(),
		"staff_id", held.StaffID(),
		"slot", slot.String(),
		"hold_expires_at", held.HoldExpiresAt())
	return &HoldResult{Booking: held, PayableAmount: payable}, nil
}
