package commands

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/saga"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type HoldRequest struct {
	StaffID     uuid.UUID
	ServiceID   uuid.UUID
	CustomerID  *uuid.UUID
	StartAt     time.Time
	EndAt       time.Time
	PaymentMode booking.PaymentMode
	Guest       booking.GuestContact
	Notes       string
	Metadata    map[string]any
}

type HoldResult struct {
	Booking       *booking.Booking
	PayableAmount booking.Money
}

// ConfirmRequest is built from a payment completion event.
type ConfirmRequest struct {
	BookingID  uuid.UUID
	OrderID    uuid.UUID
	AmountPaid int64
	Currency   string
}

type CancelRequest struct {
	BookingID uuid.UUID
	Actor     Actor
	Reason    string
}

type BookingCommands interface {
	HoldBooking(ctx context.Context, req HoldRequest) (*HoldResult, error)
	ConfirmBooking(ctx context.Context, req ConfirmRequest) (*booking.Booking, error)
	CancelBooking(ctx context.Context, req CancelRequest) (*booking.Booking, error)
	CompleteBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	MarkNoShow(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	uow          shared.UnitOfWork
	catalog      ServiceCatalog
	settings     SettingsStore
	availability AvailabilityChecker
	orders       OrderGateway
	locker       SlotLocker
	clock        clock.Clock
	metrics      *metrics.Booking
	logger       *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	catalog ServiceCatalog,
	settings SettingsStore,
	availability AvailabilityChecker,
	orders OrderGateway,
	locker SlotLocker,
	clk clock.Clock,
	m *metrics.Booking,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:          uow,
		catalog:      catalog,
		settings:     settings,
		availability: availability,
		orders:       orders,
		locker:       locker,
		clock:        clk,
		metrics:      m,
		logger:       logger,
	}
}

func (uc *bookingCommandsImpl) workflow(name string) *saga.Workflow {
	return saga.New(name, uc.logger, saga.WithObserver(uc.metrics))
}

// updateStep writes tr and, on rollback, writes back the values the changed
// fields had before.
func (uc *bookingCommandsImpl) updateStep(b *booking.Booking, tr booking.Transition, now time.Time) saga.Step[struct{}] {
	return saga.Step[struct{}]{
		Name: "update_booking",
		Invoke: func(ctx context.Context) (saga.StepResult[struct{}], error) {
			before := b.Snapshot(tr.Changes.Fields())
			if err := uc.uow.Bookings().ApplyTransition(ctx, tr, now); err != nil {
				return saga.StepResult[struct{}]{}, translateWriteErr(err, tr)
			}
			uc.metrics.Transitions.WithLabelValues(string(tr.To)).Inc()
			return saga.StepResult[struct{}]{Undo: before}, nil
		},
		Compensate: func(ctx context.Context, undo any) error {
			before, ok := undo.(booking.Changes)
			if !ok {
				return errs.New("update_booking: unexpected undo payload")
			}
			return uc.uow.Bookings().RestoreFields(ctx, b.ID(), before, uc.clock.Now())
		},
	}
}

func (uc *bookingCommandsImpl) reloadStep(id uuid.UUID) saga.Step[*booking.Booking] {
	return saga.Step[*booking.Booking]{
		Name: "load_booking",
		Invoke: func(ctx context.Context) (saga.StepResult[*booking.Booking], error) {
			b, err := uc.uow.Bookings().FindByID(ctx, id)
			if err != nil {
				return saga.StepResult[*booking.Booking]{}, translateReadErr(err, id)
			}
			return saga.StepResult[*booking.Booking]{Value: b}, nil
		},
	}
}

func (uc *bookingCommandsImpl) load(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := uc.uow.Bookings().FindByID(ctx, id)
	if err != nil {
		return nil, translateReadErr(err, id)
	}
	return b, nil
}

func translateReadErr(err error, id uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.AsKind(errs.Wrapf(err, "booking %s", id), errs.KindNotFound)
	}
	return errs.Wrapf(err, "load booking %s", id)
}

func translateWriteErr(err error, tr booking.Transition) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.AsKind(errs.Wrapf(err, "booking %s no longer exists", tr.BookingID), errs.KindNotFound)
	case infra.IsKind(err, infra.KindStale):
		return errs.AsKind(errs.Wrapf(err, "booking %s changed concurrently; expected status %s", tr.BookingID, tr.Guard.Status),
			errs.KindNotAllowed)
	default:
		return errs.Wrapf(err, "write booking %s %s -> %s", tr.BookingID, tr.From, tr.To)
	}
}
