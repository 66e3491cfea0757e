package commands

import (
	"context"
	"strings"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// ConfirmBooking is driven by payment completion. Status change and order link
// commit together; there is no business-level rollback once money moved.
func (uc *bookingCommandsImpl) ConfirmBooking(ctx context.Context, req ConfirmRequest) (*booking.Booking, error) {
	now := uc.clock.Now()
	var (
		confirmed  *booking.Booking
		redelivery bool
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, req.BookingID)
		if err != nil {
			return translateReadErr(err, req.BookingID)
		}

		if isRedelivery(b, req.OrderID) {
			confirmed, redelivery = b, true
			return nil
		}
		if req.Currency != "" && !strings.EqualFold(req.Currency, b.Commercial().CurrencyCode) {
			return errs.InvalidDataf("payment for booking %s is in %s, booking is priced in %s",
				b.ID(), req.Currency, b.Commercial().CurrencyCode)
		}

		tr, err := b.Confirm(now, booking.NewMoney(req.AmountPaid), req.OrderID)
		if err != nil {
			return err
		}
		if err := tx.Bookings().ApplyTransition(ctx, tr, now); err != nil {
			return translateWriteErr(err, tr)
		}
		if req.OrderID != uuid.Nil {
			if err := tx.Links().LinkOrder(ctx, req.OrderID, b.ID()); err != nil {
				return errs.Wrapf(err, "link order %s to booking %s", req.OrderID, b.ID())
			}
		}
		confirmed = b.Apply(tr.Changes, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if redelivery {
		uc.logger.Info("payment redelivered for confirmed booking", "booking_id", confirmed.ID(), "order_id", req.OrderID)
		return confirmed, nil
	}
	uc.metrics.Transitions.WithLabelValues(string(booking.StatusConfirmed)).Inc()
	uc.logger.Info("booking confirmed",
		"booking_id", confirmed.ID(),
		"order_id", req.OrderID,
		"amount_paid", confirmed.Commercial().AmountPaid.Amount())
	return confirmed, nil
}

func isRedelivery(b *booking.Booking, orderID uuid.UUID) bool {
	return b.Status() == booking.StatusConfirmed &&
		orderID != uuid.Nil &&
		b.OrderID() != nil && *b.OrderID() == orderID
}
