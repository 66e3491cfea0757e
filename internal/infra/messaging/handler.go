package messaging

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/commands"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

type BookingConfirmer interface {
	ConfirmBooking(ctx context.Context, req commands.ConfirmRequest) (*booking.Booking, error)
}

// PaymentHandler turns payment and order events into Confirm calls. Business
// rejections are acknowledged and logged; anything else is returned so the
// router retries and eventually poisons the message.
type PaymentHandler struct {
	confirmer BookingConfirmer
	metrics   *metrics.Booking
	logger    *slog.Logger
	topics    Topics
}

type Topics struct {
	Payment     string
	OrderPlaced string
}

func NewPaymentHandler(confirmer BookingConfirmer, topics Topics, m *metrics.Booking, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{confirmer: confirmer, topics: topics, metrics: m, logger: logger}
}

func (h *PaymentHandler) HandlePaymentCompleted(msg *message.Message) error {
	var evt PaymentCompleted
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		h.metrics.EventsProcessed.WithLabelValues(h.topics.Payment, "malformed").Inc()
		return errs.Wrapf(err, "message %s: invalid payment.completed payload", msg.UUID)
	}

	return h.confirm(msg.Context(), h.topics.Payment, commands.ConfirmRequest{
		BookingID:  evt.BookingID,
		OrderID:    evt.OrderID,
		AmountPaid: evt.AmountPaid,
		Currency:   evt.Currency,
	})
}

func (h *PaymentHandler) HandleOrderPlaced(msg *message.Message) error {
	var evt OrderPlaced
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		h.metrics.EventsProcessed.WithLabelValues(h.topics.OrderPlaced, "malformed").Inc()
		return errs.Wrapf(err, "message %s: invalid order.placed payload", msg.UUID)
	}

	for _, item := range evt.LineItems {
		if item.Metadata.BookingID == nil {
			continue
		}
		err := h.confirm(msg.Context(), h.topics.OrderPlaced, commands.ConfirmRequest{
			BookingID:  *item.Metadata.BookingID,
			OrderID:    evt.OrderID,
			AmountPaid: item.Total(),
			Currency:   evt.Currency,
		})
		if err != nil {
			// Bookings confirmed before the failure are no-ops on redelivery.
			return err
		}
	}
	return nil
}

func (h *PaymentHandler) confirm(ctx context.Context, topic string, req commands.ConfirmRequest) error {
	_, err := h.confirmer.ConfirmBooking(ctx, req)
	if err == nil {
		h.metrics.EventsProcessed.WithLabelValues(topic, "confirmed").Inc()
		return nil
	}

	kind := errs.KindOf(err)
	if kind == errs.KindUnknown {
		h.metrics.EventsProcessed.WithLabelValues(topic, "retry").Inc()
		return err
	}

	h.metrics.EventsProcessed.WithLabelValues(topic, "rejected").Inc()
	h.logger.WarnContext(ctx, "payment event rejected",
		"topic", topic,
		"booking_id", req.BookingID,
		"order_id", req.OrderID,
		"kind", kind,
		"error", err.Error())
	return nil
}
