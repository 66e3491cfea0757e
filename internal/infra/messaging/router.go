package messaging

import (
	"log/slog"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// NewAMQPPubSub opens a durable-queue subscriber for the event topics and a
// publisher used for the poison queue.
func NewAMQPPubSub(cfg config.BrokerConfig, logger watermill.LoggerAdapter) (message.Subscriber, message.Publisher, error) {
	amqpConfig := amqp.NewDurableQueueConfig(cfg.AMQPURL)

	sub, err := amqp.NewSubscriber(amqpConfig, logger)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create amqp subscriber")
	}
	pub, err := amqp.NewPublisher(amqpConfig, logger)
	if err != nil {
		_ = sub.Close()
		return nil, nil, errs.Wrap(err, "failed to create amqp publisher")
	}
	return sub, pub, nil
}

func NewLogger(logger *slog.Logger) watermill.LoggerAdapter {
	return watermill.NewSlogLogger(logger)
}

// NewRouter wires both event handlers. Middleware order, outermost first:
// poison queue, retry with backoff, panic recovery.
func NewRouter(
	cfg config.BrokerConfig,
	sub message.Subscriber,
	pub message.Publisher,
	handler *PaymentHandler,
	logger watermill.LoggerAdapter,
) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create message router")
	}

	poison, err := middleware.PoisonQueue(pub, cfg.PoisonTopic)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create poison queue middleware")
	}

	router.AddMiddleware(
		poison,
		middleware.Retry{
			MaxRetries:      cfg.MaxRetries,
			InitialInterval: cfg.RetryInitialPeriod,
			Multiplier:      2,
			Logger:          logger,
		}.Middleware,
		middleware.Recoverer,
	)

	router.AddNoPublisherHandler("booking.confirm_on_payment", cfg.PaymentTopic, sub, handler.HandlePaymentCompleted)
	router.AddNoPublisherHandler("booking.confirm_on_order", cfg.OrderPlacedTopic, sub, handler.HandleOrderPlaced)

	return router, nil
}
