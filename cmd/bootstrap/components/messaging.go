package components

import (
	"context"
	"log/slog"

	"salon-booking/internal/infra/messaging"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Invoke(StartEventConsumers),
)

// StartEventConsumers subscribes to payment and order events when a broker is
// configured.
func StartEventConsumers(
	lc fx.Lifecycle,
	cfg config.Config,
	cmds commands.BookingCommands,
	m *metrics.Booking,
	logger *slog.Logger,
) error {
	if !cfg.Broker.Enabled {
		logger.Info("event consumers disabled")
		return nil
	}

	wmLogger := messaging.NewLogger(logger)
	sub, pub, err := messaging.NewAMQPPubSub(cfg.Broker, wmLogger)
	if err != nil {
		return err
	}

	h := messaging.NewPaymentHandler(cmds, messaging.Topics{
		Payment:     cfg.Broker.PaymentTopic,
		OrderPlaced: cfg.Broker.OrderPlacedTopic,
	}, m, logger)

	router, err := messaging.NewRouter(cfg.Broker, sub, pub, h, wmLogger)
	if err != nil {
		_ = sub.Close()
		_ = pub.Close()
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := router.Run(context.Background()); err != nil {
					logger.Error("event router stopped", "error", err)
				}
			}()
			logger.Info("event consumers started",
				"payment_topic", cfg.Broker.PaymentTopic,
				"order_topic", cfg.Broker.OrderPlacedTopic)
			return nil
		},
		OnStop: func(_ context.Context) error {
			err := router.Close()
			_ = pub.Close()
			_ = sub.Close()
			return err
		},
	})
	return nil
}
