package components

import (
	"salon-booking/internal/infra/lock"
	"salon-booking/internal/infra/order"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/availability"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/reaper"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		availability.NewChecker,
		fx.As(new(commands.AvailabilityChecker)),
	),
	NewOrderGateway,
	NewSlotLocker,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		reaper.New,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewOrderGateway(cfg config.Config, m *metrics.Booking) commands.OrderGateway {
	return order.NewClient(cfg.Order, m)
}

// NewSlotLocker falls back to a no-op when Redis locking is switched off; the
// exclusion constraint still rejects double bookings.
func NewSlotLocker(cfg config.Config, client redis.UniversalClient) commands.SlotLocker {
	if !cfg.Lock.Enabled {
		return lock.NoopLocker{}
	}
	return lock.NewRedisStaffLocker(client, cfg.Lock)
}
