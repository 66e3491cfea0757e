package commands

import (
	"context"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/settings"

	"github.com/google/uuid"
)

// Write-side ports. Reads needed to decide a command go through these rather
// than the query side.

type ServiceCatalog interface {
	FindService(ctx context.Context, id uuid.UUID) (booking.ServiceSpec, error)
}

type SettingsStore interface {
	Load(ctx context.Context) (settings.BookingSettings, error)
}

type OrderGateway interface {
	// CancelOrder cancels and refunds an external order.
	CancelOrder(ctx context.Context, orderID uuid.UUID, reason string) error
}

type SlotLocker interface {
	// Lock serialises hold attempts for one staff member. The returned func
	// releases the lock.
	Lock(ctx context.Context, staffID uuid.UUID) (func(context.Context) error, error)
}

type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, staffID uuid.UUID, slot booking.TimeSlot, loc *time.Location) (bool, error)
}

// Actor is the caller of a command. UserID is nil for anonymous callers.
type Actor struct {
	UserID  *uuid.UUID
	IsAdmin bool
}
