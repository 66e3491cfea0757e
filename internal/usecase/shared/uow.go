package shared

import (
	"context"
	"time"

	"salon-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Bookings and Links run each statement in its own implicit transaction;
	// saga steps use these so every step commits on its own.
	Bookings() BookingRepository
	Links() LinkRepository
}

type Tx interface {
	Bookings() BookingRepository
	Links() LinkRepository
}

type BookingRepository interface {
	// Create inserts a held booking and returns it with storage-assigned
	// identity. Overlap with a blocking booking fails with KindConflict.
	Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// ApplyTransition writes tr.Changes only if tr.Guard still holds.
	// No matching row fails with KindStale, or KindNotFound if the row is gone.
	ApplyTransition(ctx context.Context, tr booking.Transition, now time.Time) error
	// RestoreFields writes a before-snapshot back verbatim.
	RestoreFields(ctx context.Context, id uuid.UUID, before booking.Changes, now time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type LinkRepository interface {
	LinkCustomer(ctx context.Context, customerID, bookingID uuid.UUID) error
	UnlinkCustomer(ctx context.Context, customerID, bookingID uuid.UUID) error
	LinkOrder(ctx context.Context, orderID, bookingID uuid.UUID) error
}
