package repository

import (
	"context"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/dbq"
	"salon-booking/internal/infra/repository/converter"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, db dbq.DBTX, arg dbq.InsertBookingParams) (dbq.InsertBookingRow, error)
	GetBookingByID(ctx context.Context, db dbq.DBTX, id uuid.UUID) (dbq.BookingRow, error)
	BookingExists(ctx context.Context, db dbq.DBTX, id uuid.UUID) (bool, error)
	UpdateBookingFields(ctx context.Context, db dbq.DBTX, arg dbq.UpdateBookingFieldsParams) (int64, error)
	DeleteBooking(ctx context.Context, db dbq.DBTX, id uuid.UUID) (int64, error)
	ListBlockingSlots(ctx context.Context, db dbq.DBTX, staffID uuid.UUID, from, to time.Time) ([]dbq.SlotRow, error)
	ListExpiredHoldIDs(ctx context.Context, db dbq.DBTX, now time.Time) ([]uuid.UUID, error)
	DeleteExpiredHolds(ctx context.Context, db dbq.DBTX, ids []uuid.UUID, now time.Time) ([]uuid.UUID, error)
}

// BookingRepository serves the write side, the availability pre-check and the
// hold reaper from the bookings table.
type BookingRepository struct {
	queries BookingWriteQueries
	db      dbq.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db dbq.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	params, err := converter.BookingToInfra(b)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err)
	}

	row, err := r.queries.InsertBooking(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return b.WithIdentity(b.ID(), row.DisplayNumber, row.CreatedAt), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err)
	}
	return b, nil
}

func (r *BookingRepository) ApplyTransition(ctx context.Context, tr booking.Transition, now time.Time) error {
	guard := tr.Guard
	params, err := converter.ChangesToParams(tr.BookingID, tr.Changes, &guard, now)
	if err != nil {
		return infra.WrapRepoErr("failed to convert transition", err)
	}

	affected, err := r.queries.UpdateBookingFields(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected > 0 {
		return nil
	}
	return r.missOrStale(ctx, tr.BookingID, "booking changed since it was read")
}

func (r *BookingRepository) RestoreFields(ctx context.Context, id uuid.UUID, before booking.Changes, now time.Time) error {
	params, err := converter.ChangesToParams(id, before, nil, now)
	if err != nil {
		return infra.WrapRepoErr("failed to convert restored fields", err)
	}

	affected, err := r.queries.UpdateBookingFields(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to restore booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete is idempotent: a missing row is not an error.
func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.queries.DeleteBooking(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	return nil
}

func (r *BookingRepository) ListBlockingSlots(ctx context.Context, staffID uuid.UUID, window booking.TimeSlot) ([]booking.TimeSlot, error) {
	rows, err := r.queries.ListBlockingSlots(ctx, r.db, staffID, window.Start(), window.End())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking bookings", err)
	}

	slots := make([]booking.TimeSlot, 0, len(rows))
	for _, row := range rows {
		slot, err := booking.NewTimeSlot(row.StartAt, row.EndAt)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking slot", err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func (r *BookingRepository) ListExpiredHolds(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.ListExpiredHoldIDs(ctx, r.db, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired holds", err)
	}
	return ids, nil
}

func (r *BookingRepository) DeleteExpiredHolds(ctx context.Context, ids []uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	deleted, err := r.queries.DeleteExpiredHolds(ctx, r.db, ids, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete expired holds", err)
	}
	return deleted, nil
}

func (r *BookingRepository) missOrStale(ctx context.Context, id uuid.UUID, msg string) error {
	exists, err := r.queries.BookingExists(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to check booking", err)
	}
	if !exists {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, nil, infra.KindStale)
}
