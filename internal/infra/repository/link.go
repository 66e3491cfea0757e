package repository

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/dbq"

	"github.com/google/uuid"
)

type LinkWriteQueries interface {
	InsertCustomerLink(ctx context.Context, db dbq.DBTX, customerID, bookingID uuid.UUID) error
	DeleteCustomerLink(ctx context.Context, db dbq.DBTX, customerID, bookingID uuid.UUID) error
	InsertOrderLink(ctx context.Context, db dbq.DBTX, orderID, bookingID uuid.UUID) error
}

// LinkRepository maintains the customer and order join tables. Inserts are
// idempotent so redelivered events and retried saga steps are harmless.
type LinkRepository struct {
	queries LinkWriteQueries
	db      dbq.DBTX
}

func NewLinkRepository(queries LinkWriteQueries, db dbq.DBTX) *LinkRepository {
	return &LinkRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LinkRepository) LinkCustomer(ctx context.Context, customerID, bookingID uuid.UUID) error {
	if err := r.queries.InsertCustomerLink(ctx, r.db, customerID, bookingID); err != nil {
		return infra.WrapRepoErr("failed to link customer", err)
	}
	return nil
}

func (r *LinkRepository) UnlinkCustomer(ctx context.Context, customerID, bookingID uuid.UUID) error {
	if err := r.queries.DeleteCustomerLink(ctx, r.db, customerID, bookingID); err != nil {
		return infra.WrapRepoErr("failed to unlink customer", err)
	}
	return nil
}

func (r *LinkRepository) LinkOrder(ctx context.Context, orderID, bookingID uuid.UUID) error {
	if err := r.queries.InsertOrderLink(ctx, r.db, orderID, bookingID); err != nil {
		return infra.WrapRepoErr("failed to link order", err)
	}
	return nil
}
