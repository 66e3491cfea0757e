package readstore

import (
	"context"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/dbq"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ServiceReadQueries interface {
	GetService(ctx context.Context, db dbq.DBTX, id uuid.UUID) (dbq.ServiceRow, error)
}

// ServiceReadStore reads the service catalog and normalizes its deposit and
// payment configuration into a booking.ServiceSpec.
type ServiceReadStore struct {
	queries ServiceReadQueries
	db      dbq.DBTX
}

func NewServiceReadStore(queries ServiceReadQueries, db dbq.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) FindService(ctx context.Context, id uuid.UUID) (booking.ServiceSpec, error) {
	row, err := r.queries.GetService(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return booking.ServiceSpec{}, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return booking.ServiceSpec{}, infra.WrapRepoErr("failed to find service by ID", err)
	}

	return rowToServiceSpec(row)
}

func rowToServiceSpec(row dbq.ServiceRow) (booking.ServiceSpec, error) {
	deposit, err := booking.ParseDepositPolicy(row.DepositType, pgconv.StringPtrFromPgtype(row.DepositValue))
	if err != nil {
		return booking.ServiceSpec{}, err
	}

	categories := make([]booking.PaymentCategory, 0, len(row.PaymentModesAllowed))
	for _, raw := range row.PaymentModesAllowed {
		c, err := booking.ParsePaymentCategory(raw)
		if err != nil {
			return booking.ServiceSpec{}, err
		}
		categories = append(categories, c)
	}

	return booking.ServiceSpec{
		ID:                  row.ID,
		Name:                row.Name,
		Price:               booking.NewMoney(row.PriceAmount),
		CurrencyCode:        row.CurrencyCode,
		Deposit:             deposit,
		PaymentModesAllowed: categories,
	}, nil
}
