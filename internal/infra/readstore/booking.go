package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/dbq"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db dbq.DBTX, id uuid.UUID) (dbq.BookingRow, error)
	ListBookings(ctx context.Context, db dbq.DBTX, arg dbq.ListBookingsParams) ([]dbq.BookingRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      dbq.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db dbq.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return rowToBookingView(row)
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter, after *queries.Keyset, limit int) ([]*queries.BookingView, error) {
	params := dbq.ListBookingsParams{
		StaffID:    pgconv.UUIDPtrToPgtype(filter.StaffID),
		CustomerID: pgconv.UUIDPtrToPgtype(filter.CustomerID),
		From:       pgconv.TimePtrToPgtype(filter.From),
		To:         pgconv.TimePtrToPgtype(filter.To),
		Limit:      int32(limit), // #nosec G115 -- bounded by queries.MaxListLimit
	}
	if filter.Status != nil {
		params.Status = pgconv.StringToPgtype(filter.Status.String())
	}
	if after != nil {
		params.AfterStart = pgconv.TimeToPgtype(after.StartAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListBookings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := rowToBookingView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func rowToBookingView(row dbq.BookingRow) (*queries.BookingView, error) {
	var metadata map[string]any
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &metadata); err != nil {
			return nil, infra.WrapRepoErr("invalid booking metadata", err)
		}
	}

	return &queries.BookingView{
		ID:            row.ID,
		DisplayNumber: row.DisplayNumber,
		StaffID:       row.StaffID,
		ServiceID:     row.ServiceID,
		CustomerID:    pgconv.UUIDPtrFromPgtype(row.CustomerID),
		StartAt:       row.StartAt,
		EndAt:         row.EndAt,
		Status:        row.Status,
		HoldExpiresAt: pgconv.TimePtrFromPgtype(row.HoldExpiresAt),
		ServiceName:   row.ServiceName,
		PriceAmount:   row.PriceAmount,
		CurrencyCode:  row.CurrencyCode,
		DepositAmount: row.DepositAmount,
		PaymentMode:   row.PaymentMode,
		AmountPaid:    row.AmountPaid,
		CustomerEmail: pgconv.StringPtrFromPgtype(row.CustomerEmail),
		CustomerPhone: pgconv.StringPtrFromPgtype(row.CustomerPhone),
		CustomerName:  pgconv.StringPtrFromPgtype(row.CustomerName),
		OrderID:       pgconv.UUIDPtrFromPgtype(row.OrderID),
		ConfirmedAt:   pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		CancelledAt:   pgconv.TimePtrFromPgtype(row.CancelledAt),
		CompletedAt:   pgconv.TimePtrFromPgtype(row.CompletedAt),
		Notes:         row.Notes,
		InternalNotes: row.InternalNotes,
		Metadata:      metadata,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}
