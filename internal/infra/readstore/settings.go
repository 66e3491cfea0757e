package readstore

import (
	"context"

	"salon-booking/internal/domain/settings"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/dbq"
	"salon-booking/internal/pkg/pgconv"
)

type SettingsReadQueries interface {
	GetBookingSettings(ctx context.Context, db dbq.DBTX) (dbq.BookingSettingsRow, error)
}

type SettingsReadStore struct {
	queries SettingsReadQueries
	db      dbq.DBTX
}

func NewSettingsReadStore(queries SettingsReadQueries, db dbq.DBTX) *SettingsReadStore {
	return &SettingsReadStore{
		queries: queries,
		db:      db,
	}
}

// Load returns the defaults when the settings row has not been written yet.
func (r *SettingsReadStore) Load(ctx context.Context) (settings.BookingSettings, error) {
	row, err := r.queries.GetBookingSettings(ctx, r.db)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return settings.Default(), nil
		}
		return settings.BookingSettings{}, infra.WrapRepoErr("failed to load booking settings", err)
	}

	s := settings.BookingSettings{
		CancellationWindowHours:    int(row.CancellationWindowHours),
		DefaultHoldDurationMinutes: int(row.DefaultHoldDurationMinutes),
		AllowGuestBookings:         row.AllowGuestBookings,
		Timezone:                   row.Timezone,
	}
	if err := s.Validate(); err != nil {
		return settings.BookingSettings{}, err
	}
	return s, nil
}
