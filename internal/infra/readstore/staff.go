package readstore

import (
	"context"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/staff"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/dbq"

	"github.com/google/uuid"
)

type StaffRuleQueries interface {
	ListWorkingHours(ctx context.Context, db dbq.DBTX, staffID uuid.UUID) ([]dbq.WorkingHoursRow, error)
	ListTimeOff(ctx context.Context, db dbq.DBTX, staffID uuid.UUID, from, to time.Time) ([]dbq.TimeOffRow, error)
}

type StaffRuleReadStore struct {
	queries StaffRuleQueries
	db      dbq.DBTX
}

func NewStaffRuleReadStore(queries StaffRuleQueries, db dbq.DBTX) *StaffRuleReadStore {
	return &StaffRuleReadStore{
		queries: queries,
		db:      db,
	}
}

// StaffRules loads all working hours of staffID and the time-off ranges that
// touch window.
func (r *StaffRuleReadStore) StaffRules(ctx context.Context, staffID uuid.UUID, window booking.TimeSlot) (staff.Rules, error) {
	hourRows, err := r.queries.ListWorkingHours(ctx, r.db, staffID)
	if err != nil {
		return staff.Rules{}, infra.WrapRepoErr("failed to list working hours", err)
	}
	offRows, err := r.queries.ListTimeOff(ctx, r.db, staffID, window.Start(), window.End())
	if err != nil {
		return staff.Rules{}, infra.WrapRepoErr("failed to list time off", err)
	}

	rules := staff.Rules{
		Hours:   make([]staff.WorkingHours, 0, len(hourRows)),
		TimeOff: make([]staff.TimeOff, 0, len(offRows)),
	}
	for _, row := range hourRows {
		wh, err := staff.NewWorkingHours(row.StaffID, time.Weekday(row.Weekday), int(row.OpensAtMinute), int(row.ClosesAtMinute))
		if err != nil {
			return staff.Rules{}, err
		}
		rules.Hours = append(rules.Hours, wh)
	}
	for _, row := range offRows {
		rules.TimeOff = append(rules.TimeOff, staff.TimeOff{
			StaffID:  row.StaffID,
			StartsAt: row.StartsAt,
			EndsAt:   row.EndsAt,
			Reason:   row.Reason,
		})
	}
	return rules, nil
}
