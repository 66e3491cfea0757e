//go:build unit

package staff_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/staff"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHours(t *testing.T, id uuid.UUID, day time.Weekday, opens, closes int) staff.WorkingHours {
	t.Helper()
	h, err := staff.NewWorkingHours(id, day, opens, closes)
	require.NoError(t, err)
	return h
}

func TestRules_Permits(t *testing.T) {
	id := uuid.New()
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 2030-06-03 is a Monday.
	monday := func(h, m int) time.Time { return time.Date(2030, 6, 3, h, m, 0, 0, berlin) }

	rules := staff.Rules{
		Hours: []staff.WorkingHours{
			mustHours(t, id, time.Monday, 9*60, 12*60),
			mustHours(t, id, time.Monday, 13*60, 18*60),
		},
		TimeOff: []staff.TimeOff{
			{StaffID: id, StartsAt: monday(16, 0), EndsAt: monday(17, 0)},
		},
	}

	testCases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{name: "inside morning window", start: monday(10, 0), end: monday(10, 30), want: true},
		{name: "touching window edges", start: monday(9, 0), end: monday(12, 0), want: true},
		{name: "spanning lunch break", start: monday(11, 30), end: monday(13, 30)},
		{name: "before opening", start: monday(8, 30), end: monday(9, 30)},
		{name: "overlapping time off", start: monday(15, 30), end: monday(16, 30)},
		{name: "ending when time off starts", start: monday(15, 30), end: monday(16, 0), want: true},
		{name: "starting when time off ends", start: monday(17, 0), end: monday(17, 30), want: true},
		{name: "tuesday has no window", start: monday(10, 0).AddDate(0, 0, 1), end: monday(10, 30).AddDate(0, 0, 1)},
		{name: "utc input converted to local", start: monday(10, 0).UTC(), end: monday(11, 0).UTC(), want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rules.Permits(tc.start, tc.end, berlin))
		})
	}
}

func TestRules_Permits_DaylightSavingDays(t *testing.T) {
	id := uuid.New()
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	rules := staff.Rules{Hours: []staff.WorkingHours{
		mustHours(t, id, time.Sunday, 9*60, 17*60),
		mustHours(t, id, time.Saturday, 20*60, 24*60),
	}}

	// Clocks go forward on 2030-03-31 and back on 2030-10-27, both Sundays.
	at := func(month time.Month, day, h, m int) time.Time { return time.Date(2030, month, day, h, m, 0, 0, paris) }

	testCases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{name: "spring forward at opening", start: at(3, 31, 9, 0), end: at(3, 31, 9, 30), want: true},
		{name: "spring forward before closing", start: at(3, 31, 16, 30), end: at(3, 31, 17, 0), want: true},
		{name: "spring forward after closing", start: at(3, 31, 17, 0), end: at(3, 31, 17, 30)},
		{name: "fall back at opening", start: at(10, 27, 9, 0), end: at(10, 27, 9, 30), want: true},
		{name: "fall back before closing", start: at(10, 27, 16, 30), end: at(10, 27, 17, 0), want: true},
		{name: "fall back before opening", start: at(10, 27, 8, 30), end: at(10, 27, 9, 0)},
		{name: "window closing at midnight", start: at(3, 30, 23, 0), end: at(3, 31, 0, 0), want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rules.Permits(tc.start, tc.end, paris))
		})
	}
}

func TestRules_NoWorkingHoursIsAlwaysOpen(t *testing.T) {
	start := time.Date(2030, 6, 9, 3, 0, 0, 0, time.UTC)
	assert.True(t, staff.Rules{}.Permits(start, start.Add(time.Hour), time.UTC))

	off := staff.Rules{TimeOff: []staff.TimeOff{{StartsAt: start, EndsAt: start.Add(24 * time.Hour)}}}
	assert.False(t, off.Permits(start.Add(time.Hour), start.Add(2*time.Hour), nil))
}

func TestNewWorkingHours(t *testing.T) {
	_, err := staff.NewWorkingHours(uuid.New(), time.Monday, 18*60, 9*60)
	require.Error(t, err)
	assert.Equal(t, errs.KindInvalidData, errs.KindOf(err))

	_, err = staff.NewWorkingHours(uuid.New(), time.Weekday(9), 0, 60)
	assert.Error(t, err)

	h, err := staff.NewWorkingHours(uuid.New(), time.Sunday, 0, 24*60)
	require.NoError(t, err)
	assert.Equal(t, 24*60, h.ClosesAt)
}
