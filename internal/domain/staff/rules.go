package staff

import (
	"time"

	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// WorkingHours is one opening window on a weekday, as minutes after local
// midnight. Close may equal 24*60.
type WorkingHours struct {
	StaffID  uuid.UUID
	Weekday  time.Weekday
	OpensAt  int
	ClosesAt int
}

func NewWorkingHours(staffID uuid.UUID, weekday time.Weekday, opensAt, closesAt int) (WorkingHours, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return WorkingHours{}, errs.InvalidDataf("weekday %d out of range", weekday)
	}
	if opensAt < 0 || closesAt > 24*60 || opensAt >= closesAt {
		return WorkingHours{}, errs.InvalidDataf("working hours %d-%d are not a valid window", opensAt, closesAt)
	}
	return WorkingHours{StaffID: staffID, Weekday: weekday, OpensAt: opensAt, ClosesAt: closesAt}, nil
}

type TimeOff struct {
	StaffID  uuid.UUID
	StartsAt time.Time
	EndsAt   time.Time
	Reason   string
}

// Rules is everything that constrains one staff member's calendar apart from
// existing bookings.
type Rules struct {
	Hours   []WorkingHours
	TimeOff []TimeOff
}

// Permits reports whether [start, end) fits a single working-hours window of
// its local weekday and misses every time-off range. Staff without any
// working-hours rows are treated as always open.
func (r Rules) Permits(start, end time.Time, loc *time.Location) bool {
	for _, off := range r.TimeOff {
		if start.Before(off.EndsAt) && off.StartsAt.Before(end) {
			return false
		}
	}
	if len(r.Hours) == 0 {
		return true
	}
	if loc == nil {
		loc = time.UTC
	}

	ls, le := start.In(loc), end.In(loc)
	for _, h := range r.Hours {
		if h.Weekday != ls.Weekday() {
			continue
		}
		opens := wallClock(ls, h.OpensAt, loc)
		closes := wallClock(ls, h.ClosesAt, loc)
		if !ls.Before(opens) && !le.After(closes) {
			return true
		}
	}
	return false
}

// wallClock is the instant minutes after midnight on day's local date, read
// off the wall clock so DST shifts do not move it. 24*60 is the next midnight.
func wallClock(day time.Time, minutes int, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, loc)
}
