package settings

import (
	"time"

	"salon-booking/internal/pkg/errs"
)

const (
	DefaultCancellationWindowHours = 2
	DefaultHoldDurationMinutes     = 10
	DefaultTimezone                = "UTC"
	maxHoldDurationMinutes         = 24 * 60
	maxCancellationWindowHours     = 24 * 30
)

// BookingSettings is loaded once per saga invocation and passed explicitly.
type BookingSettings struct {
	CancellationWindowHours    int
	DefaultHoldDurationMinutes int
	AllowGuestBookings         bool
	Timezone                   string
}

func Default() BookingSettings {
	return BookingSettings{
		CancellationWindowHours:    DefaultCancellationWindowHours,
		DefaultHoldDurationMinutes: DefaultHoldDurationMinutes,
		AllowGuestBookings:         true,
		Timezone:                   DefaultTimezone,
	}
}

func (s BookingSettings) Validate() error {
	if s.CancellationWindowHours < 0 || s.CancellationWindowHours > maxCancellationWindowHours {
		return errs.InvalidDataf("cancellation_window_hours %d out of range", s.CancellationWindowHours)
	}
	if s.DefaultHoldDurationMinutes <= 0 || s.DefaultHoldDurationMinutes > maxHoldDurationMinutes {
		return errs.InvalidDataf("default_hold_duration_minutes %d out of range", s.DefaultHoldDurationMinutes)
	}
	if _, err := time.LoadLocation(s.timezone()); err != nil {
		return errs.InvalidDataf("unknown timezone %q", s.Timezone)
	}
	return nil
}

func (s BookingSettings) HoldDuration() time.Duration {
	return time.Duration(s.DefaultHoldDurationMinutes) * time.Minute
}

// Location falls back to UTC when the timezone is empty or unknown.
func (s BookingSettings) Location() *time.Location {
	loc, err := time.LoadLocation(s.timezone())
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s BookingSettings) timezone() string {
	if s.Timezone == "" {
		return DefaultTimezone
	}
	return s.Timezone
}
