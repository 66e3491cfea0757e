//go:build unit

package settings_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/settings"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	s := settings.Default()

	assert.Equal(t, 2, s.CancellationWindowHours)
	assert.Equal(t, 10*time.Minute, s.HoldDuration())
	assert.True(t, s.AllowGuestBookings)
	assert.Equal(t, time.UTC, s.Location())
	assert.NoError(t, s.Validate())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*settings.BookingSettings)
		wantErr bool
	}{
		{name: "zero hold duration", mutate: func(s *settings.BookingSettings) { s.DefaultHoldDurationMinutes = 0 }, wantErr: true},
		{name: "negative window", mutate: func(s *settings.BookingSettings) { s.CancellationWindowHours = -1 }, wantErr: true},
		{name: "zero window", mutate: func(s *settings.BookingSettings) { s.CancellationWindowHours = 0 }},
		{name: "unknown timezone", mutate: func(s *settings.BookingSettings) { s.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "named timezone", mutate: func(s *settings.BookingSettings) { s.Timezone = "Europe/Berlin" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := settings.Default()
			tc.mutate(&s)
			if tc.wantErr {
				assert.Error(t, s.Validate())
			} else {
				assert.NoError(t, s.Validate())
			}
		})
	}
}

func TestLocationFallback(t *testing.T) {
	s := settings.Default()
	s.Timezone = "Nowhere/Nothing"
	assert.Equal(t, time.UTC, s.Location())
}
