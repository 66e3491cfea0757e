package booking

import (
	"math"
	"time"

	"salon-booking/internal/pkg/errs"
)

// CanCancel enforces the minimum lead time before start for non-admin
// cancellations. Exactly windowHours away is still allowed.
func CanCancel(isAdmin bool, startAt, now time.Time, windowHours int) error {
	if isAdmin {
		return nil
	}
	hoursUntilStart := startAt.Sub(now).Hours()
	if hoursUntilStart < float64(windowHours) {
		remaining := math.Max(0, math.Floor(hoursUntilStart))
		return errs.NotAllowedf("bookings can only be cancelled at least %d hours before start; %d hours remain",
			windowHours, int64(remaining))
	}
	return nil
}
