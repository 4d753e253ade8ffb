package points

import (
	"time"

	"loyalty-ledger/internal/pkg/clock"
)

// WindowDays is how long purchase points stay valid.
const WindowDays = 180

// Cutoff is the earliest purchase date still counted as of asOf. Purchases
// dated before it are ignored when summing, never removed.
func Cutoff(asOf time.Time) time.Time {
	return clock.Today(asOf).AddDate(0, 0, -WindowDays)
}
