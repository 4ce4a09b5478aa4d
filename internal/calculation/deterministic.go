package calculation

import (
	"time"

	"github.com/caportal/prorate-calculator/pkg/dateutil"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// Today returns the current UTC calendar day.
func Today() time.Time { return dateutil.Today(nowFunc) }
