package compliance

import (
	"context"
	"time"
)

// Monitor is the stateless missed-report sweep. Sweep reads a snapshot of open
// sessions and emits one alert per session whose last activity is older than
// the configured deadline. No session state is mutated; one session's anomaly
// never aborts the sweep over the rest.
type Monitor interface {
	Sweep(ctx context.Context, now time.Time) ([]Alert, error)
}

// Notifier delivers alerts to the outside world (email, SMS, push). Delivery
// mechanics and retry policy live behind this interface.
type Notifier interface {
	Notify(ctx context.Context, alert Alert) error
}
