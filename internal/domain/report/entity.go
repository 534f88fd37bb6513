package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusReport is an append-only liveness report filed against an open
// attendance session. Reports are never mutated or deleted.
type StatusReport struct {
	ID        string
	SessionID string
	Content   string
	Latitude  decimal.Decimal
	Longitude decimal.Decimal

	// DistanceFromCheckInMeters is derived from the session's check-in point
	// at write time.
	DistanceFromCheckInMeters float64

	CreatedAt time.Time
}
