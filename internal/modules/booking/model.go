// README: Booking record resolved before invoking the fare engine.
package booking

import (
	"time"

	"farebox/internal/types"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type Booking struct {
	ID           types.ID
	CustomerID   types.ID
	DriverID     types.ID
	Category     string
	VehicleClass string
	TripType     string
	PackageHours float64
	Pickup       types.Point
	Dropoff      types.Point
	ScheduledAt  time.Time
	Status       Status
}

// Completable reports whether a fare may be computed for this booking.
// Completed bookings stay completable so a retried completion can recompute
// the identical breakdown; the idempotent completion write prevents
// duplicate records.
func (b Booking) Completable() bool {
	return b.Status != StatusCancelled
}
