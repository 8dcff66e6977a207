// README: Trip facts in, itemized fare breakdown out.
package fare

import (
	"time"

	"farebox/internal/types"
)

// Category selects which calculator and rate schema applies.
type Category string

const (
	CategoryRegular    Category = "regular"
	CategoryRental     Category = "rental"
	CategoryOutstation Category = "outstation"
	CategoryAirport    Category = "airport"
)

// Trip directionality for outstation bookings.
const (
	TripOneWay    = "one_way"
	TripRoundTrip = "round_trip"
)

// TripFacts is the immutable input of one fare calculation, assembled by the
// caller from the booking record and the GPS-derived measurements.
type TripFacts struct {
	BookingID    types.ID
	CustomerID   types.ID
	DriverID     types.ID
	Category     Category
	VehicleClass string
	DistanceKm   float64
	DurationMin  float64
	Pickup       types.Point
	Dropoff      types.Point
	TripType     string  // outstation only
	PackageHours float64 // rental only
	ScheduledAt  time.Time
}

// References are the deployment anchor coordinates injected into the engine.
type References struct {
	Depot      types.Point
	CityCenter types.Point
}

// Details records the calculation provenance that accompanies a breakdown.
type Details struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMin     float64 `json:"duration_min"`
	PerKmRate       float64 `json:"per_km_rate,omitempty"`
	PerMinuteRate   float64 `json:"per_minute_rate,omitempty"`
	SurgeMultiplier float64 `json:"surge_multiplier,omitempty"`
	ZoneName        string  `json:"zone,omitempty"`
	InnerZone       bool    `json:"is_inner_zone,omitempty"`
	Days            int     `json:"days,omitempty"`
	PackageName     string  `json:"package_name,omitempty"`
	WithinAllowance bool    `json:"within_allowance,omitempty"`
	BillingKm       float64 `json:"billing_km,omitempty"`
	ReturnKm        float64 `json:"return_km,omitempty"`
	SlabCoverageKm  float64 `json:"slab_coverage_km,omitempty"`
	Direction       string  `json:"direction,omitempty"`
}

// Breakdown is the complete itemized output of one calculation. Every
// currency component is non-negative; TotalFare is the rounded sum of all
// the others.
type Breakdown struct {
	BaseFare         float64 `json:"base_fare"`
	DistanceFare     float64 `json:"distance_fare"`
	TimeFare         float64 `json:"time_fare"`
	SurgeCharges     float64 `json:"surge_charges"`
	DeadheadCharges  float64 `json:"deadhead_charges"`
	ExtraKmCharges   float64 `json:"extra_km_charges"`
	DriverAllowance  float64 `json:"driver_allowance"`
	PlatformFee      float64 `json:"platform_fee"`
	GSTOnCharges     float64 `json:"gst_on_charges"`
	GSTOnPlatformFee float64 `json:"gst_on_platform_fee"`
	TotalFare        float64 `json:"total_fare"`
	Details          Details `json:"details"`
}
