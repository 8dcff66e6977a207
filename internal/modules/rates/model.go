// README: Rate-card rows for each booking category and vehicle class.
package rates

// Rate is one active fare-configuration row. Category-specific columns are
// zero for categories that do not use them.
type Rate struct {
	Category     string
	VehicleClass string

	BaseFare        float64
	PerKmRate       float64
	SurgeMultiplier float64

	// PlatformFee is only meaningful when HasPlatformFee is true; a NULL or
	// non-positive stored value is surfaced through the flag so calculators
	// can apply their documented fallback and report the bad row.
	PlatformFee    float64
	HasPlatformFee bool

	// Airport transfers: one fixed fare per direction.
	CityToAirportFare float64
	AirportToCityFare float64

	// Outstation per-day pricing.
	DailyKmLimit          float64
	DriverAllowancePerDay float64
}

// RentalPackage is one bookable hourly package for a vehicle class.
type RentalPackage struct {
	Name            string
	IncludedHours   float64
	IncludedKm      float64
	BaseFare        float64
	ExtraKmRate     float64
	ExtraMinuteRate float64
}

// SlabBand is a fixed-price distance band of an outstation slab table.
type SlabBand struct {
	CoverageKm float64 `json:"coverage_km"`
	Fare       float64 `json:"fare"`
}

// SlabPackage is the outstation slab table for a vehicle class: a list of
// bands plus one shared rate for distance beyond the top band.
type SlabPackage struct {
	VehicleClass string
	ExtraKmRate  float64
	Bands        []SlabBand
}
