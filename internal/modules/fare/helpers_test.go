package fare

import (
	"math"
	"testing"

	"farebox/internal/modules/rates"
	"farebox/internal/types"
)

// Shared fixtures for the calculator tests. The depot doubles as the ring
// center; one degree of latitude is ~111.2 km.
var (
	testDepot      = types.Point{Lat: 12.7409, Lng: 77.8253}
	testCityCenter = types.Point{Lat: 12.7355, Lng: 77.8320}
	testRefs       = References{Depot: testDepot, CityCenter: testCityCenter}
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func checkTotalConsistency(t *testing.T, b Breakdown) {
	t.Helper()
	sum := b.BaseFare + b.DistanceFare + b.TimeFare + b.SurgeCharges +
		b.DeadheadCharges + b.ExtraKmCharges + b.DriverAllowance +
		b.PlatformFee + b.GSTOnCharges + b.GSTOnPlatformFee
	if !approxEqual(b.TotalFare, math.Round(sum)) {
		t.Errorf("total_fare = %f, want round(%f) = %f", b.TotalFare, sum, math.Round(sum))
	}
}

func checkNonNegative(t *testing.T, b Breakdown) {
	t.Helper()
	components := map[string]float64{
		"base_fare":           b.BaseFare,
		"distance_fare":       b.DistanceFare,
		"time_fare":           b.TimeFare,
		"surge_charges":       b.SurgeCharges,
		"deadhead_charges":    b.DeadheadCharges,
		"extra_km_charges":    b.ExtraKmCharges,
		"driver_allowance":    b.DriverAllowance,
		"platform_fee":        b.PlatformFee,
		"gst_on_charges":      b.GSTOnCharges,
		"gst_on_platform_fee": b.GSTOnPlatformFee,
		"total_fare":          b.TotalFare,
	}
	for name, v := range components {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("component %s = %f, want finite non-negative", name, v)
		}
	}
}

// makeSlab builds the canonical fifteen-band table: coverage 20..300 km in
// 20 km steps, flat fare 400 + 30/km of coverage, 18/km beyond the top band.
func makeSlab() rates.SlabPackage {
	p := rates.SlabPackage{VehicleClass: "sedan", ExtraKmRate: 18}
	for i := 1; i <= 15; i++ {
		coverage := float64(20 * i)
		p.Bands = append(p.Bands, rates.SlabBand{CoverageKm: coverage, Fare: 400 + 30*coverage})
	}
	return p
}
