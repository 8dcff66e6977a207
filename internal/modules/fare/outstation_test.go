package fare

import (
	"testing"

	"farebox/internal/modules/rates"
)

func outstationRate() rates.Rate {
	return rates.Rate{
		Category:              string(CategoryOutstation),
		VehicleClass:          "sedan",
		BaseFare:              200,
		PerKmRate:             13,
		DailyKmLimit:          120,
		DriverAllowancePerDay: 300,
		PlatformFee:           10,
		HasPlatformFee:        true,
	}
}

func outstationFacts(distanceKm, durationMin float64, tripType string) TripFacts {
	return TripFacts{
		BookingID:    "bk-3",
		Category:     CategoryOutstation,
		VehicleClass: "sedan",
		DistanceKm:   distanceKm,
		DurationMin:  durationMin,
		TripType:     tripType,
	}
}

func TestCalculateOutstation_OneWayDoubling(t *testing.T) {
	slab := makeSlab()
	// GPS captured 50 km one leg; billing distance is 100 km.
	b, _ := calculateOutstation(outstationFacts(50, 120, TripOneWay), outstationRate(), &slab)

	if b.Details.BillingKm != 100 {
		t.Fatalf("BillingKm = %f, want 100", b.Details.BillingKm)
	}
	// Band covering 100 km: fare 400 + 30*100 = 3400, no overage.
	if !approxEqual(b.DistanceFare, 3400) {
		t.Errorf("DistanceFare = %f, want 3400", b.DistanceFare)
	}
	if b.ExtraKmCharges != 0 {
		t.Errorf("ExtraKmCharges = %f, want 0", b.ExtraKmCharges)
	}
	checkTotalConsistency(t, b)
}

func TestCalculateOutstation_OneWayPerKmFallback(t *testing.T) {
	b, diags := calculateOutstation(outstationFacts(50, 120, TripOneWay), outstationRate(), nil)

	if b.BaseFare != 200 {
		t.Errorf("BaseFare = %f, want 200", b.BaseFare)
	}
	// 100 km billed at 13/km.
	if !approxEqual(b.DistanceFare, 1300) {
		t.Errorf("DistanceFare = %f, want 1300", b.DistanceFare)
	}
	if !hasDiag(diags, CodeSlabFallback) {
		t.Errorf("expected %s diagnostic, got %v", CodeSlabFallback, diags)
	}
	checkTotalConsistency(t, b)
}

func TestCalculateOutstation_RoundTripSameDaySlab(t *testing.T) {
	slab := makeSlab()
	// Same-day round trip within 300 km: slab on the measured distance,
	// no doubling.
	b, _ := calculateOutstation(outstationFacts(250, 600, TripRoundTrip), outstationRate(), &slab)

	if b.Details.BillingKm != 250 {
		t.Fatalf("BillingKm = %f, want 250 (no doubling)", b.Details.BillingKm)
	}
	// Band covering 260 km: 400 + 30*260 = 8200.
	if !approxEqual(b.DistanceFare, 8200) {
		t.Errorf("DistanceFare = %f, want 8200", b.DistanceFare)
	}
	if b.Details.Days != 1 {
		t.Errorf("Days = %d, want 1", b.Details.Days)
	}
}

func TestCalculateOutstation_RoundTripAllowancePaidInFull(t *testing.T) {
	// 1 day, 100 km against a 120 km daily limit: full allowance billed.
	b, _ := calculateOutstation(outstationFacts(100, 600, TripRoundTrip), outstationRate(), nil)

	if !approxEqual(b.DistanceFare, 120*13) {
		t.Errorf("DistanceFare = %f, want %f (full allowance)", b.DistanceFare, 120*13.0)
	}
	if !b.Details.WithinAllowance {
		t.Error("WithinAllowance = false, want true")
	}
	if !approxEqual(b.DriverAllowance, 300) {
		t.Errorf("DriverAllowance = %f, want 300", b.DriverAllowance)
	}
	checkTotalConsistency(t, b)
}

func TestCalculateOutstation_RoundTripOverage(t *testing.T) {
	// 30h -> 2 days, 300 km > 240 km allowance: actual distance billed.
	b, _ := calculateOutstation(outstationFacts(300, 30*60, TripRoundTrip), outstationRate(), nil)

	if b.Details.Days != 2 {
		t.Fatalf("Days = %d, want 2", b.Details.Days)
	}
	if !approxEqual(b.DistanceFare, 300*13) {
		t.Errorf("DistanceFare = %f, want %f", b.DistanceFare, 300*13.0)
	}
	if b.Details.WithinAllowance {
		t.Error("WithinAllowance = true, want false")
	}
	if !approxEqual(b.DriverAllowance, 600) {
		t.Errorf("DriverAllowance = %f, want 600 for 2 days", b.DriverAllowance)
	}
}

func TestCalculateOutstation_MultiDaySkipsSlab(t *testing.T) {
	slab := makeSlab()
	// 2 days forces the per-day path even with a slab configured.
	b, _ := calculateOutstation(outstationFacts(200, 30*60, TripRoundTrip), outstationRate(), &slab)

	// Within 240 km allowance: 240*13 = 3120.
	if !approxEqual(b.DistanceFare, 3120) {
		t.Errorf("DistanceFare = %f, want 3120", b.DistanceFare)
	}
	if b.Details.SlabCoverageKm != 0 {
		t.Errorf("slab band recorded on per-day path: %f", b.Details.SlabCoverageKm)
	}
}

func TestCalculateOutstation_BeyondTopSlabBand(t *testing.T) {
	slab := makeSlab()
	// One-way 170 km -> billing 340 km, past the 300 km top band.
	b, _ := calculateOutstation(outstationFacts(170, 8*60, TripOneWay), outstationRate(), &slab)

	if b.Details.SlabCoverageKm != 300 {
		t.Fatalf("SlabCoverageKm = %f, want top band 300", b.Details.SlabCoverageKm)
	}
	// Top band fare 400 + 30*300 = 9400 plus 40 km at the slab's 18/km.
	if !approxEqual(b.DistanceFare, 9400) {
		t.Errorf("DistanceFare = %f, want 9400", b.DistanceFare)
	}
	if !approxEqual(b.ExtraKmCharges, 40*18) {
		t.Errorf("ExtraKmCharges = %f, want %f", b.ExtraKmCharges, 40*18.0)
	}
}

func TestCalculateOutstation_DaysCeiling(t *testing.T) {
	tests := []struct {
		durationMin float64
		wantDays    int
	}{
		{0, 1},
		{600, 1},     // 10h
		{24 * 60, 1}, // exactly one day
		{25 * 60, 2}, // just past one day
		{49 * 60, 3}, // just past two days
	}
	for _, tt := range tests {
		b, _ := calculateOutstation(outstationFacts(500, tt.durationMin, TripRoundTrip), outstationRate(), nil)
		if b.Details.Days != tt.wantDays {
			t.Errorf("duration %f min: Days = %d, want %d", tt.durationMin, b.Details.Days, tt.wantDays)
		}
	}
}
