// README: Hourly rental calculator with cost-minimizing package selection.
package fare

import (
	"math"

	"farebox/internal/modules/rates"
	"farebox/internal/modules/zone"
)

func calculateRental(facts TripFacts, pkgs []rates.RentalPackage, rate rates.Rate, refs References) (Breakdown, Diagnostics) {
	var diags Diagnostics

	// Rentals are billed for the vehicle's journey back to base, so the
	// straight-line return leg is added to the measured distance.
	returnKm := zone.DistanceKm(facts.Dropoff, refs.Depot)
	billableKm := facts.DistanceKm + returnKm

	// Pick the cheapest package for the actual usage, regardless of what was
	// booked: the customer is never charged for a larger package than their
	// usage warrants.
	best := pkgs[0]
	bestCost := rentalCost(pkgs[0], billableKm, facts.DurationMin)
	for _, p := range pkgs[1:] {
		if cost := rentalCost(p, billableKm, facts.DurationMin); cost < bestCost {
			best, bestCost = p, cost
		}
	}

	extraKmCharge := math.Max(0, billableKm-best.IncludedKm) * best.ExtraKmRate
	extraTimeCharge := math.Max(0, facts.DurationMin-best.IncludedHours*60) * best.ExtraMinuteRate

	b := Breakdown{
		BaseFare:       best.BaseFare,
		ExtraKmCharges: extraKmCharge,
		TimeFare:       extraTimeCharge,
		PlatformFee:    platformFee(rate.HasPlatformFee, rate.PlatformFee, defaultPlatformFeeRental, &diags),
		Details: Details{
			DistanceKm:      facts.DistanceKm,
			DurationMin:     facts.DurationMin,
			PerKmRate:       best.ExtraKmRate,
			PerMinuteRate:   best.ExtraMinuteRate,
			PackageName:     best.Name,
			WithinAllowance: extraKmCharge == 0 && extraTimeCharge == 0,
			BillingKm:       billableKm,
			ReturnKm:        returnKm,
		},
	}
	finalize(&b)
	return b, diags
}

func rentalCost(p rates.RentalPackage, billableKm, durationMin float64) float64 {
	return p.BaseFare +
		math.Max(0, billableKm-p.IncludedKm)*p.ExtraKmRate +
		math.Max(0, durationMin-p.IncludedHours*60)*p.ExtraMinuteRate
}
