// README: Multi-day outstation calculator with slab and per-day allowance paths.
package fare

import (
	"math"

	"farebox/internal/modules/rates"
)

// sameDaySlabLimitKm caps the round-trip slab shortcut: a same-day round
// trip within this distance is priced off the slab table directly.
const sameDaySlabLimitKm = 300.0

func calculateOutstation(facts TripFacts, rate rates.Rate, slab *rates.SlabPackage) (Breakdown, Diagnostics) {
	var diags Diagnostics

	days := int(math.Ceil(facts.DurationMin / 60 / 24))
	if days < 1 {
		days = 1
	}

	b := Breakdown{
		DriverAllowance: float64(days) * rate.DriverAllowancePerDay,
		PlatformFee:     platformFee(rate.HasPlatformFee, rate.PlatformFee, defaultPlatformFeeOutstation, &diags),
		Details: Details{
			DistanceKm:  facts.DistanceKm,
			DurationMin: facts.DurationMin,
			PerKmRate:   rate.PerKmRate,
			Days:        days,
			Direction:   facts.TripType,
		},
	}

	if facts.TripType == TripOneWay {
		// The driver returns empty, so the customer is billed for both legs
		// even though GPS only captured one.
		billingKm := facts.DistanceKm * 2
		b.Details.BillingKm = billingKm
		if slab != nil {
			applySlab(&b, slab, billingKm)
		} else {
			diags.add(LevelInfo, CodeSlabFallback, "no slab table configured, pricing one-way trip per km")
			b.BaseFare = rate.BaseFare
			b.DistanceFare = billingKm * rate.PerKmRate
		}
	} else {
		b.Details.BillingKm = facts.DistanceKm
		if days == 1 && facts.DistanceKm <= sameDaySlabLimitKm && slab != nil {
			// GPS already captured both legs of a same-day round trip: the
			// slab is applied to the measured distance, no doubling.
			applySlab(&b, slab, facts.DistanceKm)
		} else {
			allowanceKm := rate.DailyKmLimit * float64(days)
			b.Details.WithinAllowance = facts.DistanceKm <= allowanceKm
			if b.Details.WithinAllowance {
				// The full daily allowance is charged even when under-used.
				b.DistanceFare = allowanceKm * rate.PerKmRate
			} else {
				b.DistanceFare = facts.DistanceKm * rate.PerKmRate
			}
		}
	}

	finalize(&b)
	return b, diags
}

// applySlab prices a distance off the slab table: the first band whose
// coverage reaches the distance wins, else the top band plus per-km overage
// at the slab's shared extra rate.
func applySlab(b *Breakdown, slab *rates.SlabPackage, distanceKm float64) {
	band := slab.Bands[len(slab.Bands)-1]
	for _, s := range slab.Bands {
		if s.CoverageKm >= distanceKm {
			band = s
			break
		}
	}
	b.DistanceFare = band.Fare
	b.ExtraKmCharges = math.Max(0, distanceKm-band.CoverageKm) * slab.ExtraKmRate
	b.Details.SlabCoverageKm = band.CoverageKm
	b.Details.PerKmRate = slab.ExtraKmRate
}
