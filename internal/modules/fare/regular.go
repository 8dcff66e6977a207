// README: Metered regular-ride calculator.
package fare

import (
	"math"

	"farebox/internal/modules/rates"
	"farebox/internal/modules/zone"
)

// includedKm is how many kilometres the base fare covers on a regular ride.
const includedKm = 3.0

func calculateRegular(facts TripFacts, rate rates.Rate, zones []zone.Zone, refs References) (Breakdown, Diagnostics) {
	var diags Diagnostics

	surge := rate.SurgeMultiplier
	if surge < 1 {
		surge = 1
	}

	extraKm := math.Max(0, facts.DistanceKm-includedKm)
	distanceFare := extraKm * rate.PerKmRate

	dd := zone.Detect(facts.Dropoff, rate.PerKmRate, facts.DistanceKm, zones, refs.Depot)
	switch dd.Skipped {
	case zone.SkipStationary:
		diags.add(LevelInfo, CodeStationaryGuard, "trip displacement below threshold, dead-mileage charge waived")
	case zone.SkipZonesMissing:
		diags.add(LevelWarn, CodeZonesMissing, "inner/outer ring zones not configured, dead-mileage charge skipped")
	}

	surgeCharges := (rate.BaseFare + distanceFare + dd.Charge) * (surge - 1)

	b := Breakdown{
		BaseFare:        rate.BaseFare,
		DistanceFare:    distanceFare,
		SurgeCharges:    surgeCharges,
		DeadheadCharges: dd.Charge,
		PlatformFee:     platformFee(rate.HasPlatformFee, rate.PlatformFee, defaultPlatformFeeRegular, &diags),
		Details: Details{
			DistanceKm:      facts.DistanceKm,
			DurationMin:     facts.DurationMin,
			PerKmRate:       rate.PerKmRate,
			SurgeMultiplier: surge,
			ZoneName:        dd.ZoneName,
			InnerZone:       dd.InnerZone,
		},
	}
	finalize(&b)
	return b, diags
}
