// README: JSON-safety scrubbing for persisted breakdowns.
package completion

import (
	"math"

	"farebox/internal/modules/fare"
)

// SanitizeBreakdown replaces every non-finite currency or provenance value
// with zero. encoding/json rejects NaN and ±Inf outright, so a single bad
// value would otherwise block the completion write.
func SanitizeBreakdown(b fare.Breakdown) fare.Breakdown {
	b.BaseFare = finite(b.BaseFare)
	b.DistanceFare = finite(b.DistanceFare)
	b.TimeFare = finite(b.TimeFare)
	b.SurgeCharges = finite(b.SurgeCharges)
	b.DeadheadCharges = finite(b.DeadheadCharges)
	b.ExtraKmCharges = finite(b.ExtraKmCharges)
	b.DriverAllowance = finite(b.DriverAllowance)
	b.PlatformFee = finite(b.PlatformFee)
	b.GSTOnCharges = finite(b.GSTOnCharges)
	b.GSTOnPlatformFee = finite(b.GSTOnPlatformFee)
	b.TotalFare = finite(b.TotalFare)

	b.Details.DistanceKm = finite(b.Details.DistanceKm)
	b.Details.DurationMin = finite(b.Details.DurationMin)
	b.Details.PerKmRate = finite(b.Details.PerKmRate)
	b.Details.PerMinuteRate = finite(b.Details.PerMinuteRate)
	b.Details.SurgeMultiplier = finite(b.Details.SurgeMultiplier)
	b.Details.BillingKm = finite(b.Details.BillingKm)
	b.Details.ReturnKm = finite(b.Details.ReturnKm)
	b.Details.SlabCoverageKm = finite(b.Details.SlabCoverageKm)
	return b
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
