// README: Shared tax computation and rounding applied by every calculator.
package fare

import "math"

const (
	gstChargesRate     = 0.05
	gstPlatformFeeRate = 0.18
)

// Platform-fee fallbacks used when the rate row carries no usable value.
const (
	defaultPlatformFeeRegular    = 10
	defaultPlatformFeeOutstation = 10
	defaultPlatformFeeRental     = 20
	defaultPlatformFeeAirport    = 20
)

// finalize clamps every component at zero, applies the two GST tiers (5% on
// ride charges, 18% on the platform fee, computed independently), and rounds
// the total to the nearest whole currency unit.
func finalize(b *Breakdown) {
	b.BaseFare = clamp(b.BaseFare)
	b.DistanceFare = clamp(b.DistanceFare)
	b.TimeFare = clamp(b.TimeFare)
	b.SurgeCharges = clamp(b.SurgeCharges)
	b.DeadheadCharges = clamp(b.DeadheadCharges)
	b.ExtraKmCharges = clamp(b.ExtraKmCharges)
	b.DriverAllowance = clamp(b.DriverAllowance)
	b.PlatformFee = clamp(b.PlatformFee)

	charges := b.BaseFare + b.DistanceFare + b.TimeFare + b.SurgeCharges +
		b.DeadheadCharges + b.ExtraKmCharges + b.DriverAllowance

	b.GSTOnCharges = charges * gstChargesRate
	b.GSTOnPlatformFee = b.PlatformFee * gstPlatformFeeRate
	b.TotalFare = math.Round(charges + b.PlatformFee + b.GSTOnCharges + b.GSTOnPlatformFee)
}

// clamp coerces negatives and non-finite intermediates to zero so they can
// never contribute to a total.
func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// platformFee resolves the fee from the rate row, falling back to the
// category default when the stored value is missing or unusable.
func platformFee(has bool, stored, fallback float64, diags *Diagnostics) float64 {
	if has {
		return stored
	}
	diags.add(LevelWarn, CodePlatformFeeFallback, "platform fee missing or invalid in rate row, using default")
	return fallback
}
