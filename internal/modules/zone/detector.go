// README: Dead-mileage detector; classifies a drop-off against the ring zones.
package zone

import (
	"strings"

	"farebox/internal/types"
)

// MinMovementKm is the displacement below which a trip is treated as
// stationary and never charged a dead-mileage surcharge.
const MinMovementKm = 0.5

const (
	innerRingTag = "inner ring"
	outerRingTag = "outer ring"

	labelUnknown     = "Unknown"
	labelBeyondOuter = "Beyond Outer Zone"
	labelBetween     = "Between Inner and Outer Ring"
)

// Skip reasons reported alongside a zero charge.
const (
	SkipStationary   = "stationary"
	SkipZonesMissing = "zones_missing"
	SkipBeyondOuter  = "beyond_outer"
)

// Deadhead is the outcome of the drop-off classification.
type Deadhead struct {
	Charge    float64
	ZoneName  string
	InnerZone bool
	// Skipped is non-empty when the charge was forced to zero by a guard
	// rather than by the drop-off landing in a free zone.
	Skipped string
}

// Detect classifies the drop-off point against the inner/outer ring zones
// and prices the dead-mileage surcharge for drop-offs in the annulus
// between them. The charge compensates half the empty leg back to depot.
func Detect(dropoff types.Point, perKmRate, actualKm float64, zones []Zone, depot types.Point) Deadhead {
	if actualKm < MinMovementKm {
		return Deadhead{ZoneName: labelUnknown, Skipped: SkipStationary}
	}

	inner, okInner := findByTag(zones, innerRingTag)
	outer, okOuter := findByTag(zones, outerRingTag)
	if !okInner || !okOuter {
		return Deadhead{ZoneName: labelUnknown, Skipped: SkipZonesMissing}
	}

	if DistanceKm(dropoff, inner.Center) <= inner.RadiusKm {
		return Deadhead{ZoneName: inner.Name, InnerZone: true}
	}
	if DistanceKm(dropoff, outer.Center) > outer.RadiusKm {
		return Deadhead{ZoneName: labelBeyondOuter, Skipped: SkipBeyondOuter}
	}

	charge := DistanceKm(dropoff, depot) / 2 * perKmRate
	return Deadhead{Charge: charge, ZoneName: labelBetween}
}

func findByTag(zones []Zone, tag string) (Zone, bool) {
	for _, z := range zones {
		if strings.Contains(strings.ToLower(z.Name), tag) {
			return z, true
		}
	}
	return Zone{}, false
}
