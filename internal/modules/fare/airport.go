// README: Fixed-corridor airport transfer calculator.
package fare

import (
	"farebox/internal/modules/rates"
	"farebox/internal/modules/zone"
)

// Direction labels for airport transfers.
const (
	DirectionToAirport   = "cityCenter-to-airport"
	DirectionFromAirport = "airport-to-cityCenter"
)

// airportReferenceKm is the corridor length the fixed fares are quoted for;
// an implied per-km rate derived from it lets the fixed-fare product scale
// with unusually short or long measured trips.
const airportReferenceKm = 40.0

func calculateAirport(facts TripFacts, rate rates.Rate, refs References) (Breakdown, Diagnostics) {
	var diags Diagnostics

	// Whichever endpoint sits closer to the city center is the origin.
	direction := DirectionToAirport
	fixedFare := rate.CityToAirportFare
	if zone.DistanceKm(facts.Pickup, refs.CityCenter) > zone.DistanceKm(facts.Dropoff, refs.CityCenter) {
		direction = DirectionFromAirport
		fixedFare = rate.AirportToCityFare
	}

	distanceFare := fixedFare
	impliedPerKm := fixedFare / airportReferenceKm
	if facts.DistanceKm > 0 {
		distanceFare = facts.DistanceKm * impliedPerKm
	}

	// The whole charge rides in distance_fare; airport transfers carry no
	// base fare component.
	b := Breakdown{
		DistanceFare: distanceFare,
		PlatformFee:  platformFee(rate.HasPlatformFee, rate.PlatformFee, defaultPlatformFeeAirport, &diags),
		Details: Details{
			DistanceKm:  facts.DistanceKm,
			DurationMin: facts.DurationMin,
			PerKmRate:   impliedPerKm,
			Direction:   direction,
		},
	}
	finalize(&b)
	return b, diags
}
