// README: Named circular service zones used for dead-mileage detection.
package zone

import "farebox/internal/types"

type Zone struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Center   types.Point `json:"center"`
	RadiusKm float64     `json:"radius_km"`
}
