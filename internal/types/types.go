// README: Common value objects shared across modules.
package types

// ID identifies bookings, drivers, and customers.
type ID string

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Money is a whole-unit currency amount, used for finalized totals.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
