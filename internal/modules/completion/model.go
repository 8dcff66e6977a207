// README: Category-specific completion records produced from a finalized breakdown.
package completion

import (
	"time"

	"farebox/internal/modules/fare"
	"farebox/internal/types"
)

// Record is one finalized trip completion. Each category persists to its own
// table, but every schema carries the same identifying fields, the itemized
// components, and the details blob.
type Record struct {
	BookingID   types.ID
	CustomerID  types.ID
	DriverID    types.ID
	Category    fare.Category
	Breakdown   fare.Breakdown
	Total       types.Money
	CompletedAt time.Time
}

// NewRecord assembles a completion record from trip facts and a breakdown,
// scrubbing any non-finite values so the persisted JSON is always valid.
func NewRecord(facts fare.TripFacts, b fare.Breakdown, currency string, completedAt time.Time) Record {
	clean := SanitizeBreakdown(b)
	return Record{
		BookingID:   facts.BookingID,
		CustomerID:  facts.CustomerID,
		DriverID:    facts.DriverID,
		Category:    facts.Category,
		Breakdown:   clean,
		Total:       types.Money{Amount: int64(clean.TotalFare), Currency: currency},
		CompletedAt: completedAt,
	}
}
