// README: Completion store; one table per booking category, idempotent per booking.
package completion

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"farebox/internal/modules/fare"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// tableFor maps a category to its completion table. The schemas share the
// same columns; only the table differs per category.
func tableFor(c fare.Category) (string, error) {
	switch c {
	case fare.CategoryRegular:
		return "ride_completions", nil
	case fare.CategoryRental:
		return "rental_completions", nil
	case fare.CategoryOutstation:
		return "outstation_completions", nil
	case fare.CategoryAirport:
		return "airport_completions", nil
	default:
		return "", fmt.Errorf("no completion table for category %q", c)
	}
}

// Save persists the record, keyed by booking id. A booking that already has
// a completion record is left untouched and reported with created=false, so
// replaying a completion can never double-bill a trip.
func (s *Store) Save(ctx context.Context, rec Record) (created bool, err error) {
	table, err := tableFor(rec.Category)
	if err != nil {
		return false, err
	}

	details, err := json.Marshal(rec.Breakdown.Details)
	if err != nil {
		return false, fmt.Errorf("encode completion details: %w", err)
	}

	b := rec.Breakdown
	ct, err := s.db.Exec(ctx, `
        INSERT INTO `+table+` (
            booking_id, customer_id, driver_id,
            base_fare, distance_fare, time_fare, surge_charges, deadhead_charges,
            extra_km_charges, driver_allowance, platform_fee,
            gst_on_charges, gst_on_platform_fee, total_fare, currency,
            details, completed_at
        ) VALUES (
            $1, $2, $3,
            $4, $5, $6, $7, $8,
            $9, $10, $11,
            $12, $13, $14, $15,
            $16, $17
        )
        ON CONFLICT (booking_id) DO NOTHING`,
		string(rec.BookingID), string(rec.CustomerID), string(rec.DriverID),
		b.BaseFare, b.DistanceFare, b.TimeFare, b.SurgeCharges, b.DeadheadCharges,
		b.ExtraKmCharges, b.DriverAllowance, b.PlatformFee,
		b.GSTOnCharges, b.GSTOnPlatformFee, b.TotalFare, rec.Total.Currency,
		details, rec.CompletedAt,
	)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}
