// README: Booking store backed by PostgreSQL.
package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"farebox/internal/types"
)

var ErrNotFound = errors.New("booking not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, id types.ID) (Booking, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, customer_id, driver_id, category, vehicle_class,
               trip_type, package_hours,
               pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
               scheduled_at, status
        FROM bookings
        WHERE id = $1`, string(id),
	)

	var b Booking
	var tripType sql.NullString
	var packageHours sql.NullFloat64
	err := row.Scan(
		&b.ID, &b.CustomerID, &b.DriverID, &b.Category, &b.VehicleClass,
		&tripType, &packageHours,
		&b.Pickup.Lat, &b.Pickup.Lng, &b.Dropoff.Lat, &b.Dropoff.Lng,
		&b.ScheduledAt, &b.Status,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrNotFound
	}
	if err != nil {
		return Booking{}, err
	}
	b.TripType = tripType.String
	b.PackageHours = packageHours.Float64
	return b, nil
}

// MarkCompleted flips the booking status; safe to repeat.
func (s *Store) MarkCompleted(ctx context.Context, id types.ID) error {
	_, err := s.db.Exec(ctx, `
        UPDATE bookings SET status = $2 WHERE id = $1`,
		string(id), string(StatusCompleted),
	)
	return err
}
