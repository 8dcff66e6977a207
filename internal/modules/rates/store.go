// README: Rate-card store backed by PostgreSQL; the typed configuration boundary.
package rates

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRateNotFound  = errors.New("fare configuration not found for this vehicle type")
	ErrAmbiguousRate = errors.New("multiple active fare configurations for this vehicle type")
	ErrSlabNotFound  = errors.New("outstation slab configuration not found")
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// GetRate returns the single active rate row for (category, vehicle class).
// Zero rows and more than one row are both configuration errors: a missing
// or ambiguous rate must block trip completion, never default.
func (s *Store) GetRate(ctx context.Context, category, vehicleClass string) (Rate, error) {
	rows, err := s.db.Query(ctx, `
        SELECT category, vehicle_class, base_fare, per_km_rate, surge_multiplier,
               platform_fee, city_to_airport_fare, airport_to_city_fare,
               daily_km_limit, driver_allowance_per_day
        FROM fare_rates
        WHERE category = $1 AND vehicle_class = $2 AND active`,
		category, vehicleClass,
	)
	if err != nil {
		return Rate{}, err
	}
	defer rows.Close()

	var found []Rate
	for rows.Next() {
		var r Rate
		var surge, platformFee, cityToAirport, airportToCity, dailyKm, allowance sql.NullFloat64
		if err := rows.Scan(
			&r.Category, &r.VehicleClass, &r.BaseFare, &r.PerKmRate, &surge,
			&platformFee, &cityToAirport, &airportToCity,
			&dailyKm, &allowance,
		); err != nil {
			return Rate{}, err
		}
		if surge.Valid {
			r.SurgeMultiplier = surge.Float64
		}
		// Reject malformed platform fees here, at the boundary, so no NaN
		// or negative value ever reaches a calculator.
		if platformFee.Valid && platformFee.Float64 > 0 {
			r.PlatformFee = platformFee.Float64
			r.HasPlatformFee = true
		}
		r.CityToAirportFare = cityToAirport.Float64
		r.AirportToCityFare = airportToCity.Float64
		r.DailyKmLimit = dailyKm.Float64
		r.DriverAllowancePerDay = allowance.Float64
		found = append(found, r)
	}
	if err := rows.Err(); err != nil {
		return Rate{}, err
	}

	switch len(found) {
	case 0:
		return Rate{}, ErrRateNotFound
	case 1:
		return found[0], nil
	default:
		return Rate{}, fmt.Errorf("%w: %d rows for %s/%s", ErrAmbiguousRate, len(found), category, vehicleClass)
	}
}

// GetRentalPackages returns every active rental package for the vehicle
// class, in stored order.
func (s *Store) GetRentalPackages(ctx context.Context, vehicleClass string) ([]RentalPackage, error) {
	rows, err := s.db.Query(ctx, `
        SELECT name, included_hours, included_km, base_fare, extra_km_rate, extra_minute_rate
        FROM rental_packages
        WHERE vehicle_class = $1 AND active
        ORDER BY included_hours, included_km`,
		vehicleClass,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pkgs []RentalPackage
	for rows.Next() {
		var p RentalPackage
		if err := rows.Scan(&p.Name, &p.IncludedHours, &p.IncludedKm, &p.BaseFare, &p.ExtraKmRate, &p.ExtraMinuteRate); err != nil {
			return nil, err
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, rows.Err()
}

// GetSlabPackage returns the outstation slab table for the vehicle class.
// Absence is ErrSlabNotFound; callers fall back to per-km pricing.
func (s *Store) GetSlabPackage(ctx context.Context, vehicleClass string) (SlabPackage, error) {
	var p SlabPackage
	var bandsJSON []byte
	err := s.db.QueryRow(ctx, `
        SELECT vehicle_class, extra_km_rate, bands
        FROM outstation_slabs
        WHERE vehicle_class = $1 AND active`,
		vehicleClass,
	).Scan(&p.VehicleClass, &p.ExtraKmRate, &bandsJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return SlabPackage{}, ErrSlabNotFound
	}
	if err != nil {
		return SlabPackage{}, err
	}
	if err := json.Unmarshal(bandsJSON, &p.Bands); err != nil {
		return SlabPackage{}, fmt.Errorf("decode slab bands for %s: %w", vehicleClass, err)
	}
	if len(p.Bands) == 0 {
		return SlabPackage{}, ErrSlabNotFound
	}
	return p, nil
}
