// README: Fare service resolves configuration and dispatches to the category calculators.
package fare

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"farebox/internal/modules/rates"
	"farebox/internal/modules/zone"
)

var (
	ErrUnknownCategory      = errors.New("unknown booking category")
	ErrNoRentalPackages     = errors.New("rental package configuration not found for this vehicle type")
	ErrNegativeMeasurements = errors.New("distance and duration must be non-negative")
)

// ConfigSource supplies the read-only rate configuration.
type ConfigSource interface {
	GetRate(ctx context.Context, category, vehicleClass string) (rates.Rate, error)
	GetRentalPackages(ctx context.Context, vehicleClass string) ([]rates.RentalPackage, error)
	GetSlabPackage(ctx context.Context, vehicleClass string) (rates.SlabPackage, error)
}

// ZoneSource supplies the active zone list for dead-mileage detection.
type ZoneSource interface {
	ActiveZones(ctx context.Context) ([]zone.Zone, error)
}

type Service struct {
	rates ConfigSource
	zones ZoneSource
	refs  References
	log   *zap.Logger
}

func NewService(rates ConfigSource, zones ZoneSource, refs References, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{rates: rates, zones: zones, refs: refs, log: log}
}

// Calculate runs the calculator matching the booking category. It is a pure
// computation over the facts plus read-only configuration lookups: identical
// inputs always produce an identical breakdown, so retrying a failed
// completion is safe.
func (s *Service) Calculate(ctx context.Context, facts TripFacts) (Breakdown, Diagnostics, error) {
	if facts.DistanceKm < 0 || facts.DurationMin < 0 {
		return Breakdown{}, nil, ErrNegativeMeasurements
	}

	rate, err := s.rates.GetRate(ctx, string(facts.Category), facts.VehicleClass)
	if err != nil {
		return Breakdown{}, nil, fmt.Errorf("%s/%s: %w", facts.Category, facts.VehicleClass, err)
	}

	var (
		b     Breakdown
		diags Diagnostics
	)
	switch facts.Category {
	case CategoryRegular:
		zones, zerr := s.zones.ActiveZones(ctx)
		if zerr != nil {
			// Zone data degrades gracefully to a zero surcharge; a lookup
			// failure must not block billing.
			s.log.Warn("zone lookup failed, skipping dead-mileage surcharge", zap.Error(zerr))
			zones = nil
		}
		b, diags = calculateRegular(facts, rate, zones, s.refs)

	case CategoryRental:
		pkgs, perr := s.rates.GetRentalPackages(ctx, facts.VehicleClass)
		if perr != nil {
			return Breakdown{}, nil, perr
		}
		if len(pkgs) == 0 {
			return Breakdown{}, nil, ErrNoRentalPackages
		}
		b, diags = calculateRental(facts, pkgs, rate, s.refs)

	case CategoryOutstation:
		var slab *rates.SlabPackage
		sp, serr := s.rates.GetSlabPackage(ctx, facts.VehicleClass)
		switch {
		case serr == nil:
			slab = &sp
		case errors.Is(serr, rates.ErrSlabNotFound):
			// fall back to per-km / per-day pricing
		default:
			return Breakdown{}, nil, serr
		}
		b, diags = calculateOutstation(facts, rate, slab)

	case CategoryAirport:
		b, diags = calculateAirport(facts, rate, s.refs)

	default:
		return Breakdown{}, nil, fmt.Errorf("%w: %q", ErrUnknownCategory, facts.Category)
	}

	s.logDiagnostics(facts, diags)
	return b, diags, nil
}

func (s *Service) logDiagnostics(facts TripFacts, diags Diagnostics) {
	for _, d := range diags {
		fields := []zap.Field{
			zap.String("booking_id", string(facts.BookingID)),
			zap.String("category", string(facts.Category)),
			zap.String("code", d.Code),
		}
		if d.Level == LevelWarn {
			s.log.Warn(d.Message, fields...)
		} else {
			s.log.Info(d.Message, fields...)
		}
	}
}
