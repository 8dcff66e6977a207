// README: Trip completion and fare preview handlers.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farebox/internal/modules/booking"
	"farebox/internal/modules/completion"
	"farebox/internal/modules/fare"
	"farebox/internal/types"
)

// BookingSource resolves bookings before fare calculation.
type BookingSource interface {
	Get(ctx context.Context, id types.ID) (booking.Booking, error)
	MarkCompleted(ctx context.Context, id types.ID) error
}

// CompletionSink persists finalized breakdowns, idempotent per booking.
type CompletionSink interface {
	Save(ctx context.Context, rec completion.Record) (bool, error)
}

// RouteEstimator backfills distance/duration when the GPS track is unusable.
// May be nil, in which case completions without measurements use the
// category's non-GPS pricing path.
type RouteEstimator interface {
	TravelEstimate(ctx context.Context, origin, destination types.Point) (float64, float64, error)
}

type FareHandler struct {
	bookings    BookingSource
	fares       *fare.Service
	completions CompletionSink
	routes      RouteEstimator
	currency    string
	log         *zap.Logger
}

func NewFareHandler(bookings BookingSource, fares *fare.Service, completions CompletionSink, routes RouteEstimator, currency string, log *zap.Logger) *FareHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FareHandler{
		bookings:    bookings,
		fares:       fares,
		completions: completions,
		routes:      routes,
		currency:    currency,
		log:         log,
	}
}

type completeReq struct {
	DistanceKm  float64  `json:"distance_km"`
	DurationMin float64  `json:"duration_min"`
	DropoffLat  *float64 `json:"dropoff_lat"`
	DropoffLng  *float64 `json:"dropoff_lng"`
}

type completeResp struct {
	BookingID        types.ID         `json:"booking_id"`
	AlreadyCompleted bool             `json:"already_completed"`
	Breakdown        fare.Breakdown   `json:"breakdown"`
	Diagnostics      fare.Diagnostics `json:"diagnostics,omitempty"`
}

// Complete computes and persists the fare for a finished trip. Re-invoking
// it for the same booking recomputes the identical breakdown and leaves the
// stored completion record untouched.
func (h *FareHandler) Complete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing booking id")
		return
	}

	var req completeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	bk, err := h.bookings.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeFareError(c, err)
		return
	}
	if !bk.Completable() {
		writeError(c, http.StatusConflict, "booking is cancelled")
		return
	}

	facts := factsFromBooking(bk)
	facts.DistanceKm = req.DistanceKm
	facts.DurationMin = req.DurationMin
	if req.DropoffLat != nil && req.DropoffLng != nil {
		facts.Dropoff = types.Point{Lat: *req.DropoffLat, Lng: *req.DropoffLng}
	}

	usedEstimate := false
	if facts.DistanceKm <= 0 && h.routes != nil {
		km, minutes, rerr := h.routes.TravelEstimate(c.Request.Context(), facts.Pickup, facts.Dropoff)
		if rerr != nil {
			h.log.Warn("route estimate failed, pricing without GPS distance",
				zap.String("booking_id", id), zap.Error(rerr))
		} else {
			h.log.Info("no GPS distance supplied, using route estimate",
				zap.String("booking_id", id), zap.Float64("estimated_km", km))
			facts.DistanceKm = km
			if facts.DurationMin <= 0 {
				facts.DurationMin = minutes
			}
			usedEstimate = true
		}
	}

	bd, diags, err := h.fares.Calculate(c.Request.Context(), facts)
	if err != nil {
		writeFareError(c, err)
		return
	}
	if usedEstimate {
		diags = append(fare.Diagnostics{{
			Level:   fare.LevelInfo,
			Code:    fare.CodeMapsEstimate,
			Message: "distance and duration estimated from directions, no GPS track supplied",
		}}, diags...)
	}

	rec := completion.NewRecord(facts, bd, h.currency, time.Now().UTC())
	created, err := h.completions.Save(c.Request.Context(), rec)
	if err != nil {
		h.log.Error("completion write failed", zap.String("booking_id", id), zap.Error(err))
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if created {
		if err := h.bookings.MarkCompleted(c.Request.Context(), facts.BookingID); err != nil {
			h.log.Error("failed to mark booking completed", zap.String("booking_id", id), zap.Error(err))
		}
	}

	writeJSON(c, http.StatusOK, completeResp{
		BookingID:        facts.BookingID,
		AlreadyCompleted: !created,
		Breakdown:        bd,
		Diagnostics:      diags,
	})
}

type previewReq struct {
	Category     string  `json:"category"`
	VehicleClass string  `json:"vehicle_class"`
	DistanceKm   float64 `json:"distance_km"`
	DurationMin  float64 `json:"duration_min"`
	PickupLat    float64 `json:"pickup_lat"`
	PickupLng    float64 `json:"pickup_lng"`
	DropoffLat   float64 `json:"dropoff_lat"`
	DropoffLng   float64 `json:"dropoff_lng"`
	TripType     string  `json:"trip_type"`
	PackageHours float64 `json:"package_hours"`
}

// Preview runs the calculators without persisting anything. Because the
// engine is deterministic, a preview matches the completion for the same
// inputs exactly.
func (h *FareHandler) Preview(c *gin.Context) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Category == "" || req.VehicleClass == "" {
		writeError(c, http.StatusBadRequest, "missing category or vehicle_class")
		return
	}

	facts := fare.TripFacts{
		Category:     fare.Category(req.Category),
		VehicleClass: req.VehicleClass,
		DistanceKm:   req.DistanceKm,
		DurationMin:  req.DurationMin,
		Pickup:       types.Point{Lat: req.PickupLat, Lng: req.PickupLng},
		Dropoff:      types.Point{Lat: req.DropoffLat, Lng: req.DropoffLng},
		TripType:     req.TripType,
		PackageHours: req.PackageHours,
	}

	bd, diags, err := h.fares.Calculate(c.Request.Context(), facts)
	if err != nil {
		writeFareError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"breakdown": bd, "diagnostics": diags})
}

func factsFromBooking(bk booking.Booking) fare.TripFacts {
	return fare.TripFacts{
		BookingID:    bk.ID,
		CustomerID:   bk.CustomerID,
		DriverID:     bk.DriverID,
		Category:     fare.Category(bk.Category),
		VehicleClass: bk.VehicleClass,
		Pickup:       bk.Pickup,
		Dropoff:      bk.Dropoff,
		TripType:     bk.TripType,
		PackageHours: bk.PackageHours,
		ScheduledAt:  bk.ScheduledAt,
	}
}
