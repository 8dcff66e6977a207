// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"farebox/internal/modules/booking"
	"farebox/internal/modules/fare"
	"farebox/internal/modules/rates"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeFareError maps engine and lookup errors onto HTTP statuses. A missing
// or ambiguous rate blocks completion explicitly; there is no fallback fare.
func writeFareError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, rates.ErrRateNotFound),
		errors.Is(err, rates.ErrAmbiguousRate),
		errors.Is(err, fare.ErrNoRentalPackages),
		errors.Is(err, fare.ErrUnknownCategory),
		errors.Is(err, fare.ErrNegativeMeasurements):
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
