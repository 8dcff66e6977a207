// README: HTTP router registration.
package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farebox/internal/http/handlers"
	"farebox/internal/http/middleware"
)

func NewRouter(fareHandler *handlers.FareHandler, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(log), middleware.Recovery(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/bookings/:id/complete", fareHandler.Complete)
		api.POST("/fares/preview", fareHandler.Preview)
	}

	return r
}
