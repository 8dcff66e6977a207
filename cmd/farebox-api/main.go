// README: Entry point; loads config, wires stores and the fare engine, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"farebox/internal/config"
	httptransport "farebox/internal/http"
	"farebox/internal/http/handlers"
	"farebox/internal/infra"
	"farebox/internal/maps"
	"farebox/internal/modules/booking"
	"farebox/internal/modules/completion"
	"farebox/internal/modules/fare"
	"farebox/internal/modules/rates"
	"farebox/internal/modules/zone"
	"farebox/internal/types"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	ratesStore := rates.NewStore(dbPool)
	zoneStore := zone.NewStore(dbPool, redisClient, time.Duration(cfg.Redis.ZoneCacheTTLSecs)*time.Second)
	bookingStore := booking.NewStore(dbPool)
	completionStore := completion.NewStore(dbPool)

	refs := fare.References{
		Depot:      types.Point{Lat: cfg.Refs.DepotLat, Lng: cfg.Refs.DepotLng},
		CityCenter: types.Point{Lat: cfg.Refs.CityCenterLat, Lng: cfg.Refs.CityCenterLng},
	}
	fareSvc := fare.NewService(ratesStore, zoneStore, refs, logger)

	var routes handlers.RouteEstimator
	if cfg.Maps.APIKey != "" {
		routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			logger.Fatal("maps init", zap.Error(err))
		}
		routes = routeSvc
	}

	fareHandler := handlers.NewFareHandler(bookingStore, fareSvc, completionStore, routes, cfg.Currency, logger)
	router := httptransport.NewRouter(fareHandler, logger)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
