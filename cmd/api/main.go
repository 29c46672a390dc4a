package main

// @title Geo Gateway API
// @version 1.0.0
// @description Шлюз к ArcGIS location services: геокодирование адреса и маршрут между двумя точками.
// @description Ключ ESRI остается на сервере, фронтенд видит только нормализованные ответы.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/geo-gateway/docs/swagger"
	"github.com/geo-gateway/internal/config"
	httpDelivery "github.com/geo-gateway/internal/delivery/http"
	"github.com/geo-gateway/internal/delivery/http/handler"
	"github.com/geo-gateway/internal/infrastructure/esri"
	"github.com/geo-gateway/internal/pkg/logger"
	"github.com/geo-gateway/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Geo Gateway")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("geocode_url", cfg.Esri.GeocodeURL),
		zap.String("route_url", cfg.Esri.RouteURL),
		zap.Duration("upstream_timeout", cfg.Esri.RequestTimeout),
	)

	// 3. ArcGIS adapters (один клиент, токен из конфигурации)
	esriClient := esri.NewClient(&cfg.Esri, log)
	geocoder := esri.NewGeocoder(esriClient, &cfg.Esri, log)
	routeSolver := esri.NewRouteSolver(esriClient, &cfg.Esri, log)

	// 4. Use cases
	geocodeUC := usecase.NewGeocodeUseCase(geocoder, log)
	routeUC := usecase.NewRouteUseCase(routeSolver, log)

	// 5. HTTP handlers
	geocodeHandler := handler.NewGeocodeHandler(geocodeUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)

	// 6. HTTP server
	server := httpDelivery.NewServer(cfg, log, geocodeHandler, routeHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
