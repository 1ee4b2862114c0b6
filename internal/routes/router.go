package routes

import (
	"net/http"
	"time"

	"github.com/Toyowa5296/poliform/internal/api"
	"github.com/Toyowa5296/poliform/internal/config"
	"github.com/Toyowa5296/poliform/internal/db"
	"github.com/Toyowa5296/poliform/internal/logging"
	"github.com/Toyowa5296/poliform/internal/metrics"
	"github.com/Toyowa5296/poliform/internal/middleware"
	"github.com/Toyowa5296/poliform/internal/workers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes builds the router and wires dependencies, middleware, and
// background workers.
func RegisterRoutes(cfg *config.Config, upSince time.Time) (http.Handler, error) {

	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	deps, err := api.InitDependencies(cfg, metricsReg)
	if err != nil {
		return nil, err
	}

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, deps.Services.Redis, upSince))

	// Uploaded logos and avatars are served straight off disk.
	uploadDir := http.Dir(deps.Services.Storage.Dir())
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(uploadDir)))

	workers.InitWorkers(deps.Services.Cache, deps.Services.Tag, deps.Services.PartyQuery)

	RegisterAPIRoutes(r, deps)

	return r, nil
}
