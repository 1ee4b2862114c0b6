package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Toyowa5296/poliform/internal/config"
	"github.com/Toyowa5296/poliform/internal/db"
	"github.com/Toyowa5296/poliform/internal/logging"
	"github.com/Toyowa5296/poliform/internal/routes"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Poliform starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	dsn := cfg.PostgresDSN()

	if err := db.InitPostgres(dsn); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	if err := db.RunMigrations(db.DB); err != nil {
		logging.Error("Migrations failed", "error", err.Error())
		log.Fatalf("migrations failed: %v", err)
	}
	logging.Info("Migrations applied")

	if _, err := db.InitPostgresORM(dsn); err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	upSince := time.Now()

	router, err := routes.RegisterRoutes(cfg, upSince)
	if err != nil {
		logging.Error("Failed to initialize routes", "error", err.Error())
		log.Fatalf("failed to initialize routes: %v", err)
	}

	// Metrics live outside the Chi router so they skip its middleware chain.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	logging.Info("Server starting", "port", cfg.Port, "environment", cfg.AppEnv)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, mux))
}
