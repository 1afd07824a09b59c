package main

import (
	"context"
	"log"

	"interview-eval-be/internal/bootstrap"
	"interview-eval-be/internal/config"
	"interview-eval-be/internal/server"
	"interview-eval-be/internal/tracer"
	"interview-eval-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	if err := container.PipelineWorker.Run(context.Background()); err != nil {
		log.Panicf("Unable to start pipeline worker pool: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
