// FILE: cmd/rest/main.go
package main

import (
	"context"
	"log"

	"radiant-system-be/internal/bootstrap"
	"radiant-system-be/internal/config"
	"radiant-system-be/internal/server"
	"radiant-system-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start Background Services
	go func() {
		log.Println("Background: Starting Notification Service...")
		if err := container.NotificationService.Start(context.Background()); err != nil {
			log.Printf("Background Notification Error: %v", err)
		}
	}()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
