package main

import (
	"fmt"
	"log"
	"os"

	"github.com/glowgen/backend/config"
	httpDelivery "github.com/glowgen/backend/internal/delivery/http"
	"github.com/glowgen/backend/internal/infrastructure/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting GlowGen Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Output dir: %s", cfg.Workflow.OutputDir)

	pageStore, err := store.NewFileStore(cfg.Workflow.OutputDir)
	if err != nil {
		log.Fatalf("Failed to open page store: %v", err)
	}

	handler := httpDelivery.NewHandler(pageStore)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
