package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/glowgen/backend/config"
	"github.com/glowgen/backend/internal/domain"
	"github.com/glowgen/backend/internal/infrastructure/cache"
	"github.com/glowgen/backend/internal/infrastructure/ollama"
	"github.com/glowgen/backend/internal/infrastructure/store"
	"github.com/glowgen/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	inputFile := flag.String("input", cfg.Workflow.InputFile, "product input JSON file")
	flag.Parse()

	log.Printf("Starting GlowGen content workflow")
	log.Printf("Input: %s", *inputFile)
	log.Printf("Output dir: %s", cfg.Workflow.OutputDir)

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	products, err := usecase.ParseProducts(data)
	if err != nil {
		log.Fatalf("Failed to parse products: %v", err)
	}
	for _, p := range products {
		log.Printf("Parsed product: %s (%s)", p.Name, p.ProductID)
	}

	pageStore, err := store.NewFileStore(cfg.Workflow.OutputDir)
	if err != nil {
		log.Fatalf("Failed to open page store: %v", err)
	}

	// The model is optional: with Ollama disabled the workflow falls back
	// to rule-based text everywhere.
	var generator domain.TextGenerator
	if cfg.Ollama.Enabled {
		client := ollama.NewClient(cfg.Ollama.BaseURL, cfg.Ollama.Model, cfg.Ollama.Timeout)
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
		}
		generator = client
		log.Printf("Ollama configured: %s (model: %s)", cfg.Ollama.BaseURL, cfg.Ollama.Model)
	} else {
		log.Printf("Ollama disabled, running fully rule-based")
	}

	answerCache := cache.NewMemoryCache()
	debug := cfg.Server.Environment == "development"

	workflow := usecase.NewWorkflow(
		usecase.NewQuestionService(debug),
		usecase.NewFAQService(generator, answerCache, cfg.Cache.TTL),
		usecase.NewProductService(generator),
		usecase.NewComparisonService(),
		pageStore,
	)

	result, err := workflow.Run(context.Background(), products)
	if err != nil {
		log.Fatalf("Workflow failed: %v", err)
	}

	log.Printf("Generated %d questions, %d product page(s)", len(result.Questions), len(result.ProductPages))
	if result.Comparison != nil {
		log.Printf("Comparison winner: %s", result.Comparison.Winner)
	}
	log.Printf("All pages saved to %s", cfg.Workflow.OutputDir)
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
