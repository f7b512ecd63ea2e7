// Package main is the entry point for the delvegrid level previewer.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/delvegrid/internal/game"
	"github.com/samdwyer/delvegrid/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_DELVEGRID_API_KEY and DELVEGRID_* available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	apiKey := setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, telemetry.Config{Disabled: apiKey == "", Seed: cfg.Seed})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Previewer will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if cfg.Dump {
		if err := g.Dump(ctx, os.Stdout); err != nil {
			log.Fatalf("Level generation failed: %v", err)
		}
		return
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars
// and returns the Honeycomb API key, which is empty when tracing is off.
func setupOTelEnv() string {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_DELVEGRID_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DELVEGRID_DATASET")
	if dataset == "" {
		dataset = "delvegrid" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
	return apiKey
}
