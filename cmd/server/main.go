package main

import (
	"fmt"
	"log"
	"os"

	"github.com/calconv/backend/config"
	httpDelivery "github.com/calconv/backend/internal/delivery/http"
	"github.com/calconv/backend/internal/infrastructure/nutritionix"
	"github.com/calconv/backend/internal/infrastructure/session"
	"github.com/calconv/backend/internal/infrastructure/usda"
	"github.com/calconv/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Calorie Converter v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	debug := cfg.Server.Environment == "development"

	// Initialize infrastructure dependencies
	usdaClient := usda.NewClient(cfg.USDA.APIKey, cfg.USDA.BaseURL)
	nutritionixClient := nutritionix.NewClient(cfg.Nutritionix.AppID, cfg.Nutritionix.AppKey, cfg.Nutritionix.BaseURL)
	if debug {
		usdaClient.SetDebug(true)
		nutritionixClient.SetDebug(true)
		log.Printf("API client debug mode enabled")
	}
	log.Printf("USDA API configured: %s (key: %s...)", cfg.USDA.BaseURL, redact(cfg.USDA.APIKey))
	log.Printf("Nutritionix API configured: %s (app id: %s)", cfg.Nutritionix.BaseURL, cfg.Nutritionix.AppID)

	interactions := session.NewMemoryStore()
	log.Printf("Interaction TTL: %s", cfg.Session.TTL)

	// Initialize usecase layer
	converter := usecase.NewConverterService(
		usecase.NewSearchService(usdaClient, usecase.NewQueryPreprocessor(debug)),
		usecase.NewEquivalentsService(nutritionixClient, debug),
		interactions,
		usecase.ConverterConfig{
			MaxResults:         cfg.USDA.MaxResults,
			MinCalories:        cfg.Converter.MinCalories,
			MaxCalories:        cfg.Converter.MaxCalories,
			InteractionTTL:     cfg.Session.TTL,
			EnableDebugLogging: debug,
		},
	)

	log.Printf("Calories: [%.0f, %.0f] default=%.0f step=%.0f",
		cfg.Converter.MinCalories,
		cfg.Converter.MaxCalories,
		cfg.Converter.DefaultCalories,
		cfg.Converter.Step)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(converter, cfg.Converter)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// redact keeps only a short prefix of a secret for logging
func redact(secret string) string {
	if len(secret) <= 8 {
		return secret[:len(secret)/2]
	}
	return secret[:8]
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
