package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/calconv/backend/internal/domain"
)

// ConversionFailedMessage is shown when an upstream API call fails
const ConversionFailedMessage = "Conversion failed, please try again."

// NoResultsMessage is shown when a search has no candidates
func NoResultsMessage(foodName string) string {
	return fmt.Sprintf("No USDA results for '%s'", foodName)
}

// ConverterConfig holds configuration for the converter service
type ConverterConfig struct {
	MaxResults         int
	MinCalories        float64
	MaxCalories        float64
	InteractionTTL     time.Duration
	EnableDebugLogging bool
}

// ConverterService runs the search -> select -> convert cycle and keeps
// each interaction's state between requests
type ConverterService struct {
	search      *SearchService
	equivalents *EquivalentsService
	store       domain.InteractionRepository
	config      ConverterConfig
	newID       func() string
	now         func() time.Time
}

// NewConverterService creates a new converter service with dependencies
func NewConverterService(
	search *SearchService,
	equivalents *EquivalentsService,
	store domain.InteractionRepository,
	config ConverterConfig,
) *ConverterService {
	if config.MaxResults <= 0 {
		config.MaxResults = DefaultMaxResults
	}
	if config.MinCalories <= 0 {
		config.MinCalories = 10
	}
	if config.MaxCalories <= 0 {
		config.MaxCalories = 1000
	}
	if config.InteractionTTL == 0 {
		config.InteractionTTL = 30 * time.Minute
	}

	return &ConverterService{
		search:      search,
		equivalents: equivalents,
		store:       store,
		config:      config,
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

// ValidateCalories checks the target is inside the configured range
func (s *ConverterService) ValidateCalories(calories float64) error {
	if calories < s.config.MinCalories || calories > s.config.MaxCalories {
		return fmt.Errorf("%w: calories must be between %.0f and %.0f",
			domain.ErrInvalidRequest, s.config.MinCalories, s.config.MaxCalories)
	}
	return nil
}

// Search starts a new interaction for foodName. An empty result set is
// not an error: the interaction carries a no-results message instead.
func (s *ConverterService) Search(ctx context.Context, foodName string, calories float64) (*domain.Interaction, error) {
	foodName = strings.TrimSpace(foodName)
	if foodName == "" {
		return nil, fmt.Errorf("%w: food name is required", domain.ErrInvalidRequest)
	}
	if err := s.ValidateCalories(calories); err != nil {
		return nil, err
	}

	candidates, err := s.search.Search(ctx, foodName, s.config.MaxResults)
	if err != nil {
		return nil, err
	}

	interaction := &domain.Interaction{
		ID:             s.newID(),
		FoodName:       foodName,
		TargetCalories: calories,
		Candidates:     candidates,
		State:          domain.StateSearchResultsShown,
		CreatedAt:      s.now(),
	}
	if !interaction.HasResults() {
		interaction.State = domain.StateErrorDisplayed
		interaction.Message = NoResultsMessage(foodName)
	}

	if err := s.store.Set(ctx, interaction, s.config.InteractionTTL); err != nil {
		return nil, fmt.Errorf("save interaction: %w", err)
	}

	if s.config.EnableDebugLogging {
		log.Printf("[CONVERT] Interaction %s: %d candidates for %q", interaction.ID, len(candidates), foodName)
	}
	return interaction, nil
}

// Convert resolves the selected candidate of a stored interaction and
// expresses the calorie target in equivalent units. The returned
// interaction is populated even when err is non-nil, with Message set to
// what the user should see.
func (s *ConverterService) Convert(ctx context.Context, interactionID string, selection int, calories float64) (*domain.Interaction, error) {
	if err := s.ValidateCalories(calories); err != nil {
		return nil, err
	}

	interaction, err := s.store.Get(ctx, interactionID)
	if err != nil {
		return nil, err
	}
	if selection < 0 || selection >= len(interaction.Candidates) {
		return nil, fmt.Errorf("%w: %d of %d", domain.ErrInvalidSelection, selection, len(interaction.Candidates))
	}

	interaction.Selected = selection
	interaction.TargetCalories = calories
	interaction.State = domain.StateConverterRun
	interaction.Conversion = nil
	interaction.Message = ""

	conversion, err := s.run(ctx, interaction)
	if err != nil {
		interaction.State = domain.StateErrorDisplayed
		interaction.Message = userMessage(err)
	} else {
		interaction.State = domain.StateResultsDisplayed
		interaction.Conversion = conversion
	}

	if saveErr := s.store.Set(ctx, interaction, s.config.InteractionTTL); saveErr != nil {
		log.Printf("[CONVERT] Failed to save interaction %s: %v", interaction.ID, saveErr)
	}
	return interaction, err
}

// ConvertFood runs search and convert in one call, for clients that do
// not keep an interaction ID
func (s *ConverterService) ConvertFood(ctx context.Context, foodName string, selection int, calories float64) (*domain.Interaction, error) {
	interaction, err := s.Search(ctx, foodName, calories)
	if err != nil {
		return nil, err
	}
	if !interaction.HasResults() {
		return interaction, fmt.Errorf("%w: %q", domain.ErrNoResults, interaction.FoodName)
	}
	return s.Convert(ctx, interaction.ID, selection, calories)
}

func (s *ConverterService) run(ctx context.Context, interaction *domain.Interaction) (*domain.Conversion, error) {
	candidate := interaction.Candidates[interaction.Selected]

	result, err := ResolveCalories(candidate, interaction.TargetCalories)
	if err != nil {
		return nil, err
	}

	// Nutritionix gets the name as typed, not the USDA description
	equivalents, err := s.equivalents.Equivalents(ctx, interaction.FoodName, result.Grams)
	if err != nil {
		log.Printf("[CONVERT] Equivalents lookup failed for %q: %v", interaction.FoodName, err)
		return nil, err
	}

	return &domain.Conversion{
		Food:           result.Food,
		TargetCalories: interaction.TargetCalories,
		Grams:          result.Grams,
		Equivalents:    equivalents.Ordered(),
	}, nil
}

// userMessage turns a pipeline error into the text shown in place of results
func userMessage(err error) string {
	var missing *domain.MissingCaloriesError
	if errors.As(err, &missing) {
		return missing.Error()
	}
	return ConversionFailedMessage
}
