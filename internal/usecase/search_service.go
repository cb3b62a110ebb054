package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/calconv/backend/internal/domain"
	"github.com/calconv/backend/internal/infrastructure/usda"
)

// DefaultMaxResults is the number of candidates returned when no cap is given
const DefaultMaxResults = 20

// SearchService resolves a typed food name to a list of USDA candidates
type SearchService struct {
	usdaClient   domain.USDAClient
	preprocessor *QueryPreprocessor
}

// NewSearchService creates a new search service
func NewSearchService(usdaClient domain.USDAClient, preprocessor *QueryPreprocessor) *SearchService {
	if preprocessor == nil {
		preprocessor = NewQueryPreprocessor(false)
	}
	return &SearchService{
		usdaClient:   usdaClient,
		preprocessor: preprocessor,
	}
}

// Search returns up to maxResults candidates for foodName, deduplicated by
// title-cased description with the first occurrence kept. USDA is asked for
// twice as many rows to absorb duplicates. No matches is an empty slice.
func (s *SearchService) Search(ctx context.Context, foodName string, maxResults int) ([]domain.FoodCandidate, error) {
	if strings.TrimSpace(foodName) == "" {
		return nil, domain.ErrInvalidRequest
	}
	// A name made only of characters USDA rejects cannot match anything
	query := s.preprocessor.PreprocessQuery(foodName)
	if query == "" {
		return []domain.FoodCandidate{}, nil
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	resp, err := s.usdaClient.SearchFoods(ctx, query, maxResults*2)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", foodName, err)
	}
	if resp == nil {
		return []domain.FoodCandidate{}, nil
	}

	return dedupeCandidates(resp.Foods, maxResults), nil
}

// dedupeCandidates keeps the first food for each title-cased description
// and stops once limit candidates are collected.
func dedupeCandidates(foods []domain.USDAFood, limit int) []domain.FoodCandidate {
	seen := make(map[string]bool, len(foods))
	candidates := make([]domain.FoodCandidate, 0, min(len(foods), limit))

	for i := range foods {
		candidate := usda.MapToCandidate(&foods[i])
		key := strings.TrimSpace(candidate.Description)
		if seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, candidate)
		if len(candidates) >= limit {
			break
		}
	}

	return candidates
}
