package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/calconv/backend/internal/domain"
)

// EquivalentsService expresses a gram amount in the alternate serving
// measures Nutritionix knows for a food
type EquivalentsService struct {
	nutritionixClient  domain.NutritionixClient
	enableDebugLogging bool
}

// NewEquivalentsService creates a new equivalents service
func NewEquivalentsService(client domain.NutritionixClient, enableDebugLogging bool) *EquivalentsService {
	return &EquivalentsService{
		nutritionixClient:  client,
		enableDebugLogging: enableDebugLogging,
	}
}

// Equivalents returns grams expressed in every recognised unit. The map
// always holds g and oz; further units come from the first Nutritionix
// food's alt_measures, first measure per canonical unit wins.
func (s *EquivalentsService) Equivalents(ctx context.Context, foodName string, grams float64) (*domain.EquivalentsMap, error) {
	results := domain.NewEquivalentsMap(grams)

	resp, err := s.nutritionixClient.NaturalNutrients(ctx, foodName)
	if err != nil {
		return nil, fmt.Errorf("equivalents for %q: %w", foodName, err)
	}
	if resp == nil || len(resp.Foods) == 0 {
		return results, nil
	}

	for _, m := range resp.Foods[0].AltMeasures {
		unit, ok := NormalizeUnit(m.Measure)
		if !ok {
			continue
		}
		if m.ServingWeight == nil || *m.ServingWeight <= 0 || m.Qty == nil || *m.Qty <= 0 {
			continue
		}

		gramsPerUnit := *m.ServingWeight / *m.Qty
		if !results.Add(unit, grams/gramsPerUnit) && s.enableDebugLogging {
			log.Printf("[CONVERT] Duplicate unit %q from measure %q ignored", unit, m.Measure)
		}
	}

	return results, nil
}
