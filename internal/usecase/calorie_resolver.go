package usecase

import (
	"strings"

	"github.com/calconv/backend/internal/domain"
)

const (
	energyNutrientName = "energy"
	kilojoulesPerKcal  = 4.184
)

// ResolveCalories computes how many grams of candidate provide
// targetCalories, using its per-100g energy value. The result is not
// rounded.
func ResolveCalories(candidate domain.FoodCandidate, targetCalories float64) (*domain.CalorieResult, error) {
	if targetCalories <= 0 {
		return nil, domain.ErrInvalidRequest
	}

	kcalPer100g, ok := energyPer100g(candidate.Nutrients)
	if !ok {
		return nil, &domain.MissingCaloriesError{Food: candidate.Description}
	}

	caloriesPerGram := kcalPer100g / 100
	return &domain.CalorieResult{
		Food:  candidate.Description,
		Grams: targetCalories / caloriesPerGram,
	}, nil
}

// energyPer100g finds the "energy" nutrient (case-insensitive) in kcal.
// A kcal or unitless row wins over a kJ row; kJ is converted when it is
// the only one. Non-positive values count as missing.
func energyPer100g(nutrients []domain.Nutrient) (float64, bool) {
	var kilojoules float64
	haveKJ := false

	for _, n := range nutrients {
		if !strings.EqualFold(strings.TrimSpace(n.Name), energyNutrientName) || n.Value <= 0 {
			continue
		}
		if strings.EqualFold(n.Unit, "kj") {
			if !haveKJ {
				kilojoules, haveKJ = n.Value, true
			}
			continue
		}
		return n.Value, true
	}

	if haveKJ {
		return kilojoules / kilojoulesPerKcal, true
	}
	return 0, false
}
