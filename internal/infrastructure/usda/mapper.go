package usda

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/calconv/backend/internal/domain"
)

// TitleCase formats a USDA description ("BANANAS, RAW") for display and
// deduplication ("Bananas, Raw").
func TitleCase(s string) string {
	// Casers carry state and are not safe for concurrent use.
	return cases.Title(language.English).String(s)
}

// MapToCandidate converts a USDA food to a FoodCandidate
func MapToCandidate(food *domain.USDAFood) domain.FoodCandidate {
	nutrients := make([]domain.Nutrient, 0, len(food.Nutrients))
	for _, n := range food.Nutrients {
		nutrients = append(nutrients, domain.Nutrient{
			Name:  n.NutrientName,
			Unit:  n.UnitName,
			Value: n.Value,
		})
	}

	return domain.FoodCandidate{
		FdcID:       food.FdcID,
		Description: TitleCase(food.Description),
		DataType:    food.DataType,
		Nutrients:   nutrients,
	}
}
