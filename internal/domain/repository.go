package domain

import (
	"context"
	"time"
)

// InteractionRepository stores in-flight interactions between requests
type InteractionRepository interface {
	Get(ctx context.Context, id string) (*Interaction, error)
	Set(ctx context.Context, interaction *Interaction, ttl time.Duration) error
}

// USDAClient defines the interface for interacting with USDA FoodData Central API
type USDAClient interface {
	SearchFoods(ctx context.Context, query string, pageSize int) (*USDASearchResponse, error)
}

// NutritionixClient defines the interface for the Nutritionix natural-language API
type NutritionixClient interface {
	NaturalNutrients(ctx context.Context, query string) (*NutritionixResponse, error)
}
