package domain

// NutritionixRequest is the body of a natural-language nutrients query
type NutritionixRequest struct {
	Query string `json:"query"`
}

// NutritionixResponse is the response of the natural-language nutrients endpoint
type NutritionixResponse struct {
	Foods []NutritionixFood `json:"foods"`
}

// NutritionixFood is one food parsed out of the query
type NutritionixFood struct {
	FoodName           string               `json:"food_name"`
	ServingQty         float64              `json:"serving_qty"`
	ServingUnit        string               `json:"serving_unit"`
	ServingWeightGrams float64              `json:"serving_weight_grams"`
	AltMeasures        []NutritionixMeasure `json:"alt_measures"`
}

// NutritionixMeasure is an alternate serving size. Pointers distinguish
// missing values from zero.
type NutritionixMeasure struct {
	Measure       string   `json:"measure"`
	Qty           *float64 `json:"qty"`
	ServingWeight *float64 `json:"serving_weight"`
}
