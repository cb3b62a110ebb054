package domain

// FoodCandidate is one deduplicated row of a USDA search
type FoodCandidate struct {
	FdcID       int        `json:"fdcId"`
	Description string     `json:"description"` // title-cased
	DataType    string     `json:"dataType,omitempty"`
	Nutrients   []Nutrient `json:"nutrients"`
}

// Nutrient is a single per-100g nutrient value of a candidate
type Nutrient struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit,omitempty"` // "KCAL", "kJ", "G", ...
	Value float64 `json:"value"`
}

// CalorieResult is the mass of a food needed to reach a calorie target
type CalorieResult struct {
	Food  string  `json:"food"`
	Grams float64 `json:"grams"`
}

// Conversion is the full outcome of one confirmed interaction
type Conversion struct {
	Food           string       `json:"food"`
	TargetCalories float64      `json:"targetCalories"`
	Grams          float64      `json:"grams"`
	Equivalents    []Equivalent `json:"equivalents"`
}
