package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResults is returned when the USDA search yields no foods
	ErrNoResults = errors.New("no matching foods found")

	// ErrMissingCalories is returned when a food has no energy nutrient
	ErrMissingCalories = errors.New("no calorie info")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidSelection is returned when the selected candidate index is out of range
	ErrInvalidSelection = errors.New("invalid food selection")

	// ErrInteractionNotFound is returned when an interaction ID is unknown or expired
	ErrInteractionNotFound = errors.New("interaction not found")

	// ErrRateLimited is returned when a client exceeds its request rate
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrUSDAAPIFailure is returned when USDA API request fails
	ErrUSDAAPIFailure = errors.New("USDA API request failed")

	// ErrNutritionixAPIFailure is returned when Nutritionix API request fails
	ErrNutritionixAPIFailure = errors.New("Nutritionix API request failed")
)

// MissingCaloriesError reports which food lacked an energy value.
type MissingCaloriesError struct {
	Food string
}

func (e *MissingCaloriesError) Error() string {
	return fmt.Sprintf("No calorie info for %s", e.Food)
}

// Is lets errors.Is match MissingCaloriesError against ErrMissingCalories.
func (e *MissingCaloriesError) Is(target error) bool {
	return target == ErrMissingCalories
}
