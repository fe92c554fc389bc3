package utils

import "errors"

var ErrInvalidCalorieInput = errors.New("Please provide valid weight, height, and age")

// CalculateDailyCalories expects weight in kilograms, height in centimeters
// and age in years. It returns a Mifflin-St Jeor style daily estimate scaled
// by a sedentary activity factor. Inputs outside plausible human ranges are
// rejected, which also keeps the result positive.
func CalculateDailyCalories(weightKg, heightCm, age float64) (float64, error) {
	// Written as conjunctions so NaN fails the check too.
	if !(weightKg >= 20 && weightKg <= 400) ||
		!(heightCm >= 100 && heightCm <= 250) ||
		!(age >= 1 && age <= 100) {
		return 0, ErrInvalidCalorieInput
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*age + 5
	return bmr * 1.2, nil
}
