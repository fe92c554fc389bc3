package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateDailyCaloriesValid(t *testing.T) {
	got, err := CalculateDailyCalories(70, 175, 30)
	require.NoError(t, err)
	require.InDelta(t, 1978.5, got, 0.001) // (10*70 + 6.25*175 - 5*30 + 5) * 1.2
	require.False(t, math.IsNaN(got) || math.IsInf(got, 0))
}

func TestCalculateDailyCaloriesPositiveAcrossRange(t *testing.T) {
	for _, weight := range []float64{20, 55, 120, 400} {
		for _, height := range []float64{100, 160, 250} {
			for _, age := range []float64{1, 40, 100} {
				got, err := CalculateDailyCalories(weight, height, age)
				require.NoError(t, err)
				require.Greater(t, got, 0.0, "weight=%v height=%v age=%v", weight, height, age)
			}
		}
	}
}

func TestCalculateDailyCaloriesDeterministic(t *testing.T) {
	a, err := CalculateDailyCalories(82, 168, 45)
	require.NoError(t, err)
	b, err := CalculateDailyCalories(82, 168, 45)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestCalculateDailyCaloriesMonotonic(t *testing.T) {
	base, err := CalculateDailyCalories(70, 175, 30)
	require.NoError(t, err)

	heavier, err := CalculateDailyCalories(80, 175, 30)
	require.NoError(t, err)
	require.Greater(t, heavier, base)

	taller, err := CalculateDailyCalories(70, 185, 30)
	require.NoError(t, err)
	require.Greater(t, taller, base)

	older, err := CalculateDailyCalories(70, 175, 40)
	require.NoError(t, err)
	require.Less(t, older, base)
}

func TestCalculateDailyCaloriesInvalid(t *testing.T) {
	cases := []struct {
		name                string
		weight, height, age float64
	}{
		{"zero weight", 0, 175, 30},
		{"zero height", 70, 0, 30},
		{"zero age", 70, 175, 0},
		{"negative weight", -70, 175, 30},
		{"NaN weight", math.NaN(), 175, 30},
		{"NaN age", 70, 175, math.NaN()},
		{"infinite height", 70, math.Inf(1), 30},
		{"implausible weight", 5, 175, 30},
		{"implausible height", 70, 40, 30},
		{"implausible age", 70, 175, 150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateDailyCalories(tc.weight, tc.height, tc.age)
			require.ErrorIs(t, err, ErrInvalidCalorieInput)
		})
	}
}
