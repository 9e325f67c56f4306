package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carwise/carwise/internal/model"
)

func TestAnnualMaintenance(t *testing.T) {
	assert.Less(t, AnnualMaintenance(model.ConditionNew), AnnualMaintenance(model.ConditionUsed))
	// Unknown conditions fall back to the used rate.
	assert.Equal(t, AnnualMaintenance(model.ConditionUsed), AnnualMaintenance("Salvage"))
}

func TestAnnualInsurance_Fallback(t *testing.T) {
	assert.Equal(t, AnnualInsurance("sedan"), AnnualInsurance("Hovercraft"))
	assert.Equal(t, AnnualInsurance("SUV"), AnnualInsurance("suv"))
}

func TestAnnualFuel_Fallbacks(t *testing.T) {
	// Unknown fuel type falls back to gasoline; unknown category to sedan.
	assert.Equal(t, AnnualFuel("gasoline", "sedan"), AnnualFuel("Steam", "sedan"))
	assert.Equal(t, AnnualFuel("hybrid", "sedan"), AnnualFuel("hybrid", "Hovercraft"))

	// Electric is the cheapest, gasoline the most expensive, per category.
	assert.Less(t, AnnualFuel("electric", "suv"), AnnualFuel("hybrid", "suv"))
	assert.Less(t, AnnualFuel("hybrid", "suv"), AnnualFuel("diesel", "suv"))
	assert.Less(t, AnnualFuel("diesel", "suv"), AnnualFuel("gasoline", "suv"))
}

func TestDepreciationRate(t *testing.T) {
	assert.Equal(t, 15.0, DepreciationRate(1))
	assert.Equal(t, 13.0, DepreciationRate(2))
	// Ages below one clamp up to the first-year rate.
	assert.Equal(t, 15.0, DepreciationRate(0))
	// Ages beyond ten use the 10+ bucket.
	assert.Equal(t, 4.0, DepreciationRate(11))
	assert.Equal(t, 4.0, DepreciationRate(30))
}

func TestDepreciationRates_NonIncreasing(t *testing.T) {
	for age := 2; age <= 12; age++ {
		assert.LessOrEqual(t, DepreciationRate(age), DepreciationRate(age-1),
			"rate at age %d should not exceed rate at age %d", age, age-1)
	}
}

func TestNormalizeFuelType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Benzine", "gasoline"},
		{"benzine", "gasoline"},
		{"Petrol", "gasoline"},
		{"ELECTRIC", "electric"},
		{"Hybrid", "hybrid"},
		{"Diesel", "diesel"},
		{"Nuclear", "gasoline"},
		{"", "gasoline"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeFuelType(tc.in), "input %q", tc.in)
	}
}
