package catalog

import (
	"strings"

	"github.com/carwise/carwise/internal/model"
)

// Annual cost assumptions, in currency units per year. Every lookup has a
// defined fallback so an unrecognized category or fuel type never produces a
// missing value.

// AnnualMileageAssumption is the mileage per year assumed by the fuel and
// ownership-cost estimates.
const AnnualMileageAssumption = 15000

// AnnualRegistration is the flat yearly registration and tax estimate.
const AnnualRegistration = 150.0

var annualMaintenance = map[model.VehicleCondition]float64{
	model.ConditionNew:  400,
	model.ConditionUsed: 800,
}

var annualInsurance = map[string]float64{
	"sedan":       1200,
	"suv":         1400,
	"truck":       1500,
	"coupe":       1600,
	"hatchback":   1100,
	"convertible": 1700,
	"van":         1300,
	"wagon":       1250,
}

// annualFuel maps fuel type -> body category -> yearly fuel (or energy) cost.
var annualFuel = map[string]map[string]float64{
	"electric": {
		"sedan": 600, "suv": 750, "truck": 900, "coupe": 650,
		"hatchback": 550, "convertible": 700, "van": 800, "wagon": 650,
	},
	"hybrid": {
		"sedan": 900, "suv": 1100, "truck": 1300, "coupe": 950,
		"hatchback": 850, "convertible": 1000, "van": 1150, "wagon": 950,
	},
	"diesel": {
		"sedan": 1300, "suv": 1550, "truck": 1800, "coupe": 1350,
		"hatchback": 1200, "convertible": 1450, "van": 1600, "wagon": 1350,
	},
	"gasoline": {
		"sedan": 1500, "suv": 1800, "truck": 2100, "coupe": 1600,
		"hatchback": 1400, "convertible": 1700, "van": 1850, "wagon": 1550,
	},
}

// depreciationRates maps vehicle age in years to the percentage of current
// value lost during that year. Ages beyond ten use the 10+ rate.
var depreciationRates = map[int]float64{
	1:  15,
	2:  13,
	3:  11,
	4:  10,
	5:  9,
	6:  8,
	7:  7,
	8:  6,
	9:  5,
	10: 5,
}

const depreciationRateBeyondTen = 4.0

// AnnualMaintenance returns the yearly maintenance estimate for a condition.
// Unrecognized conditions fall back to the used-car estimate.
func AnnualMaintenance(condition model.VehicleCondition) float64 {
	if cost, ok := annualMaintenance[condition]; ok {
		return cost
	}
	return annualMaintenance[model.ConditionUsed]
}

// AnnualInsurance returns the yearly insurance estimate for a body category,
// falling back to the sedan rate for unknown categories.
func AnnualInsurance(category string) float64 {
	if cost, ok := annualInsurance[strings.ToLower(category)]; ok {
		return cost
	}
	return annualInsurance["sedan"]
}

// AnnualFuel returns the yearly fuel estimate for a fuel type and body
// category. Unknown fuel types fall back to gasoline; unknown categories
// fall back to sedan.
func AnnualFuel(fuelType, category string) float64 {
	byCategory, ok := annualFuel[NormalizeFuelType(fuelType)]
	if !ok {
		byCategory = annualFuel["gasoline"]
	}
	if cost, ok := byCategory[strings.ToLower(category)]; ok {
		return cost
	}
	return byCategory["sedan"]
}

// DepreciationRate returns the percentage of current value a vehicle of the
// given age loses over one year.
func DepreciationRate(ageYears int) float64 {
	if ageYears < 1 {
		ageYears = 1
	}
	if rate, ok := depreciationRates[ageYears]; ok {
		return rate
	}
	return depreciationRateBeyondTen
}

// NormalizeFuelType maps marketplace fuel labels onto the cost-table keys.
// Listings use "Benzine" for gasoline engines; anything unrecognized is
// treated as gasoline.
func NormalizeFuelType(fuelType string) string {
	switch strings.ToLower(fuelType) {
	case "electric":
		return "electric"
	case "hybrid":
		return "hybrid"
	case "diesel":
		return "diesel"
	case "benzine", "gasoline", "petrol":
		return "gasoline"
	default:
		return "gasoline"
	}
}
