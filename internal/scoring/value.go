// Package scoring implements the pure vehicle scoring functions: value score,
// environmental score, five-year ownership cost, and the pairwise attribute
// comparator. Every function is a stateless computation over a vehicle record
// and the static catalog tables; identical inputs always produce identical
// outputs.
package scoring

import (
	"time"

	"github.com/carwise/carwise/internal/catalog"
	"github.com/carwise/carwise/internal/model"
)

// Value score weights. Safety and high-importance features count above plain
// feature count; age, mileage, and price apply floored linear penalties.
const (
	safetyFeatureWeight  = 2.0
	highImportanceWeight = 1.5

	agePenaltyPerYear = 0.05
	ageFactorFloor    = 0.5

	mileageReference   = 200000.0
	mileageFactorFloor = 0.6

	priceReference   = 150000.0
	priceFactorFloor = 0.5

	featureTermWeight = 40.0
	ageTermWeight     = 25.0
	mileageTermWeight = 20.0
	priceTermWeight   = 15.0
)

// Value returns the 0-100 composite desirability score for a vehicle,
// evaluated against the current calendar year. A nil vehicle scores zero.
func Value(v *model.Vehicle) float64 {
	return ValueAt(v, time.Now().Year())
}

// ValueAt is Value with an explicit reference year, so results are
// reproducible in tests and reports.
func ValueAt(v *model.Vehicle, year int) float64 {
	if v == nil {
		return 0
	}

	featureCount := float64(len(v.Features))
	safetyCount := float64(catalog.CountByCategory(v.Features, catalog.CategorySafety))
	highCount := float64(catalog.CountByImportance(v.Features, catalog.ImportanceHigh))
	featureValue := featureCount + safetyCount*safetyFeatureWeight + highCount*highImportanceWeight

	ageFactor := floorAt(1-float64(v.AgeIn(year))*agePenaltyPerYear, ageFactorFloor)
	mileageFactor := floorAt(1-nonNegative(v.Mileage)/mileageReference, mileageFactorFloor)
	priceFactor := floorAt(1-nonNegative(v.Price)/priceReference, priceFactorFloor)

	raw := featureValue*featureTermWeight +
		ageFactor*ageTermWeight +
		mileageFactor*mileageTermWeight +
		priceFactor*priceTermWeight

	return clamp(raw, 0, 100)
}

func floorAt(value, floor float64) float64 {
	if value < floor {
		return floor
	}
	return value
}

// nonNegative clamps malformed negative inputs to zero so the linear
// penalties never turn into bonuses.
func nonNegative(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
