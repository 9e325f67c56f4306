package scoring

import (
	"strings"
	"time"

	"github.com/carwise/carwise/internal/model"
)

const environmentalAgePenaltyPerYear = 1.5

// efficiencyFeatures earn a small environmental bonus when any is present.
var efficiencyFeatures = []string{"auto_start_stop", "eco_mode", "regenerative_braking"}

// Environmental returns the 0-100 ecological impact score for a vehicle,
// evaluated against the current calendar year. A nil vehicle scores zero.
func Environmental(v *model.Vehicle) float64 {
	return EnvironmentalAt(v, time.Now().Year())
}

// EnvironmentalAt is Environmental with an explicit reference year.
func EnvironmentalAt(v *model.Vehicle, year int) float64 {
	if v == nil {
		return 0
	}

	score := fuelTypeBase(v.Type)

	// Older engines pollute more; age never earns a bonus.
	agePenalty := float64(v.AgeIn(year)) * environmentalAgePenaltyPerYear
	if agePenalty > 0 {
		score -= agePenalty
	}

	score += bodyCategoryAdjustment(v.Category)

	for _, id := range efficiencyFeatures {
		if v.HasFeature(id) {
			score += 5
			break
		}
	}

	return clamp(score, 0, 100)
}

func fuelTypeBase(fuelType string) float64 {
	switch strings.ToLower(fuelType) {
	case "electric":
		return 90
	case "hybrid":
		return 70
	case "diesel":
		return 40
	default:
		return 30
	}
}

func bodyCategoryAdjustment(category string) float64 {
	switch strings.ToLower(category) {
	case "compact", "coupe", "hatchback":
		return 10
	case "sedan":
		return 5
	case "suv":
		return -5
	case "truck":
		return -10
	default:
		return 0
	}
}
