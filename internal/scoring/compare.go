package scoring

import (
	"github.com/carwise/carwise/internal/catalog"
	"github.com/carwise/carwise/internal/model"
)

// Attribute names the comparable dimensions understood by BetterSide.
type Attribute string

const (
	// AttrPrice compares asking prices; lower wins.
	AttrPrice Attribute = "price"
	// AttrMileage compares odometer readings; lower wins.
	AttrMileage Attribute = "mileage"
	// AttrYear compares model years; higher wins.
	AttrYear Attribute = "year"
	// AttrFeatures compares total feature counts; more wins.
	AttrFeatures Attribute = "features"
	// AttrSafetyFeatures compares safety feature counts; more wins.
	AttrSafetyFeatures Attribute = "safety_features"
	// AttrComfortFeatures compares comfort feature counts; more wins.
	AttrComfortFeatures Attribute = "comfort_features"
	// AttrTechFeatures compares technology feature counts; more wins.
	AttrTechFeatures Attribute = "tech_features"
	// AttrValueScore compares value scores; higher wins.
	AttrValueScore Attribute = "value_score"
	// AttrTotalCost compares ownership cost totals; lower wins.
	AttrTotalCost Attribute = "total_cost"
	// AttrDepreciation compares projected depreciation; lower wins.
	AttrDepreciation Attribute = "depreciation"
)

// BetterSide reports which of two attribute values wins a pairwise
// comparison. A missing (nil) value always loses to a present one; two
// missing values, equal values, or an unrecognized attribute yield
// model.SideNone. The comparator never claims superiority it cannot justify.
func BetterSide(attr Attribute, left, right any) model.Side {
	leftMissing := isMissing(left)
	rightMissing := isMissing(right)
	switch {
	case leftMissing && rightMissing:
		return model.SideNone
	case leftMissing:
		return model.SideRight
	case rightMissing:
		return model.SideLeft
	}

	switch attr {
	case AttrPrice, AttrMileage, AttrTotalCost, AttrDepreciation:
		return compareNumeric(left, right, false)
	case AttrYear, AttrValueScore:
		return compareNumeric(left, right, true)
	case AttrFeatures:
		return compareCounts(featureCount(left, ""), featureCount(right, ""))
	case AttrSafetyFeatures:
		return compareCounts(featureCount(left, catalog.CategorySafety), featureCount(right, catalog.CategorySafety))
	case AttrComfortFeatures:
		return compareCounts(featureCount(left, catalog.CategoryComfort), featureCount(right, catalog.CategoryComfort))
	case AttrTechFeatures:
		return compareCounts(featureCount(left, catalog.CategoryTechnology), featureCount(right, catalog.CategoryTechnology))
	default:
		return model.SideNone
	}
}

func compareNumeric(left, right any, higherWins bool) model.Side {
	l, lok := toFloat(left)
	r, rok := toFloat(right)
	if !lok && !rok {
		return model.SideNone
	}
	if !lok {
		return model.SideRight
	}
	if !rok {
		return model.SideLeft
	}
	if l == r {
		return model.SideNone
	}
	if (l > r) == higherWins {
		return model.SideLeft
	}
	return model.SideRight
}

func compareCounts(left, right int) model.Side {
	switch {
	case left > right:
		return model.SideLeft
	case right > left:
		return model.SideRight
	default:
		return model.SideNone
	}
}

// featureCount counts feature identifiers in a value that should be a
// []string, optionally filtered to one catalog category. Values of any other
// type count as zero.
func featureCount(value any, category catalog.FeatureCategory) int {
	ids, ok := value.([]string)
	if !ok {
		return 0
	}
	if category == "" {
		return len(ids)
	}
	return catalog.CountByCategory(ids, category)
}

func isMissing(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case *float64:
		return v == nil
	case *int:
		return v == nil
	case []string:
		return v == nil
	default:
		return false
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case *float64:
		if v == nil {
			return 0, false
		}
		return *v, true
	case *int:
		if v == nil {
			return 0, false
		}
		return float64(*v), true
	default:
		return 0, false
	}
}
