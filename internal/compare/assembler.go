// Package compare assembles full side-by-side vehicle comparisons from the
// individual scoring functions.
package compare

import (
	"strings"
	"time"

	"github.com/carwise/carwise/internal/catalog"
	"github.com/carwise/carwise/internal/model"
	"github.com/carwise/carwise/internal/scoring"
)

// Recommendation weights, in points. Each dimension's points go wholesale to
// the side that wins it, regardless of margin.
const (
	priceWeight    = 20.0
	valueWeight    = 25.0
	costWeight     = 20.0
	featuresWeight = 15.0
	safetyWeight   = 20.0
)

// Confidence thresholds over the recommendation score gap.
const (
	highConfidenceGap   = 30.0
	slightConfidenceGap = 15.0
)

// Vehicles builds the full comparison for a pair of vehicles. Order only
// affects left/right labeling. Either input being nil yields nil; the
// assembler never panics on valid-shaped records.
func Vehicles(left, right *model.Vehicle) *model.Comparison {
	return VehiclesAt(left, right, time.Now().Year())
}

// VehiclesAt is Vehicles with an explicit reference year for the
// age-sensitive scores.
func VehiclesAt(left, right *model.Vehicle, year int) *model.Comparison {
	if left == nil || right == nil {
		return nil
	}

	leftValue := scoring.ValueAt(left, year)
	rightValue := scoring.ValueAt(right, year)
	leftCost := scoring.OwnershipCostAt(left, year)
	rightCost := scoring.OwnershipCostAt(right, year)
	leftEnv := scoring.EnvironmentalAt(left, year)
	rightEnv := scoring.EnvironmentalAt(right, year)

	c := &model.Comparison{
		Left:  left,
		Right: right,
		Rows:  buildRows(left, right, leftValue, rightValue),
	}

	buildProsCons(c, leftCost, rightCost, leftEnv, rightEnv)
	c.LeftReport.UseCases = useCases(left, right, leftCost, rightCost)
	c.RightReport.UseCases = useCases(right, left, rightCost, leftCost)

	recommend(c, leftValue, rightValue, leftCost, rightCost)
	return c
}

func buildRows(left, right *model.Vehicle, leftValue, rightValue float64) []model.AttributeRow {
	return []model.AttributeRow{
		{Label: "Price", Left: left.Price, Right: right.Price,
			Better: scoring.BetterSide(scoring.AttrPrice, left.Price, right.Price)},
		{Label: "Year", Left: left.Year, Right: right.Year,
			Better: scoring.BetterSide(scoring.AttrYear, left.Year, right.Year)},
		{Label: "Mileage", Left: left.Mileage, Right: right.Mileage,
			Better: scoring.BetterSide(scoring.AttrMileage, left.Mileage, right.Mileage)},
		{Label: "Condition", Left: string(left.Condition), Right: string(right.Condition),
			Better: scoring.BetterSide("condition", string(left.Condition), string(right.Condition))},
		{Label: "Transmission", Left: left.Transmission, Right: right.Transmission,
			Better: scoring.BetterSide("transmission", left.Transmission, right.Transmission)},
		{Label: "Color", Left: left.Color, Right: right.Color,
			Better: scoring.BetterSide("color", left.Color, right.Color)},
		{Label: "Drivetrain", Left: left.Drivetrain, Right: right.Drivetrain,
			Better: scoring.BetterSide("drivetrain", left.Drivetrain, right.Drivetrain)},
		{Label: "Fuel Type", Left: left.Type, Right: right.Type,
			Better: scoring.BetterSide("fuel_type", left.Type, right.Type)},
		{Label: "Category", Left: left.Category, Right: right.Category,
			Better: scoring.BetterSide("category", left.Category, right.Category)},
		{Label: "Value Score", Left: leftValue, Right: rightValue,
			Better: scoring.BetterSide(scoring.AttrValueScore, leftValue, rightValue)},
	}
}

// prosConsDimension pairs the winning-side phrase with the losing-side one.
type prosConsDimension struct {
	winner string
	loser  string
	side   model.Side
}

func buildProsCons(c *model.Comparison, leftCost, rightCost *scoring.CostBreakdown, leftEnv, rightEnv float64) {
	left, right := c.Left, c.Right

	dimensions := []prosConsDimension{
		{"Lower price", "Higher price",
			scoring.BetterSide(scoring.AttrPrice, left.Price, right.Price)},
		{"Newer model year", "Older model year",
			scoring.BetterSide(scoring.AttrYear, left.Year, right.Year)},
		{"Lower mileage", "Higher mileage",
			scoring.BetterSide(scoring.AttrMileage, left.Mileage, right.Mileage)},
		{"More features", "Fewer features",
			scoring.BetterSide(scoring.AttrFeatures, left.Features, right.Features)},
		{"More safety features", "Fewer safety features",
			scoring.BetterSide(scoring.AttrSafetyFeatures, left.Features, right.Features)},
		{"More comfort features", "Fewer comfort features",
			scoring.BetterSide(scoring.AttrComfortFeatures, left.Features, right.Features)},
		{"More tech features", "Fewer tech features",
			scoring.BetterSide(scoring.AttrTechFeatures, left.Features, right.Features)},
		{"Lower 5-year cost of ownership", "Higher 5-year cost of ownership",
			scoring.BetterSide(scoring.AttrTotalCost, leftCost.Total, rightCost.Total)},
		{"Better environmental score", "Worse environmental score",
			higherSide(leftEnv, rightEnv)},
	}

	for _, dim := range dimensions {
		switch dim.side {
		case model.SideLeft:
			c.LeftReport.Pros = append(c.LeftReport.Pros, dim.winner)
			c.RightReport.Cons = append(c.RightReport.Cons, dim.loser)
		case model.SideRight:
			c.RightReport.Pros = append(c.RightReport.Pros, dim.winner)
			c.LeftReport.Cons = append(c.LeftReport.Cons, dim.loser)
		}
	}
}

func higherSide(left, right float64) model.Side {
	switch {
	case left > right:
		return model.SideLeft
	case right > left:
		return model.SideRight
	default:
		return model.SideNone
	}
}

// useCases derives suggested use-case tags for a vehicle. The rules are
// independent; several tags may apply at once.
func useCases(v, other *model.Vehicle, cost, otherCost *scoring.CostBreakdown) []string {
	var tags []string

	category := strings.ToLower(v.Category)
	drivetrain := strings.ToLower(v.Drivetrain)
	fuel := strings.ToLower(v.Type)

	if v.HasFeature("third_row_seats") {
		tags = append(tags, "Family trips")
	}
	if strings.Contains(drivetrain, "4wd") || strings.Contains(drivetrain, "4x4") ||
		category == "suv" || category == "truck" {
		tags = append(tags, "Off-road adventures")
	}
	if category == "sedan" || category == "hatchback" {
		tags = append(tags, "Urban driving")
	}
	if catalog.CountByCategory(v.Features, catalog.CategoryComfort) >= 3 {
		tags = append(tags, "Comfortable commuting")
	}
	if catalog.CountByCategory(v.Features, catalog.CategoryTechnology) >= 3 {
		tags = append(tags, "Tech enthusiasts")
	}
	if v.Price < other.Price && cost.Total < otherCost.Total {
		tags = append(tags, "Budget-conscious buyers")
	}
	if fuel == "diesel" || fuel == "hybrid" || fuel == "electric" {
		tags = append(tags, "Long distance travel")
	}

	return tags
}

func recommend(c *model.Comparison, leftValue, rightValue float64, leftCost, rightCost *scoring.CostBreakdown) {
	left, right := c.Left, c.Right

	weighted := []struct {
		weight float64
		side   model.Side
	}{
		{priceWeight, scoring.BetterSide(scoring.AttrPrice, left.Price, right.Price)},
		{valueWeight, scoring.BetterSide(scoring.AttrValueScore, leftValue, rightValue)},
		{costWeight, scoring.BetterSide(scoring.AttrTotalCost, leftCost.Total, rightCost.Total)},
		{featuresWeight, scoring.BetterSide(scoring.AttrFeatures, left.Features, right.Features)},
		{safetyWeight, scoring.BetterSide(scoring.AttrSafetyFeatures, left.Features, right.Features)},
	}

	for _, w := range weighted {
		switch w.side {
		case model.SideLeft:
			c.LeftReport.Score += w.weight
		case model.SideRight:
			c.RightReport.Score += w.weight
		}
	}

	gap := c.LeftReport.Score - c.RightReport.Score
	switch {
	case gap > 0:
		c.Recommended = model.SideLeft
	case gap < 0:
		c.Recommended = model.SideRight
		gap = -gap
	default:
		c.Recommended = model.SideNone
	}

	switch {
	case gap > highConfidenceGap:
		c.Confidence = model.ConfidenceHigh
	case gap < slightConfidenceGap:
		c.Confidence = model.ConfidenceSlight
	default:
		c.Confidence = model.ConfidenceModerate
	}
}
