package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carwise/carwise/internal/model"
)

const testYear = 2026

func sedanA() *model.Vehicle {
	return &model.Vehicle{
		ID:        "veh-a",
		Make:      "Toyota",
		Model:     "Camry",
		Year:      2022,
		Price:     20000,
		Condition: model.ConditionUsed,
		Mileage:   10000,
		Category:  "Sedan",
		Type:      "Hybrid",
		Features:  []string{"backup_camera", "bluetooth"},
	}
}

func suvB() *model.Vehicle {
	return &model.Vehicle{
		ID:        "veh-b",
		Make:      "Ford",
		Model:     "Explorer",
		Year:      2020,
		Price:     35000,
		Condition: model.ConditionUsed,
		Mileage:   60000,
		Category:  "SUV",
		Type:      "Benzine",
		Features:  []string{"backup_camera", "lane_assist", "sunroof"},
	}
}

func rowByLabel(t *testing.T, c *model.Comparison, label string) model.AttributeRow {
	t.Helper()
	for _, row := range c.Rows {
		if row.Label == label {
			return row
		}
	}
	t.Fatalf("no row labeled %q", label)
	return model.AttributeRow{}
}

func TestVehiclesAt_NilInputs(t *testing.T) {
	v := sedanA()
	assert.Nil(t, VehiclesAt(nil, v, testYear))
	assert.Nil(t, VehiclesAt(v, nil, testYear))
	assert.Nil(t, VehiclesAt(nil, nil, testYear))
}

func TestVehiclesAt_IdenticalVehiclesTie(t *testing.T) {
	left := sedanA()
	right := sedanA()
	right.ID = "veh-a2"

	c := VehiclesAt(left, right, testYear)
	require.NotNil(t, c)

	for _, row := range c.Rows {
		assert.Equal(t, model.SideNone, row.Better, "row %q should tie", row.Label)
	}
	assert.Empty(t, c.LeftReport.Pros)
	assert.Empty(t, c.LeftReport.Cons)
	assert.Empty(t, c.RightReport.Pros)
	assert.Empty(t, c.RightReport.Cons)
	assert.Equal(t, model.SideNone, c.Recommended)
	assert.Nil(t, c.Recommendation())
}

func TestVehiclesAt_EndToEnd(t *testing.T) {
	// A cheap, new-ish, low-mileage hybrid sedan against a pricier,
	// older, better-equipped gasoline SUV.
	c := VehiclesAt(sedanA(), suvB(), testYear)
	require.NotNil(t, c)

	assert.Equal(t, model.SideLeft, rowByLabel(t, c, "Price").Better)
	assert.Equal(t, model.SideLeft, rowByLabel(t, c, "Year").Better)
	assert.Equal(t, model.SideLeft, rowByLabel(t, c, "Mileage").Better)

	// String attributes carry no better-side claim.
	assert.Equal(t, model.SideNone, rowByLabel(t, c, "Condition").Better)
	assert.Equal(t, model.SideNone, rowByLabel(t, c, "Color").Better)

	// B has more features overall, so "More features" lands on its side.
	assert.Contains(t, c.RightReport.Pros, "More features")
	assert.Contains(t, c.LeftReport.Cons, "Fewer features")
	assert.Contains(t, c.RightReport.Pros, "More safety features")

	// The hybrid sedan wins on price, running costs, and environment.
	assert.Contains(t, c.LeftReport.Pros, "Lower price")
	assert.Contains(t, c.LeftReport.Pros, "Lower 5-year cost of ownership")
	assert.Contains(t, c.LeftReport.Pros, "Better environmental score")

	// Price (20) + cost (20) beats features (15) + safety (20).
	assert.Equal(t, model.SideLeft, c.Recommended)
	require.NotNil(t, c.Recommendation())
	assert.Equal(t, "veh-a", c.Recommendation().ID)
	assert.Equal(t, model.ConfidenceSlight, c.Confidence)
}

func TestVehiclesAt_UseCases(t *testing.T) {
	c := VehiclesAt(sedanA(), suvB(), testYear)
	require.NotNil(t, c)

	// Sedan: urban driving, hybrid long-distance, and the budget pick.
	assert.Contains(t, c.LeftReport.UseCases, "Urban driving")
	assert.Contains(t, c.LeftReport.UseCases, "Long distance travel")
	assert.Contains(t, c.LeftReport.UseCases, "Budget-conscious buyers")

	// SUV: off-road, not urban, not the budget pick.
	assert.Contains(t, c.RightReport.UseCases, "Off-road adventures")
	assert.NotContains(t, c.RightReport.UseCases, "Urban driving")
	assert.NotContains(t, c.RightReport.UseCases, "Budget-conscious buyers")
}

func TestVehiclesAt_UseCases_FamilyAndComfort(t *testing.T) {
	family := sedanA()
	family.Category = "SUV"
	family.Features = []string{"third_row_seats", "leather_seats", "heated_seats", "sunroof",
		"bluetooth", "navigation", "apple_carplay"}

	c := VehiclesAt(family, suvB(), testYear)
	require.NotNil(t, c)

	assert.Contains(t, c.LeftReport.UseCases, "Family trips")
	assert.Contains(t, c.LeftReport.UseCases, "Comfortable commuting")
	assert.Contains(t, c.LeftReport.UseCases, "Tech enthusiasts")
}

func TestVehiclesAt_OrderSymmetry(t *testing.T) {
	forward := VehiclesAt(sedanA(), suvB(), testYear)
	reversed := VehiclesAt(suvB(), sedanA(), testYear)
	require.NotNil(t, forward)
	require.NotNil(t, reversed)

	// Swapping the inputs swaps the labels but not the verdict.
	assert.Equal(t, forward.Recommendation().ID, reversed.Recommendation().ID)
	assert.Equal(t, forward.Confidence, reversed.Confidence)
	assert.Equal(t, forward.LeftReport.Pros, reversed.RightReport.Pros)
	assert.Equal(t, forward.LeftReport.Score, reversed.RightReport.Score)
}

func TestVehiclesAt_HighConfidence(t *testing.T) {
	// One side winning everything pushes the gap past the high threshold.
	strong := sedanA()
	strong.Features = []string{"backup_camera", "lane_assist", "blind_spot_monitoring", "bluetooth"}
	weak := suvB()
	weak.Features = nil
	weak.Price = 60000
	weak.Mileage = 180000

	c := VehiclesAt(strong, weak, testYear)
	require.NotNil(t, c)
	assert.Equal(t, model.SideLeft, c.Recommended)
	assert.Equal(t, model.ConfidenceHigh, c.Confidence)
}
