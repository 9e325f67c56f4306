package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carwise/carwise/internal/model"
)

func TestBetterSide_LowerIsBetter(t *testing.T) {
	for _, attr := range []Attribute{AttrPrice, AttrMileage, AttrTotalCost, AttrDepreciation} {
		t.Run(string(attr), func(t *testing.T) {
			assert.Equal(t, model.SideLeft, BetterSide(attr, 100.0, 200.0))
			assert.Equal(t, model.SideRight, BetterSide(attr, 200.0, 100.0))
			assert.Equal(t, model.SideNone, BetterSide(attr, 100.0, 100.0))
		})
	}
}

func TestBetterSide_HigherIsBetter(t *testing.T) {
	for _, attr := range []Attribute{AttrYear, AttrValueScore} {
		t.Run(string(attr), func(t *testing.T) {
			assert.Equal(t, model.SideLeft, BetterSide(attr, 2024, 2020))
			assert.Equal(t, model.SideRight, BetterSide(attr, 2020, 2024))
			assert.Equal(t, model.SideNone, BetterSide(attr, 2022, 2022))
		})
	}
}

func TestBetterSide_NilHandling(t *testing.T) {
	assert.Equal(t, model.SideNone, BetterSide(AttrPrice, nil, nil))
	assert.Equal(t, model.SideRight, BetterSide(AttrPrice, nil, 100.0))
	assert.Equal(t, model.SideLeft, BetterSide(AttrPrice, 100.0, nil))

	var missing *float64
	assert.Equal(t, model.SideRight, BetterSide(AttrPrice, missing, 100.0))

	var noFeatures []string
	assert.Equal(t, model.SideLeft, BetterSide(AttrFeatures, []string{"bluetooth"}, noFeatures))
}

func TestBetterSide_FeatureCounts(t *testing.T) {
	left := []string{"bluetooth", "navigation", "sunroof"}
	right := []string{"bluetooth"}

	assert.Equal(t, model.SideLeft, BetterSide(AttrFeatures, left, right))
	assert.Equal(t, model.SideRight, BetterSide(AttrFeatures, right, left))
	assert.Equal(t, model.SideNone, BetterSide(AttrFeatures, left, left))
}

func TestBetterSide_SafetyFeatureCounts(t *testing.T) {
	// Three safety features against one; the comfort feature on the right
	// must not count.
	left := []string{"backup_camera", "lane_assist", "blind_spot_monitoring"}
	right := []string{"backup_camera", "leather_seats"}

	assert.Equal(t, model.SideLeft, BetterSide(AttrSafetyFeatures, left, right))
}

func TestBetterSide_CategoryFilteredCounts(t *testing.T) {
	comfortHeavy := []string{"leather_seats", "heated_seats", "sunroof"}
	techHeavy := []string{"bluetooth", "navigation", "apple_carplay"}

	assert.Equal(t, model.SideLeft, BetterSide(AttrComfortFeatures, comfortHeavy, techHeavy))
	assert.Equal(t, model.SideRight, BetterSide(AttrTechFeatures, comfortHeavy, techHeavy))
}

func TestBetterSide_UnknownAttribute(t *testing.T) {
	// No claim of superiority for attributes the comparator does not
	// understand.
	assert.Equal(t, model.SideNone, BetterSide("paint_quality", 1.0, 2.0))
	assert.Equal(t, model.SideNone, BetterSide("condition", "New", "Used"))
}

func TestBetterSide_IntAndFloatMix(t *testing.T) {
	assert.Equal(t, model.SideLeft, BetterSide(AttrYear, 2024, 2020.0))
}
