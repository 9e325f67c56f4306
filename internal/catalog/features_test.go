package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_KnownFeature(t *testing.T) {
	f := Lookup("backup_camera")
	assert.Equal(t, "Backup Camera", f.Label)
	assert.Equal(t, CategorySafety, f.Category)
	assert.Equal(t, ImportanceHigh, f.Importance)
}

func TestLookup_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Lookup("backup_camera"), Lookup("Backup_Camera"))
}

func TestLookup_UnknownFeatureSynthesizesDefault(t *testing.T) {
	f := Lookup("heated_steering_wheel")
	assert.Equal(t, "Heated Steering Wheel", f.Label)
	assert.Equal(t, CategoryTechnology, f.Category)
	assert.Equal(t, ImportanceMedium, f.Importance)
	assert.NotEmpty(t, f.Icon)
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("sunroof"))
	assert.False(t, Known("flux_capacitor"))
}

func TestCountByCategory(t *testing.T) {
	features := []string{"backup_camera", "lane_assist", "leather_seats", "bluetooth", "mystery_gadget"}

	assert.Equal(t, 2, CountByCategory(features, CategorySafety))
	assert.Equal(t, 1, CountByCategory(features, CategoryComfort))
	// Unknown identifiers default to the technology category.
	assert.Equal(t, 2, CountByCategory(features, CategoryTechnology))
	assert.Equal(t, 0, CountByCategory(nil, CategorySafety))
}

func TestCountByImportance(t *testing.T) {
	features := []string{"backup_camera", "lane_assist", "bluetooth"}

	assert.Equal(t, 2, CountByImportance(features, ImportanceHigh))
	assert.Equal(t, 1, CountByImportance(features, ImportanceMedium))
}
