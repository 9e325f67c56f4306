// Package catalog holds the static reference data consulted by the scoring
// functions: the feature metadata catalog and the annual cost tables. All of
// it is initialized once at process start and never mutated.
package catalog

import "strings"

// FeatureCategory groups features by the aspect of the car they improve.
type FeatureCategory string

const (
	// CategoryComfort covers seating, climate, and ride comfort features.
	CategoryComfort FeatureCategory = "comfort"
	// CategorySafety covers driver-assistance and crash-avoidance features.
	CategorySafety FeatureCategory = "safety"
	// CategoryTechnology covers infotainment and connectivity features.
	CategoryTechnology FeatureCategory = "technology"
	// CategoryConvenience covers access and usability features.
	CategoryConvenience FeatureCategory = "convenience"
	// CategoryPerformance covers drivetrain and handling features.
	CategoryPerformance FeatureCategory = "performance"
)

// Importance tiers a feature's weight in value scoring.
type Importance string

const (
	// ImportanceHigh marks features buyers weigh heavily.
	ImportanceHigh Importance = "high"
	// ImportanceMedium marks commonly expected features.
	ImportanceMedium Importance = "medium"
	// ImportanceLow marks nice-to-have features.
	ImportanceLow Importance = "low"
)

// Feature describes one known vehicle feature identifier.
type Feature struct {
	Label       string          `json:"label"`
	Icon        string          `json:"icon"`
	Description string          `json:"description"`
	Importance  Importance      `json:"importance"`
	Category    FeatureCategory `json:"category"`
}

var features = map[string]Feature{
	// Safety
	"backup_camera":           {Label: "Backup Camera", Icon: "camera-rear", Description: "Rear-view camera for reversing", Importance: ImportanceHigh, Category: CategorySafety},
	"lane_assist":             {Label: "Lane Assist", Icon: "road-variant", Description: "Lane departure warning and keeping assistance", Importance: ImportanceHigh, Category: CategorySafety},
	"blind_spot_monitoring":   {Label: "Blind Spot Monitoring", Icon: "eye-off", Description: "Warns about vehicles in blind spots", Importance: ImportanceHigh, Category: CategorySafety},
	"adaptive_cruise_control": {Label: "Adaptive Cruise Control", Icon: "speedometer", Description: "Maintains distance to the car ahead automatically", Importance: ImportanceHigh, Category: CategorySafety},
	"parking_sensors":         {Label: "Parking Sensors", Icon: "parking", Description: "Proximity warnings when parking", Importance: ImportanceMedium, Category: CategorySafety},
	"emergency_braking":       {Label: "Emergency Braking", Icon: "car-brake-alert", Description: "Automatic braking to avoid collisions", Importance: ImportanceHigh, Category: CategorySafety},
	"airbags":                 {Label: "Airbags", Icon: "airbag", Description: "Front and side impact airbags", Importance: ImportanceMedium, Category: CategorySafety},

	// Comfort
	"leather_seats":    {Label: "Leather Seats", Icon: "car-seat", Description: "Leather upholstered seating", Importance: ImportanceHigh, Category: CategoryComfort},
	"heated_seats":     {Label: "Heated Seats", Icon: "car-seat-heater", Description: "Front seat heating", Importance: ImportanceMedium, Category: CategoryComfort},
	"ventilated_seats": {Label: "Ventilated Seats", Icon: "fan", Description: "Cooled front seats", Importance: ImportanceLow, Category: CategoryComfort},
	"sunroof":          {Label: "Sunroof", Icon: "weather-sunny", Description: "Power glass sunroof", Importance: ImportanceMedium, Category: CategoryComfort},
	"climate_control":  {Label: "Climate Control", Icon: "thermostat", Description: "Automatic dual-zone climate control", Importance: ImportanceMedium, Category: CategoryComfort},
	"third_row_seats":  {Label: "Third Row Seats", Icon: "seat-passenger", Description: "Seating for seven or more", Importance: ImportanceMedium, Category: CategoryComfort},
	"power_seats":      {Label: "Power Seats", Icon: "car-seat", Description: "Electrically adjustable seats", Importance: ImportanceLow, Category: CategoryComfort},

	// Technology
	"bluetooth":         {Label: "Bluetooth", Icon: "bluetooth", Description: "Wireless phone and audio pairing", Importance: ImportanceMedium, Category: CategoryTechnology},
	"navigation":        {Label: "Navigation", Icon: "map-marker", Description: "Built-in satellite navigation", Importance: ImportanceMedium, Category: CategoryTechnology},
	"apple_carplay":     {Label: "Apple CarPlay", Icon: "apple", Description: "iPhone screen mirroring", Importance: ImportanceMedium, Category: CategoryTechnology},
	"android_auto":      {Label: "Android Auto", Icon: "android", Description: "Android screen mirroring", Importance: ImportanceMedium, Category: CategoryTechnology},
	"premium_audio":     {Label: "Premium Audio", Icon: "speaker", Description: "Branded high-end sound system", Importance: ImportanceLow, Category: CategoryTechnology},
	"heads_up_display":  {Label: "Heads-Up Display", Icon: "monitor", Description: "Speed and navigation projected on windshield", Importance: ImportanceLow, Category: CategoryTechnology},
	"wireless_charging": {Label: "Wireless Charging", Icon: "battery-charging-wireless", Description: "Qi phone charging pad", Importance: ImportanceLow, Category: CategoryTechnology},

	// Convenience
	"keyless_entry":  {Label: "Keyless Entry", Icon: "key-wireless", Description: "Proximity unlocking", Importance: ImportanceMedium, Category: CategoryConvenience},
	"remote_start":   {Label: "Remote Start", Icon: "remote", Description: "Start the engine from the key fob", Importance: ImportanceLow, Category: CategoryConvenience},
	"power_liftgate": {Label: "Power Liftgate", Icon: "car-back", Description: "Hands-free trunk opening", Importance: ImportanceLow, Category: CategoryConvenience},
	"roof_rack":      {Label: "Roof Rack", Icon: "car-estate", Description: "Factory roof rails", Importance: ImportanceLow, Category: CategoryConvenience},

	// Performance / efficiency
	"turbocharged":         {Label: "Turbocharged", Icon: "turbocharger", Description: "Forced-induction engine", Importance: ImportanceMedium, Category: CategoryPerformance},
	"sport_package":        {Label: "Sport Package", Icon: "car-sports", Description: "Sport suspension and trim", Importance: ImportanceLow, Category: CategoryPerformance},
	"auto_start_stop":      {Label: "Auto Start-Stop", Icon: "engine", Description: "Engine shuts off at idle to save fuel", Importance: ImportanceLow, Category: CategoryPerformance},
	"eco_mode":             {Label: "Eco Mode", Icon: "leaf", Description: "Efficiency-optimized drive mode", Importance: ImportanceLow, Category: CategoryPerformance},
	"regenerative_braking": {Label: "Regenerative Braking", Icon: "battery-arrow-up", Description: "Recovers energy while braking", Importance: ImportanceMedium, Category: CategoryPerformance},
}

// Lookup returns the metadata for a feature identifier. Unknown identifiers
// never fail: a default entry is synthesized from the identifier itself so
// that callers never branch on missing metadata.
func Lookup(id string) Feature {
	if f, ok := features[strings.ToLower(id)]; ok {
		return f
	}
	return Feature{
		Label:       titleCase(id),
		Icon:        "car-cog",
		Description: titleCase(id),
		Importance:  ImportanceMedium,
		Category:    CategoryTechnology,
	}
}

// Known reports whether the identifier is present in the catalog.
func Known(id string) bool {
	_, ok := features[strings.ToLower(id)]
	return ok
}

// CountByCategory returns how many of the given feature identifiers belong to
// the requested category, resolving unknown identifiers through Lookup.
func CountByCategory(ids []string, category FeatureCategory) int {
	count := 0
	for _, id := range ids {
		if Lookup(id).Category == category {
			count++
		}
	}
	return count
}

// CountByImportance returns how many of the given feature identifiers carry
// the requested importance tier.
func CountByImportance(ids []string, importance Importance) int {
	count := 0
	for _, id := range ids {
		if Lookup(id).Importance == importance {
			count++
		}
	}
	return count
}

// titleCase turns "heated_steering_wheel" into "Heated Steering Wheel".
func titleCase(id string) string {
	words := strings.Split(strings.ReplaceAll(strings.ToLower(id), "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
