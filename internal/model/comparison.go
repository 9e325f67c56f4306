package model

// Side identifies which vehicle in a pairwise comparison wins an attribute.
type Side int

const (
	// SideNone means neither vehicle wins (tie or incomparable).
	SideNone Side = 0
	// SideLeft means the left vehicle wins.
	SideLeft Side = 1
	// SideRight means the right vehicle wins.
	SideRight Side = 2
)

// Other returns the opposing side, or SideNone for SideNone.
func (s Side) Other() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Confidence qualifies how decisive an overall recommendation is.
type Confidence string

const (
	// ConfidenceSlight indicates a narrow score gap between the vehicles.
	ConfidenceSlight Confidence = "slight"
	// ConfidenceModerate indicates a clear but not overwhelming gap.
	ConfidenceModerate Confidence = "moderate"
	// ConfidenceHigh indicates one vehicle wins decisively.
	ConfidenceHigh Confidence = "high"
)

// AttributeRow is one line of a side-by-side comparison table.
type AttributeRow struct {
	Label  string `json:"label"`
	Left   any    `json:"left"`
	Right  any    `json:"right"`
	Better Side   `json:"better"`
}

// SideReport collects the qualitative findings for one vehicle in a comparison.
type SideReport struct {
	Pros     []string `json:"pros"`
	Cons     []string `json:"cons"`
	UseCases []string `json:"use_cases"`
	Score    float64  `json:"score"`
}

// Comparison is the full result of comparing two vehicles. It is built fresh
// on every invocation and never persisted.
type Comparison struct {
	Left        *Vehicle       `json:"left"`
	Right       *Vehicle       `json:"right"`
	Rows        []AttributeRow `json:"rows"`
	LeftReport  SideReport     `json:"left_report"`
	RightReport SideReport     `json:"right_report"`
	Recommended Side           `json:"recommended"` // SideNone means evenly matched
	Confidence  Confidence     `json:"confidence"`
}

// Recommendation returns the vehicle the comparison recommends, or nil when
// the two are evenly matched.
func (c *Comparison) Recommendation() *Vehicle {
	switch c.Recommended {
	case SideLeft:
		return c.Left
	case SideRight:
		return c.Right
	default:
		return nil
	}
}
