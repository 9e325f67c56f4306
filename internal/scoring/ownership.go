package scoring

import (
	"time"

	"github.com/carwise/carwise/internal/catalog"
	"github.com/carwise/carwise/internal/model"
)

// OwnershipYears is the projection horizon for the cost-of-ownership
// estimate.
const OwnershipYears = 5

// CostBreakdown itemizes the projected cost of owning a vehicle over the
// projection horizon.
type CostBreakdown struct {
	Depreciation  float64 `json:"depreciation"`
	Maintenance   float64 `json:"maintenance"`
	Insurance     float64 `json:"insurance"`
	Fuel          float64 `json:"fuel"`
	Registration  float64 `json:"registration"`
	Total         float64 `json:"total"`
	AnnualMileage int     `json:"annual_mileage"`
}

// OwnershipCost projects the five-year total cost of owning a vehicle,
// evaluated against the current calendar year. A nil vehicle yields nil.
func OwnershipCost(v *model.Vehicle) *CostBreakdown {
	return OwnershipCostAt(v, time.Now().Year())
}

// OwnershipCostAt is OwnershipCost with an explicit reference year.
func OwnershipCostAt(v *model.Vehicle, year int) *CostBreakdown {
	if v == nil {
		return nil
	}

	b := &CostBreakdown{
		Depreciation:  Depreciation(v, year, OwnershipYears),
		Maintenance:   catalog.AnnualMaintenance(v.Condition) * OwnershipYears,
		Insurance:     catalog.AnnualInsurance(v.Category) * OwnershipYears,
		Fuel:          catalog.AnnualFuel(v.Type, v.Category) * OwnershipYears,
		Registration:  catalog.AnnualRegistration * OwnershipYears,
		AnnualMileage: catalog.AnnualMileageAssumption,
	}
	b.Total = b.Depreciation + b.Maintenance + b.Insurance + b.Fuel + b.Registration
	return b
}

// Depreciation projects the cumulative currency amount a vehicle loses over
// the given number of years. Each year's rate applies to the value already
// depreciated by the prior years, so the loss compounds on a shrinking base.
func Depreciation(v *model.Vehicle, year, years int) float64 {
	if v == nil || years <= 0 {
		return 0
	}

	currentAge := v.AgeIn(year)
	value := nonNegative(v.Price)
	total := 0.0

	for yr := 1; yr <= years; yr++ {
		rate := catalog.DepreciationRate(currentAge + yr)
		yearly := value * rate / 100
		value -= yearly
		total += yearly
	}
	return total
}
