// Package model defines the core data types shared across the application.
package model

import (
	"fmt"
	"strings"
	"time"
)

// VehicleCondition indicates whether a listing is for a new or used car.
type VehicleCondition string

const (
	// ConditionNew represents a new, undriven vehicle.
	ConditionNew VehicleCondition = "New"
	// ConditionUsed represents a previously owned vehicle.
	ConditionUsed VehicleCondition = "Used"
)

// Vehicle represents a single car listing from the marketplace.
// It is treated as immutable within a comparison call.
type Vehicle struct {
	ID           string           `json:"id"`
	Make         string           `json:"make"`
	Model        string           `json:"model"`
	Year         int              `json:"year"`
	Price        float64          `json:"price"`
	Condition    VehicleCondition `json:"condition"`
	Transmission string           `json:"transmission"`
	Color        string           `json:"color"`
	Mileage      float64          `json:"mileage"`
	Drivetrain   string           `json:"drivetrain"`
	Type         string           `json:"type"`     // fuel/engine type, e.g. "Benzine", "Hybrid"
	Category     string           `json:"category"` // body category, e.g. "Sedan", "SUV"
	Description  string           `json:"description,omitempty"`
	Images       []string         `json:"images,omitempty"`
	Views        int              `json:"views"`
	Likes        int              `json:"likes"`
	Features     []string         `json:"features,omitempty"`
	DealershipID string           `json:"dealership_id,omitempty"`
	Status       string           `json:"status,omitempty"`
}

// Validate ensures the vehicle has the fields required for scoring and storage.
func (v *Vehicle) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("vehicle ID is required")
	}
	if v.Make == "" {
		return fmt.Errorf("vehicle make is required")
	}
	if v.Model == "" {
		return fmt.Errorf("vehicle model is required")
	}
	if v.Year <= 0 {
		return fmt.Errorf("vehicle year must be positive, got %d", v.Year)
	}
	if v.Price < 0 {
		return fmt.Errorf("vehicle price must not be negative, got %.2f", v.Price)
	}
	if v.Mileage < 0 {
		return fmt.Errorf("vehicle mileage must not be negative, got %.0f", v.Mileage)
	}
	return nil
}

// AgeIn returns the vehicle's age in whole years relative to the given
// calendar year. A model year in the future counts as age zero.
func (v *Vehicle) AgeIn(year int) int {
	age := year - v.Year
	if age < 0 {
		return 0
	}
	return age
}

// Age returns the vehicle's age relative to the current calendar year.
func (v *Vehicle) Age() int {
	return v.AgeIn(time.Now().Year())
}

// HasFeature reports whether the vehicle lists the given feature identifier.
func (v *Vehicle) HasFeature(id string) bool {
	for _, f := range v.Features {
		if strings.EqualFold(f, id) {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable "year make model" label.
func (v *Vehicle) DisplayName() string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}
