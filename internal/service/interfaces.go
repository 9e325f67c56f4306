// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/carwise/carwise/internal/model"
)

// VehicleFilter defines filtering options for vehicle queries.
type VehicleFilter struct {
	Make     string
	Category string
	Status   string
	Limit    int
}

// Storage defines the contract for the local favorites garage.
type Storage interface {
	// Vehicle operations
	SaveVehicle(ctx context.Context, vehicle *model.Vehicle) error
	GetVehicle(ctx context.Context, id string) (*model.Vehicle, error)
	ListVehicles(ctx context.Context, filter VehicleFilter) ([]model.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
	CountVehicles(ctx context.Context) (int, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
