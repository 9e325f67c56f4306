// Package storage provides the data persistence layer for the carwise application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carwise/carwise/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrInvalidVehicle = errors.New("invalid vehicle")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateVehicle validates a single vehicle.
func validateVehicle(v *model.Vehicle) error {
	if v == nil {
		return fmt.Errorf("%w: vehicle", ErrNilParameter)
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidVehicle, err)
	}
	return nil
}
