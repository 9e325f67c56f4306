package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/carwise/carwise/internal/common"
	"github.com/carwise/carwise/internal/model"
	"github.com/carwise/carwise/internal/service"
)

// SaveVehicle inserts or updates a vehicle in the favorites garage.
func (s *SQLiteStorage) SaveVehicle(ctx context.Context, vehicle *model.Vehicle) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateVehicle(vehicle); err != nil {
		return err
	}

	features, err := json.Marshal(vehicle.Features)
	if err != nil {
		return fmt.Errorf("failed to encode features: %w", err)
	}
	images, err := json.Marshal(vehicle.Images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO vehicles (
			id, make, model, year, price, condition, transmission, color,
			mileage, drivetrain, fuel_type, category, description, features,
			dealership_id, status, views, likes, images
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			make = excluded.make,
			model = excluded.model,
			year = excluded.year,
			price = excluded.price,
			condition = excluded.condition,
			transmission = excluded.transmission,
			color = excluded.color,
			mileage = excluded.mileage,
			drivetrain = excluded.drivetrain,
			fuel_type = excluded.fuel_type,
			category = excluded.category,
			description = excluded.description,
			features = excluded.features,
			dealership_id = excluded.dealership_id,
			status = excluded.status,
			views = excluded.views,
			likes = excluded.likes,
			images = excluded.images,
			updated_at = CURRENT_TIMESTAMP
	`,
		vehicle.ID, vehicle.Make, vehicle.Model, vehicle.Year, vehicle.Price,
		string(vehicle.Condition), vehicle.Transmission, vehicle.Color,
		vehicle.Mileage, vehicle.Drivetrain, vehicle.Type, vehicle.Category,
		vehicle.Description, string(features), vehicle.DealershipID,
		vehicle.Status, vehicle.Views, vehicle.Likes, string(images),
	)
	if err != nil {
		return fmt.Errorf("failed to save vehicle: %w", err)
	}
	return nil
}

// GetVehicle retrieves a vehicle by ID. Returns common.ErrNotFound when the
// vehicle is not in the garage.
func (s *SQLiteStorage) GetVehicle(ctx context.Context, id string) (*model.Vehicle, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, make, model, year, price, condition, transmission, color,
			mileage, drivetrain, fuel_type, category, description, features,
			dealership_id, status, views, likes, images
		FROM vehicles
		WHERE id = ?
	`, id)

	vehicle, err := scanVehicle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("vehicle %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return vehicle, nil
}

// ListVehicles returns vehicles matching the filter, newest model years first.
func (s *SQLiteStorage) ListVehicles(ctx context.Context, filter service.VehicleFilter) ([]model.Vehicle, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, make, model, year, price, condition, transmission, color,
			mileage, drivetrain, fuel_type, category, description, features,
			dealership_id, status, views, likes, images
		FROM vehicles`

	var conditions []string
	var args []any
	if filter.Make != "" {
		conditions = append(conditions, "make = ? COLLATE NOCASE")
		args = append(args, filter.Make)
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ? COLLATE NOCASE")
		args = append(args, filter.Category)
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY year DESC, make, model"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var vehicles []model.Vehicle
	for rows.Next() {
		vehicle, scanErr := scanVehicle(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", scanErr)
		}
		vehicles = append(vehicles, *vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vehicles: %w", err)
	}
	return vehicles, nil
}

// DeleteVehicle removes a vehicle from the garage.
func (s *SQLiteStorage) DeleteVehicle(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("vehicle %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// CountVehicles returns the number of vehicles in the garage.
func (s *SQLiteStorage) CountVehicles(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vehicles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}
	return count, nil
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row scanner) (*model.Vehicle, error) {
	var (
		vehicle          model.Vehicle
		condition        string
		features, images sql.NullString
	)

	err := row.Scan(
		&vehicle.ID, &vehicle.Make, &vehicle.Model, &vehicle.Year,
		&vehicle.Price, &condition, &vehicle.Transmission, &vehicle.Color,
		&vehicle.Mileage, &vehicle.Drivetrain, &vehicle.Type,
		&vehicle.Category, &vehicle.Description, &features,
		&vehicle.DealershipID, &vehicle.Status, &vehicle.Views,
		&vehicle.Likes, &images,
	)
	if err != nil {
		return nil, err
	}

	vehicle.Condition = model.VehicleCondition(condition)
	if features.Valid && features.String != "" {
		if err := json.Unmarshal([]byte(features.String), &vehicle.Features); err != nil {
			return nil, fmt.Errorf("failed to decode features: %w", err)
		}
	}
	if images.Valid && images.String != "" {
		if err := json.Unmarshal([]byte(images.String), &vehicle.Images); err != nil {
			return nil, fmt.Errorf("failed to decode images: %w", err)
		}
	}
	return &vehicle, nil
}
