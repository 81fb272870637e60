package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/oguzatay/motorcheck/internal/domain"
)

type MotorStore struct {
	db *sql.DB
}

func NewMotorStore(db *sql.DB) *MotorStore {
	return &MotorStore{db: db}
}

func (s *MotorStore) CreateShip(ctx context.Context, name string) (*domain.Ship, error) {
	ship := &domain.Ship{ID: uuid.NewString(), Name: name}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ships (id, name) VALUES (?, ?)
	`, ship.ID, ship.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create ship: %w", err)
	}
	return ship, nil
}

func (s *MotorStore) Create(ctx context.Context, shipID, name string, powerKW float64, rpm int, notes string) (*domain.Motor, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO motors (id, ship_id, motor_name, kw, rpm, notes) VALUES (?, ?, ?, ?, ?, ?)
	`, id, shipID, name, powerKW, rpm, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to create motor: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID returns the motor joined with its ship name, or nil when absent.
func (s *MotorStore) GetByID(ctx context.Context, id string) (*domain.Motor, error) {
	motor := &domain.Motor{}
	err := s.db.QueryRowContext(ctx, `
		SELECT m.id, m.ship_id, s.name, m.motor_name, m.kw, m.rpm, m.notes, m.created_at
		FROM motors m JOIN ships s ON s.id = m.ship_id
		WHERE m.id = ?
	`, id).Scan(&motor.ID, &motor.ShipID, &motor.ShipName, &motor.Name,
		&motor.PowerKW, &motor.RPM, &motor.Notes, &motor.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get motor: %w", err)
	}

	return motor, nil
}
