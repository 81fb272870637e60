package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/oguzatay/motorcheck/internal/domain"
)

type TechnicianStore struct {
	db *sql.DB
}

func NewTechnicianStore(db *sql.DB) *TechnicianStore {
	return &TechnicianStore{db: db}
}

func (s *TechnicianStore) Create(ctx context.Context, name, phone, passwordHash string) (*domain.Technician, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO technicians (id, name, phone, password_hash) VALUES (?, ?, ?, ?)
	`, id, name, phone, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create technician: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *TechnicianStore) GetByID(ctx context.Context, id string) (*domain.Technician, error) {
	return s.get(ctx, "id", id)
}

func (s *TechnicianStore) GetByPhone(ctx context.Context, phone string) (*domain.Technician, error) {
	return s.get(ctx, "phone", phone)
}

func (s *TechnicianStore) get(ctx context.Context, column, value string) (*domain.Technician, error) {
	tech := &domain.Technician{}
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT id, name, phone, password_hash, created_at FROM technicians WHERE %s = ?
	`, column), value).Scan(&tech.ID, &tech.Name, &tech.Phone, &tech.PasswordHash, &tech.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get technician: %w", err)
	}

	return tech, nil
}
