// Package auth verifies technician credentials and issues session tokens.
// The engine itself trusts whatever technician id the caller supplies; this
// package is where that id is established.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oguzatay/motorcheck/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// technicianRepository is the subset of store.TechnicianStore that AuthService requires.
type technicianRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Technician, error)
	Create(ctx context.Context, name, phone, passwordHash string) (*domain.Technician, error)
}

type AuthService struct {
	technicians technicianRepository
	tokens      *TokenService
	logger      *slog.Logger
}

func NewAuthService(technicians technicianRepository, tokens *TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{technicians: technicians, tokens: tokens, logger: logger}
}

// Login verifies the phone/password pair and returns the technician with a
// signed session token. Missing technician and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, phone, password string) (*domain.Technician, string, error) {
	tech, err := s.technicians.GetByPhone(ctx, phone)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get technician: %w", err)
	}
	if tech == nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(tech.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(tech.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("technician logged in", "technician_id", tech.ID)
	return tech, token, nil
}

// Register creates a technician with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, name, phone, password string) (*domain.Technician, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tech, err := s.technicians.Create(ctx, name, phone, string(hash))
	if err != nil {
		return nil, fmt.Errorf("failed to create technician: %w", err)
	}
	return tech, nil
}
