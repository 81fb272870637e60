package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/oguzatay/motorcheck/internal/domain"
)

// PhotoStore persists photo evidence references. Photos belong to exactly
// one completion record and are returned in upload (insertion) order.
type PhotoStore struct {
	db *sql.DB
}

func NewPhotoStore(db *sql.DB) *PhotoStore {
	return &PhotoStore{db: db}
}

// Append adds an evidence row. Duplicate URLs are allowed and create
// distinct rows.
func (s *PhotoStore) Append(ctx context.Context, completionID int64, imageURL string) (*domain.Photo, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO photos (completion_id, image_url) VALUES (?, ?)
	`, completionID, imageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to append photo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	photo := &domain.Photo{}
	err = s.db.QueryRowContext(ctx, `
		SELECT id, completion_id, image_url, uploaded_at FROM photos WHERE id = ?
	`, id).Scan(&photo.ID, &photo.CompletionID, &photo.ImageURL, &photo.UploadedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	return photo, nil
}

func (s *PhotoStore) ListByCompletion(ctx context.Context, completionID int64) ([]*domain.Photo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, completion_id, image_url, uploaded_at FROM photos
		WHERE completion_id = ? ORDER BY id ASC
	`, completionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return scanPhotos(rows)
}

// ListByMotor returns every photo for the motor keyed by completion id,
// each list in upload order.
func (s *PhotoStore) ListByMotor(ctx context.Context, motorID string) (map[int64][]*domain.Photo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.completion_id, p.image_url, p.uploaded_at
		FROM photos p JOIN completions c ON c.id = p.completion_id
		WHERE c.motor_id = ? ORDER BY p.id ASC
	`, motorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	photos, err := scanPhotos(rows)
	if err != nil {
		return nil, err
	}

	byCompletion := make(map[int64][]*domain.Photo)
	for _, p := range photos {
		byCompletion[p.CompletionID] = append(byCompletion[p.CompletionID], p)
	}
	return byCompletion, nil
}

func (s *PhotoStore) CountByCompletion(ctx context.Context, completionID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM photos WHERE completion_id = ?
	`, completionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return n, nil
}

func scanPhotos(rows *sql.Rows) ([]*domain.Photo, error) {
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var photos []*domain.Photo
	for rows.Next() {
		photo := &domain.Photo{}
		if err := rows.Scan(&photo.ID, &photo.CompletionID, &photo.ImageURL, &photo.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, photo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photos: %w", err)
	}

	return photos, nil
}
