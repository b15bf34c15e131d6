package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "vestuario/internal/errors"
	"vestuario/internal/models"
)

// GORMMatchRepository is a GORM implementation of MatchRepository.
type GORMMatchRepository struct {
	db *gorm.DB
}

// NewGORMMatchRepository creates a new instance of GORMMatchRepository.
func NewGORMMatchRepository(db *gorm.DB) *GORMMatchRepository {
	return &GORMMatchRepository{
		db: db,
	}
}

// ListByUser retrieves the user's matches, newest first.
func (r *GORMMatchRepository) ListByUser(userID string) ([]models.Match, error) {
	var matches []models.Match
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&matches).Error; err != nil {
		return nil, fmt.Errorf("failed to list matches for user %s: %w", userID, err)
	}
	return matches, nil
}

// GetByID retrieves a single match owned by the user.
func (r *GORMMatchRepository) GetByID(userID, id string) (*models.Match, error) {
	var match models.Match
	if err := r.db.First(&match, "user_id = ? AND id = ?", userID, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("match with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get match by ID %s: %w", id, err)
	}
	return &match, nil
}

// Create inserts a new match.
func (r *GORMMatchRepository) Create(match *models.Match) error {
	if match.ID == "" {
		match.ID = uuid.New().String()
	}
	if err := r.db.Create(match).Error; err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

// Update saves all fields of an existing match.
func (r *GORMMatchRepository) Update(match *models.Match) error {
	res := r.db.Save(match)
	if res.Error != nil {
		return fmt.Errorf("failed to update match: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("match with ID %s: %w", match.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes one match owned by the user.
func (r *GORMMatchRepository) Delete(userID, id string) error {
	res := r.db.Unscoped().Where("user_id = ? AND id = ?", userID, id).Delete(&models.Match{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete match %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("match with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteByUser removes every match owned by the user.
func (r *GORMMatchRepository) DeleteByUser(userID string) error {
	if err := r.db.Unscoped().Where("user_id = ?", userID).Delete(&models.Match{}).Error; err != nil {
		return fmt.Errorf("failed to delete matches for user %s: %w", userID, err)
	}
	return nil
}
