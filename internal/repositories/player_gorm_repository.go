package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "vestuario/internal/errors"
	"vestuario/internal/models"
)

// GORMPlayerRepository is a GORM implementation of PlayerRepository.
type GORMPlayerRepository struct {
	db *gorm.DB
}

// NewGORMPlayerRepository creates a new instance of GORMPlayerRepository.
func NewGORMPlayerRepository(db *gorm.DB) *GORMPlayerRepository {
	return &GORMPlayerRepository{
		db: db,
	}
}

// ListByUser retrieves the user's roster, newest first.
func (r *GORMPlayerRepository) ListByUser(userID string) ([]models.Player, error) {
	var players []models.Player
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to list players for user %s: %w", userID, err)
	}
	return players, nil
}

// GetByID retrieves a single player owned by the user.
func (r *GORMPlayerRepository) GetByID(userID, id string) (*models.Player, error) {
	var player models.Player
	if err := r.db.First(&player, "user_id = ? AND id = ?", userID, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("player with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get player by ID %s: %w", id, err)
	}
	return &player, nil
}

// Create inserts a new player.
func (r *GORMPlayerRepository) Create(player *models.Player) error {
	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	if err := r.db.Create(player).Error; err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

// Update saves all fields of an existing player.
func (r *GORMPlayerRepository) Update(player *models.Player) error {
	res := r.db.Save(player)
	if res.Error != nil {
		return fmt.Errorf("failed to update player: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("player with ID %s: %w", player.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes one player owned by the user.
func (r *GORMPlayerRepository) Delete(userID, id string) error {
	res := r.db.Unscoped().Where("user_id = ? AND id = ?", userID, id).Delete(&models.Player{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete player %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("player with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteByUser removes every player owned by the user. Account deletion
// relies on this when the store has no cascading constraint.
func (r *GORMPlayerRepository) DeleteByUser(userID string) error {
	if err := r.db.Unscoped().Where("user_id = ?", userID).Delete(&models.Player{}).Error; err != nil {
		return fmt.Errorf("failed to delete players for user %s: %w", userID, err)
	}
	return nil
}
