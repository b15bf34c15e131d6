package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "vestuario/internal/errors"
	"vestuario/internal/models"
)

// GORMTrainingRepository is a GORM implementation of TrainingRepository.
type GORMTrainingRepository struct {
	db *gorm.DB
}

// NewGORMTrainingRepository creates a new instance of GORMTrainingRepository.
func NewGORMTrainingRepository(db *gorm.DB) *GORMTrainingRepository {
	return &GORMTrainingRepository{
		db: db,
	}
}

// ListByUser retrieves the user's training sessions, newest first.
func (r *GORMTrainingRepository) ListByUser(userID string) ([]models.Training, error) {
	var trainings []models.Training
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&trainings).Error; err != nil {
		return nil, fmt.Errorf("failed to list trainings for user %s: %w", userID, err)
	}
	return trainings, nil
}

// GetByID retrieves a single training session owned by the user.
func (r *GORMTrainingRepository) GetByID(userID, id string) (*models.Training, error) {
	var training models.Training
	if err := r.db.First(&training, "user_id = ? AND id = ?", userID, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("training with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get training by ID %s: %w", id, err)
	}
	return &training, nil
}

// Create inserts a new training session.
func (r *GORMTrainingRepository) Create(training *models.Training) error {
	if training.ID == "" {
		training.ID = uuid.New().String()
	}
	if err := r.db.Create(training).Error; err != nil {
		return fmt.Errorf("failed to create training: %w", err)
	}
	return nil
}

// Update saves all fields of an existing training session.
func (r *GORMTrainingRepository) Update(training *models.Training) error {
	res := r.db.Save(training)
	if res.Error != nil {
		return fmt.Errorf("failed to update training: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("training with ID %s: %w", training.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes one training session owned by the user.
func (r *GORMTrainingRepository) Delete(userID, id string) error {
	res := r.db.Unscoped().Where("user_id = ? AND id = ?", userID, id).Delete(&models.Training{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete training %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("training with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteByUser removes every training session owned by the user.
func (r *GORMTrainingRepository) DeleteByUser(userID string) error {
	if err := r.db.Unscoped().Where("user_id = ?", userID).Delete(&models.Training{}).Error; err != nil {
		return fmt.Errorf("failed to delete trainings for user %s: %w", userID, err)
	}
	return nil
}
