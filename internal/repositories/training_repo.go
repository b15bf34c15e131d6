package repositories

import "vestuario/internal/models"

// TrainingRepository defines the interface for training session data access.
// All reads are scoped to the owning user; ListByUser returns newest first.
type TrainingRepository interface {
	ListByUser(userID string) ([]models.Training, error)
	GetByID(userID, id string) (*models.Training, error)
	Create(training *models.Training) error
	Update(training *models.Training) error
	Delete(userID, id string) error
	DeleteByUser(userID string) error
}
