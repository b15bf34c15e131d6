package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	apperrors "vestuario/internal/errors"
	"vestuario/internal/models"
)

// MockTrainingRepository is an in-memory implementation of TrainingRepository.
type MockTrainingRepository struct {
	trainings map[string]models.Training
	order     []string
	mu        sync.RWMutex
}

// NewMockTrainingRepository creates a new instance of MockTrainingRepository.
func NewMockTrainingRepository() *MockTrainingRepository {
	return &MockTrainingRepository{
		trainings: make(map[string]models.Training),
	}
}

// ListByUser returns the user's training sessions, newest first.
func (r *MockTrainingRepository) ListByUser(userID string) ([]models.Training, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Training, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		if t, ok := r.trainings[r.order[i]]; ok && t.UserID == userID {
			list = append(list, t)
		}
	}
	return list, nil
}

// GetByID returns a single training session owned by the user.
func (r *MockTrainingRepository) GetByID(userID, id string) (*models.Training, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trainings[id]
	if !ok || t.UserID != userID {
		return nil, fmt.Errorf("training with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &t, nil
}

// Create adds a new training session.
func (r *MockTrainingRepository) Create(training *models.Training) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if training.ID == "" {
		training.ID = uuid.New().String()
	}
	r.trainings[training.ID] = *training
	r.order = append(r.order, training.ID)
	return nil
}

// Update modifies an existing training session.
func (r *MockTrainingRepository) Update(training *models.Training) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trainings[training.ID]; !ok {
		return fmt.Errorf("training with ID %s: %w", training.ID, apperrors.ErrNotFound)
	}
	r.trainings[training.ID] = *training
	return nil
}

// Delete removes one training session owned by the user.
func (r *MockTrainingRepository) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trainings[id]
	if !ok || t.UserID != userID {
		return fmt.Errorf("training with ID %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.trainings, id)
	r.order = pruneOrder(r.order, id)
	return nil
}

// DeleteByUser removes every training session owned by the user.
func (r *MockTrainingRepository) DeleteByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.trainings {
		if t.UserID == userID {
			delete(r.trainings, id)
			r.order = pruneOrder(r.order, id)
		}
	}
	return nil
}
