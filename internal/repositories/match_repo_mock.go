package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	apperrors "vestuario/internal/errors"
	"vestuario/internal/models"
)

// MockMatchRepository is an in-memory implementation of MatchRepository.
type MockMatchRepository struct {
	matches map[string]models.Match
	order   []string
	mu      sync.RWMutex
}

// NewMockMatchRepository creates a new instance of MockMatchRepository.
func NewMockMatchRepository() *MockMatchRepository {
	return &MockMatchRepository{
		matches: make(map[string]models.Match),
	}
}

// ListByUser returns the user's matches, newest first.
func (r *MockMatchRepository) ListByUser(userID string) ([]models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Match, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		if m, ok := r.matches[r.order[i]]; ok && m.UserID == userID {
			list = append(list, m)
		}
	}
	return list, nil
}

// GetByID returns a single match owned by the user.
func (r *MockMatchRepository) GetByID(userID, id string) (*models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[id]
	if !ok || m.UserID != userID {
		return nil, fmt.Errorf("match with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &m, nil
}

// Create adds a new match.
func (r *MockMatchRepository) Create(match *models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if match.ID == "" {
		match.ID = uuid.New().String()
	}
	r.matches[match.ID] = *match
	r.order = append(r.order, match.ID)
	return nil
}

// Update modifies an existing match.
func (r *MockMatchRepository) Update(match *models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.matches[match.ID]; !ok {
		return fmt.Errorf("match with ID %s: %w", match.ID, apperrors.ErrNotFound)
	}
	r.matches[match.ID] = *match
	return nil
}

// Delete removes one match owned by the user.
func (r *MockMatchRepository) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.matches[id]
	if !ok || m.UserID != userID {
		return fmt.Errorf("match with ID %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.matches, id)
	r.order = pruneOrder(r.order, id)
	return nil
}

// DeleteByUser removes every match owned by the user.
func (r *MockMatchRepository) DeleteByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, m := range r.matches {
		if m.UserID == userID {
			delete(r.matches, id)
			r.order = pruneOrder(r.order, id)
		}
	}
	return nil
}
