package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	apperrors "vestuario/internal/errors"
	"vestuario/internal/models"
)

// MockPlayerRepository is an in-memory implementation of PlayerRepository.
// Insertion order is kept so ListByUser can return newest first.
type MockPlayerRepository struct {
	players map[string]models.Player
	order   []string
	mu      sync.RWMutex
}

// NewMockPlayerRepository creates a new instance of MockPlayerRepository.
func NewMockPlayerRepository() *MockPlayerRepository {
	return &MockPlayerRepository{
		players: make(map[string]models.Player),
	}
}

// ListByUser returns the user's roster, newest first.
func (r *MockPlayerRepository) ListByUser(userID string) ([]models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Player, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		if p, ok := r.players[r.order[i]]; ok && p.UserID == userID {
			list = append(list, p)
		}
	}
	return list, nil
}

// GetByID returns a single player owned by the user.
func (r *MockPlayerRepository) GetByID(userID, id string) (*models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[id]
	if !ok || p.UserID != userID {
		return nil, fmt.Errorf("player with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &p, nil
}

// Create adds a new player.
func (r *MockPlayerRepository) Create(player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	r.players[player.ID] = *player
	r.order = append(r.order, player.ID)
	return nil
}

// Update modifies an existing player.
func (r *MockPlayerRepository) Update(player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[player.ID]; !ok {
		return fmt.Errorf("player with ID %s: %w", player.ID, apperrors.ErrNotFound)
	}
	r.players[player.ID] = *player
	return nil
}

// Delete removes one player owned by the user.
func (r *MockPlayerRepository) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[id]
	if !ok || p.UserID != userID {
		return fmt.Errorf("player with ID %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.players, id)
	r.order = pruneOrder(r.order, id)
	return nil
}

// DeleteByUser removes every player owned by the user.
func (r *MockPlayerRepository) DeleteByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.players {
		if p.UserID == userID {
			delete(r.players, id)
			r.order = pruneOrder(r.order, id)
		}
	}
	return nil
}

// pruneOrder drops id from an insertion-order slice so deleted records are
// neither iterated nor duplicated if the same ID is ever inserted again.
func pruneOrder(order []string, id string) []string {
	kept := order[:0]
	for _, v := range order {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}
