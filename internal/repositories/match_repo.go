package repositories

import "vestuario/internal/models"

// MatchRepository defines the interface for match data access. All reads are
// scoped to the owning user; ListByUser returns newest first.
type MatchRepository interface {
	ListByUser(userID string) ([]models.Match, error)
	GetByID(userID, id string) (*models.Match, error)
	Create(match *models.Match) error
	Update(match *models.Match) error
	Delete(userID, id string) error
	DeleteByUser(userID string) error
}
