package repositories

import "vestuario/internal/models"

// PlayerRepository defines the interface for roster data access. All reads
// are scoped to the owning user; ListByUser returns newest first.
type PlayerRepository interface {
	ListByUser(userID string) ([]models.Player, error)
	GetByID(userID, id string) (*models.Player, error)
	Create(player *models.Player) error
	Update(player *models.Player) error
	Delete(userID, id string) error
	DeleteByUser(userID string) error
}
