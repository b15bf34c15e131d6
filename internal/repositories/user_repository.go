package repositories

import "vestuario/internal/models"

// UserRepository defines the interface for account data access. FindByEmail
// expects the already-normalized email and returns (nil, nil) when no account
// matches; the update methods report rows affected so callers can detect
// lost updates.
type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	UpdateProfile(oldEmail, newName, newEmail string) (int64, error)
	UpdatePasswordHash(email, newHash string) (int64, error)
	Delete(email string) (int64, error)
}
