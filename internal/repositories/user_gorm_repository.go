package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "vestuario/internal/errors"
	"vestuario/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new account. The unique index on email is the backstop for
// two concurrent registrations racing past the service-level existence check.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves an account by normalized email, or (nil, nil) when
// none exists.
func (r *GORMUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetByID retrieves an account by its ID.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// UpdateProfile renames the account addressed by oldEmail and returns the
// number of rows touched.
func (r *GORMUserRepository) UpdateProfile(oldEmail, newName, newEmail string) (int64, error) {
	res := r.db.Model(&models.User{}).
		Where("email = ?", oldEmail).
		Updates(map[string]interface{}{"name": newName, "email": newEmail})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return 0, apperrors.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("failed to update profile for %s: %w", oldEmail, res.Error)
	}
	return res.RowsAffected, nil
}

// UpdatePasswordHash replaces the stored digest and returns rows touched.
func (r *GORMUserRepository) UpdatePasswordHash(email, newHash string) (int64, error) {
	res := r.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("password_hash", newHash)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update password for %s: %w", email, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete permanently removes the account row. Owned players, matches and
// trainings go with it through the ON DELETE CASCADE constraint.
func (r *GORMUserRepository) Delete(email string) (int64, error) {
	res := r.db.Unscoped().Where("email = ?", email).Delete(&models.User{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete user %s: %w", email, res.Error)
	}
	return res.RowsAffected, nil
}
