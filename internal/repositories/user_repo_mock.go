package repositories

import (
	"sync"

	"github.com/google/uuid"

	apperrors "vestuario/internal/errors"
	"vestuario/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	byEmail map[string]models.User
	mu      sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		byEmail: make(map[string]models.User),
	}
}

// Create adds a new account, enforcing the email uniqueness the store's
// unique index would.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return apperrors.ErrDuplicateEmail
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.byEmail[user.Email] = *user
	return nil
}

// FindByEmail returns the account for the normalized email, or (nil, nil).
func (r *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetByID returns the account with the given ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byEmail {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// UpdateProfile renames the account addressed by oldEmail.
func (r *MockUserRepository) UpdateProfile(oldEmail, newName, newEmail string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[oldEmail]
	if !ok {
		return 0, nil
	}
	if newEmail != oldEmail {
		if _, taken := r.byEmail[newEmail]; taken {
			return 0, apperrors.ErrDuplicateEmail
		}
		delete(r.byEmail, oldEmail)
	}
	user.Name = newName
	user.Email = newEmail
	r.byEmail[newEmail] = user
	return 1, nil
}

// UpdatePasswordHash replaces the stored digest.
func (r *MockUserRepository) UpdatePasswordHash(email, newHash string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return 0, nil
	}
	user.PasswordHash = newHash
	r.byEmail[email] = user
	return 1, nil
}

// Delete removes the account row.
func (r *MockUserRepository) Delete(email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[email]; !ok {
		return 0, nil
	}
	delete(r.byEmail, email)
	return 1, nil
}
