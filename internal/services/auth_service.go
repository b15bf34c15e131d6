package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"

	apperrors "vestuario/internal/errors"
	"vestuario/internal/models"
	"vestuario/internal/repositories"
	"vestuario/internal/validation"
	"vestuario/pkg/events"
)

// EventPublisher is the slice of the broker client the services need.
// A nil publisher disables publication.
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// AuthService owns the account credential workflow: registration, login,
// profile update, password change and account deletion. Every email is
// normalized (trimmed, lower-cased) before any lookup or comparison.
type AuthService struct {
	userRepo     repositories.UserRepository
	playerRepo   repositories.PlayerRepository
	matchRepo    repositories.MatchRepository
	trainingRepo repositories.TrainingRepository
	publisher    EventPublisher
	jwtSecret    []byte
	tokenDurat   time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService. The collection repositories are
// needed for the cascading cleanup on account deletion.
func NewAuthService(
	userRepo repositories.UserRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	trainingRepo repositories.TrainingRepository,
	publisher EventPublisher,
	jwtSecret string,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		playerRepo:   playerRepo,
		matchRepo:    matchRepo,
		trainingRepo: trainingRepo,
		publisher:    publisher,
		jwtSecret:    []byte(jwtSecret),
		tokenDurat:   24 * time.Hour, // Token valid for 24 hours
	}
}

// hashPassword is the password digest primitive: SHA-256 over the UTF-8 bytes
// of the raw password, rendered as lowercase hex. Unsalted single-round digest
// carried over from the stored account format.
func hashPassword(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Register validates and creates a new account. The store's unique index on
// email remains the backstop for two registrations racing past the existence
// check here.
func (s *AuthService) Register(name, email, rawPassword string) (*models.User, error) {
	if msg := validation.DisplayName(name); msg != "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidFormat, msg)
	}
	normalized := validation.NormalizeEmail(email)
	if msg := validation.Email(normalized); msg != "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidFormat, msg)
	}
	if msg := validation.Password(rawPassword); msg != "" {
		return nil, apperrors.ErrWeakPassword
	}

	existing, err := s.userRepo.FindByEmail(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}

	user := &models.User{
		Name:         trimmed(name),
		Email:        normalized,
		PasswordHash: hashPassword(rawPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.publishAccount(events.AccountRegistered, user.Email)
	return user, nil
}

// Login authenticates an account and returns it unchanged.
func (s *AuthService) Login(email, rawPassword string) (*models.User, error) {
	normalized := validation.NormalizeEmail(email)

	user, err := s.userRepo.FindByEmail(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	if user.PasswordHash != hashPassword(rawPassword) {
		return nil, apperrors.ErrBadCredentials
	}
	return user, nil
}

// UpdateProfile renames an account and/or moves it to a new email. Name and
// email are re-validated as in Register; the password hash and creation time
// are untouched.
func (s *AuthService) UpdateProfile(oldEmail, newName, newEmail string) (*models.User, error) {
	oldNorm := validation.NormalizeEmail(oldEmail)
	newNorm := validation.NormalizeEmail(newEmail)

	if msg := validation.DisplayName(newName); msg != "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidFormat, msg)
	}
	if msg := validation.Email(newNorm); msg != "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidFormat, msg)
	}

	current, err := s.userRepo.FindByEmail(oldNorm)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if current == nil {
		return nil, apperrors.ErrNotFound
	}

	if newNorm != oldNorm {
		taken, err := s.userRepo.FindByEmail(newNorm)
		if err != nil {
			return nil, fmt.Errorf("failed to check email availability: %w", err)
		}
		if taken != nil {
			return nil, apperrors.ErrDuplicateEmail
		}
	}

	rows, err := s.userRepo.UpdateProfile(oldNorm, trimmed(newName), newNorm)
	if err != nil {
		return nil, err
	}
	if rows <= 0 {
		return nil, fmt.Errorf("could not update the profile")
	}

	current.Name = trimmed(newName)
	current.Email = newNorm
	return current, nil
}

// ChangePassword verifies the current password and persists the digest of the
// new one.
func (s *AuthService) ChangePassword(email, currentRaw, newRaw string) error {
	normalized := validation.NormalizeEmail(email)

	user, err := s.userRepo.FindByEmail(normalized)
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}
	if user == nil {
		return apperrors.ErrNotFound
	}
	if user.PasswordHash != hashPassword(currentRaw) {
		return apperrors.ErrBadCredentials
	}
	if msg := validation.Password(newRaw); msg != "" {
		return apperrors.ErrWeakPassword
	}

	rows, err := s.userRepo.UpdatePasswordHash(normalized, hashPassword(newRaw))
	if err != nil {
		return err
	}
	if rows <= 0 {
		return fmt.Errorf("could not update the password")
	}
	return nil
}

// DeleteAccount permanently removes the account and everything it owns:
// players, matches and trainings go with it.
func (s *AuthService) DeleteAccount(email string) error {
	normalized := validation.NormalizeEmail(email)

	user, err := s.userRepo.FindByEmail(normalized)
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}
	if user == nil {
		return apperrors.ErrNotFound
	}

	// Explicit cleanup keeps stores without a cascading constraint honest.
	if err := s.playerRepo.DeleteByUser(user.ID); err != nil {
		return err
	}
	if err := s.matchRepo.DeleteByUser(user.ID); err != nil {
		return err
	}
	if err := s.trainingRepo.DeleteByUser(user.ID); err != nil {
		return err
	}

	rows, err := s.userRepo.Delete(normalized)
	if err != nil {
		return err
	}
	if rows <= 0 {
		return apperrors.ErrNotFound
	}

	s.publishAccount(events.AccountDeleted, normalized)
	return nil
}

// GenerateToken issues a signed JWT carrying the session identity. This
// replaces the original's global "current user" state: every request carries
// its own session context.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"exp":     time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":     time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func (s *AuthService) publishAccount(routingKey, email string) {
	if s.publisher == nil {
		return
	}
	payload := map[string]interface{}{"email": email, "at": time.Now().Unix()}
	if err := s.publisher.Publish(routingKey, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
