package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	apperrors "vestuario/internal/errors"
	"vestuario/internal/models"
	"vestuario/internal/repositories"
	"vestuario/internal/validation"
	"vestuario/internal/watch"
	"vestuario/pkg/events"
)

// PlayerService handles business logic for the roster: save (create or edit)
// with full form validation including roster-wide dorsal uniqueness.
type PlayerService struct {
	repo      repositories.PlayerRepository
	hub       *watch.Hub
	publisher EventPublisher
}

// NewPlayerService creates a new PlayerService. hub and publisher may be nil.
func NewPlayerService(repo repositories.PlayerRepository, hub *watch.Hub, publisher EventPublisher) *PlayerService {
	return &PlayerService{
		repo:      repo,
		hub:       hub,
		publisher: publisher,
	}
}

// ListPlayers returns the user's roster, newest first.
func (s *PlayerService) ListPlayers(userID string) ([]models.Player, error) {
	return s.repo.ListByUser(userID)
}

// GetPlayer returns a single player owned by the user.
func (s *PlayerService) GetPlayer(userID, id string) (*models.Player, error) {
	return s.repo.GetByID(userID, id)
}

// SavePlayer validates and persists a player. An empty ID means create; a
// non-empty ID means edit, which excludes the record itself from the dorsal
// uniqueness check. The save is refused while any field error remains.
func (s *PlayerService) SavePlayer(userID string, player models.Player) (*models.Player, error) {
	roster, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	ok, fieldErrs := validation.CheckPlayerForm(validation.PlayerForm{
		SelfID: player.ID,
		Name:   player.Name,
		Age:    strconv.Itoa(player.Age),
		Number: player.Number,
	}, roster)
	if !ok {
		if msg, clash := fieldErrs["number"]; clash && len(fieldErrs) == 1 {
			return nil, fmt.Errorf("%s: %w", msg, apperrors.ErrUniquenessViolation)
		}
		return nil, validation.FieldErrors(fieldErrs)
	}

	player.UserID = userID
	player.Name = strings.TrimSpace(player.Name)
	player.Rating = clamp(player.Rating, 40, 99)
	if player.Position == "" {
		player.Position = models.PositionMidfielder
	}
	if player.Status == "" {
		player.Status = models.StatusStarter
	}

	if player.ID == "" {
		if err := s.repo.Create(&player); err != nil {
			return nil, err
		}
	} else {
		existing, err := s.repo.GetByID(userID, player.ID)
		if err != nil {
			return nil, err
		}
		// Request bodies carry no timestamps; keep the stored ones so the
		// creation time (and with it the list order) survives the edit.
		player.Model = existing.Model
		if err := s.repo.Update(&player); err != nil {
			return nil, err
		}
	}

	s.notify(userID, events.PlayerSaved, player.ID)
	return &player, nil
}

// DeletePlayer removes one player owned by the user.
func (s *PlayerService) DeletePlayer(userID, id string) error {
	if err := s.repo.Delete(userID, id); err != nil {
		return err
	}
	s.notify(userID, events.PlayerDeleted, id)
	return nil
}

func (s *PlayerService) notify(userID, routingKey, playerID string) {
	if s.hub != nil {
		s.hub.Notify(userID, watch.Players)
	}
	if s.publisher == nil {
		return
	}
	payload := map[string]interface{}{"user_id": userID, "player_id": playerID, "at": time.Now().Unix()}
	if err := s.publisher.Publish(routingKey, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for player %s: %v", routingKey, playerID, err)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
