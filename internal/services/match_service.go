package services

import (
	"log"
	"strings"
	"time"

	"vestuario/internal/models"
	"vestuario/internal/repositories"
	"vestuario/internal/validation"
	"vestuario/internal/watch"
	"vestuario/pkg/events"
)

// MatchService handles business logic for matches. The result is always
// derived from the scoreline here, never trusted from the caller.
type MatchService struct {
	repo      repositories.MatchRepository
	hub       *watch.Hub
	publisher EventPublisher
}

// NewMatchService creates a new MatchService. hub and publisher may be nil.
func NewMatchService(repo repositories.MatchRepository, hub *watch.Hub, publisher EventPublisher) *MatchService {
	return &MatchService{
		repo:      repo,
		hub:       hub,
		publisher: publisher,
	}
}

// ListMatches returns the user's matches, newest first.
func (s *MatchService) ListMatches(userID string) ([]models.Match, error) {
	return s.repo.ListByUser(userID)
}

// GetMatch returns a single match owned by the user.
func (s *MatchService) GetMatch(userID, id string) (*models.Match, error) {
	return s.repo.GetByID(userID, id)
}

// SaveMatch validates and persists a match. Editing (non-empty ID) allows
// dates in the past; creating does not. Negative goal counts are treated as
// zero before the result is derived.
func (s *MatchService) SaveMatch(userID string, match models.Match) (*models.Match, error) {
	editing := match.ID != ""
	ok, fieldErrs := validation.CheckMatchForm(validation.MatchForm{
		Rival:   match.Rival,
		Date:    match.DateText,
		Editing: editing,
	}, time.Now())
	if !ok {
		return nil, validation.FieldErrors(fieldErrs)
	}

	match.UserID = userID
	match.Rival = strings.TrimSpace(match.Rival)
	match.DateText = strings.TrimSpace(match.DateText)
	if match.GoalsFor < 0 {
		match.GoalsFor = 0
	}
	if match.GoalsAgainst < 0 {
		match.GoalsAgainst = 0
	}
	match.Result = validation.DeriveResult(match.GoalsFor, match.GoalsAgainst)
	if match.Competition == "" {
		match.Competition = models.CompetitionLeague
	}

	if !editing {
		if err := s.repo.Create(&match); err != nil {
			return nil, err
		}
	} else {
		existing, err := s.repo.GetByID(userID, match.ID)
		if err != nil {
			return nil, err
		}
		// Request bodies carry no timestamps; keep the stored ones so the
		// creation time (and with it the list order) survives the edit.
		match.Model = existing.Model
		if err := s.repo.Update(&match); err != nil {
			return nil, err
		}
	}

	s.notify(userID, events.MatchRecorded, match.ID)
	return &match, nil
}

// DeleteMatch removes one match owned by the user.
func (s *MatchService) DeleteMatch(userID, id string) error {
	if err := s.repo.Delete(userID, id); err != nil {
		return err
	}
	s.notify(userID, events.MatchDeleted, id)
	return nil
}

func (s *MatchService) notify(userID, routingKey, matchID string) {
	if s.hub != nil {
		s.hub.Notify(userID, watch.Matches)
	}
	if s.publisher == nil {
		return
	}
	payload := map[string]interface{}{"user_id": userID, "match_id": matchID, "at": time.Now().Unix()}
	if err := s.publisher.Publish(routingKey, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for match %s: %v", routingKey, matchID, err)
	}
}
