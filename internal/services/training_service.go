package services

import (
	"log"
	"strconv"
	"strings"
	"time"

	"vestuario/internal/models"
	"vestuario/internal/repositories"
	"vestuario/internal/validation"
	"vestuario/internal/watch"
	"vestuario/pkg/events"
)

// TrainingService handles business logic for training sessions.
type TrainingService struct {
	repo      repositories.TrainingRepository
	hub       *watch.Hub
	publisher EventPublisher
}

// NewTrainingService creates a new TrainingService. hub and publisher may be nil.
func NewTrainingService(repo repositories.TrainingRepository, hub *watch.Hub, publisher EventPublisher) *TrainingService {
	return &TrainingService{
		repo:      repo,
		hub:       hub,
		publisher: publisher,
	}
}

// ListTrainings returns the user's training sessions, newest first.
func (s *TrainingService) ListTrainings(userID string) ([]models.Training, error) {
	return s.repo.ListByUser(userID)
}

// GetTraining returns a single training session owned by the user.
func (s *TrainingService) GetTraining(userID, id string) (*models.Training, error) {
	return s.repo.GetByID(userID, id)
}

// SaveTraining validates and persists a training session. Editing (non-empty
// ID) keeps historic dates valid; creating rejects dates before today.
func (s *TrainingService) SaveTraining(userID string, training models.Training) (*models.Training, error) {
	editing := training.ID != ""
	ok, fieldErrs := validation.CheckTrainingForm(validation.TrainingForm{
		Name:     training.Name,
		Date:     training.DateText,
		Duration: strconv.Itoa(training.DurationMin),
		Editing:  editing,
	}, time.Now())
	if !ok {
		return nil, validation.FieldErrors(fieldErrs)
	}

	training.UserID = userID
	training.Name = strings.TrimSpace(training.Name)
	training.DateText = strings.TrimSpace(training.DateText)
	if training.Type == "" {
		training.Type = models.TrainingStrength
	}

	if !editing {
		if err := s.repo.Create(&training); err != nil {
			return nil, err
		}
	} else {
		existing, err := s.repo.GetByID(userID, training.ID)
		if err != nil {
			return nil, err
		}
		// Request bodies carry no timestamps; keep the stored ones so the
		// creation time (and with it the list order) survives the edit.
		training.Model = existing.Model
		if err := s.repo.Update(&training); err != nil {
			return nil, err
		}
	}

	s.notify(userID, events.TrainingRecorded, training.ID)
	return &training, nil
}

// DeleteTraining removes one training session owned by the user.
func (s *TrainingService) DeleteTraining(userID, id string) error {
	if err := s.repo.Delete(userID, id); err != nil {
		return err
	}
	s.notify(userID, events.TrainingDeleted, id)
	return nil
}

func (s *TrainingService) notify(userID, routingKey, trainingID string) {
	if s.hub != nil {
		s.hub.Notify(userID, watch.Trainings)
	}
	if s.publisher == nil {
		return
	}
	payload := map[string]interface{}{"user_id": userID, "training_id": trainingID, "at": time.Now().Unix()}
	if err := s.publisher.Publish(routingKey, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for training %s: %v", routingKey, trainingID, err)
	}
}
