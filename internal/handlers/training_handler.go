package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"vestuario/internal/models"
	"vestuario/internal/services"
)

// TrainingHandler handles HTTP requests for training sessions.
type TrainingHandler struct {
	service *services.TrainingService
}

// NewTrainingHandler creates a new TrainingHandler.
func NewTrainingHandler(service *services.TrainingService) *TrainingHandler {
	return &TrainingHandler{
		service: service,
	}
}

// RegisterRoutes registers the training routes. The caller mounts these
// behind the auth middleware.
func (h *TrainingHandler) RegisterRoutes(router fiber.Router) {
	trainingRoutes := router.Group("/trainings")
	trainingRoutes.Get("/", h.HandleListTrainings)
	trainingRoutes.Get("/:id", h.HandleGetTraining)
	trainingRoutes.Post("/", h.HandleCreateTraining)
	trainingRoutes.Put("/:id", h.HandleUpdateTraining)
	trainingRoutes.Delete("/:id", h.HandleDeleteTraining)
}

// HandleListTrainings returns the authenticated user's sessions, newest first.
func (h *TrainingHandler) HandleListTrainings(c *fiber.Ctx) error {
	trainings, err := h.service.ListTrainings(currentUserID(c))
	if err != nil {
		log.Printf("Error listing trainings: %v", err)
		return respondServiceError(c, err)
	}
	return c.JSON(trainings)
}

// HandleGetTraining returns one training session.
func (h *TrainingHandler) HandleGetTraining(c *fiber.Ctx) error {
	training, err := h.service.GetTraining(currentUserID(c), c.Params("id"))
	if err != nil {
		log.Printf("Error getting training %s: %v", c.Params("id"), err)
		return respondServiceError(c, err)
	}
	return c.JSON(training)
}

// HandleCreateTraining validates and records a training session.
func (h *TrainingHandler) HandleCreateTraining(c *fiber.Ctx) error {
	var training models.Training
	if err := c.BodyParser(&training); err != nil {
		log.Printf("Error parsing training request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	training.ID = ""

	saved, err := h.service.SaveTraining(currentUserID(c), training)
	if err != nil {
		log.Printf("Error creating training: %v", err)
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// HandleUpdateTraining validates and edits an existing training session.
func (h *TrainingHandler) HandleUpdateTraining(c *fiber.Ctx) error {
	var training models.Training
	if err := c.BodyParser(&training); err != nil {
		log.Printf("Error parsing training request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	training.ID = c.Params("id")

	saved, err := h.service.SaveTraining(currentUserID(c), training)
	if err != nil {
		log.Printf("Error updating training %s: %v", training.ID, err)
		return respondServiceError(c, err)
	}
	return c.JSON(saved)
}

// HandleDeleteTraining removes one training session.
func (h *TrainingHandler) HandleDeleteTraining(c *fiber.Ctx) error {
	if err := h.service.DeleteTraining(currentUserID(c), c.Params("id")); err != nil {
		log.Printf("Error deleting training %s: %v", c.Params("id"), err)
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Training deleted",
	})
}
