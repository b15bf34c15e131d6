package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"vestuario/internal/models"
	"vestuario/internal/services"
)

// MatchHandler handles HTTP requests for matches.
type MatchHandler struct {
	service *services.MatchService
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(service *services.MatchService) *MatchHandler {
	return &MatchHandler{
		service: service,
	}
}

// RegisterRoutes registers the match routes. The caller mounts these behind
// the auth middleware.
func (h *MatchHandler) RegisterRoutes(router fiber.Router) {
	matchRoutes := router.Group("/matches")
	matchRoutes.Get("/", h.HandleListMatches)
	matchRoutes.Get("/:id", h.HandleGetMatch)
	matchRoutes.Post("/", h.HandleCreateMatch)
	matchRoutes.Put("/:id", h.HandleUpdateMatch)
	matchRoutes.Delete("/:id", h.HandleDeleteMatch)
}

// HandleListMatches returns the authenticated user's matches, newest first.
func (h *MatchHandler) HandleListMatches(c *fiber.Ctx) error {
	matches, err := h.service.ListMatches(currentUserID(c))
	if err != nil {
		log.Printf("Error listing matches: %v", err)
		return respondServiceError(c, err)
	}
	return c.JSON(matches)
}

// HandleGetMatch returns one match.
func (h *MatchHandler) HandleGetMatch(c *fiber.Ctx) error {
	match, err := h.service.GetMatch(currentUserID(c), c.Params("id"))
	if err != nil {
		log.Printf("Error getting match %s: %v", c.Params("id"), err)
		return respondServiceError(c, err)
	}
	return c.JSON(match)
}

// HandleCreateMatch validates and records a match. The result field of the
// body is ignored; it is derived from the scoreline.
func (h *MatchHandler) HandleCreateMatch(c *fiber.Ctx) error {
	var match models.Match
	if err := c.BodyParser(&match); err != nil {
		log.Printf("Error parsing match request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	match.ID = ""

	saved, err := h.service.SaveMatch(currentUserID(c), match)
	if err != nil {
		log.Printf("Error creating match: %v", err)
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// HandleUpdateMatch validates and edits an existing match.
func (h *MatchHandler) HandleUpdateMatch(c *fiber.Ctx) error {
	var match models.Match
	if err := c.BodyParser(&match); err != nil {
		log.Printf("Error parsing match request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	match.ID = c.Params("id")

	saved, err := h.service.SaveMatch(currentUserID(c), match)
	if err != nil {
		log.Printf("Error updating match %s: %v", match.ID, err)
		return respondServiceError(c, err)
	}
	return c.JSON(saved)
}

// HandleDeleteMatch removes one match.
func (h *MatchHandler) HandleDeleteMatch(c *fiber.Ctx) error {
	if err := h.service.DeleteMatch(currentUserID(c), c.Params("id")); err != nil {
		log.Printf("Error deleting match %s: %v", c.Params("id"), err)
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Match deleted",
	})
}
