package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"vestuario/internal/models"
	"vestuario/internal/services"
)

// PlayerHandler handles HTTP requests for the roster.
type PlayerHandler struct {
	service *services.PlayerService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(service *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		service: service,
	}
}

// RegisterRoutes registers the roster routes. The caller mounts these behind
// the auth middleware.
func (h *PlayerHandler) RegisterRoutes(router fiber.Router) {
	playerRoutes := router.Group("/players")
	playerRoutes.Get("/", h.HandleListPlayers)
	playerRoutes.Get("/:id", h.HandleGetPlayer)
	playerRoutes.Post("/", h.HandleCreatePlayer)
	playerRoutes.Put("/:id", h.HandleUpdatePlayer)
	playerRoutes.Delete("/:id", h.HandleDeletePlayer)
}

// HandleListPlayers returns the authenticated user's roster, newest first.
func (h *PlayerHandler) HandleListPlayers(c *fiber.Ctx) error {
	players, err := h.service.ListPlayers(currentUserID(c))
	if err != nil {
		log.Printf("Error listing players: %v", err)
		return respondServiceError(c, err)
	}
	return c.JSON(players)
}

// HandleGetPlayer returns one player.
func (h *PlayerHandler) HandleGetPlayer(c *fiber.Ctx) error {
	player, err := h.service.GetPlayer(currentUserID(c), c.Params("id"))
	if err != nil {
		log.Printf("Error getting player %s: %v", c.Params("id"), err)
		return respondServiceError(c, err)
	}
	return c.JSON(player)
}

// HandleCreatePlayer validates and creates a roster entry.
func (h *PlayerHandler) HandleCreatePlayer(c *fiber.Ctx) error {
	var player models.Player
	if err := c.BodyParser(&player); err != nil {
		log.Printf("Error parsing player request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	player.ID = "" // creation always assigns a fresh ID

	saved, err := h.service.SavePlayer(currentUserID(c), player)
	if err != nil {
		log.Printf("Error creating player: %v", err)
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// HandleUpdatePlayer validates and edits an existing roster entry.
func (h *PlayerHandler) HandleUpdatePlayer(c *fiber.Ctx) error {
	var player models.Player
	if err := c.BodyParser(&player); err != nil {
		log.Printf("Error parsing player request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	player.ID = c.Params("id")

	saved, err := h.service.SavePlayer(currentUserID(c), player)
	if err != nil {
		log.Printf("Error updating player %s: %v", player.ID, err)
		return respondServiceError(c, err)
	}
	return c.JSON(saved)
}

// HandleDeletePlayer removes one roster entry.
func (h *PlayerHandler) HandleDeletePlayer(c *fiber.Ctx) error {
	if err := h.service.DeletePlayer(currentUserID(c), c.Params("id")); err != nil {
		log.Printf("Error deleting player %s: %v", c.Params("id"), err)
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Player deleted",
	})
}
