package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "vestuario/internal/errors"
	"vestuario/internal/validation"
)

// respondServiceError translates a service failure into an HTTP response.
// Field-level validation failures carry the per-field message map; taxonomy
// errors map through their status codes; anything else is a 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  map[string]string(fieldErrs),
		})
	}

	httpErr := apperrors.MapErrorToHTTP(err)
	return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
}

// currentUserID reads the authenticated user id stored by the auth middleware.
func currentUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}

// currentEmail reads the authenticated email stored by the auth middleware.
func currentEmail(c *fiber.Ctx) string {
	if email, ok := c.Locals("email").(string); ok {
		return email
	}
	return ""
}
