package handler

import (
	"errors"

	"go-sari-pos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helpers to pull user info from the JWT context (set by auth middleware)
func getUserEmail(c *fiber.Ctx) string {
	userEmail := c.Locals("user_email")
	if userEmail == nil {
		return "system"
	}
	return userEmail.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// respondServiceError maps service sentinels to status codes. Validation
// failures are 400, missing records 404, double settlement 409; anything
// else is a storage failure the caller may retry.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrEmptyCart):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCreditNotFound),
		errors.Is(err, service.ErrLiabilityNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrCreditAlreadyPaid),
		errors.Is(err, service.ErrCreditNotPaid):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Storage failure, please retry", "detail": err.Error()})
}
