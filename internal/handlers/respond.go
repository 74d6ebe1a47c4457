package handlers

import (
	"log"

	"katalog/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a recognized error kind to its status and client-safe
// message. Unexpected errors are logged with full detail server-side; the
// diagnostic detail is echoed to the client only outside production.
func respondError(c *fiber.Ctx, err error, env string) error {
	status := apperrors.StatusCode(err)
	body := fiber.Map{"message": apperrors.ClientMessage(err)}
	if status == fiber.StatusInternalServerError {
		log.Printf("Unexpected error handling %s %s: %v", c.Method(), c.Path(), err)
		if env != "production" {
			body["error"] = err.Error()
		}
	}
	return c.Status(status).JSON(body)
}
