package server

import "github.com/gofiber/fiber/v2"

// respondError sends the wire-contract error shape: {"error": msg} with 400
// for missing input or 500 for processing failures.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}
