package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler converts handler errors into generic JSON envelopes. Internal
// detail (query failures, pool exhaustion) is logged with the request id and
// never reaches the client body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		if code < fiber.StatusInternalServerError {
			message = fiberErr.Message
		}
	}

	requestID, _ := c.Locals(RequestIDKey).(string)
	log.Printf("[%s] %s %s failed (%d): %v", requestID, c.Method(), c.Path(), code, err)

	return c.Status(code).JSON(fiber.Map{"error": message})
}

// NotFound is the catch-all for unknown routes.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
}
