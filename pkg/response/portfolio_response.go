// Package response provides the uniform API response envelope.
package response

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope is the standard API response structure. Every endpoint, success or
// failure, returns this shape.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK returns a 200 response with data.
func OK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Data:    data,
	})
}

// OKMessage returns a 200 response carrying a confirmation message.
func OKMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Message: message,
	})
}

// Fail returns an error response with the given status.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{
		Success: false,
		Error:   message,
	})
}

// BadRequest returns a 400 error response.
func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, message)
}

// InternalError returns a 500 error response. The underlying message is
// surfaced verbatim in the envelope's error field.
func InternalError(c *fiber.Ctx, err error) error {
	return Fail(c, fiber.StatusInternalServerError, err.Error())
}
