package response

import "github.com/gofiber/fiber/v3"

// Envelope is the uniform response body. Data is omitted on errors and on
// 204-like successes.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(c fiber.Ctx, code int, message string, data any) error {
	return c.Status(code).JSON(Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func Error(c fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(Envelope{
		Status:  "error",
		Message: message,
	})
}
