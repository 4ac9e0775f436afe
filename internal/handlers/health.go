package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"meetup_backend/dto"
)

// Health godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  dto.HealthResponse
// @Router   /api/health [get]
func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "OK"})
	}
}

// NotFound answers any route no handler claimed. Registered last.
func NotFound() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"message": "Route not found"})
	}
}

// ErrorHandler renders errors that escaped a handler (including panics
// turned into errors by the recover middleware) in the usual envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return c.Status(code).JSON(dto.ErrorResponse{Message: err.Error()})
}
