package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"employeeapi/internal/model"
)

const healthTimeout = 2 * time.Second

// HealthCheck reports whether the backing store answers a ping.
//
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} model.ErrorResponse
// @Router /health [get]
func HealthCheck(store Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store == nil {
			return writeError(c, fiber.StatusServiceUnavailable, model.ErrorCodeServiceUnavailable, "dependency unavailable")
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := store.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, model.ErrorCodeServiceUnavailable, "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200 while the process serves requests.
//
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
