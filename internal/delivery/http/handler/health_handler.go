package handler

import (
	"context"
	"time"

	"pcd-jobs/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is a dependency checked by /ready.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks  map[string]Pinger
	timeout time.Duration
}

func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	if checks == nil {
		checks = map[string]Pinger{}
	}
	return &HealthHandler{checks: checks, timeout: 2 * time.Second}
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.OK(c, response.MessageOK, fiber.Map{"status": "up"})
}

// Ready reports each dependency as "up" or "down" and answers 503 if any is
// down.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	status := fiber.StatusOK
	out := make(map[string]string, len(h.checks))
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			out[name] = "down"
			status = fiber.StatusServiceUnavailable
			continue
		}
		out[name] = "up"
	}

	msg := response.MessageOK
	if status != fiber.StatusOK {
		msg = "not ready"
	}
	return response.Success(c, status, msg, out)
}
