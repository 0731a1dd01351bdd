package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/prephub-api/internal/persistence"
	"github.com/spec-kit/prephub-api/internal/service"
)

// HealthHandler responds to liveness/readiness probes and the root summary.
type HealthHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
	redis       *persistence.Redis
	courses     *service.CourseService
	jobs        *service.JobService
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, postgres *persistence.Postgres, redis *persistence.Redis, courses *service.CourseService, jobs *service.JobService) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		postgres:    postgres,
		redis:       redis,
		courses:     courses,
		jobs:        jobs,
	}
}

// Root reports a catalog/application summary at GET /.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	jobCount, err := h.jobs.Count(c.Context())
	if err != nil {
		return err
	}
	courseCount, err := h.courses.Count(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":   h.serviceName + " LIVE ✅",
		"jobs":      jobCount,
		"courses":   courseCount,
		"endpoints": []string{"/auth", "/courses", "/jobs", "/chat"},
	})
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking dependencies.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if err := h.postgres.Ping(ctx); err != nil {
		depStatus["postgres"] = err.Error()
		ready = false
	} else {
		depStatus["postgres"] = "ok"
	}

	if err := h.redis.Ping(ctx); err != nil {
		depStatus["redis"] = err.Error()
		ready = false
	} else {
		depStatus["redis"] = "ok"
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": depStatus,
		},
	})
}
