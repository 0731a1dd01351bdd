package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/prephub-api/internal/api/dto"
	"github.com/spec-kit/prephub-api/internal/service"
	apperrors "github.com/spec-kit/prephub-api/pkg/util/errorutil"
)

// JobsHandler manages the job-application list.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// List GET /jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	jobs, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i]))
	}
	return c.JSON(items)
}

// Create POST /jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Company == "" || req.Position == "" {
		return apperrors.NewValidationError("company and position required", nil)
	}

	job, err := h.service.Add(c.Context(), service.JobInput{
		Company:  req.Company,
		Position: req.Position,
		Location: req.Location,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.JobCreatedResponse{
		Success: true,
		Message: fmt.Sprintf("✅ Job at %s (%s) added!", job.Company, job.Position),
		Job:     dto.NewJobResponse(job),
	})
}
