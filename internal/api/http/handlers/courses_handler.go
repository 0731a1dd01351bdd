package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/prephub-api/internal/api/dto"
	"github.com/spec-kit/prephub-api/internal/cache"
	"github.com/spec-kit/prephub-api/internal/service"
	apperrors "github.com/spec-kit/prephub-api/pkg/util/errorutil"
)

// CoursesHandler manages catalog endpoints. Mutations are deliberately
// unauthenticated, matching the observed design.
type CoursesHandler struct {
	service *service.CourseService
	cache   *cache.CourseCache
}

// NewCoursesHandler constructs handler.
func NewCoursesHandler(courseService *service.CourseService, courseCache *cache.CourseCache) *CoursesHandler {
	return &CoursesHandler{service: courseService, cache: courseCache}
}

// List GET /courses?category=&level=.
func (h *CoursesHandler) List(c *fiber.Ctx) error {
	query := string(c.Request().URI().QueryString())
	if body, ok := h.cache.Get(c.Context(), query); ok {
		c.Set("X-Cache", "HIT")
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	}

	filter := service.CourseFilter{}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if level := c.Query("level"); level != "" {
		filter.Level = &level
	}

	courses, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		items = append(items, dto.NewCourseResponse(&courses[i]))
	}

	c.Set("X-Cache", "MISS")
	if err := c.JSON(items); err != nil {
		return err
	}
	body := make([]byte, len(c.Response().Body()))
	copy(body, c.Response().Body())
	h.cache.Set(c.Context(), query, body)
	return nil
}

// Get GET /courses/:id.
func (h *CoursesHandler) Get(c *fiber.Ctx) error {
	id, err := parseCourseID(c)
	if err != nil {
		return err
	}
	course, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCourseResponse(course))
}

// Create POST /courses.
func (h *CoursesHandler) Create(c *fiber.Ctx) error {
	input, err := parseCourseRequest(c)
	if err != nil {
		return err
	}
	courseID, err := h.service.Create(c.Context(), input)
	if err != nil {
		return err
	}
	h.cache.Invalidate(c.Context())
	return c.Status(http.StatusCreated).JSON(dto.CourseMutationResponse{
		Success:  true,
		Message:  "Course created successfully!",
		CourseID: courseID,
	})
}

// Update PUT /courses/:id.
func (h *CoursesHandler) Update(c *fiber.Ctx) error {
	id, err := parseCourseID(c)
	if err != nil {
		return err
	}
	input, err := parseCourseRequest(c)
	if err != nil {
		return err
	}
	courseID, err := h.service.Update(c.Context(), id, input)
	if err != nil {
		return err
	}
	h.cache.Invalidate(c.Context())
	return c.JSON(dto.CourseMutationResponse{
		Success:  true,
		Message:  "Course updated successfully!",
		CourseID: courseID,
	})
}

// Delete DELETE /courses/:id.
func (h *CoursesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseCourseID(c)
	if err != nil {
		return err
	}
	courseID, err := h.service.Delete(c.Context(), id)
	if err != nil {
		return err
	}
	h.cache.Invalidate(c.Context())
	return c.JSON(dto.CourseMutationResponse{
		Success:  true,
		Message:  "Course deleted successfully!",
		CourseID: courseID,
	})
}

func parseCourseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid course id", nil)
	}
	return id, nil
}

func parseCourseRequest(c *fiber.Ctx) (service.CourseInput, error) {
	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return service.CourseInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" {
		return service.CourseInput{}, apperrors.NewValidationError("title required", nil)
	}
	return service.CourseInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Level:       req.Level,
		IsFree:      req.IsFree,
		URL:         req.URL,
	}, nil
}
