package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/prephub-api/internal/domain"
	"github.com/spec-kit/prephub-api/internal/repository"
	apperrors "github.com/spec-kit/prephub-api/pkg/util/errorutil"
)

// CourseInput describes creation and update payloads. Update replaces every
// mutable field with these values.
type CourseInput struct {
	Title       string
	Description string
	Category    string
	Level       *domain.CourseLevel
	IsFree      *bool
	URL         string
}

// CourseFilter narrows listings; nil fields match everything.
type CourseFilter struct {
	Category *string
	Level    *string
}

// CourseService coordinates catalog reads and admin mutations.
type CourseService struct {
	courses repository.CourseRepository
}

// NewCourseService constructs the service.
func NewCourseService(courses repository.CourseRepository) *CourseService {
	return &CourseService{courses: courses}
}

// List returns courses matching the filter, ordered by ascending id.
func (s *CourseService) List(ctx context.Context, filter CourseFilter) ([]domain.Course, error) {
	courses, err := s.courses.List(ctx, repository.CourseFilter{
		Category: filter.Category,
		Level:    filter.Level,
	})
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return courses, nil
}

// Get fetches a single course by id.
func (s *CourseService) Get(ctx context.Context, id int64) (*domain.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("course", nil)
		}
		return nil, apperrors.NewStoreError(err)
	}
	return course, nil
}

// Create inserts a course and returns the store-assigned id. Omitted level
// defaults to beginner, omitted is_free to true; duplicate titles are fine.
func (s *CourseService) Create(ctx context.Context, input CourseInput) (int64, error) {
	course := courseFromInput(input)
	if err := s.courses.Create(ctx, course); err != nil {
		return 0, apperrors.NewStoreError(err)
	}
	return course.ID, nil
}

// Update fully replaces the mutable fields of an existing course.
func (s *CourseService) Update(ctx context.Context, id int64, input CourseInput) (int64, error) {
	course := courseFromInput(input)
	course.ID = id
	if err := s.courses.Update(ctx, course); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFound("course", nil)
		}
		return 0, apperrors.NewStoreError(err)
	}
	return id, nil
}

// Delete removes a course permanently.
func (s *CourseService) Delete(ctx context.Context, id int64) (int64, error) {
	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFound("course", nil)
		}
		return 0, apperrors.NewStoreError(err)
	}
	return id, nil
}

// Count reports the catalog size for the root summary endpoint.
func (s *CourseService) Count(ctx context.Context) (int64, error) {
	count, err := s.courses.Count(ctx)
	if err != nil {
		return 0, apperrors.NewStoreError(err)
	}
	return count, nil
}

func courseFromInput(input CourseInput) *domain.Course {
	course := &domain.Course{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    input.Category,
		Level:       domain.CourseLevelBeginner,
		IsFree:      true,
		URL:         input.URL,
	}
	if input.Level != nil && *input.Level != "" {
		course.Level = *input.Level
	}
	if input.IsFree != nil {
		course.IsFree = *input.IsFree
	}
	return course
}
