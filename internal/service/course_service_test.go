package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/prephub-api/internal/domain"
	"github.com/spec-kit/prephub-api/internal/repository"
)

type fakeCourseRepo struct {
	nextID  int64
	courses []domain.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{nextID: 1}
}

func (r *fakeCourseRepo) Create(_ context.Context, course *domain.Course) error {
	course.ID = r.nextID
	r.nextID++
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	r.courses = append(r.courses, *course)
	return nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *domain.Course) error {
	for i := range r.courses {
		if r.courses[i].ID == course.ID {
			course.CreatedAt = r.courses[i].CreatedAt
			course.UpdatedAt = time.Now()
			r.courses[i] = *course
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	for i := range r.courses {
		if r.courses[i].ID == id {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*domain.Course, error) {
	for i := range r.courses {
		if r.courses[i].ID == id {
			c := r.courses[i]
			return &c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCourseRepo) List(_ context.Context, filter repository.CourseFilter) ([]domain.Course, error) {
	out := make([]domain.Course, 0)
	for i := range r.courses {
		if filter.Category != nil && r.courses[i].Category != *filter.Category {
			continue
		}
		if filter.Level != nil && string(r.courses[i].Level) != *filter.Level {
			continue
		}
		out = append(out, r.courses[i])
	}
	return out, nil
}

func (r *fakeCourseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.courses)), nil
}

func TestCreate_DefaultsFreeAndBeginner(t *testing.T) {
	t.Parallel()

	svc := NewCourseService(newFakeCourseRepo())
	ctx := context.Background()

	id, err := svc.Create(ctx, CourseInput{Title: "X"})
	require.NoError(t, err)
	require.Positive(t, id)

	course, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, course.IsFree)
	require.Equal(t, domain.CourseLevelBeginner, course.Level)
	require.Equal(t, domain.FreeCertificateLabel, course.CertStatus())
}

func TestCreate_PaidCourseHasNoCertLabel(t *testing.T) {
	t.Parallel()

	svc := NewCourseService(newFakeCourseRepo())
	ctx := context.Background()

	paid := false
	id, err := svc.Create(ctx, CourseInput{Title: "Paid", IsFree: &paid})
	require.NoError(t, err)

	course, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.False(t, course.IsFree)
	require.Empty(t, course.CertStatus())
}

func TestGet_UnknownIDNotFound(t *testing.T) {
	t.Parallel()

	svc := NewCourseService(newFakeCourseRepo())

	_, err := svc.Get(context.Background(), 999)
	require.Equal(t, "NOT_FOUND", errorCode(t, err))
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	t.Parallel()

	svc := NewCourseService(newFakeCourseRepo())
	ctx := context.Background()

	id, err := svc.Create(ctx, CourseInput{
		Title:       "Old",
		Description: "old desc",
		Category:    "sql",
		URL:         "http://old",
	})
	require.NoError(t, err)

	advanced := domain.CourseLevelAdvanced
	paid := false
	returnedID, err := svc.Update(ctx, id, CourseInput{
		Title:  "New",
		Level:  &advanced,
		IsFree: &paid,
	})
	require.NoError(t, err)
	require.Equal(t, id, returnedID)

	course, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "New", course.Title)
	require.Equal(t, domain.CourseLevelAdvanced, course.Level)
	require.False(t, course.IsFree)
	// Full replace: omitted fields are overwritten, not preserved.
	require.Empty(t, course.Description)
	require.Empty(t, course.Category)
	require.Empty(t, course.URL)
}

func TestUpdate_UnknownIDLeavesCatalogUnchanged(t *testing.T) {
	t.Parallel()

	svc := NewCourseService(newFakeCourseRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, CourseInput{Title: "Keep"})
	require.NoError(t, err)

	before, err := svc.List(ctx, CourseFilter{})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 999, CourseInput{Title: "Nope"})
	require.Equal(t, "NOT_FOUND", errorCode(t, err))

	after, err := svc.List(ctx, CourseFilter{})
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestDelete_ThenGetNotFound(t *testing.T) {
	t.Parallel()

	svc := NewCourseService(newFakeCourseRepo())
	ctx := context.Background()

	id, err := svc.Create(ctx, CourseInput{Title: "Gone"})
	require.NoError(t, err)

	returnedID, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, returnedID)

	_, err = svc.Get(ctx, id)
	require.Equal(t, "NOT_FOUND", errorCode(t, err))

	_, err = svc.Delete(ctx, id)
	require.Equal(t, "NOT_FOUND", errorCode(t, err))
}

func TestList_FiltersByCategoryAndLevel(t *testing.T) {
	t.Parallel()

	svc := NewCourseService(newFakeCourseRepo())
	ctx := context.Background()

	advanced := domain.CourseLevelAdvanced
	_, err := svc.Create(ctx, CourseInput{Title: "A", Category: "dsa"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CourseInput{Title: "B", Category: "dsa", Level: &advanced})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CourseInput{Title: "C", Category: "web"})
	require.NoError(t, err)

	all, err := svc.List(ctx, CourseFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	dsa := "dsa"
	byCategory, err := svc.List(ctx, CourseFilter{Category: &dsa})
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
	for _, course := range byCategory {
		require.Equal(t, "dsa", course.Category)
	}

	level := string(domain.CourseLevelAdvanced)
	both, err := svc.List(ctx, CourseFilter{Category: &dsa, Level: &level})
	require.NoError(t, err)
	require.Len(t, both, 1)
	require.Equal(t, "B", both[0].Title)
}
