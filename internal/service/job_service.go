package service

import (
	"context"

	"github.com/spec-kit/prephub-api/internal/domain"
	"github.com/spec-kit/prephub-api/internal/repository"
	apperrors "github.com/spec-kit/prephub-api/pkg/util/errorutil"
)

// JobInput describes a new job application.
type JobInput struct {
	Company  string
	Position string
	Location string
	Status   string
	Notes    string
}

// JobService manages the in-memory job-application list.
type JobService struct {
	jobs repository.JobRepository
}

// NewJobService constructs the service.
func NewJobService(jobs repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

// Add records a new application, applying location/status defaults.
func (s *JobService) Add(ctx context.Context, input JobInput) (*domain.JobApplication, error) {
	job := &domain.JobApplication{
		Company:  input.Company,
		Position: input.Position,
		Location: input.Location,
		Status:   input.Status,
		Notes:    input.Notes,
	}
	if job.Location == "" {
		job.Location = domain.DefaultJobLocation
	}
	if job.Status == "" {
		job.Status = domain.DefaultJobStatus
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return job, nil
}

// List returns all recorded applications.
func (s *JobService) List(ctx context.Context) ([]domain.JobApplication, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return jobs, nil
}

// Count reports the number of applications for the root summary endpoint.
func (s *JobService) Count(ctx context.Context) (int64, error) {
	count, err := s.jobs.Count(ctx)
	if err != nil {
		return 0, apperrors.NewInternalError(err)
	}
	return count, nil
}
