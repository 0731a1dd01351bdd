package repository

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/prephub-api/internal/domain"
)

// JobRepository stores job applications. The backing store is deliberately
// in-process: applications are scratch data with no durability requirement.
type JobRepository interface {
	Create(ctx context.Context, job *domain.JobApplication) error
	List(ctx context.Context) ([]domain.JobApplication, error)
	Count(ctx context.Context) (int64, error)
}

type memoryJobRepository struct {
	mu     sync.RWMutex
	nextID int64
	jobs   []domain.JobApplication
}

// NewMemoryJobRepository returns an empty in-memory implementation.
func NewMemoryJobRepository() JobRepository {
	return &memoryJobRepository{nextID: 1}
}

func (r *memoryJobRepository) Create(_ context.Context, job *domain.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job.ID = r.nextID
	r.nextID++
	if job.DateApplied.IsZero() {
		job.DateApplied = time.Now()
	}
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *memoryJobRepository) List(_ context.Context) ([]domain.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.JobApplication, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

func (r *memoryJobRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.jobs)), nil
}
