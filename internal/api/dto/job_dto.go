package dto

import "github.com/spec-kit/prephub-api/internal/domain"

// JobRequest payload for recording an application.
type JobRequest struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Location string `json:"location"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

// JobResponse is a recorded application.
type JobResponse struct {
	ID          int64  `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	DateApplied string `json:"date_applied"`
}

// JobCreatedResponse mirrors the original backend's envelope.
type JobCreatedResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Job     JobResponse `json:"job"`
}

// NewJobResponse projects a domain application.
func NewJobResponse(job *domain.JobApplication) JobResponse {
	return JobResponse{
		ID:          job.ID,
		Company:     job.Company,
		Position:    job.Position,
		Location:    job.Location,
		Status:      job.Status,
		Notes:       job.Notes,
		DateApplied: job.DateApplied.Format("2006-01-02"),
	}
}
