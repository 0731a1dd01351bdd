package domain

import "time"

// Default attribute values for job applications.
const (
	DefaultJobLocation = "Bangalore"
	DefaultJobStatus   = "Applied"
)

// JobApplication tracks a single job-hunt entry. Applications live in
// process memory only; ids restart with the process.
type JobApplication struct {
	ID          int64
	Company     string
	Position    string
	Location    string
	Status      string
	Notes       string
	DateApplied time.Time
}
