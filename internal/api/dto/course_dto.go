package dto

import "github.com/spec-kit/prephub-api/internal/domain"

// CourseRequest payload for create and update; update replaces all fields.
type CourseRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Level       *domain.CourseLevel `json:"level"`
	IsFree      *bool               `json:"is_free"`
	URL         string              `json:"url"`
}

// CourseResponse is a catalog entry with its derived certificate label.
type CourseResponse struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Category    string             `json:"category,omitempty"`
	Level       domain.CourseLevel `json:"level"`
	IsFree      bool               `json:"is_free"`
	URL         string             `json:"url,omitempty"`
	CertStatus  string             `json:"cert_status,omitempty"`
}

// CourseMutationResponse mirrors the original backend's envelope.
type CourseMutationResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	CourseID int64  `json:"course_id"`
}

// NewCourseResponse projects a domain course, computing cert_status at
// read time.
func NewCourseResponse(course *domain.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Category:    course.Category,
		Level:       course.Level,
		IsFree:      course.IsFree,
		URL:         course.URL,
		CertStatus:  course.CertStatus(),
	}
}
