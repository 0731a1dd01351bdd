package domain

import "time"

// CourseLevel enumerates difficulty tiers.
type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "beginner"
	CourseLevelIntermediate CourseLevel = "intermediate"
	CourseLevelAdvanced     CourseLevel = "advanced"
)

// FreeCertificateLabel is the read-time label attached to free courses.
const FreeCertificateLabel = "✅ FREE CERTIFICATE"

// Course is the catalog aggregate. CertStatus is derived at read time and
// never persisted.
type Course struct {
	ID          int64
	Title       string
	Description string
	Category    string
	Level       CourseLevel
	IsFree      bool
	URL         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CertStatus returns the certificate label for free courses and an empty
// string otherwise.
func (c *Course) CertStatus() string {
	if c.IsFree {
		return FreeCertificateLabel
	}
	return ""
}
