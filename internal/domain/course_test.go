package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCourse_CertStatus(t *testing.T) {
	t.Parallel()

	free := Course{Title: "X", IsFree: true}
	require.Equal(t, FreeCertificateLabel, free.CertStatus())

	paid := Course{Title: "Y", IsFree: false}
	require.Empty(t, paid.CertStatus())
}

func TestUser_SummaryOmitsPasswordHash(t *testing.T) {
	t.Parallel()

	user := User{
		ID:           7,
		Username:     "guled",
		Email:        "guled@example.com",
		PasswordHash: "$2a$12$secret",
		Role:         "student",
	}

	summary := user.Summary()
	require.Equal(t, int64(7), summary.ID)
	require.Equal(t, "guled", summary.Username)
	require.Equal(t, "guled@example.com", summary.Email)
	require.Equal(t, "student", summary.Role)
}
