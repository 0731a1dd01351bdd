package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/prephub-api/internal/config"
	"github.com/spec-kit/prephub-api/internal/domain"
	apperrors "github.com/spec-kit/prephub-api/pkg/util/errorutil"
)

type fakeUserRepo struct {
	nextID int64
	users  []domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for i := range r.users {
		if r.users[i].Email == email || r.users[i].Username == username {
			return true, nil
		}
	}
	return false, nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1, BcryptCost: 4}
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	return domainErr.Code
}

func TestRegister_AssignsPositiveID(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())

	id, err := svc.Register(context.Background(), RegisterInput{
		Username: "guled",
		Email:    "guled@example.com",
		Password: "pass123",
	})
	require.NoError(t, err)
	require.Positive(t, id)
}

func TestRegister_DefaultsRoleToStudent(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "guled",
		Email:    "guled@example.com",
		Password: "pass123",
	})
	require.NoError(t, err)
	require.Equal(t, "student", repo.users[0].Role)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterInput{Username: "a", Email: "dup@example.com", Password: "x"})
	require.NoError(t, err)
	require.Positive(t, first)

	_, err = svc.Register(ctx, RegisterInput{Username: "b", Email: "dup@example.com", Password: "y"})
	require.Equal(t, "CONFLICT", errorCode(t, err))
}

func TestRegister_DuplicateUsernameSameConflictKind(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "taken", Email: "one@example.com", Password: "x"})
	require.NoError(t, err)

	_, emailErr := svc.Register(ctx, RegisterInput{Username: "other", Email: "one@example.com", Password: "x"})
	_, usernameErr := svc.Register(ctx, RegisterInput{Username: "taken", Email: "two@example.com", Password: "x"})

	// Both collisions collapse into one kind and one message so callers
	// cannot tell which attribute was taken.
	require.Equal(t, errorCode(t, emailErr), errorCode(t, usernameErr))
	require.Equal(t, apperrors.ToDomainError(emailErr).Message, apperrors.ToDomainError(usernameErr).Message)
}

func TestRegister_NeverStoresPlaintext(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "guled",
		Email:    "guled@example.com",
		Password: "plaintext-pw",
	})
	require.NoError(t, err)
	require.NotEqual(t, "plaintext-pw", repo.users[0].PasswordHash)
	require.NotEmpty(t, repo.users[0].PasswordHash)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Username: "guled",
		Email:    "guled@example.com",
		Password: "pass123",
		Role:     "admin",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, "guled@example.com", "pass123")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, "guled", result.User.Username)
	require.Equal(t, "admin", result.User.Role)

	claims, err := svc.TokenManager().Verify(result.Token)
	require.NoError(t, err)
	require.Equal(t, result.User.ID, claims.UserID)
	require.Equal(t, "admin", claims.Role)
}

func TestLogin_WrongPasswordAndUnknownEmailSameKind(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "guled", Email: "known@example.com", Password: "right"})
	require.NoError(t, err)

	_, wrongPassErr := svc.Login(ctx, "known@example.com", "wrong")
	_, unknownErr := svc.Login(ctx, "nobody@example.com", "whatever")

	require.Equal(t, "INVALID_CREDENTIALS", errorCode(t, wrongPassErr))
	require.Equal(t, errorCode(t, wrongPassErr), errorCode(t, unknownErr))
}
