package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/prephub-api/internal/auth"
	"github.com/spec-kit/prephub-api/internal/config"
	"github.com/spec-kit/prephub-api/internal/domain"
	"github.com/spec-kit/prephub-api/internal/repository"
	apperrors "github.com/spec-kit/prephub-api/pkg/util/errorutil"
)

// RegisterInput describes a registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     string
}

// LoginResult carries the issued token and the public user summary.
type LoginResult struct {
	Token string
	User  domain.UserSummary
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account and returns the store-assigned id.
// A collision on either email or username collapses into one CONFLICT kind
// so the response does not reveal which attribute is taken.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (int64, error) {
	exists, err := s.users.ExistsByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil {
		return 0, apperrors.NewStoreError(err)
	}
	if exists {
		return 0, apperrors.NewConflict("user already exists", nil)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return 0, apperrors.NewInternalError(err)
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = domain.DefaultRole
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The pre-check races against concurrent registrations; the UNIQUE
		// constraints settle the winner.
		if isUniqueViolation(err) {
			return 0, apperrors.NewConflict("user already exists", nil)
		}
		return 0, apperrors.NewStoreError(err)
	}
	return user.ID, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password yield the same INVALID_CREDENTIALS kind to prevent account
// enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, apperrors.NewStoreError(err)
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, apperrors.NewInternalError(err)
	}

	token, _, err := s.tokenMgr.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &LoginResult{Token: token, User: user.Summary()}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
