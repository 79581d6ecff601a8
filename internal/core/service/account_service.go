package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/praktyka/records-api/internal/core/domain"
	"github.com/praktyka/records-api/internal/core/ports"
	"github.com/praktyka/records-api/internal/core/token"
)

// AccountService implements registration, login and user management.
type AccountService struct {
	repo   ports.UserRepository
	tokens *token.Manager
	log    zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, tokens *token.Manager, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, tokens: tokens, log: log}
}

// Register creates a user with a hashed password. Email uniqueness is
// enforced by the repository on insert, so concurrent registrations with
// the same email cannot both succeed.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      false,
		HasCompany:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues a bearer token on success. An
// unknown email and a wrong password fail identically so callers cannot
// probe which one was wrong.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(token.Claims{UserID: user.ID, IsAdmin: user.IsAdmin})
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return signed, user, nil
}

func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *AccountService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// SetHasCompany updates the company flag on the target user. Only the user
// themselves may do this; the admin flag does not bypass the check.
func (s *AccountService) SetHasCompany(ctx context.Context, callerID, targetID string, hasCompany bool) (*domain.User, error) {
	if callerID != targetID {
		return nil, domain.ErrForbidden
	}
	return s.repo.UpdateHasCompany(ctx, targetID, hasCompany)
}

func (s *AccountService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
