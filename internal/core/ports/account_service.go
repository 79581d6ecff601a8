package ports

import (
	"context"

	"github.com/praktyka/records-api/internal/core/domain"
)

// AccountService covers registration, login and authenticated user management.
type AccountService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// SetHasCompany updates the company flag on the target user. The caller
	// must be the target user; the admin flag does not bypass this check.
	SetHasCompany(ctx context.Context, callerID, targetID string, hasCompany bool) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
