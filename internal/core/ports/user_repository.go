package ports

import (
	"context"

	"github.com/praktyka/records-api/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
// Create must enforce email uniqueness atomically and return
// domain.ErrEmailExists on conflict.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateHasCompany(ctx context.Context, id string, hasCompany bool) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
