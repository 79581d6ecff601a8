package ports

import (
	"context"

	"github.com/praktyka/records-api/internal/core/domain"
)

// ClientRepository persists client records.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindAll(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// OfferingRepository persists service offerings.
type OfferingRepository interface {
	Create(ctx context.Context, offering *domain.Offering) (*domain.Offering, error)
	FindAll(ctx context.Context) ([]domain.Offering, error)
	FindByID(ctx context.Context, id string) (*domain.Offering, error)
	Delete(ctx context.Context, id string) error
}

// ContractRepository persists contracts.
type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) (*domain.Contract, error)
	FindAll(ctx context.Context) ([]domain.Contract, error)
	FindByID(ctx context.Context, id string) (*domain.Contract, error)
	Delete(ctx context.Context, id string) error
}
