package ports

import (
	"context"

	"github.com/praktyka/records-api/internal/core/domain"
)

// CreateClientInput carries the fields accepted when creating a client.
type CreateClientInput struct {
	Name     string
	Practice string
	Address  string
	Phone    string
}

// CreateOfferingInput carries the fields accepted when creating an offering.
type CreateOfferingInput struct {
	Name        string
	Description string
	Price       float64
}

// CreateContractInput carries the fields accepted when creating a contract.
type CreateContractInput struct {
	Client      string
	Services    []string
	TotalPrice  float64
	Fee         float64
	Description string
}

// CatalogService covers CRUD on clients, service offerings and contracts.
type CatalogService interface {
	CreateClient(ctx context.Context, in CreateClientInput) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error

	CreateOffering(ctx context.Context, in CreateOfferingInput) (*domain.Offering, error)
	ListOfferings(ctx context.Context) ([]domain.Offering, error)
	GetOffering(ctx context.Context, id string) (*domain.Offering, error)
	DeleteOffering(ctx context.Context, id string) error

	CreateContract(ctx context.Context, in CreateContractInput) (*domain.Contract, error)
	ListContracts(ctx context.Context) ([]domain.Contract, error)
	GetContract(ctx context.Context, id string) (*domain.Contract, error)
	DeleteContract(ctx context.Context, id string) error
}
