package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/praktyka/records-api/internal/core/domain"
	"github.com/praktyka/records-api/internal/core/ports"
)

// CatalogService implements CRUD on clients, offerings and contracts.
// These are plain record kinds with no invariants beyond field presence,
// which the transport layer checks before calling in.
type CatalogService struct {
	clients   ports.ClientRepository
	offerings ports.OfferingRepository
	contracts ports.ContractRepository
	log       zerolog.Logger
}

func NewCatalogService(
	clients ports.ClientRepository,
	offerings ports.OfferingRepository,
	contracts ports.ContractRepository,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{clients: clients, offerings: offerings, contracts: contracts, log: log}
}

func (s *CatalogService) CreateClient(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
	client, err := s.clients.Create(ctx, &domain.Client{
		Name:     in.Name,
		Practice: in.Practice,
		Address:  in.Address,
		Phone:    in.Phone,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("client_id", client.ID).Msg("client created")
	return client, nil
}

func (s *CatalogService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.FindAll(ctx)
}

func (s *CatalogService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.FindByID(ctx, id)
}

func (s *CatalogService) DeleteClient(ctx context.Context, id string) error {
	return s.clients.Delete(ctx, id)
}

func (s *CatalogService) CreateOffering(ctx context.Context, in ports.CreateOfferingInput) (*domain.Offering, error) {
	offering, err := s.offerings.Create(ctx, &domain.Offering{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("offering_id", offering.ID).Msg("offering created")
	return offering, nil
}

func (s *CatalogService) ListOfferings(ctx context.Context) ([]domain.Offering, error) {
	return s.offerings.FindAll(ctx)
}

func (s *CatalogService) GetOffering(ctx context.Context, id string) (*domain.Offering, error) {
	return s.offerings.FindByID(ctx, id)
}

func (s *CatalogService) DeleteOffering(ctx context.Context, id string) error {
	return s.offerings.Delete(ctx, id)
}

func (s *CatalogService) CreateContract(ctx context.Context, in ports.CreateContractInput) (*domain.Contract, error) {
	contract, err := s.contracts.Create(ctx, &domain.Contract{
		Client:      in.Client,
		Services:    in.Services,
		TotalPrice:  in.TotalPrice,
		Fee:         in.Fee,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("contract_id", contract.ID).Str("client", contract.Client).Msg("contract created")
	return contract, nil
}

func (s *CatalogService) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	return s.contracts.FindAll(ctx)
}

func (s *CatalogService) GetContract(ctx context.Context, id string) (*domain.Contract, error) {
	return s.contracts.FindByID(ctx, id)
}

func (s *CatalogService) DeleteContract(ctx context.Context, id string) error {
	return s.contracts.Delete(ctx, id)
}
