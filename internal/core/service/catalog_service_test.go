package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/praktyka/records-api/internal/core/domain"
	"github.com/praktyka/records-api/internal/core/ports"
)

type stubClientRepo struct {
	clients map[string]*domain.Client
	nextID  int
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	r.nextID++
	created := *c
	created.ID = fmt.Sprintf("client_%d", r.nextID)
	r.clients[created.ID] = &created
	return &created, nil
}

func (r *stubClientRepo) FindAll(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return c, nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

type stubOfferingRepo struct {
	offerings map[string]*domain.Offering
	nextID    int
}

func (r *stubOfferingRepo) Create(_ context.Context, o *domain.Offering) (*domain.Offering, error) {
	r.nextID++
	created := *o
	created.ID = fmt.Sprintf("offering_%d", r.nextID)
	r.offerings[created.ID] = &created
	return &created, nil
}

func (r *stubOfferingRepo) FindAll(_ context.Context) ([]domain.Offering, error) {
	out := make([]domain.Offering, 0, len(r.offerings))
	for _, o := range r.offerings {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOfferingRepo) FindByID(_ context.Context, id string) (*domain.Offering, error) {
	o, ok := r.offerings[id]
	if !ok {
		return nil, domain.ErrOfferingNotFound
	}
	return o, nil
}

func (r *stubOfferingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.offerings[id]; !ok {
		return domain.ErrOfferingNotFound
	}
	delete(r.offerings, id)
	return nil
}

type stubContractRepo struct {
	contracts map[string]*domain.Contract
	nextID    int
}

func (r *stubContractRepo) Create(_ context.Context, c *domain.Contract) (*domain.Contract, error) {
	r.nextID++
	created := *c
	created.ID = fmt.Sprintf("contract_%d", r.nextID)
	r.contracts[created.ID] = &created
	return &created, nil
}

func (r *stubContractRepo) FindAll(_ context.Context) ([]domain.Contract, error) {
	out := make([]domain.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubContractRepo) FindByID(_ context.Context, id string) (*domain.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, domain.ErrContractNotFound
	}
	return c, nil
}

func (r *stubContractRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.contracts[id]; !ok {
		return domain.ErrContractNotFound
	}
	delete(r.contracts, id)
	return nil
}

func newTestCatalogService() *CatalogService {
	return NewCatalogService(
		&stubClientRepo{clients: make(map[string]*domain.Client)},
		&stubOfferingRepo{offerings: make(map[string]*domain.Offering)},
		&stubContractRepo{contracts: make(map[string]*domain.Contract)},
		zerolog.Nop(),
	)
}

func TestCatalogService_ClientLifecycle(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	client, err := svc.CreateClient(ctx, ports.CreateClientInput{
		Name:     "Ivanenko & Partners",
		Practice: "family law",
		Address:  "12 Khreshchatyk St",
		Phone:    "+380441234567",
	})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if client.ID == "" {
		t.Fatalf("expected assigned id")
	}

	got, err := svc.GetClient(ctx, client.ID)
	if err != nil {
		t.Fatalf("GetClient: %v", err)
	}
	if got.Name != "Ivanenko & Partners" {
		t.Fatalf("unexpected client: %+v", got)
	}

	if err := svc.DeleteClient(ctx, client.ID); err != nil {
		t.Fatalf("DeleteClient: %v", err)
	}
	if _, err := svc.GetClient(ctx, client.ID); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound after delete, got %v", err)
	}
}

func TestCatalogService_ContractLifecycle(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	contract, err := svc.CreateContract(ctx, ports.CreateContractInput{
		Client:      "client_1",
		Services:    []string{"consultation", "representation"},
		TotalPrice:  1500,
		Fee:         150,
		Description: "retainer agreement",
	})
	if err != nil {
		t.Fatalf("CreateContract: %v", err)
	}

	contracts, err := svc.ListContracts(ctx)
	if err != nil {
		t.Fatalf("ListContracts: %v", err)
	}
	if len(contracts) != 1 || contracts[0].ID != contract.ID {
		t.Fatalf("unexpected contract list: %+v", contracts)
	}

	if err := svc.DeleteContract(ctx, "missing"); !errors.Is(err, domain.ErrContractNotFound) {
		t.Fatalf("expected ErrContractNotFound, got %v", err)
	}
	if err := svc.DeleteContract(ctx, contract.ID); err != nil {
		t.Fatalf("DeleteContract: %v", err)
	}
}

func TestCatalogService_OfferingLifecycle(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	offering, err := svc.CreateOffering(ctx, ports.CreateOfferingInput{
		Name:        "consultation",
		Description: "initial one-hour consultation",
		Price:       80,
	})
	if err != nil {
		t.Fatalf("CreateOffering: %v", err)
	}
	if offering.ID == "" {
		t.Fatalf("expected assigned id")
	}

	offerings, err := svc.ListOfferings(ctx)
	if err != nil {
		t.Fatalf("ListOfferings: %v", err)
	}
	if len(offerings) != 1 || offerings[0].Price != 80 {
		t.Fatalf("unexpected offerings: %+v", offerings)
	}

	if _, err := svc.GetOffering(ctx, "missing"); !errors.Is(err, domain.ErrOfferingNotFound) {
		t.Fatalf("expected ErrOfferingNotFound, got %v", err)
	}
}
