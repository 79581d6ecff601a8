package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/praktyka/records-api/internal/core/domain"
)

const contractCollection = "contracts"

type ContractRepository struct {
	coll *mongo.Collection
}

func NewContractRepository(db *mongo.Database) *ContractRepository {
	return &ContractRepository{coll: db.Collection(contractCollection)}
}

type contractDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Client      string             `bson:"client"`
	Services    []string           `bson:"services"`
	TotalPrice  float64            `bson:"totalprice"`
	Fee         float64            `bson:"fee"`
	Description string             `bson:"description"`
}

func (d contractDoc) toDomain() *domain.Contract {
	return &domain.Contract{
		ID:          d.ID.Hex(),
		Client:      d.Client,
		Services:    d.Services,
		TotalPrice:  d.TotalPrice,
		Fee:         d.Fee,
		Description: d.Description,
	}
}

func (r *ContractRepository) Create(ctx context.Context, contract *domain.Contract) (*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := contractDoc{
		Client:      contract.Client,
		Services:    contract.Services,
		TotalPrice:  contract.TotalPrice,
		Fee:         contract.Fee,
		Description: contract.Description,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert contract: %w", err)
	}

	created := *contract
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ContractRepository) FindAll(ctx context.Context) ([]domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}

	var docs []contractDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode contracts: %w", err)
	}

	contracts := make([]domain.Contract, 0, len(docs))
	for _, d := range docs {
		contracts = append(contracts, *d.toDomain())
	}
	return contracts, nil
}

func (r *ContractRepository) FindByID(ctx context.Context, id string) (*domain.Contract, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrContractNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc contractDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContractNotFound
		}
		return nil, fmt.Errorf("find contract: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ContractRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrContractNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrContractNotFound
	}
	return nil
}
