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

// Stored in the "services" collection; the domain type is named Offering
// to avoid clashing with the service layer.
const offeringCollection = "services"

type OfferingRepository struct {
	coll *mongo.Collection
}

func NewOfferingRepository(db *mongo.Database) *OfferingRepository {
	return &OfferingRepository{coll: db.Collection(offeringCollection)}
}

type offeringDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
}

func (d offeringDoc) toDomain() *domain.Offering {
	return &domain.Offering{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
	}
}

func (r *OfferingRepository) Create(ctx context.Context, offering *domain.Offering) (*domain.Offering, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := offeringDoc{
		Name:        offering.Name,
		Description: offering.Description,
		Price:       offering.Price,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert offering: %w", err)
	}

	created := *offering
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *OfferingRepository) FindAll(ctx context.Context) ([]domain.Offering, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list offerings: %w", err)
	}

	var docs []offeringDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode offerings: %w", err)
	}

	offerings := make([]domain.Offering, 0, len(docs))
	for _, d := range docs {
		offerings = append(offerings, *d.toDomain())
	}
	return offerings, nil
}

func (r *OfferingRepository) FindByID(ctx context.Context, id string) (*domain.Offering, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOfferingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc offeringDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOfferingNotFound
		}
		return nil, fmt.Errorf("find offering: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OfferingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOfferingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete offering: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOfferingNotFound
	}
	return nil
}
