package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cargotrack/cargo-api/internal/core/domain"
)

const productsCollection = "products"

// ProductRepository persists product records. The collection's ObjectID is
// the public product identifier, exposed as its hex form.
type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

// productDoc is the stored shape; field names match the original collection.
// omitempty is deliberately absent so blank optional fields round-trip as "".
type productDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	ProductType     string             `bson:"productType"`
	Validity        string             `bson:"validity"`
	PhoneNumber     string             `bson:"phoneNumber"`
	ProductMaterial string             `bson:"productMaterial"`
}

func (r *ProductRepository) Insert(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toProductDoc(p))
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]*domain.Product, 0)
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, docToProduct(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

// Replace overwrites all five mutable fields of the record with the given id
// and returns the post-replace document.
func (r *ProductRepository) Replace(ctx context.Context, id string, p *domain.Product) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidProductID
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":            p.Name,
		"productType":     p.ProductType,
		"validity":        p.Validity,
		"phoneNumber":     p.PhoneNumber,
		"productMaterial": p.ProductMaterial,
	}}

	var doc productDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("replace product: %w", err)
	}

	return docToProduct(doc), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidProductID
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func toProductDoc(p *domain.Product) productDoc {
	return productDoc{
		Name:            p.Name,
		ProductType:     p.ProductType,
		Validity:        p.Validity,
		PhoneNumber:     p.PhoneNumber,
		ProductMaterial: p.ProductMaterial,
	}
}

func docToProduct(doc productDoc) *domain.Product {
	return &domain.Product{
		ID:              doc.ID.Hex(),
		Name:            doc.Name,
		ProductType:     doc.ProductType,
		Validity:        doc.Validity,
		PhoneNumber:     doc.PhoneNumber,
		ProductMaterial: doc.ProductMaterial,
	}
}
