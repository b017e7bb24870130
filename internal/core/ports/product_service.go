package ports

import (
	"context"

	"github.com/cargotrack/cargo-api/internal/core/domain"
)

// ProductInput carries the five mutable product fields. Create and Update
// both require every field to be present (full replace, no partial patch).
type ProductInput struct {
	Name            string
	ProductType     string
	Validity        string
	PhoneNumber     string
	ProductMaterial string
}

// ProductService defines the product lifecycle use cases.
type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
