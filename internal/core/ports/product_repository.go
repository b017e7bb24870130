package ports

import (
	"context"

	"github.com/cargotrack/cargo-api/internal/core/domain"
)

// ProductRepository defines persistence operations for product records.
// Implementations map a malformed identifier to domain.ErrInvalidProductID
// and a missing record to domain.ErrProductNotFound.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// FindAll returns every record in store-natural order.
	FindAll(ctx context.Context) ([]*domain.Product, error)
	// Replace overwrites all mutable fields of the record with the given id.
	Replace(ctx context.Context, id string, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
