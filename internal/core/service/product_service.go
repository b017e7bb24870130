package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cargotrack/cargo-api/internal/api/metrics"
	"github.com/cargotrack/cargo-api/internal/core/domain"
	"github.com/cargotrack/cargo-api/internal/core/ports"
)

// ProductService implements the product lifecycle. A record moves
// nonexistent → active on Create, stays active across Updates, and returns to
// nonexistent on Delete; there are no intermediate states and expiry of the
// validity date is never enforced here.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// Create persists a new record. All five fields must be non-empty; the check
// is all-or-nothing with a single error, not per-field messages.
func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if missingFields(in) {
		return nil, domain.ErrMissingFields
	}

	created, err := s.repo.Insert(ctx, &domain.Product{
		Name:            in.Name,
		ProductType:     in.ProductType,
		Validity:        in.Validity,
		PhoneNumber:     in.PhoneNumber,
		ProductMaterial: in.ProductMaterial,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductOpsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// List returns every record in store-natural order.
func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// Update replaces all five fields of the record with the given id. Identifier
// shape is checked before the field rule, matching the route guard order of
// the public API.
func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	if !domain.IsValidProductID(id) {
		return nil, domain.ErrInvalidProductID
	}
	if missingFields(in) {
		return nil, domain.ErrMissingFields
	}

	updated, err := s.repo.Replace(ctx, id, &domain.Product{
		Name:            in.Name,
		ProductType:     in.ProductType,
		Validity:        in.Validity,
		PhoneNumber:     in.PhoneNumber,
		ProductMaterial: in.ProductMaterial,
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductOpsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

// Delete permanently removes the record. Deleting an id that no longer
// resolves is domain.ErrProductNotFound, every time.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if !domain.IsValidProductID(id) {
		return domain.ErrInvalidProductID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.ProductOpsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func missingFields(in ports.ProductInput) bool {
	return in.Name == "" || in.ProductType == "" || in.Validity == "" ||
		in.PhoneNumber == "" || in.ProductMaterial == ""
}
