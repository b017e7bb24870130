package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cargotrack/cargo-api/internal/core/domain"
	"github.com/cargotrack/cargo-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	records []*domain.Product // insertion order, like a natural collection scan
	nextID  int
	findErr error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{}
}

func (r *stubProductRepo) Insert(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	created := *p
	created.ID = fmt.Sprintf("64b0000000000000000000%02d", r.nextID)
	r.records = append(r.records, &created)
	clone := created
	return &clone, nil
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]*domain.Product, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*domain.Product, 0, len(r.records))
	for _, p := range r.records {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProductRepo) Replace(_ context.Context, id string, p *domain.Product) (*domain.Product, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			rec.Name = p.Name
			rec.ProductType = p.ProductType
			rec.Validity = p.Validity
			rec.PhoneNumber = p.PhoneNumber
			rec.ProductMaterial = p.ProductMaterial
			clone := *rec
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func validProductInput() ports.ProductInput {
	return ports.ProductInput{
		Name:            "Box A",
		ProductType:     "Electronics",
		Validity:        "2025-12-31",
		PhoneNumber:     "9876543210",
		ProductMaterial: "Plastic",
	}
}

func newProductService(repo ports.ProductRepository) *ProductService {
	return NewProductService(repo, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestProductService_Create_Success(t *testing.T) {
	svc := newProductService(newStubProductRepo())

	created, err := svc.Create(context.Background(), validProductInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Name != "Box A" || created.ProductType != "Electronics" ||
		created.Validity != "2025-12-31" || created.PhoneNumber != "9876543210" ||
		created.ProductMaterial != "Plastic" {
		t.Fatalf("fields changed on create: %+v", created)
	}
}

func TestProductService_Create_MissingFields(t *testing.T) {
	svc := newProductService(newStubProductRepo())

	blank := func(mutate func(*ports.ProductInput)) ports.ProductInput {
		in := validProductInput()
		mutate(&in)
		return in
	}

	inputs := []ports.ProductInput{
		blank(func(in *ports.ProductInput) { in.Name = "" }),
		blank(func(in *ports.ProductInput) { in.ProductType = "" }),
		blank(func(in *ports.ProductInput) { in.Validity = "" }),
		blank(func(in *ports.ProductInput) { in.PhoneNumber = "" }),
		blank(func(in *ports.ProductInput) { in.ProductMaterial = "" }),
	}

	for i, in := range inputs {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrMissingFields) {
			t.Fatalf("input %d: expected ErrMissingFields, got %v", i, err)
		}
	}
}

func TestProductService_RoundTrip(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validProductInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 1 || *listed[0] != *created {
		t.Fatalf("list does not reflect created record: %+v", listed)
	}

	second := validProductInput()
	second.Name = "Crate B"
	second.ProductType = "Furniture"
	second.ProductMaterial = "Wood"
	updated, err := svc.Update(ctx, created.ID, second)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update changed the identifier: %s -> %s", created.ID, updated.ID)
	}
	if updated.Name != "Crate B" || updated.ProductType != "Furniture" || updated.ProductMaterial != "Wood" {
		t.Fatalf("update did not replace fields: %+v", updated)
	}

	listed, _ = svc.List(ctx)
	if len(listed) != 1 || listed[0].Name != "Crate B" {
		t.Fatalf("list still shows prior values: %+v", listed[0])
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	listed, _ = svc.List(ctx)
	if len(listed) != 0 {
		t.Fatalf("record still listed after delete")
	}

	if _, err := svc.Update(ctx, created.ID, second); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on repeat delete, got %v", err)
	}
}

func TestProductService_Update_InvalidID(t *testing.T) {
	svc := newProductService(newStubProductRepo())

	for _, id := range []string{"", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz", "64b0000000000000000000011"} {
		if _, err := svc.Update(context.Background(), id, validProductInput()); !errors.Is(err, domain.ErrInvalidProductID) {
			t.Fatalf("id %q: expected ErrInvalidProductID, got %v", id, err)
		}
	}
}

func TestProductService_Update_MissingFields(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo)

	created, err := svc.Create(context.Background(), validProductInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	in := validProductInput()
	in.PhoneNumber = ""
	if _, err := svc.Update(context.Background(), created.ID, in); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}

	// The record must be untouched by the rejected update.
	listed, _ := svc.List(context.Background())
	if listed[0].PhoneNumber != "9876543210" {
		t.Fatalf("rejected update mutated the record: %+v", listed[0])
	}
}

func TestProductService_Delete_InvalidID(t *testing.T) {
	svc := newProductService(newStubProductRepo())

	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrInvalidProductID) {
		t.Fatalf("expected ErrInvalidProductID, got %v", err)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc := newProductService(newStubProductRepo())

	if _, err := svc.Update(context.Background(), "64b0000000000000000000ff", validProductInput()); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
