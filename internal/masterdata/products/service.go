package products

import (
	"context"
	"fmt"
	"strings"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Product, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	if id <= 0 {
		return Product{}, shared.ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, product Product) (Product, error) {
	if err := s.validate(product); err != nil {
		return Product{}, err
	}
	return s.repo.Create(ctx, product)
}

func (s *Service) Update(ctx context.Context, id int64, product Product) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	if err := s.validate(product); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, product)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) validate(p Product) error {
	if strings.TrimSpace(p.SKU) == "" {
		return fmt.Errorf("%w: sku", shared.ErrRequiredField)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name", shared.ErrRequiredField)
	}
	if p.UnitPrice < 0 {
		return fmt.Errorf("%w: unit price must not be negative", shared.ErrValidation)
	}
	if p.VATRate < 0 || p.VATRate > 100 {
		return fmt.Errorf("%w: vat rate must be within [0, 100]", shared.ErrValidation)
	}
	return nil
}
