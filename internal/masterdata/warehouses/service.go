package warehouses

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

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Warehouse, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Warehouse, error) {
	if id <= 0 {
		return Warehouse{}, shared.ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, warehouse Warehouse) (Warehouse, error) {
	if err := s.validate(warehouse); err != nil {
		return Warehouse{}, err
	}
	return s.repo.Create(ctx, warehouse)
}

func (s *Service) Update(ctx context.Context, id int64, warehouse Warehouse) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	if err := s.validate(warehouse); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, warehouse)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) validate(w Warehouse) error {
	if strings.TrimSpace(w.Code) == "" {
		return fmt.Errorf("%w: code", shared.ErrRequiredField)
	}
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: name", shared.ErrRequiredField)
	}
	if w.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", shared.ErrValidation)
	}
	return nil
}
