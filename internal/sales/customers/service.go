package customers

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

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Customer, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Customer, error) {
	if id <= 0 {
		return Customer{}, shared.ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, customer Customer) (Customer, error) {
	if err := s.validate(customer); err != nil {
		return Customer{}, err
	}
	return s.repo.Create(ctx, customer)
}

func (s *Service) Update(ctx context.Context, id int64, customer Customer) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	if err := s.validate(customer); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, customer)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) validate(c Customer) error {
	if strings.TrimSpace(c.Code) == "" {
		return fmt.Errorf("%w: code", shared.ErrRequiredField)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name", shared.ErrRequiredField)
	}
	if c.CreditLimit < 0 {
		return fmt.Errorf("%w: credit limit must not be negative", shared.ErrValidation)
	}
	return nil
}
