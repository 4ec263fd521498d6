package roles

import (
	"context"
	"strings"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Role, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Role, error) {
	if id <= 0 {
		return Role{}, shared.ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input RoleInput) (Role, error) {
	return s.repo.Create(ctx, roleFromInput(0, input))
}

func (s *Service) Update(ctx context.Context, id int64, input RoleInput) (Role, error) {
	if id <= 0 {
		return Role{}, shared.ErrInvalidID
	}
	return s.repo.Update(ctx, roleFromInput(id, input))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

func roleFromInput(id int64, input RoleInput) Role {
	return Role{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Permissions: input.Permissions,
	}
}
