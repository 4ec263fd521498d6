package users

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]User, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	if id <= 0 {
		return User{}, shared.ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}

// Create provisions a new active account. The password is hashed here so
// the raw value never reaches the repository.
func (s *Service) Create(ctx context.Context, input CreateUserInput) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	user := User{
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Name:     strings.TrimSpace(input.Name),
		IsActive: true,
	}
	return s.repo.Create(ctx, user, string(hash), input.RoleIDs)
}

func (s *Service) Update(ctx context.Context, id int64, input UpdateUserInput) (User, error) {
	if id <= 0 {
		return User{}, shared.ErrInvalidID
	}
	user := User{
		ID:       id,
		Name:     strings.TrimSpace(input.Name),
		IsActive: *input.IsActive,
	}
	return s.repo.Update(ctx, user, input.RoleIDs)
}
