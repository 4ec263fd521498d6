package inventory

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

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]StockLevel, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}

// Adjust validates and applies a manual stock correction. A zero delta is
// rejected: it would record a movement without moving anything.
func (s *Service) Adjust(ctx context.Context, adj Adjustment) (StockLevel, error) {
	if adj.ProductID <= 0 || adj.WarehouseID <= 0 {
		return StockLevel{}, shared.ErrInvalidID
	}
	if adj.Delta == 0 {
		return StockLevel{}, fmt.Errorf("%w: delta must be non-zero", shared.ErrValidation)
	}
	if strings.TrimSpace(adj.Reason) == "" {
		return StockLevel{}, fmt.Errorf("%w: reason", shared.ErrRequiredField)
	}
	return s.repo.Adjust(ctx, adj)
}
