package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	mdshared "github.com/meridian-erp/meridian/internal/masterdata/shared"
	salesshared "github.com/meridian-erp/meridian/internal/sales/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters mdshared.ListFilters) ([]Order, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Order, error) {
	if id <= 0 {
		return Order{}, mdshared.ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

// Create derives all line and header totals from the raw quantities and
// prices, assigns an order number and persists the order as draft.
func (s *Service) Create(ctx context.Context, input CreateOrderInput) (Order, error) {
	orderDate, err := time.Parse("2006-01-02", input.OrderDate)
	if err != nil {
		return Order{}, fmt.Errorf("%w: order date", mdshared.ErrValidation)
	}
	if len(input.Lines) == 0 {
		return Order{}, fmt.Errorf("%w: at least one line", mdshared.ErrValidation)
	}

	order := Order{
		Number:     newOrderNumber(),
		CustomerID: input.CustomerID,
		Status:     StatusDraft,
		OrderDate:  orderDate,
	}
	for _, in := range input.Lines {
		_, tax, total := salesshared.CalculateLineTotals(in.Quantity, in.UnitPrice, in.DiscountPercent, in.TaxPercent)
		order.Lines = append(order.Lines, OrderLine{
			ProductID:       in.ProductID,
			Description:     in.Description,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			DiscountPercent: in.DiscountPercent,
			TaxPercent:      in.TaxPercent,
			LineTotal:       total,
		})
		order.NetTotal += total - tax
		order.TaxTotal += tax
	}
	order.GrandTotal = order.NetTotal + order.TaxTotal

	return s.repo.Create(ctx, order)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status OrderStatus) error {
	if id <= 0 {
		return mdshared.ErrInvalidID
	}
	switch status {
	case StatusDraft, StatusConfirmed, StatusShipped, StatusCancelled:
	default:
		return fmt.Errorf("%w: unknown status %q", mdshared.ErrValidation, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return mdshared.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

func newOrderNumber() string {
	return "SO-" + uuid.NewString()[:8]
}
