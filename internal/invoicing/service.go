package invoicing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Invoice, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id int64) (Invoice, error) {
	if id <= 0 {
		return Invoice{}, shared.ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}

// Create raises a new draft invoice. Totals are always derived from the
// submitted lines; the client never supplies them.
func (s *Service) Create(ctx context.Context, input CreateInvoiceInput) (Invoice, error) {
	issue, err := time.Parse("2006-01-02", input.IssueDate)
	if err != nil {
		return Invoice{}, fmt.Errorf("%w: issue_date", shared.ErrValidation)
	}
	due, err := time.Parse("2006-01-02", input.DueDate)
	if err != nil {
		return Invoice{}, fmt.Errorf("%w: due_date", shared.ErrValidation)
	}
	if due.Before(issue) {
		return Invoice{}, fmt.Errorf("%w: due_date precedes issue_date", shared.ErrValidation)
	}

	inv := Invoice{
		Number:     newInvoiceNumber(),
		CustomerID: input.CustomerID,
		IssueDate:  issue,
		DueDate:    due,
		Status:     StatusDraft,
		Currency:   strings.ToUpper(input.Currency),
		Notes:      strings.TrimSpace(input.Notes),
	}
	for _, l := range input.Lines {
		line := LineItem{
			Description: strings.TrimSpace(l.Description),
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			VATRate:     l.VATRate,
		}
		line.LineNet, line.LineVAT = LineAmounts(line)
		inv.Lines = append(inv.Lines, line)
	}

	totals := ComputeTotals(inv.Lines)
	inv.NetTotal = totals.Net
	inv.VATTotal = totals.VAT
	inv.GrandTotal = totals.Grand

	return s.repo.Create(ctx, inv)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status InvoiceStatus) (Invoice, error) {
	if id <= 0 {
		return Invoice{}, shared.ErrInvalidID
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Invoice{}, err
	}
	if !validTransition(current.Status, status) {
		return Invoice{}, fmt.Errorf("%w: cannot move %s invoice to %s", shared.ErrValidation, current.Status, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status != StatusDraft {
		return fmt.Errorf("%w: only draft invoices can be deleted", shared.ErrValidation)
	}
	return s.repo.Delete(ctx, id)
}

func validTransition(from, to InvoiceStatus) bool {
	switch from {
	case StatusDraft:
		return to == StatusIssued || to == StatusVoid
	case StatusIssued:
		return to == StatusPaid || to == StatusVoid
	default:
		return false
	}
}

func newInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}
