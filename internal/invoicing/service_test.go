package invoicing

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
)

type mockRepo struct {
	created *Invoice
	stored  map[int64]Invoice
}

func newMockRepo() *mockRepo {
	return &mockRepo{stored: map[int64]Invoice{}}
}

func (m *mockRepo) List(ctx context.Context, filters shared.ListFilters) ([]Invoice, int, error) {
	return nil, 0, nil
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (Invoice, error) {
	inv, ok := m.stored[id]
	if !ok {
		return Invoice{}, shared.ErrNotFound
	}
	return inv, nil
}

func (m *mockRepo) Create(ctx context.Context, inv Invoice) (Invoice, error) {
	inv.ID = 1
	m.created = &inv
	m.stored[inv.ID] = inv
	return inv, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int64, status InvoiceStatus) (Invoice, error) {
	inv := m.stored[id]
	inv.Status = status
	m.stored[id] = inv
	return inv, nil
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	delete(m.stored, id)
	return nil
}

func (m *mockRepo) Summary(ctx context.Context) (Summary, error) {
	return Summary{}, nil
}

func TestCreateDerivesTotalsFromLines(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	inv, err := svc.Create(context.Background(), CreateInvoiceInput{
		CustomerID: 7,
		IssueDate:  "2026-08-01",
		DueDate:    "2026-08-31",
		Currency:   "eur",
		Lines: []CreateInvoiceLine{
			{Description: "Consulting hours", Quantity: 2, UnitPrice: 600, VATRate: 20},
			{Description: "Platform licence", Quantity: 1, UnitPrice: 15000, VATRate: 21},
		},
	})
	require.NoError(t, err)

	require.InDelta(t, 16200.0, inv.NetTotal, 0.0001)
	require.InDelta(t, 3390.0, inv.VATTotal, 0.0001)
	require.InDelta(t, 19590.0, inv.GrandTotal, 0.0001)
	require.Equal(t, "EUR", inv.Currency)
	require.Equal(t, StatusDraft, inv.Status)
	require.True(t, strings.HasPrefix(inv.Number, "INV-"))
	require.Len(t, inv.Lines, 2)
	require.InDelta(t, 1200.0, inv.Lines[0].LineNet, 0.0001)
	require.InDelta(t, 240.0, inv.Lines[0].LineVAT, 0.0001)
}

func TestCreateRejectsDueBeforeIssue(t *testing.T) {
	svc := NewService(newMockRepo())
	_, err := svc.Create(context.Background(), CreateInvoiceInput{
		CustomerID: 1,
		IssueDate:  "2026-08-31",
		DueDate:    "2026-08-01",
		Currency:   "EUR",
		Lines:      []CreateInvoiceLine{{Description: "x", Quantity: 1, UnitPrice: 10}},
	})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestStatusTransitions(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	inv, err := svc.Create(context.Background(), CreateInvoiceInput{
		CustomerID: 1,
		IssueDate:  "2026-08-01",
		DueDate:    "2026-09-01",
		Currency:   "EUR",
		Lines:      []CreateInvoiceLine{{Description: "x", Quantity: 1, UnitPrice: 10}},
	})
	require.NoError(t, err)

	// paid straight from draft is not a thing
	_, err = svc.UpdateStatus(context.Background(), inv.ID, StatusPaid)
	require.ErrorIs(t, err, shared.ErrValidation)

	issued, err := svc.UpdateStatus(context.Background(), inv.ID, StatusIssued)
	require.NoError(t, err)
	require.Equal(t, StatusIssued, issued.Status)

	paid, err := svc.UpdateStatus(context.Background(), inv.ID, StatusPaid)
	require.NoError(t, err)
	require.Equal(t, StatusPaid, paid.Status)

	_, err = svc.UpdateStatus(context.Background(), inv.ID, StatusVoid)
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestDeleteOnlyDrafts(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	inv, err := svc.Create(context.Background(), CreateInvoiceInput{
		CustomerID: 1,
		IssueDate:  "2026-08-01",
		DueDate:    "2026-09-01",
		Currency:   "EUR",
		Lines:      []CreateInvoiceLine{{Description: "x", Quantity: 1, UnitPrice: 10}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), inv.ID, StatusIssued)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), inv.ID)
	require.ErrorIs(t, err, shared.ErrValidation)
}
