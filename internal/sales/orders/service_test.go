package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	mdshared "github.com/meridian-erp/meridian/internal/masterdata/shared"
)

type mockRepo struct {
	created *Order
	status  OrderStatus
}

func (m *mockRepo) List(ctx context.Context, filters mdshared.ListFilters) ([]Order, int, error) {
	return nil, 0, nil
}

func (m *mockRepo) Summary(ctx context.Context) (Summary, error) {
	return Summary{}, nil
}

func (m *mockRepo) Get(ctx context.Context, id int64) (Order, error) {
	return Order{ID: id}, nil
}

func (m *mockRepo) Create(ctx context.Context, order Order) (Order, error) {
	order.ID = 55
	m.created = &order
	return order, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int64, status OrderStatus) error {
	m.status = status
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func TestCreateDerivesTotalsFromRawLineValues(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateOrderInput{
		CustomerID: 3,
		OrderDate:  "2026-02-10",
		Lines: []OrderLineInput{
			{ProductID: 1, Quantity: 2, UnitPrice: 600, TaxPercent: 20},
			{ProductID: 2, Quantity: 1, UnitPrice: 15000, TaxPercent: 21},
		},
	})
	require.NoError(t, err)
	require.Equal(t, StatusDraft, created.Status)
	require.InDelta(t, 16200, created.NetTotal, 1e-9)
	require.InDelta(t, 3390, created.TaxTotal, 1e-9)
	require.InDelta(t, 19590, created.GrandTotal, 1e-9)
	require.Len(t, created.Lines, 2)
	require.InDelta(t, 1440, created.Lines[0].LineTotal, 1e-9)
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.Create(context.Background(), CreateOrderInput{
		CustomerID: 3,
		OrderDate:  "10/02/2026",
		Lines:      []OrderLineInput{{ProductID: 1, Quantity: 1}},
	})
	require.ErrorIs(t, err, mdshared.ErrValidation)
}

func TestCreateRequiresLines(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.Create(context.Background(), CreateOrderInput{
		CustomerID: 3,
		OrderDate:  "2026-02-10",
	})
	require.ErrorIs(t, err, mdshared.ErrValidation)
}

func TestUpdateStatusValidatesTransitionTarget(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	require.NoError(t, svc.UpdateStatus(context.Background(), 1, StatusConfirmed))
	require.Equal(t, StatusConfirmed, repo.status)

	err := svc.UpdateStatus(context.Background(), 1, OrderStatus("bogus"))
	require.ErrorIs(t, err, mdshared.ErrValidation)
}
