package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
)

type mockRepo struct {
	lastAdj *Adjustment
}

func (m *mockRepo) List(ctx context.Context, filters shared.ListFilters) ([]StockLevel, int, error) {
	return nil, 0, nil
}

func (m *mockRepo) Summary(ctx context.Context) (Summary, error) {
	return Summary{}, nil
}

func (m *mockRepo) Adjust(ctx context.Context, adj Adjustment) (StockLevel, error) {
	m.lastAdj = &adj
	return StockLevel{ProductID: adj.ProductID, WarehouseID: adj.WarehouseID, Quantity: adj.Delta}, nil
}

func TestAdjustRejectsZeroDelta(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	_, err := svc.Adjust(context.Background(), Adjustment{ProductID: 1, WarehouseID: 1, Reason: "count"})
	require.ErrorIs(t, err, shared.ErrValidation)
	require.Nil(t, repo.lastAdj)
}

func TestAdjustRequiresReason(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.Adjust(context.Background(), Adjustment{ProductID: 1, WarehouseID: 1, Delta: 5})
	require.ErrorIs(t, err, shared.ErrRequiredField)
}

func TestAdjustAppliesDelta(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	level, err := svc.Adjust(context.Background(), Adjustment{ProductID: 2, WarehouseID: 3, Delta: -4, Reason: "damage"})
	require.NoError(t, err)
	require.Equal(t, -4.0, level.Quantity)
	require.Equal(t, int64(2), repo.lastAdj.ProductID)
}
