package suppliers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
)

type mockRepo struct {
	listItems []Supplier
	listTotal int
	listErr   error
	lastList  shared.ListFilters
	created   *Supplier
	updated   *Supplier
	deletedID int64
}

func (m *mockRepo) List(ctx context.Context, filters shared.ListFilters) ([]Supplier, int, error) {
	m.lastList = filters
	return m.listItems, m.listTotal, m.listErr
}

func (m *mockRepo) Summary(ctx context.Context) (Summary, error) {
	return Summary{Total: m.listTotal}, nil
}

func (m *mockRepo) Get(ctx context.Context, id int64) (Supplier, error) {
	for _, s := range m.listItems {
		if s.ID == id {
			return s, nil
		}
	}
	return Supplier{}, shared.ErrNotFound
}

func (m *mockRepo) Create(ctx context.Context, supplier Supplier) (Supplier, error) {
	supplier.ID = 101
	m.created = &supplier
	return supplier, nil
}

func (m *mockRepo) Update(ctx context.Context, id int64, supplier Supplier) error {
	supplier.ID = id
	m.updated = &supplier
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	m.deletedID = id
	return nil
}

func TestCreateRequiresCodeAndName(t *testing.T) {
	svc := NewService(&mockRepo{})

	_, err := svc.Create(context.Background(), Supplier{Name: "Acme"})
	require.ErrorIs(t, err, shared.ErrRequiredField)

	_, err = svc.Create(context.Background(), Supplier{Code: "SUP-1"})
	require.ErrorIs(t, err, shared.ErrRequiredField)

	created, err := svc.Create(context.Background(), Supplier{Code: "SUP-1", Name: "Acme"})
	require.NoError(t, err)
	require.Equal(t, int64(101), created.ID)
}

func TestGetRejectsInvalidID(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.Get(context.Background(), 0)
	require.ErrorIs(t, err, shared.ErrInvalidID)
}

func TestListPassesFiltersThrough(t *testing.T) {
	repo := &mockRepo{listItems: []Supplier{{ID: 1}}, listTotal: 1}
	svc := NewService(repo)

	items, total, err := svc.List(context.Background(), shared.ListFilters{
		Page: 2, Limit: 8, Search: "ali",
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 1, total)
	require.Equal(t, "ali", repo.lastList.Search)
	require.Equal(t, 2, repo.lastList.Page)
}

func TestUpdateValidatesBeforeTouchingRepo(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	err := svc.Update(context.Background(), 5, Supplier{})
	require.ErrorIs(t, err, shared.ErrRequiredField)
	require.Nil(t, repo.updated)
}
