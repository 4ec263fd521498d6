package notifications

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	nextID int64
	items  []Notification
}

func (m *memRepo) ListForUser(ctx context.Context, userID int64, limit int) ([]Notification, error) {
	var out []Notification
	for i := len(m.items) - 1; i >= 0 && len(out) < limit; i-- {
		if m.items[i].UserID == userID {
			out = append(out, m.items[i])
		}
	}
	return out, nil
}

func (m *memRepo) UnreadCounts(ctx context.Context) (map[int64]int64, error) {
	counts := make(map[int64]int64)
	for _, n := range m.items {
		if n.ReadAt == nil {
			counts[n.UserID]++
		}
	}
	return counts, nil
}

func (m *memRepo) Create(ctx context.Context, n Notification) (Notification, error) {
	m.nextID++
	n.ID = m.nextID
	m.items = append(m.items, n)
	return n, nil
}

func (m *memRepo) MarkRead(ctx context.Context, userID, id int64) error {
	for i := range m.items {
		if m.items[i].ID == id && m.items[i].UserID == userID {
			now := m.items[i].CreatedAt
			m.items[i].ReadAt = &now
		}
	}
	return nil
}

func (m *memRepo) MarkAllRead(ctx context.Context, userID int64) error {
	for i := range m.items {
		if m.items[i].UserID == userID {
			now := m.items[i].CreatedAt
			m.items[i].ReadAt = &now
		}
	}
	return nil
}

func newTestService(t *testing.T) (*Service, *memRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	repo := &memRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, repo, client), repo
}

func TestNotifyBumpsUnreadBadge(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Notify(ctx, 7, "invoice", "Invoice exported", "INV-1 is ready")
	require.NoError(t, err)
	_, err = svc.Notify(ctx, 7, "stock", "Low stock", "Widget fell below reorder point")
	require.NoError(t, err)

	feed, err := svc.Feed(ctx, 7)
	require.NoError(t, err)
	require.Len(t, feed.Items, 2)
	require.EqualValues(t, 2, feed.Unread)
}

func TestRefreshUnreadCountsMaterializes(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, Notification{UserID: 1, Kind: "x", Title: "a"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, Notification{UserID: 1, Kind: "x", Title: "b"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, Notification{UserID: 2, Kind: "x", Title: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.RefreshUnreadCounts(ctx))

	feed, err := svc.Feed(ctx, 1)
	require.NoError(t, err)
	require.EqualValues(t, 2, feed.Unread)

	feed, err = svc.Feed(ctx, 2)
	require.NoError(t, err)
	require.EqualValues(t, 1, feed.Unread)
}

func TestMarkAllReadClearsBadge(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Notify(ctx, 3, "invoice", "Exported", "")
	require.NoError(t, err)
	require.NoError(t, svc.MarkAllRead(ctx, 3))
	require.NoError(t, svc.RefreshUnreadCounts(ctx))

	feed, err := svc.Feed(ctx, 3)
	require.NoError(t, err)
	require.EqualValues(t, 0, feed.Unread)
}

func TestFeedEmptyForNewUser(t *testing.T) {
	svc, _ := newTestService(t)
	feed, err := svc.Feed(context.Background(), 99)
	require.NoError(t, err)
	require.Empty(t, feed.Items)
	require.Zero(t, feed.Unread)
}
