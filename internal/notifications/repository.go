package notifications

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	ListForUser(ctx context.Context, userID int64, limit int) ([]Notification, error)
	UnreadCounts(ctx context.Context) (map[int64]int64, error)
	Create(ctx context.Context, n Notification) (Notification, error)
	MarkRead(ctx context.Context, userID, id int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) ListForUser(ctx context.Context, userID int64, limit int) ([]Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, kind, title, body, read_at, created_at
		 FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Title, &n.Body, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// UnreadCounts returns the unread tally for every user that has at least
// one unread notification. The periodic scan materializes this into Redis.
func (r *repository) UnreadCounts(ctx context.Context) (map[int64]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, COUNT(*) FROM notifications WHERE read_at IS NULL GROUP BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]int64)
	for rows.Next() {
		var userID, count int64
		if err := rows.Scan(&userID, &count); err != nil {
			return nil, err
		}
		counts[userID] = count
	}
	return counts, rows.Err()
}

func (r *repository) Create(ctx context.Context, n Notification) (Notification, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO notifications (user_id, kind, title, body, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		n.UserID, n.Kind, n.Title, n.Body, time.Now()).
		Scan(&n.ID, &n.CreatedAt)
	return n, err
}

func (r *repository) MarkRead(ctx context.Context, userID, id int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notifications SET read_at = $1 WHERE id = $2 AND user_id = $3 AND read_at IS NULL`,
		time.Now(), id, userID)
	return err
}

func (r *repository) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notifications SET read_at = $1 WHERE user_id = $2 AND read_at IS NULL`,
		time.Now(), userID)
	return err
}
