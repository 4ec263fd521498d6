package notifications

import "time"

// Notification is one row in a user's feed.
type Notification struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Feed is what the bell icon renders: recent items plus the unread badge.
type Feed struct {
	Items  []Notification `json:"items"`
	Unread int64          `json:"unread"`
}
