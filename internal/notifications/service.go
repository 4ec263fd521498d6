package notifications

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	unreadKeyPrefix = "notif:unread:"
	unreadCacheTTL  = 5 * time.Minute
	feedLimit       = 20
)

// Service serves the notification feed. Unread badges come from the Redis
// counters the periodic scan materializes; a cache miss falls back to zero
// until the next scan rather than hitting postgres on every poll.
type Service struct {
	logger *slog.Logger
	repo   Repository
	cache  *redis.Client
}

func NewService(logger *slog.Logger, repo Repository, cache *redis.Client) *Service {
	return &Service{logger: logger, repo: repo, cache: cache}
}

func (s *Service) Feed(ctx context.Context, userID int64) (Feed, error) {
	items, err := s.repo.ListForUser(ctx, userID, feedLimit)
	if err != nil {
		return Feed{}, err
	}
	unread, err := s.cachedUnread(ctx, userID)
	if err != nil {
		s.logger.Warn("unread cache read failed", "user", userID, "error", err)
		unread = 0
	}
	if items == nil {
		items = []Notification{}
	}
	return Feed{Items: items, Unread: unread}, nil
}

func (s *Service) Notify(ctx context.Context, userID int64, kind, title, body string) (Notification, error) {
	n, err := s.repo.Create(ctx, Notification{UserID: userID, Kind: kind, Title: title, Body: body})
	if err != nil {
		return Notification{}, err
	}
	// Nudge the badge immediately instead of waiting for the next scan.
	if err := s.cache.Incr(ctx, unreadKey(userID)).Err(); err != nil {
		s.logger.Warn("unread cache incr failed", "user", userID, "error", err)
	}
	return n, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, id int64) error {
	if err := s.repo.MarkRead(ctx, userID, id); err != nil {
		return err
	}
	return s.cache.Del(ctx, unreadKey(userID)).Err()
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		return err
	}
	return s.cache.Del(ctx, unreadKey(userID)).Err()
}

// RefreshUnreadCounts recomputes every user's unread badge from postgres
// and writes the counters to Redis. The scheduler runs this every 30s.
func (s *Service) RefreshUnreadCounts(ctx context.Context) error {
	counts, err := s.repo.UnreadCounts(ctx)
	if err != nil {
		return err
	}
	for userID, count := range counts {
		if err := s.cache.Set(ctx, unreadKey(userID), count, unreadCacheTTL).Err(); err != nil {
			return err
		}
	}
	s.logger.Debug("unread counters refreshed", "users", len(counts))
	return nil
}

func (s *Service) cachedUnread(ctx context.Context, userID int64) (int64, error) {
	val, err := s.cache.Get(ctx, unreadKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return val, nil
}

func unreadKey(userID int64) string {
	return unreadKeyPrefix + strconv.FormatInt(userID, 10)
}
