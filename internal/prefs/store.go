// Package prefs persists per-user column selections so a customized table
// survives across sessions. Keys are scoped by user and resource; values are
// the committed column keys, JSON encoded.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store reads and writes committed column selections in Redis.
type Store struct {
	client *redis.Client
}

// NewStore constructs a Store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// ErrTooManyColumns is returned when a save exceeds the resource cap.
var ErrTooManyColumns = errors.New("prefs: column selection exceeds maximum")

// Get returns the saved selection for the user/resource pair, or nil when
// none was saved yet so the caller falls back to the resource defaults.
func (s *Store) Get(ctx context.Context, userID int64, resource string) ([]string, error) {
	payload, err := s.client.Get(ctx, key(userID, resource)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("prefs: get: %w", err)
	}
	var columns []string
	if err := json.Unmarshal(payload, &columns); err != nil {
		return nil, fmt.Errorf("prefs: decode: %w", err)
	}
	return columns, nil
}

// Save stores the selection, enforcing the same cap the customizer applies
// client-side. Selections have no TTL; they live until overwritten.
func (s *Store) Save(ctx context.Context, userID int64, resource string, columns []string, max int) error {
	if max > 0 && len(columns) > max {
		return ErrTooManyColumns
	}
	payload, err := json.Marshal(columns)
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	if err := s.client.Set(ctx, key(userID, resource), payload, 0).Err(); err != nil {
		return fmt.Errorf("prefs: save: %w", err)
	}
	return nil
}

// Reset removes the saved selection so defaults apply again.
func (s *Store) Reset(ctx context.Context, userID int64, resource string) error {
	err := s.client.Del(ctx, key(userID, resource)).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

func key(userID int64, resource string) string {
	return fmt.Sprintf("prefs:%d:%s", userID, resource)
}
