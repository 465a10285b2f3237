// Package redisstore implements the row store on Redis, one list per
// resource with JSON-encoded rows. It preserves the flatfile contract:
// rows come back in resource order and Rewrite replaces the whole list.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pixelforge/gamevault/internal/store"
)

// Key prefix for all content data
const keyPrefix = "gamevault"

// Store is a Redis-backed implementation of the row store.
type Store struct {
	client   *redis.Client
	resource string
}

// NewClient connects a Redis client and verifies the connection.
func NewClient(cfg Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %v: %w", err, store.ErrUnavailable)
	}
	return client, nil
}

// New creates a row store for one resource on an existing client.
func New(client *redis.Client, resource string) *Store {
	return &Store{
		client:   client,
		resource: resource,
	}
}

// Ensure Store implements the interface
var _ store.Store = (*Store)(nil)

// resourceKey returns the Redis key for the resource's row list.
func (s *Store) resourceKey() string {
	return fmt.Sprintf("%s:rows:%s", keyPrefix, s.resource)
}

func (s *Store) ReadAll(ctx context.Context) ([]store.Row, error) {
	items, err := s.client.LRange(ctx, s.resourceKey(), 0, -1).Result()
	if err != nil {
		return nil, unavailable("read", s.resource, err)
	}

	var rows []store.Row
	for _, item := range items {
		var row store.Row
		if err := json.Unmarshal([]byte(item), &row); err != nil {
			return nil, unavailable("decode", s.resource, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *Store) Rewrite(ctx context.Context, rows []store.Row) error {
	items := make([]any, len(rows))
	for i, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return unavailable("encode", s.resource, err)
		}
		items[i] = data
	}

	// Pipeline the delete + push so readers see either the old or the
	// new list, not a partially built one.
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.resourceKey())
	if len(items) > 0 {
		pipe.RPush(ctx, s.resourceKey(), items...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return unavailable("rewrite", s.resource, err)
	}
	return nil
}

func (s *Store) Append(ctx context.Context, row store.Row) error {
	data, err := json.Marshal(row)
	if err != nil {
		return unavailable("encode", s.resource, err)
	}
	if err := s.client.RPush(ctx, s.resourceKey(), data).Err(); err != nil {
		return unavailable("append", s.resource, err)
	}
	return nil
}

func unavailable(op, resource string, err error) error {
	return fmt.Errorf("%s %s: %v: %w", op, resource, err, store.ErrUnavailable)
}
