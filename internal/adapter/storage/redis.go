package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
	"github.com/redis/go-redis/v9"
)

var _ port.Store = (*RedisStore)(nil)

// NewRedisClient creates a client and checks the server is reachable.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	const op = "NewRedisClient"

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}
	slog.Info("redis is available", "op", op)
	return client, nil
}

// A RedisStore keeps each value under prefix+key with no expiry.
type RedisStore struct {
	client redis.Cmdable
	prefix string
}

func NewRedisStore(client redis.Cmdable, prefix string) RedisStore {
	return RedisStore{client: client, prefix: prefix}
}

func (s RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	const op = "RedisStore.Load"

	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%s: %w", op, port.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return data, nil
}

func (s RedisStore) Save(ctx context.Context, key string, value []byte) error {
	const op = "RedisStore.Save"

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s RedisStore) Delete(ctx context.Context, key string) error {
	const op = "RedisStore.Delete"

	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
