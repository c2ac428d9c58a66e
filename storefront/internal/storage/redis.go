package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores values under "storefront:<scope>:<key>".
type RedisSlot struct {
	Client *redis.Client
	Scope  string
	TTL    time.Duration
}

func NewRedisSlot(client *redis.Client, scope string, ttl time.Duration) *RedisSlot {
	return &RedisSlot{Client: client, Scope: scope, TTL: ttl}
}

func (s *RedisSlot) SlotKey(key string) string {
	return "storefront:" + s.Scope + ":" + key
}

func (s *RedisSlot) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := s.Client.Get(ctx, s.SlotKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *RedisSlot) Set(ctx context.Context, key string, value []byte) error {
	return s.Client.Set(ctx, s.SlotKey(key), value, s.TTL).Err()
}

func (s *RedisSlot) Delete(ctx context.Context, key string) error {
	return s.Client.Del(ctx, s.SlotKey(key)).Err()
}
