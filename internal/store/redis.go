package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Compile-time check to ensure redisStore implements Store
var _ Store = (*redisStore)(nil)

type redisStore struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisStore создает Store поверх Redis. Все ключи получают общий префикс,
// чтобы несколько ботов могли делить один инстанс Redis.
func NewRedisStore(client *redis.Client, prefix string, logger *zap.Logger) Store {
	return &redisStore{
		client: client,
		prefix: prefix,
		logger: logger.Named("RedisStore"),
	}
}

func (s *redisStore) key(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		s.logger.Error("Failed to get key from redis", zap.String("key", s.key(key)), zap.Error(err))
		return nil, fmt.Errorf("failed to get key from redis: %w", err)
	}
	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	// TTL не используем: записи удаляются явным образом (resolve/stop)
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		s.logger.Error("Failed to set key in redis", zap.String("key", s.key(key)), zap.Error(err))
		return fmt.Errorf("failed to set key in redis: %w", err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		s.logger.Error("Failed to delete key from redis", zap.String("key", s.key(key)), zap.Error(err))
		return fmt.Errorf("failed to delete key from redis: %w", err)
	}
	return nil
}
