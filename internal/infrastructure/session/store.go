package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	sessionRepo "vitrine/internal/domain/repository/session"
)

const keyPrefix = "session:"

// Store keeps admin sessions in redis so they survive process restarts and
// expire server-side through key TTLs.
type Store struct {
	redis *redis.Client
}

func NewStore(cfg Config) (*Store, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Store{redis: rdb}, nil
}

func (s *Store) Put(ctx context.Context, token, identity string, ttl time.Duration) error {
	return s.redis.Set(ctx, keyPrefix+token, identity, ttl).Err()
}

func (s *Store) Get(ctx context.Context, token string) (string, error) {
	identity, err := s.redis.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", sessionRepo.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return identity, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	deleted, err := s.redis.Del(ctx, keyPrefix+token).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return sessionRepo.ErrNotFound
	}

	return nil
}

func (s *Store) Close() error {
	return s.redis.Close()
}
