package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"boardwalk-backend/game"
)

// RedisStore implements GameStore on a shared Redis instance. Snapshots live
// under `<prefix>:<id>` with a TTL; the set `<prefix>:index` tracks live ids
// and is refreshed on every save.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisStore verifies connectivity with a ping and returns the store.
func NewRedisStore(ctx context.Context, addr, prefix string, logger *zap.Logger) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return &RedisStore{rdb: rdb, prefix: prefix, logger: logger}, nil
}

// Client exposes the underlying connection for the event publisher, which
// shares it.
func (s *RedisStore) Client() *redis.Client { return s.rdb }

func (s *RedisStore) gameKey(id string) string { return s.prefix + ":" + id }
func (s *RedisStore) indexKey() string         { return s.prefix + ":index" }

func (s *RedisStore) Save(ctx context.Context, g *game.Game) error {
	g.Version++
	data, err := encodeGame(g)
	if err != nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, s.gameKey(g.ID), data, SnapshotTTL)
	pipe.SAdd(ctx, s.indexKey(), g.ID)
	pipe.Expire(ctx, s.indexKey(), SnapshotTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: save %s: %v", ErrUnavailable, g.ID, err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (*game.Game, error) {
	data, err := s.rdb.Get(ctx, s.gameKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", ErrUnavailable, id, err)
	}
	g, err := decodeGame(data)
	if errors.Is(err, ErrCorrupted) {
		// Poisoned snapshot: drop it from the index so clients see a clean
		// not-found from here on.
		s.logger.Error("corrupted snapshot, removing",
			zap.String("game_id", id), zap.Error(err))
		s.rdb.Del(ctx, s.gameKey(id))
		s.rdb.SRem(ctx, s.indexKey(), id)
		return nil, err
	}
	return g, err
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.rdb.Del(ctx, s.gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrUnavailable, id, err)
	}
	s.rdb.SRem(ctx, s.indexKey(), id)
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.rdb.Exists(ctx, s.gameKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: exists %s: %v", ErrUnavailable, id, err)
	}
	return n > 0, nil
}

func (s *RedisStore) AllIDs(ctx context.Context) ([]string, error) {
	ids, err := s.rdb.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: index: %v", ErrUnavailable, err)
	}
	return ids, nil
}

// CleanupInactive walks the index and removes ids whose snapshot key has
// expired or whose last activity is older than the TTL.
func (s *RedisStore) CleanupInactive(ctx context.Context) (int, error) {
	ids, err := s.AllIDs(ctx)
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().UTC().Add(-SnapshotTTL)
	removed := 0
	for _, id := range ids {
		g, err := s.Load(ctx, id)
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrCorrupted):
			s.rdb.SRem(ctx, s.indexKey(), id)
			removed++
		case err != nil:
			return removed, err
		case g.LastActivityAt.Before(cutoff):
			s.rdb.Del(ctx, s.gameKey(id))
			s.rdb.SRem(ctx, s.indexKey(), id)
			removed++
		}
	}
	return removed, nil
}

func (s *RedisStore) Close() error { return s.rdb.Close() }
