package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"

	"boardwalk-backend/game"
)

// levelRecord wraps a snapshot with its expiry. LevelDB has no native TTL,
// so expiry is checked lazily on reads and swept by CleanupInactive.
type levelRecord struct {
	ExpiresAt time.Time       `json:"expires_at"`
	Snapshot  json.RawMessage `json:"snapshot"`
}

// LevelStore implements GameStore on an embedded LevelDB database, for
// single-process deployments and development.
type LevelStore struct {
	db     *leveldb.DB
	prefix string
	logger *zap.Logger
}

// NewLevelStore opens (or creates) a LevelDB database at path.
func NewLevelStore(path, prefix string, logger *zap.Logger) (*LevelStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %q: %w", path, err)
	}
	return &LevelStore{db: db, prefix: prefix, logger: logger}, nil
}

func (s *LevelStore) gameKey(id string) []byte { return []byte(s.prefix + ":" + id) }

func (s *LevelStore) Save(_ context.Context, g *game.Game) error {
	g.Version++
	data, err := encodeGame(g)
	if err != nil {
		return err
	}
	rec, err := json.Marshal(levelRecord{
		ExpiresAt: time.Now().UTC().Add(SnapshotTTL),
		Snapshot:  data,
	})
	if err != nil {
		return fmt.Errorf("encode record %s: %w", g.ID, err)
	}
	if err := s.db.Put(s.gameKey(g.ID), rec, nil); err != nil {
		return fmt.Errorf("%w: save %s: %v", ErrUnavailable, g.ID, err)
	}
	return nil
}

func (s *LevelStore) Load(ctx context.Context, id string) (*game.Game, error) {
	raw, err := s.db.Get(s.gameKey(id), nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", ErrUnavailable, id, err)
	}
	var rec levelRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.logger.Error("corrupted record, removing",
			zap.String("game_id", id), zap.Error(err))
		s.db.Delete(s.gameKey(id), nil)
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if time.Now().UTC().After(rec.ExpiresAt) {
		s.db.Delete(s.gameKey(id), nil)
		return nil, ErrNotFound
	}
	g, err := decodeGame(rec.Snapshot)
	if errors.Is(err, ErrCorrupted) {
		s.logger.Error("corrupted snapshot, removing",
			zap.String("game_id", id), zap.Error(err))
		s.db.Delete(s.gameKey(id), nil)
		return nil, err
	}
	return g, err
}

func (s *LevelStore) Delete(_ context.Context, id string) error {
	has, err := s.db.Has(s.gameKey(id), nil)
	if err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrUnavailable, id, err)
	}
	if !has {
		return ErrNotFound
	}
	return s.db.Delete(s.gameKey(id), nil)
}

func (s *LevelStore) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.Load(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCorrupted):
		return false, nil
	default:
		return false, err
	}
}

func (s *LevelStore) AllIDs(_ context.Context) ([]string, error) {
	now := time.Now().UTC()
	var ids []string
	iter := s.db.NewIterator(util.BytesPrefix([]byte(s.prefix+":")), nil)
	defer iter.Release()
	for iter.Next() {
		var rec levelRecord
		if err := json.Unmarshal(iter.Value(), &rec); err != nil {
			continue
		}
		if now.After(rec.ExpiresAt) {
			continue
		}
		ids = append(ids, strings.TrimPrefix(string(iter.Key()), s.prefix+":"))
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("%w: index scan: %v", ErrUnavailable, err)
	}
	return ids, nil
}

// CleanupInactive sweeps every record, deleting expired and stale ones.
func (s *LevelStore) CleanupInactive(_ context.Context) (int, error) {
	now := time.Now().UTC()
	cutoff := now.Add(-SnapshotTTL)
	removed := 0
	iter := s.db.NewIterator(util.BytesPrefix([]byte(s.prefix+":")), nil)
	var stale [][]byte
	for iter.Next() {
		key := append([]byte(nil), iter.Key()...)
		var rec levelRecord
		if err := json.Unmarshal(iter.Value(), &rec); err != nil {
			stale = append(stale, key)
			continue
		}
		if now.After(rec.ExpiresAt) {
			stale = append(stale, key)
			continue
		}
		g, err := decodeGame(rec.Snapshot)
		if err != nil || g.LastActivityAt.Before(cutoff) {
			stale = append(stale, key)
		}
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return 0, fmt.Errorf("%w: cleanup scan: %v", ErrUnavailable, err)
	}
	for _, key := range stale {
		if err := s.db.Delete(key, nil); err == nil {
			removed++
		}
	}
	return removed, nil
}

func (s *LevelStore) Close() error { return s.db.Close() }
