// Package store persists game snapshots in a key-value store with TTL-based
// expiry and an index set of live game ids. Two backends exist: Redis for
// shared deployments and embedded LevelDB for single-process ones.
package store

import (
	"context"
	"errors"
	"time"

	"boardwalk-backend/game"
)

// SnapshotTTL is how long an inactive game survives before expiry. Every
// save refreshes it.
const SnapshotTTL = 2 * time.Hour

// Store errors. Handlers map these onto the HTTP error taxonomy.
var (
	ErrNotFound    = errors.New("game not found")
	ErrUnavailable = errors.New("store unavailable")
	ErrCorrupted   = errors.New("snapshot corrupted")
)

// GameStore is the persistence contract for game snapshots.
type GameStore interface {
	// Save writes the snapshot and refreshes its TTL and index membership.
	Save(ctx context.Context, g *game.Game) error
	// Load returns the snapshot for id, ErrNotFound if absent or expired.
	Load(ctx context.Context, id string) (*game.Game, error)
	// Delete removes the snapshot and its index entry.
	Delete(ctx context.Context, id string) error
	// Exists reports whether a live snapshot for id is present.
	Exists(ctx context.Context, id string) (bool, error)
	// AllIDs returns every live game id in the index.
	AllIDs(ctx context.Context) ([]string, error)
	// CleanupInactive removes games whose snapshots have expired or whose
	// last activity is older than SnapshotTTL, returning the count removed.
	CleanupInactive(ctx context.Context) (int, error)
	Close() error
}
