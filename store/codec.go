package store

import (
	"encoding/json"
	"fmt"

	"boardwalk-backend/game"
)

// snapshotVersion is bumped when the snapshot schema changes shape. Decoding
// rejects versions it does not know.
const snapshotVersion = 1

// snapshot is the versioned on-disk envelope around a game.
type snapshot struct {
	V    int        `json:"v"`
	Game *game.Game `json:"game"`
}

func encodeGame(g *game.Game) ([]byte, error) {
	data, err := json.Marshal(snapshot{V: snapshotVersion, Game: g})
	if err != nil {
		return nil, fmt.Errorf("encode game %s: %w", g.ID, err)
	}
	return data, nil
}

func decodeGame(data []byte) (*game.Game, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if snap.V != snapshotVersion || snap.Game == nil {
		return nil, fmt.Errorf("%w: unknown snapshot version %d", ErrCorrupted, snap.V)
	}
	return snap.Game, nil
}
