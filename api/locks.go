package api

import "sync"

// lockTable hands out one mutex per game id so mutations of the same game
// are serialized within this process. Entries are cheap and live as long as
// the process; TryLock failure means another request holds the game.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*sync.Mutex)}
}

func (t *lockTable) get(id string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[id]
	if !ok {
		l = &sync.Mutex{}
		t.locks[id] = l
	}
	return l
}

// TryLock attempts to acquire the game's lock without blocking.
func (t *lockTable) TryLock(id string) bool {
	return t.get(id).TryLock()
}

func (t *lockTable) Unlock(id string) {
	t.get(id).Unlock()
}
