// Package testutil provides test doubles shared across the module: scripted
// dice for deterministic turns and store fixtures over miniredis. Never
// import this in production code.
package testutil

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"

	"boardwalk-backend/game"
	"boardwalk-backend/store"
)

// ScriptedDice replays a fixed sequence of rolls, then repeats the last one.
type ScriptedDice struct {
	rolls [][2]int
	next  int
}

// Dice builds a ScriptedDice from die pairs: Dice(3, 4, 1, 1) rolls (3,4)
// then (1,1).
func Dice(dies ...int) *ScriptedDice {
	if len(dies)%2 != 0 {
		panic("testutil.Dice needs die pairs")
	}
	d := &ScriptedDice{}
	for i := 0; i < len(dies); i += 2 {
		d.rolls = append(d.rolls, [2]int{dies[i], dies[i+1]})
	}
	return d
}

func (d *ScriptedDice) Roll() (int, int) {
	r := d.rolls[d.next]
	if d.next < len(d.rolls)-1 {
		d.next++
	}
	return r[0], r[1]
}

// NewRedisStore runs an in-process miniredis and returns a store over it.
// Both are cleaned up with the test.
func NewRedisStore(t *testing.T) (*store.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	st, err := store.NewRedisStore(t.Context(), mr.Addr(), "boardwalk", zap.NewNop())
	if err != nil {
		t.Fatalf("redis store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st, mr
}

// StartedGame builds an in-progress two-player game for engine and handler
// tests. Alice holds seat 0 and acts first.
func StartedGame(t *testing.T) *game.Game {
	t.Helper()
	g := game.NewGame()
	if _, err := g.AddPlayer("Alice", game.TokenCar); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if _, err := g.AddPlayer("Bob", game.TokenHat); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if err := g.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return g
}
