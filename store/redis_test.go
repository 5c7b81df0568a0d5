package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"boardwalk-backend/game"
	"boardwalk-backend/internal/testutil"
	"boardwalk-backend/store"
)

// richGame builds a game exercising every behavior-affecting field: owners,
// houses, jail state, dice scratch, pot, deck order.
func richGame(t *testing.T) *game.Game {
	t.Helper()
	g := testutil.StartedGame(t)
	alice, bob := g.Players[0], g.Players[1]

	g.Board[1].OwnerID = alice.ID
	g.Board[3].OwnerID = alice.ID
	g.Board[3].HouseCount = 2
	alice.Properties = []int{1, 3}
	alice.Position = 17
	bob.InJail = true
	bob.JailTurns = 2
	bob.HasJailCard = true
	bob.Position = 10
	g.LastDiceSum = 9
	g.SidePot.Balance = 215
	g.CurrentPlayerIndex = 1
	g.ChanceDeck.Draw()
	return g
}

func TestRedisRoundTripIdentity(t *testing.T) {
	st, _ := testutil.NewRedisStore(t)
	ctx := t.Context()
	g := richGame(t)

	require.NoError(t, st.Save(ctx, g))
	loaded, err := st.Load(ctx, g.ID)
	require.NoError(t, err)

	require.Equal(t, g, loaded)
}

func TestRedisLoadUnknown(t *testing.T) {
	st, _ := testutil.NewRedisStore(t)
	_, err := st.Load(t.Context(), "nope")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRedisSaveBumpsVersion(t *testing.T) {
	st, _ := testutil.NewRedisStore(t)
	ctx := t.Context()
	g := game.NewGame()

	require.NoError(t, st.Save(ctx, g))
	require.EqualValues(t, 1, g.Version)
	require.NoError(t, st.Save(ctx, g))
	require.EqualValues(t, 2, g.Version)

	loaded, err := st.Load(ctx, g.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, loaded.Version)
}

func TestRedisIndexMembership(t *testing.T) {
	st, _ := testutil.NewRedisStore(t)
	ctx := t.Context()
	g1, g2 := game.NewGame(), game.NewGame()
	require.NoError(t, st.Save(ctx, g1))
	require.NoError(t, st.Save(ctx, g2))

	ids, err := st.AllIDs(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{g1.ID, g2.ID}, ids)

	ok, err := st.Exists(ctx, g1.ID)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, st.Delete(ctx, g1.ID))
	require.ErrorIs(t, st.Delete(ctx, g1.ID), store.ErrNotFound)

	ids, err = st.AllIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{g2.ID}, ids)
}

func TestRedisSnapshotExpires(t *testing.T) {
	st, mr := testutil.NewRedisStore(t)
	ctx := t.Context()
	g := game.NewGame()
	require.NoError(t, st.Save(ctx, g))

	mr.FastForward(store.SnapshotTTL + time.Minute)

	_, err := st.Load(ctx, g.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	ok, err := st.Exists(ctx, g.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisCleanupInactive(t *testing.T) {
	st, mr := testutil.NewRedisStore(t)
	ctx := t.Context()

	fresh := game.NewGame()
	require.NoError(t, st.Save(ctx, fresh))

	stale := game.NewGame()
	stale.LastActivityAt = time.Now().UTC().Add(-3 * time.Hour)
	require.NoError(t, st.Save(ctx, stale))

	// An id whose snapshot key expired while the index survived.
	orphan := game.NewGame()
	require.NoError(t, st.Save(ctx, orphan))
	mr.Del("boardwalk:" + orphan.ID)

	n, err := st.CleanupInactive(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	ids, err := st.AllIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{fresh.ID}, ids)
}

func TestRedisCorruptedSnapshotRemovedFromIndex(t *testing.T) {
	st, mr := testutil.NewRedisStore(t)
	ctx := t.Context()
	g := game.NewGame()
	require.NoError(t, st.Save(ctx, g))

	require.NoError(t, mr.Set("boardwalk:"+g.ID, "{not json"))

	_, err := st.Load(ctx, g.ID)
	require.ErrorIs(t, err, store.ErrCorrupted)

	// Once poisoned, the id is gone: clients see a clean not-found.
	ids, err := st.AllIDs(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)
	_, err = st.Load(ctx, g.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
