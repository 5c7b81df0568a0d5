package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"boardwalk-backend/game"
	"boardwalk-backend/store"
)

func newLevelStore(t *testing.T) *store.LevelStore {
	t.Helper()
	st, err := store.NewLevelStore(t.TempDir()+"/games", "boardwalk", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestLevelRoundTripIdentity(t *testing.T) {
	st := newLevelStore(t)
	ctx := t.Context()
	g := richGame(t)

	require.NoError(t, st.Save(ctx, g))
	loaded, err := st.Load(ctx, g.ID)
	require.NoError(t, err)

	require.Equal(t, g, loaded)
}

func TestLevelLoadUnknown(t *testing.T) {
	st := newLevelStore(t)
	_, err := st.Load(t.Context(), "nope")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestLevelIndexAndDelete(t *testing.T) {
	st := newLevelStore(t)
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

	ok, err = st.Exists(ctx, g1.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLevelCleanupInactive(t *testing.T) {
	st := newLevelStore(t)
	ctx := t.Context()

	fresh := game.NewGame()
	require.NoError(t, st.Save(ctx, fresh))

	stale := game.NewGame()
	stale.LastActivityAt = time.Now().UTC().Add(-3 * time.Hour)
	require.NoError(t, st.Save(ctx, stale))

	n, err := st.CleanupInactive(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	ids, err := st.AllIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{fresh.ID}, ids)
	_, err = st.Load(ctx, stale.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestLevelSaveRefreshesActivity(t *testing.T) {
	st := newLevelStore(t)
	ctx := t.Context()

	g := game.NewGame()
	g.LastActivityAt = time.Now().UTC().Add(-3 * time.Hour)
	require.NoError(t, st.Save(ctx, g))

	// Touch and re-save; the sweep must now leave it alone.
	g.Touch()
	require.NoError(t, st.Save(ctx, g))

	n, err := st.CleanupInactive(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}
