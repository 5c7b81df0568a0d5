package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	require.Empty(t, cfg.StoreHost)
	require.Empty(t, cfg.StoreAddr(), "empty host selects the embedded backend")
	require.Equal(t, "boardwalk", cfg.StorePrefix)
	require.Equal(t, "0.0.0.0:8080", cfg.ListenAddr())

	re, err := cfg.OriginRegexp()
	require.NoError(t, err)
	require.True(t, re.MatchString("http://anywhere.example"))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("STORE_HOST", "redis.internal")
	t.Setenv("STORE_PORT", "6380")
	t.Setenv("WS_HOST", "127.0.0.1")
	t.Setenv("WS_PORT", "9000")
	t.Setenv("CORS_ORIGIN_PATTERN", `^https://game\.example$`)

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, "redis.internal:6380", cfg.StoreAddr())
	require.Equal(t, "127.0.0.1:9000", cfg.ListenAddr())

	re, err := cfg.OriginRegexp()
	require.NoError(t, err)
	require.True(t, re.MatchString("https://game.example"))
	require.False(t, re.MatchString("https://evil.example"))
}

func TestInvalidPort(t *testing.T) {
	t.Setenv("WS_PORT", "not-a-port")
	_, err := FromEnv()
	require.Error(t, err)
}
