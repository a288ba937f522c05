package gate_test

import (
	"os"
	"path/filepath"
	"testing"

	gate "github.com/shelfside/go-auth-gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := gate.DefaultConfig()

	assert.Equal(t, "HS256", cfg.GetSigningMethod())
	assert.Equal(t, "jwt", cfg.GetContextKey())
	assert.Equal(t, 24, cfg.GetTokenExpiration())
	assert.Equal(t, "header:Authorization,cookie:jwt", cfg.GetTokenLookup())
	assert.Equal(t, "Bearer", cfg.GetAuthScheme())
	assert.Equal(t, ".shelfside/session.json", cfg.GetSessionPath())

	// fixed product routes
	assert.Equal(t, "/login", cfg.GetLoginRoute())
	assert.Equal(t, "/", cfg.GetHomeRoute())
	assert.Equal(t, "/book-forum", cfg.GetForumFallbackRoute())
}

func TestConfigRouteFallbacks(t *testing.T) {
	cfg := &gate.AppConfig{}

	assert.Equal(t, "/login", cfg.GetLoginRoute())
	assert.Equal(t, "/", cfg.GetHomeRoute())
	assert.Equal(t, "/book-forum", cfg.GetForumFallbackRoute())
}

func TestLoadConfig(t *testing.T) {
	t.Run("no file yields defaults", func(t *testing.T) {
		cfg, err := gate.LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "HS256", cfg.GetSigningMethod())
		assert.Equal(t, "/book-forum", cfg.GetForumFallbackRoute())
	})

	t.Run("file values layer over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"signing_key: super-secret\napi_base_url: https://api.example.com\nissuer: shelfside\n",
		), 0o600))

		cfg, err := gate.LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "super-secret", cfg.GetSigningKey())
		assert.Equal(t, "https://api.example.com", cfg.GetAPIBaseURL())
		assert.Equal(t, "shelfside", cfg.GetIssuer())
		// untouched keys keep their defaults
		assert.Equal(t, "Bearer", cfg.GetAuthScheme())
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := gate.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
