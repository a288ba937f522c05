package gate_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	gate "github.com/shelfside/go-auth-gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSessionStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := gate.NewFileSessionStore(path)

	t.Run("missing file reads empty", func(t *testing.T) {
		session := store.Read()
		assert.False(t, session.Authenticated())
		assert.Empty(t, session.Token)
		assert.Empty(t, session.Role)
	})

	t.Run("save then read round trip", func(t *testing.T) {
		require.NoError(t, store.Save("tok-123", "user"))

		session := store.Read()
		assert.True(t, session.Authenticated())
		assert.Equal(t, "tok-123", session.Token)
		assert.Equal(t, "user", session.Role)
	})

	t.Run("persists under the fixed storage keys", func(t *testing.T) {
		require.NoError(t, store.Save("tok-456", "admin"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var raw map[string]string
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Equal(t, "tok-456", raw[gate.SessionTokenKey])
		assert.Equal(t, "admin", raw[gate.SessionRoleKey])
	})

	t.Run("save overwrites previous session", func(t *testing.T) {
		require.NoError(t, store.Save("first", "user"))
		require.NoError(t, store.Save("second", "moderator"))

		session := store.Read()
		assert.Equal(t, "second", session.Token)
		assert.Equal(t, "moderator", session.Role)
	})

	t.Run("clear removes the session", func(t *testing.T) {
		require.NoError(t, store.Save("tok-789", "user"))
		require.NoError(t, store.Clear())

		assert.False(t, store.Read().Authenticated())
	})

	t.Run("clear on absent session is a no-op", func(t *testing.T) {
		require.NoError(t, store.Clear())
		require.NoError(t, store.Clear())
	})

	t.Run("corrupt file reads empty", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		session := store.Read()
		assert.False(t, session.Authenticated())
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		nested := filepath.Join(t.TempDir(), "a", "b", "session.json")
		deep := gate.NewFileSessionStore(nested)

		require.NoError(t, deep.Save("tok", "user"))
		assert.Equal(t, "tok", deep.Read().Token)
	})
}

func TestMemorySessionStore(t *testing.T) {
	store := gate.NewMemorySessionStore()

	assert.False(t, store.Read().Authenticated())

	require.NoError(t, store.Save("tok", "user"))
	session := store.Read()
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, "user", session.Role)

	require.NoError(t, store.Clear())
	assert.False(t, store.Read().Authenticated())
}

func TestStoredSessionAuthenticated(t *testing.T) {
	assert.False(t, gate.StoredSession{}.Authenticated())

	// a role with no token is meaningless
	assert.False(t, gate.StoredSession{Role: "admin"}.Authenticated())

	assert.True(t, gate.StoredSession{Token: "tok"}.Authenticated())
}
