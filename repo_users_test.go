package gate_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repository "github.com/goliatone/go-repository-bun"
	gate "github.com/shelfside/go-auth-gate"
)

const sqliteCreateUsers = `CREATE TABLE users (
	id TEXT NOT NULL PRIMARY KEY,
	user_role TEXT NOT NULL,
	username TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	avatar_url TEXT,
	password_hash TEXT,
	forum_interaction_banned BOOLEAN NOT NULL DEFAULT FALSE,
	forum_ban_expires_at TIMESTAMP,
	forum_ban_reason TEXT NOT NULL DEFAULT '',
	forum_creation_banned BOOLEAN NOT NULL DEFAULT FALSE,
	forum_creation_ban_expires_at TIMESTAMP,
	forum_creation_ban_reason TEXT NOT NULL DEFAULT '',
	forum_comment_banned BOOLEAN NOT NULL DEFAULT FALSE,
	forum_comment_ban_expires_at TIMESTAMP,
	forum_comment_ban_reason TEXT NOT NULL DEFAULT '',
	forum_join_banned BOOLEAN NOT NULL DEFAULT FALSE,
	forum_join_ban_expires_at TIMESTAMP,
	forum_join_ban_reason TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	deleted_at TIMESTAMP
);`

func setupUsersRepo(t *testing.T) (gate.Users, func()) {
	t.Helper()

	db, err := gate.OpenSQLiteDB(":memory:")
	require.NoError(t, err)

	_, err = db.Exec(sqliteCreateUsers)
	require.NoError(t, err)

	return gate.NewUsersRepository(db), func() {
		db.Close()
	}
}

func TestUsersRegisterAppliesDefaults(t *testing.T) {
	repo, cleanup := setupUsersRepo(t)
	defer cleanup()

	created, err := repo.Register(context.Background(), &gate.User{
		ID:    uuid.New(),
		Email: "reader@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "reader", created.Username)
	assert.Equal(t, string(gate.RoleUser), created.Role)
}

func TestUsersGetByIdentifier(t *testing.T) {
	repo, cleanup := setupUsersRepo(t)
	defer cleanup()

	ctx := context.Background()
	id := uuid.New()

	_, err := repo.Register(ctx, &gate.User{
		ID:       id,
		Email:    "reader@example.com",
		Username: "reader",
		Role:     string(gate.RoleUser),
	})
	require.NoError(t, err)

	byEmail, err := repo.GetByIdentifier(ctx, "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)

	byUsername, err := repo.GetByIdentifier(ctx, "reader")
	require.NoError(t, err)
	assert.Equal(t, id, byUsername.ID)

	byID, err := repo.GetByIdentifier(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", byID.Email)

	_, err = repo.GetByIdentifier(ctx, "nobody@example.com")
	require.Error(t, err)
	assert.True(t, repository.IsRecordNotFound(err))
}

func TestUsersClearBans(t *testing.T) {
	repo, cleanup := setupUsersRepo(t)
	defer cleanup()

	ctx := context.Background()
	id := uuid.New()
	expires := time.Now().Add(48 * time.Hour)

	_, err := repo.Register(ctx, &gate.User{
		ID:                     id,
		Email:                  "banned@example.com",
		ForumInteractionBanned: true,
		ForumBanExpiresAt:      &expires,
		ForumBanReason:         "spamming threads",
		ForumJoinBanned:        true,
		ForumJoinBanReason:     "ban evasion",
	})
	require.NoError(t, err)

	require.NoError(t, repo.ClearBans(ctx, id))

	user, err := repo.GetByIdentifier(ctx, id.String())
	require.NoError(t, err)

	for _, ban := range user.Bans() {
		assert.False(t, ban.Banned, "ban %s should be lifted", ban.Action)
		assert.Nil(t, ban.ExpiresAt)
		assert.Empty(t, ban.Reason)
	}
}

func TestUsersClearBansUnknownID(t *testing.T) {
	repo, cleanup := setupUsersRepo(t)
	defer cleanup()

	err := repo.ClearBans(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, repository.IsRecordNotFound(err))
}

func TestRepositoryManagerValidate(t *testing.T) {
	db, err := gate.OpenSQLiteDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	mgr := gate.NewRepositoryManager(db)
	require.NoError(t, mgr.Validate())
}
