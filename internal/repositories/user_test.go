package repositories

import (
	"context"
	"testing"

	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserWriteRepository_Create(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	repo := NewUserWriteRepository(db, nil)

	user := &models.User{Username: "Alice", PasswordHash: "hash", Role: models.RoleUser}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	var stored struct {
		Username     string `db:"username"`
		PasswordHash string `db:"password_hash"`
		Role         string `db:"role"`
	}
	require.NoError(t, db.Get(&stored, "SELECT username, password_hash, role FROM users WHERE id=$1", user.ID))
	assert.Equal(t, "Alice", stored.Username)
	assert.Equal(t, "hash", stored.PasswordHash)
	assert.Equal(t, models.RoleUser, stored.Role)

	dup := &models.User{Username: "alice", PasswordHash: "other", Role: models.RoleUser}
	assert.ErrorIs(t, repo.Create(ctx, dup), models.ErrUsernameConflict)
}

func TestUserReadRepository(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	charlie := insertUser(t, db, "charlie", models.RoleAdmin)
	insertUser(t, db, "Bob", models.RoleUser)
	insertUser(t, db, "dave", models.RoleUser)

	repo := NewUserReadRepository(db, nil)

	t.Run("ByID", func(t *testing.T) {
		user, err := repo.GetByID(ctx, charlie)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
		assert.True(t, user.IsAdmin())
	})

	t.Run("ByUsernameIgnoresCase", func(t *testing.T) {
		user, err := repo.GetByUsername(ctx, "CHARLIE")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, charlie, user.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := repo.GetByUsername(ctx, "nonexistent")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("List", func(t *testing.T) {
		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, "Bob", users[0].Username)
	})

	t.Run("CountByRole", func(t *testing.T) {
		n, err := repo.CountByRole(ctx, models.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}
