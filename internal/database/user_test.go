package database

import (
	"context"
	"testing"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, db *DB, slackUserID string, remindersEnabled bool) *entity.User {
	t.Helper()

	user := &entity.User{
		SlackUserID:      slackUserID,
		DisplayName:      "User " + slackUserID,
		RemindersEnabled: remindersEnabled,
	}
	err := newUserRepo(db.conn).Create(context.Background(), user)
	require.NoError(t, err)

	return user
}

func TestUserRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	ctx := context.Background()
	userRepo := newUserRepo(db.conn)

	t.Run("should create user successfully", func(t *testing.T) {
		user := &entity.User{
			SlackUserID:      "U123456789",
			DisplayName:      "Test User",
			RemindersEnabled: true,
		}

		err := userRepo.Create(ctx, user)

		require.NoError(t, err)
		assert.NotZero(t, user.ID)
	})

	t.Run("should fail on duplicate slack user", func(t *testing.T) {
		user := &entity.User{SlackUserID: "U123456789", DisplayName: "Again"}

		err := userRepo.Create(ctx, user)

		assert.Error(t, err)
	})
}

func TestUserRepo_GetBySlackID(t *testing.T) {
	db := SetupTestDB(t)
	ctx := context.Background()
	userRepo := newUserRepo(db.conn)

	created := createTestUser(t, db, "U1", true)

	found, err := userRepo.GetBySlackID(ctx, "U1")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "U1", found.SlackUserID)
	assert.Equal(t, "User U1", found.DisplayName)
	assert.True(t, found.RemindersEnabled)
	assert.False(t, found.CreatedAt.IsZero())

	notFound, err := userRepo.GetBySlackID(ctx, "U404")
	require.NoError(t, err)
	assert.Nil(t, notFound)
}

func TestUserRepo_SetRemindersEnabled(t *testing.T) {
	db := SetupTestDB(t)
	ctx := context.Background()
	userRepo := newUserRepo(db.conn)

	user := createTestUser(t, db, "U1", true)

	err := userRepo.SetRemindersEnabled(ctx, user.ID, false)
	require.NoError(t, err)

	found, err := userRepo.GetBySlackID(ctx, "U1")
	require.NoError(t, err)
	assert.False(t, found.RemindersEnabled)

	err = userRepo.SetRemindersEnabled(ctx, 99999, true)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
