package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pattanan23/elearnnig-it/apperror"
	"github.com/pattanan23/elearnnig-it/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceResetCodeSupersedes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "a@example.com", "6400001", models.RoleStudent)

	require.NoError(t, s.ReplaceResetCode(ctx, user.UserID, "11111", fixedNow.Add(10*time.Minute)))
	require.NoError(t, s.ReplaceResetCode(ctx, user.UserID, "22222", fixedNow.Add(10*time.Minute)))

	var rows []models.PasswordReset
	require.NoError(t, s.db.Where("user_id = ?", user.UserID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "22222", rows[0].Code)

	err := s.ConsumeResetCode(ctx, user.UserID, "11111", "newpass123", fixedNow)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestConsumeResetCodeRejectsWithoutChangingPassword(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "a@example.com", "6400001", models.RoleStudent)
	require.NoError(t, s.ReplaceResetCode(ctx, user.UserID, "12345", fixedNow.Add(10*time.Minute)))

	err := s.ConsumeResetCode(ctx, user.UserID, "54321", "newpass123", fixedNow)
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	err = s.ConsumeResetCode(ctx, user.UserID, "12345", "newpass123", fixedNow.Add(11*time.Minute))
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = s.Authenticate(ctx, "a@example.com", "secret123")
	assert.NoError(t, err)
}

func TestConsumeResetCodeSucceedsOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "a@example.com", "6400001", models.RoleStudent)
	require.NoError(t, s.ReplaceResetCode(ctx, user.UserID, "12345", fixedNow.Add(10*time.Minute)))

	require.NoError(t, s.ConsumeResetCode(ctx, user.UserID, "12345", "newpass123", fixedNow))

	_, err := s.Authenticate(ctx, "a@example.com", "newpass123")
	assert.NoError(t, err)

	err = s.ConsumeResetCode(ctx, user.UserID, "12345", "another123", fixedNow)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestPurgeExpiredResetCodes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := seedUser(t, s, "a@example.com", "6400001", models.RoleStudent)
	b := seedUser(t, s, "b@example.com", "6400002", models.RoleStudent)
	require.NoError(t, s.ReplaceResetCode(ctx, a.UserID, "11111", fixedNow.Add(-time.Minute)))
	require.NoError(t, s.ReplaceResetCode(ctx, b.UserID, "22222", fixedNow.Add(time.Minute)))

	purged, err := s.PurgeExpiredResetCodes(ctx, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}
