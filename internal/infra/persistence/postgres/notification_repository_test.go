package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautymap/internal/domain/entity"
	"beautymap/internal/domain/repository"
)

func TestNotificationRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	first := &entity.Notification{ProfileID: 7, Type: entity.NotificationTypeMessage, Title: "New message", Content: "hi"}
	second := &entity.Notification{ProfileID: 7, Type: entity.NotificationTypeReview, Title: "New review", Content: "4 stars", Link: ptr("/profile/7")}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, &entity.Notification{ProfileID: 8, Type: entity.NotificationTypeSystem, Title: "x", Content: "y"}))

	list, err := repo.ListByProfile(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	unread, err := repo.CountUnread(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	require.NoError(t, repo.MarkRead(ctx, first.ID))
	require.NoError(t, repo.MarkRead(ctx, first.ID))
	unread, err = repo.CountUnread(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	require.NoError(t, repo.Delete(ctx, second.ID))
	assert.ErrorIs(t, repo.MarkRead(ctx, second.ID), repository.ErrNotificationNotFound)

	require.NoError(t, repo.DeleteByProfile(ctx, 7))
	list, err = repo.ListByProfile(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPageVisitRepository(t *testing.T) {
	repo := NewPageVisitRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx))
	require.NoError(t, repo.Record(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
