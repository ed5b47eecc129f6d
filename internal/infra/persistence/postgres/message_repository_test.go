package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautymap/internal/domain/entity"
	"beautymap/internal/domain/repository"
)

func TestMessageRepository_Conversation(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	send := func(from, to int64, content string) *entity.Message {
		m := &entity.Message{SenderID: from, ReceiverID: to, Content: content, Read: true}
		require.NoError(t, repo.Create(ctx, m))

		return m
	}

	first := send(1, 2, "hello")
	assert.False(t, first.Read, "messages are stored unread")
	send(2, 1, "hi back")
	send(1, 3, "other pair")
	send(3, 2, "unrelated")

	conv, err := repo.ListConversation(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, conv, 2)
	assert.Equal(t, "hello", conv[0].Content)
	assert.Equal(t, "hi back", conv[1].Content)

	all, err := repo.ListByProfile(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.MarkReadFrom(ctx, 2, 1))
	got, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	deleted, err := repo.DeleteConversation(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "other pairs are untouched")

	require.NoError(t, repo.DeleteByProfile(ctx, 3))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, repo.Delete(ctx, first.ID), repository.ErrMessageNotFound)
}
