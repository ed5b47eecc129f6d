package messaging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautymap/internal/domain/entity"
)

var base = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func msg(id, from, to int64, minute int, read bool) *entity.Message {
	return &entity.Message{
		ID:         id,
		SenderID:   from,
		ReceiverID: to,
		Content:    "hi",
		CreatedAt:  base.Add(time.Duration(minute) * time.Minute),
		Read:       read,
	}
}

func TestGroup_SingleConversation(t *testing.T) {
	sent := msg(1, 1, 2, 0, false)

	convs := Group(1, []*entity.Message{sent})

	require.Len(t, convs, 1)
	assert.Equal(t, int64(2), convs[0].PartnerID)
	assert.Equal(t, []*entity.Message{sent}, convs[0].Messages)
	assert.Equal(t, sent, convs[0].LastMessage)
	assert.Zero(t, convs[0].UnreadCount, "own messages never count as unread")
}

func TestGroup_OrdersByLastMessage(t *testing.T) {
	messages := []*entity.Message{
		msg(1, 1, 2, 0, true),
		msg(2, 3, 1, 1, false),
		msg(3, 2, 1, 2, false),
		msg(4, 3, 1, 3, false),
		msg(5, 1, 2, 4, false),
	}

	convs := Group(1, messages)

	require.Len(t, convs, 2)
	assert.Equal(t, int64(2), convs[0].PartnerID)
	assert.Equal(t, int64(5), convs[0].LastMessage.ID)
	assert.Len(t, convs[0].Messages, 3)
	assert.Equal(t, 1, convs[0].UnreadCount)

	assert.Equal(t, int64(3), convs[1].PartnerID)
	assert.Equal(t, 2, convs[1].UnreadCount)
	assert.Equal(t, []int64{2, 4}, []int64{convs[1].Messages[0].ID, convs[1].Messages[1].ID})
}

func TestGroup_IgnoresSelfAndForeignMessages(t *testing.T) {
	messages := []*entity.Message{
		msg(1, 1, 1, 0, false),
		msg(2, 4, 5, 1, false),
	}

	assert.Empty(t, Group(1, messages))
}
