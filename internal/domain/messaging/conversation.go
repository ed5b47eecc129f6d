// Package messaging groups a flat message history into conversations.
package messaging

import (
	"sort"

	"beautymap/internal/domain/entity"
)

// Conversation is every message exchanged between the viewer and one partner.
type Conversation struct {
	PartnerID   int64
	Messages    []*entity.Message
	LastMessage *entity.Message
	UnreadCount int
}

// Group splits the viewer's time-ordered messages into per-partner conversations,
// most recent conversation first. Messages the viewer is not part of and
// self-messages are ignored.
func Group(viewerID int64, messages []*entity.Message) []*Conversation {
	byPartner := make(map[int64]*Conversation)
	order := make([]*Conversation, 0)

	for _, m := range messages {
		if m == nil || !m.Involves(viewerID) || m.SenderID == m.ReceiverID {
			continue
		}

		partnerID := m.PartnerOf(viewerID)
		conv, ok := byPartner[partnerID]
		if !ok {
			conv = &Conversation{PartnerID: partnerID}
			byPartner[partnerID] = conv
			order = append(order, conv)
		}

		conv.Messages = append(conv.Messages, m)
		if conv.LastMessage == nil || !m.CreatedAt.Before(conv.LastMessage.CreatedAt) {
			conv.LastMessage = m
		}
		if m.ReceiverID == viewerID && !m.Read {
			conv.UnreadCount++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i].LastMessage, order[j].LastMessage
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID > b.ID
		}

		return a.CreatedAt.After(b.CreatedAt)
	})

	return order
}
