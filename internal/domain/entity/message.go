package entity

import "time"

// Message is a directed, immutable note from one profile to another.
type Message struct {
	ID         int64
	SenderID   int64
	ReceiverID int64
	Content    string
	CreatedAt  time.Time
	Read       bool
}

// PartnerOf returns the other participant from the viewpoint of profileID.
func (m *Message) PartnerOf(profileID int64) int64 {
	if m.SenderID == profileID {
		return m.ReceiverID
	}

	return m.SenderID
}

// Involves reports whether profileID is the sender or the receiver.
func (m *Message) Involves(profileID int64) bool {
	return m.SenderID == profileID || m.ReceiverID == profileID
}
