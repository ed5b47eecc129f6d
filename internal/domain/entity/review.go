package entity

import "time"

const (
	// DefaultReviewDisplayName is shown when the author does not pick a name.
	DefaultReviewDisplayName = "Anonymous"
	MinReviewRating          = 1
	MaxReviewRating          = 5
)

// Review is a client's rating of a provider. At most one exists per (client, provider) pair.
type Review struct {
	ID          int64
	ProviderID  int64
	ClientID    int64
	DisplayName string
	Rating      int
	Comment     *string
	CreatedAt   time.Time
}
