package entity

// Service is an offering of exactly one provider profile.
type Service struct {
	ID              int64
	ProviderID      int64
	Name            string  // Unique per provider, compared case-insensitively.
	Description     *string
	Price           *string // Opaque, e.g. "50" or "50-100".
	DurationMinutes *int
}
