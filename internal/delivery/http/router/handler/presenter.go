package handler

import (
	"time"

	"beautymap/internal/domain/entity"
	"beautymap/internal/domain/messaging"
	"beautymap/internal/usecase"
)

// ProfileResponse is the public shape of a profile.
type ProfileResponse struct {
	ID                int64                `json:"id"`
	Username          string               `json:"username"`
	UsernameChangedAt *time.Time           `json:"usernameChangedAt,omitempty"`
	Role              entity.Role          `json:"role"`
	IsAdmin           bool                 `json:"isAdmin"`
	Bio               string               `json:"bio"`
	Instagram         string               `json:"instagram"`
	ProfileImageURL   string               `json:"profileImageUrl"`
	Location          string               `json:"location"`
	LocationType      *entity.LocationType `json:"locationType"`
	Latitude          *float64             `json:"latitude"`
	Longitude         *float64             `json:"longitude"`
	Rating            float64              `json:"rating"`
	ReviewCount       int                  `json:"reviewCount"`
}

// ServiceResponse is the public shape of a service.
type ServiceResponse struct {
	ID          int64   `json:"id"`
	ProviderID  int64   `json:"providerId"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Duration    *int    `json:"duration"`
}

// ReviewResponse is the public shape of a review. The author's profile id is not exposed.
type ReviewResponse struct {
	ID          int64     `json:"id"`
	ProviderID  int64     `json:"providerId"`
	DisplayName string    `json:"displayName"`
	Rating      int       `json:"rating"`
	Comment     *string   `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MessageResponse is the shape of a direct message.
type MessageResponse struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"senderId"`
	ReceiverID int64     `json:"receiverId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	Read       bool      `json:"read"`
}

// ConversationResponse summarises the messages exchanged with one partner.
type ConversationResponse struct {
	PartnerID   int64              `json:"partnerId"`
	LastMessage *MessageResponse   `json:"lastMessage"`
	UnreadCount int                `json:"unreadCount"`
	Messages    []*MessageResponse `json:"messages"`
}

// ProviderListingResponse is a directory entry.
type ProviderListingResponse struct {
	*ProfileResponse
	Services []*ServiceResponse `json:"services"`
}

// ProfileDetailResponse backs the public profile page.
type ProfileDetailResponse struct {
	Profile  *ProfileResponse   `json:"profile"`
	Services []*ServiceResponse `json:"services"`
	Reviews  []*ReviewResponse  `json:"reviews"`
}

func toProfileResponse(p *entity.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}

	return &ProfileResponse{
		ID:                p.ID,
		Username:          p.Username,
		UsernameChangedAt: p.UsernameChangedAt,
		Role:              p.Role,
		IsAdmin:           p.IsAdmin,
		Bio:               p.Bio,
		Instagram:         p.Instagram,
		ProfileImageURL:   p.ProfileImageURL,
		Location:          p.Location,
		LocationType:      p.LocationType,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		Rating:            p.Rating,
		ReviewCount:       p.ReviewCount,
	}
}

func toProfileResponses(profiles []*entity.Profile) []*ProfileResponse {
	out := make([]*ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toProfileResponse(p))
	}

	return out
}

func toServiceResponse(s *entity.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          s.ID,
		ProviderID:  s.ProviderID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.DurationMinutes,
	}
}

func toServiceResponses(services []*entity.Service) []*ServiceResponse {
	out := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, toServiceResponse(s))
	}

	return out
}

func toReviewResponse(r *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:          r.ID,
		ProviderID:  r.ProviderID,
		DisplayName: r.DisplayName,
		Rating:      r.Rating,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
	}
}

func toReviewResponses(reviews []*entity.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}

	return out
}

func toMessageResponse(m *entity.Message) *MessageResponse {
	if m == nil {
		return nil
	}

	return &MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
		Read:       m.Read,
	}
}

func toMessageResponses(messages []*entity.Message) []*MessageResponse {
	out := make([]*MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toMessageResponse(m))
	}

	return out
}

func toConversationResponses(conversations []*messaging.Conversation) []*ConversationResponse {
	out := make([]*ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		out = append(out, &ConversationResponse{
			PartnerID:   c.PartnerID,
			LastMessage: toMessageResponse(c.LastMessage),
			UnreadCount: c.UnreadCount,
			Messages:    toMessageResponses(c.Messages),
		})
	}

	return out
}

func toListingResponses(listings []*entity.ProviderListing) []*ProviderListingResponse {
	out := make([]*ProviderListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, &ProviderListingResponse{
			ProfileResponse: toProfileResponse(l.Profile),
			Services:        toServiceResponses(l.Services),
		})
	}

	return out
}

func toProfileDetailResponse(d *usecase.ProfileDetail) *ProfileDetailResponse {
	return &ProfileDetailResponse{
		Profile:  toProfileResponse(d.Profile),
		Services: toServiceResponses(d.Services),
		Reviews:  toReviewResponses(d.Reviews),
	}
}
