package handler

import (
	"log/slog"

	deliverycontext "beautymap/internal/delivery/context"
	"beautymap/internal/delivery/http/response"
	"beautymap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// MessageHandler serves direct messaging
type MessageHandler struct {
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// ListMessages returns the conversation with ?otherUserId, or every message of the caller without it
func (h *MessageHandler) ListMessages(c echo.Context) error {
	profile := deliverycontext.GetProfile(c)
	ctx := c.Request().Context()

	if c.QueryParam("otherUserId") == "" {
		messages, err := h.messageUC.ListMessages(ctx, profile.ID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.OK(c, toMessageResponses(messages))
	}

	partnerID, ok := queryID(c, "otherUserId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid otherUserId")
	}

	messages, err := h.messageUC.GetConversation(ctx, profile.ID, partnerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toMessageResponses(messages))
}

// ListConversations groups the caller's messages by partner
func (h *MessageHandler) ListConversations(c echo.Context) error {
	conversations, err := h.messageUC.ListConversations(c.Request().Context(), deliverycontext.GetProfile(c).ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toConversationResponses(conversations))
}

// SendMessage sends a message from the caller
func (h *MessageHandler) SendMessage(c echo.Context) error {
	profile := deliverycontext.GetProfile(c)

	var req usecase.SendMessageInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	message, err := h.messageUC.SendMessage(c.Request().Context(), profile.ID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, toMessageResponse(message))
}

// DeleteMessage removes a message the caller sent or received
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	if err := h.messageUC.DeleteMessage(c.Request().Context(), deliverycontext.GetProfile(c).ID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// DeleteConversation removes every message between the caller and :otherUserId
func (h *MessageHandler) DeleteConversation(c echo.Context) error {
	partnerID, ok := pathID(c, "otherUserId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid otherUserId")
	}

	if err := h.messageUC.DeleteConversation(c.Request().Context(), deliverycontext.GetProfile(c).ID, partnerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
