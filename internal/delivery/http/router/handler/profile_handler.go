package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "beautymap/internal/delivery/context"
	"beautymap/internal/delivery/http/response"
	"beautymap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateUsernameRequest represents the request body for changing a username
type UpdateUsernameRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
}

// CheckUsernameRequest represents the request body for the availability check
type CheckUsernameRequest struct {
	Username string `json:"username" validate:"required"`
}

// GetMe returns the caller's own profile
func (h *ProfileHandler) GetMe(c echo.Context) error {
	profile := deliverycontext.GetProfile(c)

	return response.OK(c, toProfileResponse(profile))
}

// GetProfile returns a profile with its services and reviews
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	detail, err := h.profileUC.GetProfile(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toProfileDetailResponse(detail))
}

// GetQRCode renders a PNG QR code linking to the profile page
func (h *ProfileHandler) GetQRCode(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	png, err := h.profileUC.ProfileQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateProfile onboards the authenticated identity
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
	}

	var req usecase.CreateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	profile, err := h.profileUC.CreateProfile(c.Request().Context(), identity.Subject, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, toProfileResponse(profile))
}

// UpdateMe edits the caller's profile details
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	profile := deliverycontext.GetProfile(c)

	var req usecase.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	updated, err := h.profileUC.UpdateProfile(c.Request().Context(), profile.ID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toProfileResponse(updated))
}

// UpdateMyUsername changes the caller's username
func (h *ProfileHandler) UpdateMyUsername(c echo.Context) error {
	profile := deliverycontext.GetProfile(c)

	var req UpdateUsernameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid username input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	updated, err := h.profileUC.UpdateUsername(c.Request().Context(), profile.ID, req.Username)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toProfileResponse(updated))
}

// DeleteMe removes the caller's profile and everything that depends on it
func (h *ProfileHandler) DeleteMe(c echo.Context) error {
	profile := deliverycontext.GetProfile(c)

	if err := h.profileUC.DeleteProfile(c.Request().Context(), profile.ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// CheckUsername reports whether a username is still free
func (h *ProfileHandler) CheckUsername(c echo.Context) error {
	var req CheckUsernameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid username input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	available, err := h.profileUC.CheckUsername(c.Request().Context(), req.Username)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]bool{"available": available})
}
