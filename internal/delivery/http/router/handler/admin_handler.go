package handler

import (
	"log/slog"

	deliverycontext "beautymap/internal/delivery/context"
	"beautymap/internal/delivery/http/response"
	"beautymap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC   usecase.AdminUsecase
	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// AdminHandler serves the admin dashboard and the public visit counter
type AdminHandler struct {
	adminUC   usecase.AdminUsecase
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC:   params.AdminUC,
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// RecordPageVisit counts one visit. Counter failures never reach the visitor.
func (h *AdminHandler) RecordPageVisit(c echo.Context) error {
	if err := h.adminUC.RecordPageVisit(c.Request().Context()); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Failed to record page visit", slog.Any("error", err))
	}

	return response.NoContent(c)
}

// Stats returns the dashboard totals
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stats)
}

// PageVisits returns the total number of recorded visits
func (h *AdminHandler) PageVisits(c echo.Context) error {
	count, err := h.adminUC.PageVisits(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]int64{"count": count})
}

// ListProfiles returns every profile
func (h *AdminHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.adminUC.ListProfiles(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toProfileResponses(profiles))
}

// CreateDemoProfile creates a profile without a real identity behind it
func (h *AdminHandler) CreateDemoProfile(c echo.Context) error {
	var req usecase.CreateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	profile, err := h.adminUC.CreateDemoProfile(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, toProfileResponse(profile))
}

// UpdateProfile edits any profile, username included
func (h *AdminHandler) UpdateProfile(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	var req usecase.AdminUpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	profile, err := h.adminUC.UpdateProfile(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toProfileResponse(profile))
}

// DeleteProfile removes any profile with the same cascade as self-deletion
func (h *AdminHandler) DeleteProfile(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	if err := h.adminUC.DeleteProfile(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListProfileServices returns the services of profile :id
func (h *AdminHandler) ListProfileServices(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	services, err := h.catalogUC.ListServices(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toServiceResponses(services))
}

// CreateProfileService adds a service to provider :id
func (h *AdminHandler) CreateProfileService(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	var req usecase.ServiceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	created, err := h.catalogUC.CreateService(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, toServiceResponse(created))
}

// UpdateService patches any service
func (h *AdminHandler) UpdateService(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	var req usecase.UpdateServiceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	updated, err := h.catalogUC.UpdateService(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toServiceResponse(updated))
}

// DeleteService removes any service
func (h *AdminHandler) DeleteService(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	if err := h.catalogUC.DeleteService(c.Request().Context(), deliverycontext.GetProfile(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
