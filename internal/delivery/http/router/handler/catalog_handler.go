package handler

import (
	"log/slog"

	deliverycontext "beautymap/internal/delivery/context"
	"beautymap/internal/delivery/http/response"
	"beautymap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves a provider's service catalog
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListServices returns the services of ?providerId
func (h *CatalogHandler) ListServices(c echo.Context) error {
	providerID, ok := queryID(c, "providerId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "providerId is required")
	}

	services, err := h.catalogUC.ListServices(c.Request().Context(), providerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toServiceResponses(services))
}

// CreateService adds a service to the calling provider
func (h *CatalogHandler) CreateService(c echo.Context) error {
	profile := deliverycontext.GetProfile(c)

	var req usecase.ServiceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	created, err := h.catalogUC.CreateService(c.Request().Context(), profile.ID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, toServiceResponse(created))
}

// DeleteService removes one of the caller's services
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	if err := h.catalogUC.DeleteService(c.Request().Context(), deliverycontext.GetProfile(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
