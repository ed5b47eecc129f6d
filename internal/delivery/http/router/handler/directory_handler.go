package handler

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"beautymap/internal/delivery/http/response"
	"beautymap/internal/domain/directory"
	"beautymap/internal/domain/entity"
	"beautymap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DirectoryHandlerParams holds dependencies for DirectoryHandler, injected by Fx.
type DirectoryHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	Logger      *slog.Logger
}

// DirectoryHandler serves the public provider directory
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler
func NewDirectoryHandler(params DirectoryHandlerParams) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: params.DirectoryUC,
		logger:      params.Logger,
	}
}

// ListProviders returns the providers matching the query filters
func (h *DirectoryHandler) ListProviders(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", err.Error())
	}

	listings, err := h.directoryUC.ListProviders(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toListingResponses(listings))
}

// ProviderMap returns the matching providers as a GeoJSON FeatureCollection
func (h *DirectoryHandler) ProviderMap(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", err.Error())
	}

	fc, err := h.directoryUC.ProviderMap(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, fc)
}

// Geocode proxies an address search
func (h *DirectoryHandler) Geocode(c echo.Context) error {
	results, err := h.directoryUC.Geocode(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, results)
}

// parseFilter reads search, services, locationTypes, lat, lng and radius.
// services and locationTypes accept repeated parameters and comma separated values.
func parseFilter(c echo.Context) (directory.Filter, error) {
	params := c.QueryParams()
	filter := directory.Filter{
		Search:       strings.TrimSpace(params.Get("search")),
		ServiceNames: splitList(params["services"]),
	}

	for _, raw := range splitList(params["locationTypes"]) {
		lt := entity.LocationType(raw)
		if !lt.IsValid() {
			return directory.Filter{}, errors.Errorf("unknown location type %q", raw)
		}
		filter.LocationTypes = append(filter.LocationTypes, lt)
	}

	near, err := parseNear(params.Get("lat"), params.Get("lng"), params.Get("radius"))
	if err != nil {
		return directory.Filter{}, err
	}
	filter.Near = near

	return filter, nil
}

func parseNear(latRaw, lngRaw, radiusRaw string) (*directory.Near, error) {
	if latRaw == "" && lngRaw == "" {
		if radiusRaw != "" {
			return nil, errors.New("radius requires lat and lng")
		}

		return nil, nil
	}
	if latRaw == "" || lngRaw == "" {
		return nil, errors.New("lat and lng must be given together")
	}

	lat, err := parseFinite(latRaw)
	if err != nil || lat < -90 || lat > 90 {
		return nil, errors.New("lat must be between -90 and 90")
	}

	lng, err := parseFinite(lngRaw)
	if err != nil || lng < -180 || lng > 180 {
		return nil, errors.New("lng must be between -180 and 180")
	}

	near := &directory.Near{Latitude: lat, Longitude: lng}
	if radiusRaw != "" {
		radius, err := parseFinite(radiusRaw)
		if err != nil || radius <= 0 {
			return nil, errors.New("radius must be a positive number of kilometres")
		}
		near.RadiusKm = radius
	}

	return near, nil
}

func parseFinite(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}

	return v, nil
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}
