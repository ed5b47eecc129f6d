// Package middleware contains the HTTP-only echo middleware.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "beautymap/internal/delivery/context"
	"beautymap/internal/delivery/http/response"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/service"
	"beautymap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier  service.IdentityVerifier
	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// AuthMiddleware verifies bearer tokens and resolves the caller's profile.
type AuthMiddleware struct {
	verifier  service.IdentityVerifier
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:  params.Verifier,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// Authenticate requires a valid bearer token and stores the verified identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		identity, err := m.verifier.Verify(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected bearer token", slog.Any("error", err))

			return response.HandleAppError(c, domainerrors.ErrInvalidToken)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireProfile resolves the identity to a profile. Callers without one are unauthorized.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireProfile(next echo.HandlerFunc) echo.HandlerFunc {
	return m.resolveProfile(next, false)
}

// RequireOwnProfile is RequireProfile for the /me routes, where a missing profile is a 404.
func (m *AuthMiddleware) RequireOwnProfile(next echo.HandlerFunc) echo.HandlerFunc {
	return m.resolveProfile(next, true)
}

func (m *AuthMiddleware) resolveProfile(next echo.HandlerFunc, missingIsNotFound bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := deliverycontext.GetIdentity(c)
		if identity == nil {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		profile, err := m.profileUC.GetByExternalID(c.Request().Context(), identity.Subject)
		if err != nil {
			if !errors.Is(err, domainerrors.ErrProfileNotFound) {
				return errors.WithStack(err)
			}
			if missingIsNotFound {
				return response.HandleAppError(c, domainerrors.ErrProfileNotFound)
			}

			return response.Unauthorized(c, "PROFILE_REQUIRED", "Create a profile first")
		}

		deliverycontext.SetProfile(c, profile)

		return next(c)
	}
}

// RequireProvider allows only provider profiles.
// It must be used AFTER RequireProfile.
func (m *AuthMiddleware) RequireProvider(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		profile := deliverycontext.GetProfile(c)
		if profile == nil {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}
		if !profile.IsProvider() {
			return response.HandleAppError(c, domainerrors.ErrNotProvider)
		}

		return next(c)
	}
}

// RequireAdmin allows only admin profiles.
// It must be used AFTER RequireProfile.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		profile := deliverycontext.GetProfile(c)
		if profile == nil {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}
		if !profile.IsAdmin {
			return response.Forbidden(c, "FORBIDDEN", "Admin access required")
		}

		return next(c)
	}
}
