package context

import (
	"beautymap/internal/domain/entity"
	"beautymap/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SetIdentity stores the verified bearer identity.
func SetIdentity(c echo.Context, identity *service.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the verified identity, or nil for anonymous requests.
func GetIdentity(c echo.Context) *service.Identity {
	identity, _ := c.Get(string(KeyIdentity)).(*service.Identity)

	return identity
}

// SetProfile stores the caller's resolved profile.
func SetProfile(c echo.Context, profile *entity.Profile) {
	c.Set(string(KeyProfile), profile)
}

// GetProfile returns the caller's profile, or nil when none was resolved.
func GetProfile(c echo.Context) *entity.Profile {
	profile, _ := c.Get(string(KeyProfile)).(*entity.Profile)

	return profile
}
