// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"math"
	"time"
)

// Profile is the application-level identity record. There is exactly one per
// external (identity provider) subject.
type Profile struct {
	ID                int64         // System-assigned, stable identifier.
	ExternalID        string        // Subject claim of the identity provider. Unique and immutable.
	Username          string        // Public handle. Unique, changed only through the dedicated username operation.
	UsernameChangedAt *time.Time    // When the username was last changed, nil if never.
	Role              Role          // client or provider.
	IsAdmin           bool          // Grants access to the admin surface.
	Bio               string        // Free text shown on the profile page.
	Instagram         string        // Social handle.
	ProfileImageURL   string        // Reference to the uploaded profile picture.
	Location          string        // Human readable location label.
	LocationType      *LocationType // Where a provider works from. Nil for clients and unset providers.
	Latitude          *float64      // Nil when unknown.
	Longitude         *float64      // Nil when unknown.
	Rating            float64       // Mean of all review ratings. Maintained by the review ledger only.
	ReviewCount       int           // Number of reviews. Maintained by the review ledger only.
}

// IsProvider reports whether the profile offers services.
func (p *Profile) IsProvider() bool {
	return p.Role == RoleProvider
}

// HasCoordinates reports whether both coordinates are set and finite.
func (p *Profile) HasCoordinates() bool {
	if p.Latitude == nil || p.Longitude == nil {
		return false
	}

	return isFinite(*p.Latitude) && isFinite(*p.Longitude)
}

// IsMappable reports whether the profile can be plotted on the public map.
func (p *Profile) IsMappable() bool {
	if p.LocationType != nil && *p.LocationType == LocationTypeMobile {
		return false
	}

	return p.HasCoordinates()
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ProviderListing is a provider profile annotated with its current services.
type ProviderListing struct {
	Profile  *Profile
	Services []*Service
}
