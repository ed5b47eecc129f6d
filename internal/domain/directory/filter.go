// Package directory implements the public provider directory filters.
package directory

import (
	"slices"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"beautymap/internal/domain/entity"
)

// Near restricts results to providers within RadiusKm of a point.
type Near struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// Filter describes a directory query. Zero-valued fields are inactive.
// Filters are ANDed; the values within one filter are ORed.
type Filter struct {
	Search        string
	ServiceNames  []string
	LocationTypes []entity.LocationType
	Near          *Near
}

// Apply returns the listings matching f, preserving input order.
func Apply(listings []*entity.ProviderListing, f Filter) []*entity.ProviderListing {
	result := make([]*entity.ProviderListing, 0, len(listings))
	for _, l := range listings {
		if Match(l, f) {
			result = append(result, l)
		}
	}

	return result
}

// Match reports whether a single listing satisfies every active filter.
func Match(l *entity.ProviderListing, f Filter) bool {
	if l == nil || l.Profile == nil {
		return false
	}

	return matchSearch(l, f.Search) &&
		matchServiceNames(l.Services, f.ServiceNames) &&
		matchLocationTypes(l.Profile, f.LocationTypes) &&
		matchNear(l.Profile, f.Near)
}

// Mappable keeps the listings that can be plotted: not mobile and with finite coordinates.
func Mappable(listings []*entity.ProviderListing) []*entity.ProviderListing {
	result := make([]*entity.ProviderListing, 0, len(listings))
	for _, l := range listings {
		if l.Profile.IsMappable() {
			result = append(result, l)
		}
	}

	return result
}

func matchSearch(l *entity.ProviderListing, search string) bool {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return true
	}

	p := l.Profile
	if containsFold(p.Username, term) || containsFold(p.Bio, term) || containsFold(p.Location, term) {
		return true
	}

	for _, s := range l.Services {
		if containsFold(s.Name, term) {
			return true
		}
		if s.Description != nil && containsFold(*s.Description, term) {
			return true
		}
	}

	return false
}

func matchServiceNames(services []*entity.Service, names []string) bool {
	terms := normalize(names)
	if len(terms) == 0 {
		return true
	}

	for _, s := range services {
		for _, term := range terms {
			if containsFold(s.Name, term) {
				return true
			}
		}
	}

	return false
}

func matchLocationTypes(p *entity.Profile, types []entity.LocationType) bool {
	if len(types) == 0 {
		return true
	}
	if p.LocationType == nil {
		return false
	}

	return slices.Contains(types, *p.LocationType)
}

func matchNear(p *entity.Profile, near *Near) bool {
	if near == nil {
		return true
	}
	if !p.HasCoordinates() {
		return false
	}

	origin := orb.Point{near.Longitude, near.Latitude}
	target := orb.Point{*p.Longitude, *p.Latitude}

	return geo.DistanceHaversine(origin, target) <= near.RadiusKm*1000
}

// containsFold expects term to be lower-cased already.
func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}

func normalize(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}

	return out
}
