package directory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautymap/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

func fixtures() []*entity.ProviderListing {
	return []*entity.ProviderListing{
		{
			Profile: &entity.Profile{
				ID: 1, Username: "sarah_beauty", Role: entity.RoleProvider,
				Bio: "Certified lash artist", Location: "Bondi Beach",
				LocationType: ptr(entity.LocationTypeStudio),
				Latitude:     ptr(-33.8915), Longitude: ptr(151.2767),
			},
			Services: []*entity.Service{
				{ID: 1, ProviderID: 1, Name: "Classic Lashes", Description: ptr("Natural look")},
			},
		},
		{
			Profile: &entity.Profile{
				ID: 2, Username: "glam_mobile", Role: entity.RoleProvider,
				Bio: "I come to you", Location: "Sydney CBD",
				LocationType: ptr(entity.LocationTypeMobile),
				Latitude:     ptr(-33.8688), Longitude: ptr(151.2093),
			},
			Services: []*entity.Service{
				{ID: 2, ProviderID: 2, Name: "Bridal Makeup", Description: ptr("Includes LASH strip application")},
			},
		},
		{
			Profile: &entity.Profile{
				ID: 3, Username: "nails_by_kim", Role: entity.RoleProvider,
				Bio: "Gel and acrylic", Location: "Parramatta",
			},
			Services: []*entity.Service{
				{ID: 3, ProviderID: 3, Name: "Gel Nails"},
			},
		},
	}
}

func ids(listings []*entity.ProviderListing) []int64 {
	out := make([]int64, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Profile.ID)
	}

	return out
}

func TestApply_NoFilters(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 3}, ids(Apply(fixtures(), Filter{})))
}

func TestApply_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []int64
	}{
		{name: "lash matches bio, service name and description", search: "lash", want: []int64{1, 2}},
		{name: "case insensitive username", search: "GLAM", want: []int64{2}},
		{name: "location label", search: "parra", want: []int64{3}},
		{name: "blank search is inactive", search: "   ", want: []int64{1, 2, 3}},
		{name: "no match", search: "tattoo", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(fixtures(), Filter{Search: tt.search})))
		})
	}
}

func TestApply_ServiceNames(t *testing.T) {
	got := Apply(fixtures(), Filter{ServiceNames: []string{"nails", "makeup"}})
	assert.Equal(t, []int64{2, 3}, ids(got))

	// description does not count for the service filter
	got = Apply(fixtures(), Filter{ServiceNames: []string{"strip"}})
	assert.Empty(t, got)
}

func TestApply_LocationTypes(t *testing.T) {
	got := Apply(fixtures(), Filter{LocationTypes: []entity.LocationType{entity.LocationTypeStudio, entity.LocationTypeHouse}})
	assert.Equal(t, []int64{1}, ids(got))
}

func TestApply_FiltersAreAnded(t *testing.T) {
	got := Apply(fixtures(), Filter{
		Search:        "lash",
		LocationTypes: []entity.LocationType{entity.LocationTypeMobile},
	})
	assert.Equal(t, []int64{2}, ids(got))
}

func TestApply_Near(t *testing.T) {
	// Bondi to the CBD is roughly 7 km.
	got := Apply(fixtures(), Filter{Near: &Near{Latitude: -33.8915, Longitude: 151.2767, RadiusKm: 3}})
	assert.Equal(t, []int64{1}, ids(got))

	got = Apply(fixtures(), Filter{Near: &Near{Latitude: -33.8915, Longitude: 151.2767, RadiusKm: 10}})
	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestMappable(t *testing.T) {
	listings := fixtures()
	listings[2].Profile.Latitude = ptr(math.NaN())
	listings[2].Profile.Longitude = ptr(151.0)
	listings[2].Profile.LocationType = ptr(entity.LocationTypeHouse)

	got := Mappable(listings)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].Profile.ID)
}
