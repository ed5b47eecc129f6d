package entity

import "slices"

// LocationType describes where a provider works from.
type LocationType string

const (
	LocationTypeHouse       LocationType = "house"
	LocationTypeApartment   LocationType = "apartment"
	LocationTypeStudio      LocationType = "studio"
	LocationTypeRentedSpace LocationType = "rented_space"
	// LocationTypeMobile providers travel to the client and are never plotted on the map.
	LocationTypeMobile LocationType = "mobile"
)

// LocationTypes lists every valid location type in display order.
var LocationTypes = []LocationType{
	LocationTypeHouse,
	LocationTypeApartment,
	LocationTypeStudio,
	LocationTypeRentedSpace,
	LocationTypeMobile,
}

// String returns the string representation of the LocationType.
func (t LocationType) String() string {
	return string(t)
}

// IsValid checks if the LocationType is one of the known values.
func (t LocationType) IsValid() bool {
	return slices.Contains(LocationTypes, t)
}
