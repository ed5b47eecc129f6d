package service

import "context"

// GeocodeResult is a single place suggestion.
type GeocodeResult struct {
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lng"`
}

// Geocoder resolves a free-text address into coordinates.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]GeocodeResult, error)
}
