package constants

const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

const (
	// DefaultMaxRadiusKm caps the directory near filter when config leaves it unset.
	DefaultMaxRadiusKm = 200.0

	// MinGeocodeQueryLength is the shortest query forwarded to the geocoder.
	MinGeocodeQueryLength = 3
)
