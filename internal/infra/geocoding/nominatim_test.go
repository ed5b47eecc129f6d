package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"beautymap/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimGeocoder_Search(t *testing.T) {
	var gotQuery map[string]string
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		gotAgent = r.Header.Get("User-Agent")
		gotQuery = map[string]string{
			"q":            r.URL.Query().Get("q"),
			"format":       r.URL.Query().Get("format"),
			"countrycodes": r.URL.Query().Get("countrycodes"),
			"limit":        r.URL.Query().Get("limit"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"display_name": "Bondi Beach, Sydney", "lat": "-33.8915", "lon": "151.2767"},
			{"display_name": "Broken", "lat": "n/a", "lon": "151"}
		]`))
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(&config.Config{Geocoding: &config.GeocodingConfig{
		BaseURL:      server.URL + "/",
		CountryCodes: "au",
		Limit:        3,
		UserAgent:    "beautymap-test",
	}})

	results, err := geocoder.Search(context.Background(), "bondi")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Bondi Beach, Sydney", results[0].DisplayName)
	assert.InDelta(t, -33.8915, results[0].Latitude, 1e-9)
	assert.InDelta(t, 151.2767, results[0].Longitude, 1e-9)

	assert.Equal(t, map[string]string{"q": "bondi", "format": "json", "countrycodes": "au", "limit": "3"}, gotQuery)
	assert.Equal(t, "beautymap-test", gotAgent)
}

func TestNominatimGeocoder_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(&config.Config{Geocoding: &config.GeocodingConfig{BaseURL: server.URL}})

	_, err := geocoder.Search(context.Background(), "bondi")
	assert.ErrorContains(t, err, "429")
}
