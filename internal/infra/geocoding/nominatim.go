// Package geocoding proxies address lookups to OpenStreetMap Nominatim.
package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"beautymap/config"
	"beautymap/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultLimit     = 5
	defaultTimeout   = 5 * time.Second
	defaultUserAgent = "beautymap/1.0"
)

type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

type nominatimGeocoder struct {
	baseURL      string
	countryCodes string
	limit        int
	userAgent    string
	httpClient   *http.Client
}

// NewNominatimGeocoder is the constructor for nominatimGeocoder.
func NewNominatimGeocoder(cfg *config.Config) service.Geocoder {
	g := &nominatimGeocoder{
		baseURL:   defaultBaseURL,
		limit:     defaultLimit,
		userAgent: defaultUserAgent,
	}
	timeout := defaultTimeout

	if c := cfg.Geocoding; c != nil {
		if c.BaseURL != "" {
			g.baseURL = c.BaseURL
		}
		if c.Limit > 0 {
			g.limit = c.Limit
		}
		if c.UserAgent != "" {
			g.userAgent = c.UserAgent
		}
		if c.Timeout > 0 {
			timeout = c.Timeout
		}
		g.countryCodes = c.CountryCodes
	}

	g.baseURL = strings.TrimRight(g.baseURL, "/")
	g.httpClient = &http.Client{Timeout: timeout}

	return g
}

// Search returns the places matching query. Entries with unparsable coordinates are skipped.
func (g *nominatimGeocoder) Search(ctx context.Context, query string) ([]service.GeocodeResult, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(g.limit))
	if g.countryCodes != "" {
		params.Set("countrycodes", g.countryCodes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocoding returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocoding response")
	}

	results := make([]service.GeocodeResult, 0, len(places))
	for _, p := range places {
		lat, latErr := strconv.ParseFloat(p.Lat, 64)
		lng, lngErr := strconv.ParseFloat(p.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		results = append(results, service.GeocodeResult{
			DisplayName: p.DisplayName,
			Latitude:    lat,
			Longitude:   lng,
		})
	}

	return results, nil
}
