// Package gateway wraps the third-party HTTP APIs the application depends on:
// current weather and air quality (OpenWeather), timezone resolution
// (TimeZoneDB), background images (Unsplash) and geocoding (Nominatim).
// Each wrapper is a pure request/response translation guarded by a circuit
// breaker. Calls are single-attempt; there is no retry policy.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"atmos/internal/config"
	"atmos/internal/models"
	"atmos/internal/observability"

	"github.com/sony/gobreaker"
)

const userAgent = "atmos-weather-dashboard/1.0"

// API is the outbound call surface consumed by the service layer.
type API interface {
	CurrentWeather(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error)
	AirQuality(ctx context.Context, lat, lon float64) (float64, error)
	Timezone(ctx context.Context, lat, lon float64, timestamp int64) (*TimezoneInfo, error)
	BackgroundImage(ctx context.Context, query string) (*BackgroundImage, error)
	GeocodeCity(ctx context.Context, name string) (Place, bool, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (Place, bool, error)
}

// Client implements API against the real providers.
type Client struct {
	httpClient *http.Client

	weatherAPIKey  string
	timezoneAPIKey string
	unsplashAPIKey string

	weatherBaseURL    string
	airQualityBaseURL string
	timezoneBaseURL   string
	unsplashBaseURL   string
	nominatimBaseURL  string

	breakers map[string]*gobreaker.CircuitBreaker
}

var _ API = (*Client)(nil)

// NewClient builds a gateway client from configuration. One circuit breaker is
// kept per provider so a failing upstream does not trip the others.
func NewClient(cfg *config.Config) *Client {
	c := &Client{
		httpClient:        &http.Client{Timeout: cfg.HTTPClientTimeout},
		weatherAPIKey:     cfg.OpenWeatherAPIKey,
		timezoneAPIKey:    cfg.TimezoneDBAPIKey,
		unsplashAPIKey:    cfg.UnsplashAPIKey,
		weatherBaseURL:    "https://api.openweathermap.org/data/2.5/weather",
		airQualityBaseURL: "https://api.openweathermap.org/data/2.5/air_pollution",
		timezoneBaseURL:   "https://api.timezonedb.com/v2.1/get-time-zone",
		unsplashBaseURL:   "https://api.unsplash.com/photos/random",
		nominatimBaseURL:  cfg.NominatimBaseURL,
		breakers:          make(map[string]*gobreaker.CircuitBreaker),
	}

	for _, name := range []string{
		providerOpenWeather,
		providerAirQuality,
		providerTimezoneDB,
		providerUnsplash,
		providerNominatim,
	} {
		c.breakers[name] = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		})
	}

	return c
}

const (
	providerOpenWeather = "openweather"
	providerAirQuality  = "airquality"
	providerTimezoneDB  = "timezonedb"
	providerUnsplash    = "unsplash"
	providerNominatim   = "nominatim"
)

// getJSON performs a single GET against rawURL through the provider's circuit
// breaker and decodes the response body into dest. Any transport error or
// non-2xx status is reported as an upstream failure.
func (c *Client) getJSON(ctx context.Context, provider, rawURL string, dest any) error {
	start := time.Now()
	err := c.doGetJSON(ctx, provider, rawURL, dest)
	observability.ObserveUpstream(provider, start, err)
	if err != nil {
		return models.NewUpstreamError(provider, err)
	}
	return nil
}

func (c *Client) doGetJSON(ctx context.Context, provider, rawURL string, dest any) error {
	cb, ok := c.breakers[provider]
	if !ok {
		return fmt.Errorf("no circuit breaker configured for provider %q", provider)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := c.httpClient.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
		}

		var body json.RawMessage
		if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr != nil {
			return nil, decodeErr
		}
		return body, nil
	})
	if err != nil {
		return err
	}

	raw, ok := result.(json.RawMessage)
	if !ok {
		return fmt.Errorf("unexpected result type from circuit breaker")
	}
	return json.Unmarshal(raw, dest)
}
