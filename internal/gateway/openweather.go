package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"atmos/internal/models"
)

// CurrentWeather fetches current conditions for the coordinates. Temperatures
// in the returned snapshot are Kelvin, exactly as the provider reports them.
func (c *Client) CurrentWeather(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	values := url.Values{}
	values.Set("lat", formatCoord(lat))
	values.Set("lon", formatCoord(lon))
	values.Set("appid", c.weatherAPIKey)

	var snapshot models.WeatherSnapshot
	u := fmt.Sprintf("%s?%s", c.weatherBaseURL, values.Encode())
	if err := c.getJSON(ctx, providerOpenWeather, u, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// AirQuality fetches the pm2.5 reading nearest to the coordinates. Callers are
// expected to degrade gracefully when this fails; an error here must never
// fail the surrounding weather request.
func (c *Client) AirQuality(ctx context.Context, lat, lon float64) (float64, error) {
	values := url.Values{}
	values.Set("lat", formatCoord(lat))
	values.Set("lon", formatCoord(lon))
	values.Set("appid", c.weatherAPIKey)

	var payload struct {
		List []struct {
			Components struct {
				PM25 float64 `json:"pm2_5"`
			} `json:"components"`
		} `json:"list"`
	}

	u := fmt.Sprintf("%s?%s", c.airQualityBaseURL, values.Encode())
	if err := c.getJSON(ctx, providerAirQuality, u, &payload); err != nil {
		return 0, err
	}
	if len(payload.List) == 0 {
		return 0, models.NewUpstreamError(providerAirQuality, fmt.Errorf("no measurement station near %s,%s", formatCoord(lat), formatCoord(lon)))
	}
	return payload.List[0].Components.PM25, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
