package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Place is a geocoding result. Name is the settlement name for reverse
// lookups and the display name for forward lookups.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// GeocodeCity resolves a city name to its best-match coordinates. The second
// return value is false when Nominatim has no match; that is not an error.
func (c *Client) GeocodeCity(ctx context.Context, name string) (Place, bool, error) {
	values := url.Values{}
	values.Set("city", name)
	values.Set("format", "json")
	values.Set("limit", "1")

	var results []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}

	u := fmt.Sprintf("%s/search?%s", c.nominatimBaseURL, values.Encode())
	if err := c.getJSON(ctx, providerNominatim, u, &results); err != nil {
		return Place{}, false, err
	}
	if len(results) == 0 {
		return Place{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Place{}, false, err
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Place{}, false, err
	}

	return Place{Name: results[0].DisplayName, Lat: lat, Lon: lon}, true, nil
}

// ReverseGeocode resolves coordinates to the nearest settlement. The second
// return value is false when no named place exists at the point.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (Place, bool, error) {
	values := url.Values{}
	values.Set("lat", formatCoord(lat))
	values.Set("lon", formatCoord(lon))
	values.Set("format", "json")

	var result struct {
		DisplayName string `json:"display_name"`
		Address     struct {
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
		} `json:"address"`
	}

	u := fmt.Sprintf("%s/reverse?%s", c.nominatimBaseURL, values.Encode())
	if err := c.getJSON(ctx, providerNominatim, u, &result); err != nil {
		return Place{}, false, err
	}

	name := result.Address.City
	if name == "" {
		name = result.Address.Town
	}
	if name == "" {
		name = result.Address.Village
	}
	if name == "" {
		return Place{}, false, nil
	}

	return Place{Name: name, Lat: lat, Lon: lon}, true, nil
}
