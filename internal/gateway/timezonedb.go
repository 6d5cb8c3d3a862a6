package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"atmos/internal/models"
)

// TimezoneInfo is the TimeZoneDB get-time-zone payload for a point in time.
// Passing a historical timestamp resolves the DST offset in effect then.
type TimezoneInfo struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ZoneName     string `json:"zoneName"`
	Abbreviation string `json:"abbreviation"`
	GmtOffset    int    `json:"gmtOffset"`
	Timestamp    int64  `json:"timestamp"`
	Formatted    string `json:"formatted"`
}

// Timezone resolves the IANA zone for the coordinates at the given unix time.
func (c *Client) Timezone(ctx context.Context, lat, lon float64, timestamp int64) (*TimezoneInfo, error) {
	values := url.Values{}
	values.Set("key", c.timezoneAPIKey)
	values.Set("format", "json")
	values.Set("by", "position")
	values.Set("lat", formatCoord(lat))
	values.Set("lng", formatCoord(lon))
	if timestamp > 0 {
		values.Set("time", strconv.FormatInt(timestamp, 10))
	}

	var info TimezoneInfo
	u := fmt.Sprintf("%s?%s", c.timezoneBaseURL, values.Encode())
	if err := c.getJSON(ctx, providerTimezoneDB, u, &info); err != nil {
		return nil, err
	}
	if info.Status != "OK" {
		return nil, models.NewUpstreamError(providerTimezoneDB, fmt.Errorf("provider status %q: %s", info.Status, info.Message))
	}
	return &info, nil
}
