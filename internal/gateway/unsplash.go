package gateway

import (
	"context"
	"fmt"
	"net/url"
)

// BackgroundImage is the subset of the Unsplash random-photo payload the
// client needs to swap the page background.
type BackgroundImage struct {
	URLs struct {
		Raw     string `json:"raw"`
		Full    string `json:"full"`
		Regular string `json:"regular"`
		Small   string `json:"small"`
	} `json:"urls"`
	AltDescription string `json:"alt_description"`
}

// BackgroundImage asks Unsplash for one representative photo for the free-text
// query (weather description plus place and country).
func (c *Client) BackgroundImage(ctx context.Context, query string) (*BackgroundImage, error) {
	values := url.Values{}
	values.Set("query", query)
	values.Set("client_id", c.unsplashAPIKey)

	var image BackgroundImage
	u := fmt.Sprintf("%s?%s", c.unsplashBaseURL, values.Encode())
	if err := c.getJSON(ctx, providerUnsplash, u, &image); err != nil {
		return nil, err
	}
	return &image, nil
}
