package pypistats

import (
	"context"
	"errors"
	"fmt"

	"deptally/pkg/registry"
)

// DefaultBaseURL is the production pypistats.org API endpoint.
const DefaultBaseURL = "https://pypistats.org/api"

// Client provides access to the pypistats.org download-statistics API.
// No authentication is required.
type Client struct {
	*registry.Client
	baseURL string
}

// NewClient creates a pypistats client. Pass baseURL "" for the production
// endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  registry.NewClient(nil),
		baseURL: baseURL,
	}
}

// RecentDownloads returns the download count for pkg over the most recent
// month.
//
// Returns [registry.ErrNotFound] if pypistats.org has no data for the
// package, and [registry.ErrNetwork] for any other non-2xx response
// (including 429 rate limiting) or transport failure.
func (c *Client) RecentDownloads(ctx context.Context, pkg string) (int, error) {
	var resp apiResponse
	u := fmt.Sprintf("%s/packages/%s/recent", c.baseURL, registry.URLEncode(pkg))
	if err := c.Get(ctx, u, &resp); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return 0, fmt.Errorf("%w: pypi package %s", err, pkg)
		}
		return 0, err
	}
	return resp.Data.LastMonth, nil
}

type apiResponse struct {
	Data apiData `json:"data"`
}

type apiData struct {
	LastMonth int `json:"last_month"`
}
