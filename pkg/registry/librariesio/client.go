package librariesio

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"

	"deptally/pkg/registry"
)

const (
	// DefaultBaseURL is the production libraries.io API endpoint.
	DefaultBaseURL = "https://libraries.io/api"

	// DefaultPerPage is the page size used for the dependents endpoint.
	DefaultPerPage = 100
)

// ErrMissingAPIKey is returned by [NewClient] when no API key is supplied.
// libraries.io rejects unauthenticated requests, so the client refuses to
// construct rather than fail on the first call.
var ErrMissingAPIKey = errors.New("libraries.io API key not set")

// ProjectInfo holds the subset of libraries.io project metadata deptally needs.
type ProjectInfo struct {
	Name            string `json:"name"`
	DependentsCount int    `json:"dependents_count"`
}

// Dependent is one entry from the dependents endpoint.
type Dependent struct {
	Name  string `json:"name"`
	Stars int    `json:"stars"`
}

// Client provides access to the libraries.io dependency-graph API.
// The API key is fixed at construction and applied to every request.
type Client struct {
	*registry.Client
	baseURL string
	apiKey  string
	perPage int
	logger  *log.Logger
}

// NewClient creates a libraries.io client with the given API key.
//
// Pass baseURL "" for the production endpoint and perPage 0 for the default
// page size. If logger is nil, [log.Default] is used.
//
// Returns [ErrMissingAPIKey] if apiKey is empty; no network call is made.
func NewClient(apiKey, baseURL string, perPage int, logger *log.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		Client:  registry.NewClient(nil),
		baseURL: baseURL,
		apiKey:  apiKey,
		perPage: perPage,
		logger:  logger,
	}, nil
}

// FetchProject retrieves project metadata for a PyPI package, including its
// total dependents count.
//
// Returns [registry.ErrNotFound] if the package doesn't exist on libraries.io
// and [registry.ErrNetwork] for other HTTP failures.
func (c *Client) FetchProject(ctx context.Context, pkg string) (*ProjectInfo, error) {
	pkg = registry.NormalizePkgName(pkg)

	var info ProjectInfo
	u := fmt.Sprintf("%s/pypi/%s?%s", c.baseURL, registry.URLEncode(pkg), c.query(nil))
	if err := c.Get(ctx, u, &info); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return nil, fmt.Errorf("%w: pypi package %s", err, pkg)
		}
		return nil, err
	}
	return &info, nil
}

// Dependents returns the names of all packages that depend on pkg, sorted by
// descending star count. Ties sort by name so the order is deterministic.
//
// The dependents endpoint is walked page by page; the number of pages is
// derived from the project's dependents_count and the page size. A package
// seen on more than one page appears once in the result, ranked by its
// last-seen star count.
func (c *Client) Dependents(ctx context.Context, pkg string) ([]string, error) {
	pkg = registry.NormalizePkgName(pkg)

	info, err := c.FetchProject(ctx, pkg)
	if err != nil {
		return nil, err
	}

	pages := info.DependentsCount/c.perPage + 1
	var results []Dependent
	for page := 1; page <= pages; page++ {
		c.logger.Infof("Getting page %d of %d", page, pages)

		q := url.Values{
			"per_page": {strconv.Itoa(c.perPage)},
			"page":     {strconv.Itoa(page)},
		}
		u := fmt.Sprintf("%s/pypi/%s/dependents?%s", c.baseURL, registry.URLEncode(pkg), c.query(q))

		var batch []Dependent
		if err := c.Get(ctx, u, &batch); err != nil {
			return nil, fmt.Errorf("dependents page %d: %w", page, err)
		}
		results = append(results, batch...)
	}

	return rank(results), nil
}

// rank deduplicates dependents by name (last-seen star count wins) and
// returns the names sorted by descending stars, ties broken by name.
func rank(dependents []Dependent) []string {
	stars := make(map[string]int, len(dependents))
	for _, d := range dependents {
		stars[d.Name] = d.Stars
	}

	names := make([]string, 0, len(stars))
	for name := range stars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if stars[names[i]] != stars[names[j]] {
			return stars[names[i]] > stars[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// query merges extra parameters with the client's API key.
func (c *Client) query(extra url.Values) string {
	q := url.Values{"api_key": {c.apiKey}}
	for k, vs := range extra {
		q[k] = vs
	}
	return q.Encode()
}
