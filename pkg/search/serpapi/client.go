package serpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	"github.com/bornholm/jobsearch/pkg/fetch"
	"github.com/bornholm/jobsearch/pkg/search"
	"github.com/pkg/errors"
)

const (
	DefaultBaseURL = "https://serpapi.com/search.json"

	EngineGoogleJobs = "google_jobs"
	DefaultLanguage  = "en"
	// ltype=1 asks Google Jobs for work from home listings.
	DefaultListingType = "1"
)

type response struct {
	JobsResults []search.Job `json:"jobs_results"`
	Error       string       `json:"error,omitempty"`
}

// Client implements search.Client on top of the SerpApi Google Jobs engine.
type Client struct {
	fetcher fetch.Fetcher
	baseURL string
	apiKey  string
}

// Search implements search.Client.
func (c *Client) Search(ctx context.Context, criteria search.Criteria) ([]search.Job, error) {
	searchURL, err := c.searchURL(criteria)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "executing job search", slog.String("query", criteria.Title), slog.String("engine", EngineGoogleJobs))

	body, err := c.fetcher.Get(ctx, searchURL.String())
	if err != nil {
		return nil, errors.Wrap(err, "job search request failed")
	}

	defer body.Close()

	var res response
	if err := json.NewDecoder(body).Decode(&res); err != nil {
		return nil, errors.Wrap(err, "could not decode job search response")
	}

	if res.Error != "" && len(res.JobsResults) == 0 {
		slog.DebugContext(ctx, "search backend returned no results", slog.String("reason", res.Error))
	}

	if res.JobsResults == nil {
		return []search.Job{}, nil
	}

	return res.JobsResults, nil
}

// Params returns the query parameters sent for the given criteria.
// criteria.Location is collected upstream but intentionally not part of the
// request.
func (c *Client) Params(criteria search.Criteria) url.Values {
	params := url.Values{}
	params.Set("engine", EngineGoogleJobs)
	params.Set("q", criteria.Title)
	params.Set("ltype", DefaultListingType)
	params.Set("hl", DefaultLanguage)
	params.Set("api_key", c.apiKey)

	return params
}

func (c *Client) searchURL(criteria search.Criteria) (*url.URL, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid search api url '%s'", c.baseURL)
	}

	u.RawQuery = c.Params(criteria).Encode()

	return u, nil
}

type OptionFunc func(c *Client)

func WithBaseURL(baseURL string) OptionFunc {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

func WithFetcher(fetcher fetch.Fetcher) OptionFunc {
	return func(c *Client) {
		c.fetcher = fetcher
	}
}

// NewClient creates a new SerpApi client authenticated with apiKey.
func NewClient(apiKey string, funcs ...OptionFunc) *Client {
	client := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		fetcher: fetch.NewHTTPFetcher(nil),
	}

	for _, fn := range funcs {
		fn(client)
	}

	return client
}

var _ search.Client = &Client{}
