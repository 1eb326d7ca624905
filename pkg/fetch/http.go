package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// Bodies of failed responses are read up to maxErrorBody and quoted up to
// maxErrorExcerpt in error messages.
const (
	maxErrorBody    = 4e+6
	maxErrorExcerpt = 512
)

// StatusError is returned when the remote answers outside of the 2xx range.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > maxErrorExcerpt {
		body = body[:maxErrorExcerpt]
	}

	return fmt.Sprintf("unexpected response http status %d (%s):\n%s", e.StatusCode, e.Status, body)
}

type HTTPFetcher struct {
	client *http.Client
}

// Get implements Fetcher.
func (f *HTTPFetcher) Get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.WithStack(redact(err))
	}

	req.Header.Set("Accept", "application/json")

	res, err := f.client.Do(req)
	if err != nil {
		return nil, errors.WithStack(redact(err))
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		defer res.Body.Close()

		body, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return nil, errors.WithStack(&StatusError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       body,
		})
	}

	return res.Body, nil
}

// redact strips the query string from the URL carried by err. Query
// parameters may hold credentials.
func redact(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	return &url.Error{
		Op:  urlErr.Op,
		URL: RedactURL(urlErr.URL),
		Err: urlErr.Err,
	}
}

// RedactURL returns rawURL without its query string and fragment.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}

	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	u.User = nil

	return u.String()
}

func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPFetcher{
		client: client,
	}
}

var _ Fetcher = &HTTPFetcher{}
