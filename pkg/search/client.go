package search

import "context"

const (
	DefaultTitle    = "Software Developer"
	DefaultLocation = "New York"
)

type Client interface {
	Search(ctx context.Context, criteria Criteria) ([]Job, error)
}

// Criteria holds the user inputs of a single search. Values are passed
// through as typed, empty strings included.
type Criteria struct {
	Title    string
	Location string
}

func DefaultCriteria() Criteria {
	return Criteria{
		Title:    DefaultTitle,
		Location: DefaultLocation,
	}
}

// Job is a job posting as returned by the search backend. Every field is
// optional: nil means the backend did not send it.
type Job struct {
	Title       *string     `json:"title,omitempty"`
	CompanyName *string     `json:"company_name,omitempty"`
	Location    *string     `json:"location,omitempty"`
	Description *string     `json:"description,omitempty"`
	Thumbnail   *string     `json:"thumbnail,omitempty"`
	Highlights  []Highlight `json:"job_highlights,omitempty"`
	Extensions  []string    `json:"extensions,omitempty"`
}

type Highlight struct {
	Title *string  `json:"title,omitempty"`
	Items []string `json:"items,omitempty"`
}

// String returns a pointer to s, for building jobs by hand.
func String(s string) *string {
	return &s
}
