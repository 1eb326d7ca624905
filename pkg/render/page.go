package render

import (
	"fmt"

	"github.com/bornholm/jobsearch/pkg/search"
)

const (
	Placeholder           = "N/A"
	DefaultHighlightTitle = "Detail"
	NoResultsMessage      = "No jobs found."
	ThumbnailWidth        = 70
)

// Page is the immutable view of one search result set.
type Page struct {
	Empty   bool
	Message string
	Panels  []Panel
}

// Panel is a collapsed, expandable view of a single job.
type Panel struct {
	Title       string
	Thumbnail   string
	Description string
	Highlights  []HighlightGroup
	Extensions  []string
}

func (p Panel) HasThumbnail() bool {
	return p.Thumbnail != ""
}

// DescriptionMarkdown returns the markdown body line of the panel.
func (p Panel) DescriptionMarkdown() string {
	return fmt.Sprintf("**Description:** %s", p.Description)
}

type HighlightGroup struct {
	Title string
	Items []string
}

func (g HighlightGroup) Label() string {
	return g.Title + ":"
}

func (g HighlightGroup) Bullets() []string {
	bullets := make([]string, 0, len(g.Items))
	for _, item := range g.Items {
		bullets = append(bullets, "- "+item)
	}

	return bullets
}

// Build maps search results to a page, substituting placeholders for
// missing fields.
func Build(jobs []search.Job) Page {
	if len(jobs) == 0 {
		return Page{
			Empty:   true,
			Message: NoResultsMessage,
			Panels:  []Panel{},
		}
	}

	panels := make([]Panel, 0, len(jobs))
	for _, j := range jobs {
		panels = append(panels, buildPanel(j))
	}

	return Page{
		Panels: panels,
	}
}

func buildPanel(job search.Job) Panel {
	title := valueOr(job.Title, Placeholder)
	company := valueOr(job.CompanyName, Placeholder)
	location := valueOr(job.Location, Placeholder)

	panel := Panel{
		Title:       fmt.Sprintf("%s at %s (%s)", title, company, location),
		Thumbnail:   valueOr(job.Thumbnail, ""),
		Description: valueOr(job.Description, Placeholder),
		Highlights:  make([]HighlightGroup, 0, len(job.Highlights)),
		Extensions:  append([]string{}, job.Extensions...),
	}

	for _, h := range job.Highlights {
		panel.Highlights = append(panel.Highlights, HighlightGroup{
			Title: valueOr(h.Title, DefaultHighlightTitle),
			Items: append([]string{}, h.Items...),
		})
	}

	return panel
}

func valueOr(value *string, defaultValue string) string {
	if value == nil {
		return defaultValue
	}

	return *value
}
