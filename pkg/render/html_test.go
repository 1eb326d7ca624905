package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/bornholm/jobsearch/pkg/search"
	"github.com/pkg/errors"
)

func renderDocument(t *testing.T, page Page) *goquery.Document {
	t.Helper()

	var buff bytes.Buffer
	if err := HTML(&buff, page); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	doc, err := goquery.NewDocumentFromReader(&buff)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return doc
}

func TestHTMLEmpty(t *testing.T) {
	doc := renderDocument(t, Build(nil))

	if e, g := 0, doc.Find("details").Length(); e != g {
		t.Errorf("panels: expected %d, got %d", e, g)
	}

	if e, g := "No jobs found.", strings.TrimSpace(doc.Find(".results").Text()); e != g {
		t.Errorf("text: expected %q, got %q", e, g)
	}
}

func TestHTMLPanels(t *testing.T) {
	page := Build([]search.Job{
		{
			Title:       search.String("Nurse"),
			CompanyName: search.String("General Hospital"),
			Location:    search.String("Anywhere"),
			Description: search.String("Night shifts <script>alert(1)</script>"),
			Thumbnail:   search.String("https://example.com/logo.png"),
			Highlights: []search.Highlight{
				{Title: search.String("Qualifications"), Items: []string{"BSN required"}},
			},
			Extensions: []string{"3 days ago"},
		},
		{
			CompanyName: search.String("Clinic"),
		},
	})

	doc := renderDocument(t, page)

	panels := doc.Find("details")
	if e, g := 2, panels.Length(); e != g {
		t.Fatalf("panels: expected %d, got %d", e, g)
	}

	panels.Each(func(i int, s *goquery.Selection) {
		if _, open := s.Attr("open"); open {
			t.Errorf("panel %d should be collapsed", i)
		}
	})

	first := panels.Eq(0)

	if e, g := "Nurse at General Hospital (Anywhere)", strings.TrimSpace(first.Find("summary").Text()); e != g {
		t.Errorf("summary: expected %q, got %q", e, g)
	}

	img := first.Find("img")
	if e, g := 1, img.Length(); e != g {
		t.Fatalf("images: expected %d, got %d", e, g)
	}

	if e, g := "70", img.AttrOr("width", ""); e != g {
		t.Errorf("image width: expected %q, got %q", e, g)
	}

	description := first.Find(".job-description")
	if e, g := "Description:", strings.TrimSpace(description.Find("strong").Text()); e != g {
		t.Errorf("description label: expected %q, got %q", e, g)
	}

	if description.Find("script").Length() != 0 {
		t.Error("raw html should not be rendered")
	}

	if e, g := "Qualifications:", strings.TrimSpace(first.Find(".job-highlight-label").Text()); e != g {
		t.Errorf("highlight label: expected %q, got %q", e, g)
	}

	if e, g := "BSN required", strings.TrimSpace(first.Find(".job-highlight li").Text()); e != g {
		t.Errorf("highlight item: expected %q, got %q", e, g)
	}

	if e, g := "3 days ago", strings.TrimSpace(first.Find(".job-extension").Text()); e != g {
		t.Errorf("extension: expected %q, got %q", e, g)
	}

	second := panels.Eq(1)

	if e, g := "N/A at Clinic (N/A)", strings.TrimSpace(second.Find("summary").Text()); e != g {
		t.Errorf("summary: expected %q, got %q", e, g)
	}

	if e, g := 0, second.Find("img").Length(); e != g {
		t.Errorf("images: expected %d, got %d", e, g)
	}
}
