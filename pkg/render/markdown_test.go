package render

import (
	"strings"
	"testing"

	"github.com/bornholm/jobsearch/pkg/search"
	"github.com/pkg/errors"
)

func TestMarkdown(t *testing.T) {
	type testCase struct {
		Name     string
		Jobs     []search.Job
		Contains []string
		Excludes []string
	}

	testCases := []testCase{
		{
			Name:     "empty",
			Jobs:     nil,
			Contains: []string{"No jobs found.\n"},
			Excludes: []string{"## "},
		},
		{
			Name: "full",
			Jobs: []search.Job{
				{
					Title:       search.String("Nurse"),
					CompanyName: search.String("General Hospital"),
					Location:    search.String("Anywhere"),
					Description: search.String("Night shifts."),
					Thumbnail:   search.String("https://example.com/logo.png"),
					Highlights: []search.Highlight{
						{Title: search.String("Qualifications"), Items: []string{"BSN required"}},
					},
					Extensions: []string{"3 days ago"},
				},
			},
			Contains: []string{
				"## Nurse at General Hospital (Anywhere)\n",
				`<img src="https://example.com/logo.png" width="70">`,
				"**Description:** Night shifts.\n",
				"**Qualifications:**\n",
				"- BSN required\n",
				"3 days ago\n",
			},
			Excludes: []string{"No jobs found."},
		},
		{
			Name: "thumbnail escaping",
			Jobs: []search.Job{
				{Thumbnail: search.String(`https://example.com/logo.png?a=1&b="x"><script>`)},
			},
			Contains: []string{`<img src="https://example.com/logo.png?a=1&amp;b=&#34;x&#34;&gt;&lt;script&gt;" width="70">`},
			Excludes: []string{`"x"`, "<script>"},
		},
		{
			Name:     "missing fields",
			Jobs:     []search.Job{{}},
			Contains: []string{"## N/A at N/A (N/A)\n", "**Description:** N/A\n"},
			Excludes: []string{"<img"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var sb strings.Builder
			if err := Markdown(&sb, Build(tc.Jobs)); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			output := sb.String()

			for _, s := range tc.Contains {
				if !strings.Contains(output, s) {
					t.Errorf("expected output to contain %q, got:\n%s", s, output)
				}
			}

			for _, s := range tc.Excludes {
				if strings.Contains(output, s) {
					t.Errorf("expected output not to contain %q, got:\n%s", s, output)
				}
			}
		})
	}
}
