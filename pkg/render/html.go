package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/pkg/errors"
	"github.com/russross/blackfriday/v2"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var resultsTemplate = template.Must(
	template.New("").
		Funcs(template.FuncMap{
			"markdown":       Markdownify,
			"thumbnailWidth": func() int { return ThumbnailWidth },
		}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

// Markdownify converts a markdown fragment to HTML. Raw HTML embedded in the
// source is dropped.
func Markdownify(source string) template.HTML {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.SkipHTML | blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.NoreferrerLinks | blackfriday.HrefTargetBlank,
	})

	output := blackfriday.Run(
		[]byte(source),
		blackfriday.WithRenderer(renderer),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
	)

	return template.HTML(output)
}

// HTML writes the page as an HTML fragment, one <details> element per panel.
func HTML(w io.Writer, page Page) error {
	if err := resultsTemplate.ExecuteTemplate(w, "results", page); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
