package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Markdown writes the page as markdown, one section per panel.
func Markdown(w io.Writer, page Page) error {
	var sb strings.Builder

	if page.Empty {
		sb.WriteString(page.Message)
		sb.WriteString("\n")
	}

	for i, p := range page.Panels {
		if i > 0 {
			sb.WriteString("\n---\n\n")
		}

		sb.WriteString(fmt.Sprintf("## %s\n\n", p.Title))

		if p.HasThumbnail() {
			sb.WriteString(fmt.Sprintf("<img src=\"%s\" width=\"%d\">\n\n", html.EscapeString(p.Thumbnail), ThumbnailWidth))
		}

		sb.WriteString(p.DescriptionMarkdown())
		sb.WriteString("\n\n")

		for _, h := range p.Highlights {
			sb.WriteString(fmt.Sprintf("**%s**\n\n", h.Label()))
			for _, b := range h.Bullets() {
				sb.WriteString(b)
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		}

		for _, e := range p.Extensions {
			sb.WriteString(e)
			sb.WriteString("\n\n")
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
