package webui

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/bornholm/jobsearch/internal/logx"
	"github.com/bornholm/jobsearch/pkg/fetch"
	"github.com/bornholm/jobsearch/pkg/render"
	"github.com/bornholm/jobsearch/pkg/search"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const indexTemplate = "index.html.tmpl"

type indexData struct {
	Criteria search.Criteria
	Results  template.HTML
	Error    string
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, indexData{
		Criteria: search.DefaultCriteria(),
	})
}

// handleSearch is the "Search Jobs" event: one search per submission, the
// submitted values are echoed back in the form.
func (s *Server) handleSearch(c *gin.Context) {
	criteria := search.Criteria{
		Title:    c.PostForm("title"),
		Location: c.PostForm("location"),
	}

	ctx := logx.WithAttrs(c.Request.Context(),
		slog.String("title", criteria.Title),
		slog.String("location", criteria.Location),
	)

	jobs, err := s.client.Search(ctx, criteria)
	if err != nil {
		logError(ctx, "job search failed", err)

		c.HTML(http.StatusBadGateway, indexTemplate, indexData{
			Criteria: criteria,
			Error:    searchErrorMessage(err),
		})
		return
	}

	page := render.Build(jobs)

	var buff bytes.Buffer
	if err := render.HTML(&buff, page); err != nil {
		logError(ctx, "could not render results", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	slog.InfoContext(ctx, "job search completed", slog.Int("results", len(page.Panels)))

	c.HTML(http.StatusOK, indexTemplate, indexData{
		Criteria: criteria,
		Results:  template.HTML(buff.String()),
	})
}

// searchErrorMessage is what the page shows for a failed search. The error
// chain itself stays in the logs.
func searchErrorMessage(err error) string {
	var statusErr *fetch.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("The job search failed (upstream status %d).", statusErr.StatusCode)
	}

	return "The job search failed."
}

func logError(ctx context.Context, msg string, err error) {
	slog.ErrorContext(ctx, msg, slog.String("error", err.Error()))
	slog.DebugContext(ctx, msg, slog.String("stack", fmt.Sprintf("%+v", err)))
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
