package webui

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/jobsearch/pkg/search"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Server struct {
	client search.Client
	engine *gin.Engine
}

// Handler returns the http.Handler serving the UI.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves the UI on address until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, address string) error {
	server := &http.Server{
		Addr:              address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		slog.InfoContext(ctx, "http server listening", slog.String("address", address))
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return errors.WithStack(err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.InfoContext(ctx, "shutting down http server")

		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}
}

func NewServer(client search.Client) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	engine.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))

	s := &Server{
		client: client,
		engine: engine,
	}

	engine.GET("/", s.handleIndex)
	engine.POST("/search", s.handleSearch)
	engine.GET("/healthz", handleHealth)

	return s
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		slog.DebugContext(c.Request.Context(), "http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
