package find

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/bornholm/jobsearch/internal/command/common"
	"github.com/bornholm/jobsearch/pkg/render"
	"github.com/bornholm/jobsearch/pkg/search"
	"github.com/bornholm/jobsearch/pkg/search/serpapi"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.yaml.in/yaml/v3"
)

const (
	outputStdout = "-"
	outputAuto   = "auto"
)

type Metadata struct {
	Title      string    `yaml:"title"`
	Location   string    `yaml:"location"`
	Engine     string    `yaml:"engine"`
	Results    int       `yaml:"results"`
	SearchedAt time.Time `yaml:"searchedAt"`
}

func Find() *cli.Command {
	return &cli.Command{
		Name:  "find",
		Usage: "Search job postings and print them as markdown",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "title",
				Value:   search.DefaultTitle,
				Aliases: []string{"t"},
				EnvVars: []string{"JOBSEARCH_TITLE"},
				Usage:   "Job Title",
			},
			&cli.StringFlag{
				Name:    "location",
				Value:   search.DefaultLocation,
				Aliases: []string{"l"},
				EnvVars: []string{"JOBSEARCH_LOCATION"},
				Usage:   "Location",
			},
			&cli.StringFlag{
				Name:      "output",
				Value:     outputStdout,
				Aliases:   []string{"o"},
				EnvVars:   []string{"JOBSEARCH_OUTPUT"},
				Usage:     "Output file, '-' for stdout, 'auto' to derive it from the job title",
				TakesFile: true,
			},
			common.SerpAPIURLFlag(),
		}, common.SecretFlags()...),
		Action: func(cliCtx *cli.Context) error {
			ctx := cliCtx.Context

			criteria := search.Criteria{
				Title:    cliCtx.String("title"),
				Location: cliCtx.String("location"),
			}
			output := cliCtx.String("output")

			client, err := common.NewSearchClient(cliCtx)
			if err != nil {
				return errors.Wrap(err, "could not create search client")
			}

			slog.InfoContext(ctx, "searching jobs", slog.String("title", criteria.Title), slog.String("location", criteria.Location))

			jobs, err := client.Search(ctx, criteria)
			if err != nil {
				return errors.Wrap(err, "job search failed")
			}

			page := render.Build(jobs)

			if output == outputStdout || output == "" {
				if err := render.Markdown(cliCtx.App.Writer, page); err != nil {
					return errors.WithStack(err)
				}

				return nil
			}

			if output == outputAuto {
				output = OutputFilename(criteria)
			}

			var buff bytes.Buffer

			metadata := Metadata{
				Title:      criteria.Title,
				Location:   criteria.Location,
				Engine:     serpapi.EngineGoogleJobs,
				Results:    len(page.Panels),
				SearchedAt: time.Now().UTC(),
			}

			if err := WriteDocument(&buff, metadata, page); err != nil {
				return errors.WithStack(err)
			}

			if err := os.WriteFile(output, buff.Bytes(), 0644); err != nil {
				return errors.Wrapf(err, "failed to write results")
			}

			slog.InfoContext(ctx, "results written", slog.String("output", output), slog.Int("results", metadata.Results))

			return nil
		},
	}
}

// OutputFilename derives a markdown filename from the searched job title.
func OutputFilename(criteria search.Criteria) string {
	name := slug.Make(criteria.Title)
	if name == "" {
		name = "jobs"
	}

	return name + ".md"
}

// WriteDocument writes the page as markdown preceded by a YAML front matter.
func WriteDocument(w io.Writer, metadata Metadata, page render.Page) error {
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return errors.WithStack(err)
	}

	encoder := yaml.NewEncoder(w)
	if err := encoder.Encode(metadata); err != nil {
		return errors.Wrapf(err, "failed write document metadata")
	}

	if err := encoder.Close(); err != nil {
		return errors.WithStack(err)
	}

	if _, err := io.WriteString(w, "---\n\n"); err != nil {
		return errors.WithStack(err)
	}

	if err := render.Markdown(w, page); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
