package serve

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bornholm/jobsearch/internal/command/common"
	"github.com/bornholm/jobsearch/internal/webui"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Serve() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the job search web interface",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Value:   ":8080",
				Aliases: []string{"a"},
				EnvVars: []string{"JOBSEARCH_ADDRESS"},
			},
			common.SerpAPIURLFlag(),
		}, common.SecretFlags()...),
		Action: func(cliCtx *cli.Context) error {
			address := cliCtx.String("address")

			if !cliCtx.Bool("debug") {
				gin.SetMode(gin.ReleaseMode)
			}

			client, err := common.NewSearchClient(cliCtx)
			if err != nil {
				return errors.Wrap(err, "could not create search client")
			}

			ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := webui.NewServer(client)

			if err := server.ListenAndServe(ctx, address); err != nil {
				return errors.Wrap(err, "http server failed")
			}

			return nil
		},
	}
}
