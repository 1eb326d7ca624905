package common

import (
	"github.com/bornholm/jobsearch/internal/secret"
	"github.com/bornholm/jobsearch/pkg/search/serpapi"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	FlagSerpAPIURL  = "serpapi-url"
	FlagSecretsFile = "secrets-file"
	FlagDotenvFile  = "dotenv-file"
)

// SecretFlags locate the files consulted for the api_key secret.
func SecretFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      FlagSecretsFile,
			EnvVars:   []string{"JOBSEARCH_SECRETS_FILE"},
			Usage:     "TOML file holding the api_key secret",
			Value:     secret.DefaultTOMLFile,
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:      FlagDotenvFile,
			EnvVars:   []string{"JOBSEARCH_DOTENV_FILE"},
			Usage:     "Dotenv file holding the api_key secret",
			Value:     ".env",
			TakesFile: true,
		},
	}
}

func SerpAPIURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    FlagSerpAPIURL,
		Value:   serpapi.DefaultBaseURL,
		EnvVars: []string{"JOBSEARCH_SERPAPI_URL"},
		Usage:   "SerpApi search endpoint",
	}
}

// SecretStore returns the stores consulted for secrets, in lookup order.
func SecretStore(cliCtx *cli.Context) secret.Store {
	return secret.NewChain(
		secret.NewTOMLFileStore(cliCtx.String(FlagSecretsFile)),
		secret.NewDotenvStore(cliCtx.String(FlagDotenvFile)),
		secret.NewEnvStore(secret.DefaultEnvPrefix),
	)
}

// NewSearchClient loads the api key and builds the search client. A missing
// key fails the command.
func NewSearchClient(cliCtx *cli.Context) (*serpapi.Client, error) {
	apiKey, err := secret.LoadAPIKey(cliCtx.Context, SecretStore(cliCtx))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return serpapi.NewClient(string(apiKey), serpapi.WithBaseURL(cliCtx.String(FlagSerpAPIURL))), nil
}
