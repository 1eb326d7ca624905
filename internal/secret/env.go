package secret

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const DefaultEnvPrefix = "JOBSEARCH_"

// EnvStore maps a key to the upper cased, prefixed environment variable,
// ie "api_key" to "JOBSEARCH_API_KEY".
type EnvStore struct {
	prefix string
}

// Get implements Store.
func (s *EnvStore) Get(ctx context.Context, key string) (string, error) {
	value := os.Getenv(s.Variable(key))
	if value == "" {
		return "", errors.WithStack(ErrNotFound)
	}

	return value, nil
}

func (s *EnvStore) Variable(key string) string {
	return s.prefix + strings.ToUpper(key)
}

func NewEnvStore(prefix string) *EnvStore {
	return &EnvStore{prefix: prefix}
}

var _ Store = &EnvStore{}
