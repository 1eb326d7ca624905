package secret

import (
	"context"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// DotenvStore reads secrets from a .env file without touching the process
// environment.
type DotenvStore struct {
	path string
}

// Get implements Store.
func (s *DotenvStore) Get(ctx context.Context, key string) (string, error) {
	env, err := godotenv.Read(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.WithStack(ErrNotFound)
		}

		return "", errors.Wrapf(err, "could not read dotenv file '%s'", s.path)
	}

	value := env[key]
	if value == "" {
		return "", errors.WithStack(ErrNotFound)
	}

	return value, nil
}

func NewDotenvStore(path string) *DotenvStore {
	return &DotenvStore{path: path}
}

var _ Store = &DotenvStore{}
