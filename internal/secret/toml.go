package secret

import (
	"context"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// DefaultTOMLFile is where secrets live in a Streamlit style project.
const DefaultTOMLFile = ".streamlit/secrets.toml"

// TOMLFileStore reads top level string entries of a TOML file. The file is
// read on each Get.
type TOMLFileStore struct {
	path string
}

// Get implements Store.
func (s *TOMLFileStore) Get(ctx context.Context, key string) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.WithStack(ErrNotFound)
		}

		return "", errors.WithStack(err)
	}

	var secrets map[string]any
	if err := toml.Unmarshal(data, &secrets); err != nil {
		return "", errors.Wrapf(err, "could not parse secrets file '%s'", s.path)
	}

	raw, exists := secrets[key]
	if !exists {
		return "", errors.WithStack(ErrNotFound)
	}

	value, ok := raw.(string)
	if !ok {
		return "", errors.Errorf("secret '%s' in '%s' is a %T, expected a string", key, s.path, raw)
	}

	if value == "" {
		return "", errors.WithStack(ErrNotFound)
	}

	return value, nil
}

func NewTOMLFileStore(path string) *TOMLFileStore {
	return &TOMLFileStore{path: path}
}

var _ Store = &TOMLFileStore{}
