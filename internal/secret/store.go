package secret

import (
	"context"

	"github.com/pkg/errors"
)

// KeyAPIKey is the name of the search API credential.
const KeyAPIKey = "api_key"

var ErrNotFound = errors.New("secret not found")

type Store interface {
	// Get returns the value of the named secret, or ErrNotFound when the
	// store does not hold it.
	Get(ctx context.Context, key string) (string, error)
}

// APIKey is the search API credential. It is loaded once and passed by value
// to whoever needs it.
type APIKey string

// LoadAPIKey reads the search API credential from store. A missing key is an
// error the caller must treat as fatal.
func LoadAPIKey(ctx context.Context, store Store) (APIKey, error) {
	value, err := store.Get(ctx, KeyAPIKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", errors.Wrapf(err, "missing secret '%s'", KeyAPIKey)
		}

		return "", errors.Wrapf(err, "could not load secret '%s'", KeyAPIKey)
	}

	return APIKey(value), nil
}
