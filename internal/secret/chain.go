package secret

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Chain looks up a secret in each store in turn. The first store holding it
// wins.
type Chain struct {
	stores []Store
}

// Get implements Store.
func (c *Chain) Get(ctx context.Context, key string) (string, error) {
	var aggregatedErr error

	for _, s := range c.stores {
		value, err := s.Get(ctx, key)
		if err == nil {
			return value, nil
		}

		if errors.Is(err, ErrNotFound) {
			continue
		}

		aggregatedErr = multierror.Append(aggregatedErr, errors.WithStack(err))
	}

	if aggregatedErr != nil {
		return "", aggregatedErr
	}

	return "", errors.WithStack(ErrNotFound)
}

func NewChain(stores ...Store) *Chain {
	return &Chain{stores: stores}
}

var _ Store = &Chain{}
