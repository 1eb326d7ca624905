package fetch

import (
	"context"
	"io"
)

type Fetcher interface {
	Get(ctx context.Context, url string) (io.ReadCloser, error)
}
