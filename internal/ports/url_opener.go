package ports

import "context"

type URLOpener interface {
	Open(ctx context.Context, rawURL string) error
}
