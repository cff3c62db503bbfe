package ports

import "context"

type CredentialStore interface {
	// Save persists apiKey and returns the location it was written to.
	Save(ctx context.Context, apiKey string) (string, error)
	// Load reports ok=false when no usable key is stored.
	Load(ctx context.Context) (apiKey string, ok bool, err error)
}
