package ports

import (
	"context"

	"github.com/komodorio/kubectl-komodor/internal/domain"
)

// SessionClient performs single attempts against the remote RCA service.
// Implementations return *domain.AuthError, *domain.RemoteError or
// *domain.TransportError and never retry.
type SessionClient interface {
	CreateSession(ctx context.Context, target domain.AnalysisTarget, apiKey string) (domain.SessionHandle, error)
	GetSessionStatus(ctx context.Context, handle domain.SessionHandle, apiKey string) (domain.SessionSnapshot, error)
}
