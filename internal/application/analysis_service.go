package application

import (
	"context"
	"fmt"

	"github.com/komodorio/kubectl-komodor/internal/domain"
	"github.com/komodorio/kubectl-komodor/internal/ports"
	"github.com/sirupsen/logrus"
)

// ActiveSession pairs a created session with the credential used to create it.
type ActiveSession struct {
	Handle domain.SessionHandle
	Target domain.AnalysisTarget
	apiKey string
}

type AnalysisService struct {
	sessions    ports.SessionClient
	credentials ports.CredentialStore
	poller      *Poller
	logger      logrus.FieldLogger
}

func NewAnalysisService(sessions ports.SessionClient, credentials ports.CredentialStore, clock ports.Clock, opts PollOptions, logger logrus.FieldLogger) *AnalysisService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &AnalysisService{
		sessions:    sessions,
		credentials: credentials,
		poller:      NewPoller(sessions, clock, opts, logger),
		logger:      logger,
	}
}

func (s *AnalysisService) PollOptions() PollOptions {
	return s.poller.Options()
}

// SaveAPIKey stores apiKey and returns the file it was written to.
func (s *AnalysisService) SaveAPIKey(ctx context.Context, apiKey string) (string, error) {
	path, err := s.credentials.Save(ctx, apiKey)
	if err != nil {
		return "", fmt.Errorf("save api key: %w", err)
	}
	return path, nil
}

// StartSession loads the stored credential and creates a remote RCA session.
// Any failure here is fatal: no session exists yet to retry against.
func (s *AnalysisService) StartSession(ctx context.Context, target domain.AnalysisTarget) (ActiveSession, error) {
	apiKey, ok, err := s.credentials.Load(ctx)
	if err != nil {
		return ActiveSession{}, fmt.Errorf("load api key: %w", err)
	}
	if !ok {
		return ActiveSession{}, &domain.AuthError{}
	}

	s.logger.WithFields(logrus.Fields{
		"kind":      target.Kind,
		"name":      target.Name,
		"namespace": target.Namespace,
		"cluster":   target.ClusterName,
	}).Debug("starting rca session")

	handle, err := s.sessions.CreateSession(ctx, target, apiKey)
	if err != nil {
		return ActiveSession{}, fmt.Errorf("start rca session for %s %q: %w", target.Kind, target.Name, err)
	}

	return ActiveSession{Handle: handle, Target: target, apiKey: apiKey}, nil
}

// Await polls session until it reaches a terminal state.
func (s *AnalysisService) Await(ctx context.Context, session ActiveSession, reporter ports.ProgressReporter) PollResult {
	return s.poller.Run(ctx, session.Handle, session.apiKey, reporter)
}
