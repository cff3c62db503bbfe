package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/komodorio/kubectl-komodor/internal/domain"
	"github.com/komodorio/kubectl-komodor/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultMaxAttempts  = 60
)

var ErrTooManyPollErrors = errors.New("too many consecutive poll errors")

type PollState int

const (
	PollCreated PollState = iota
	PollPolling
	PollCompleted
	PollFailed
	PollStuck
	PollTimedOut
	PollErrored
)

func (s PollState) String() string {
	switch s {
	case PollCreated:
		return "created"
	case PollPolling:
		return "polling"
	case PollCompleted:
		return "completed"
	case PollFailed:
		return "failed"
	case PollStuck:
		return "stuck"
	case PollTimedOut:
		return "timed_out"
	case PollErrored:
		return "errored"
	default:
		return "unknown"
	}
}

func (s PollState) IsTerminal() bool {
	return s >= PollCompleted
}

type PollOptions struct {
	Interval    time.Duration
	MaxAttempts int
	// MaxConsecutiveErrors stops polling after that many failed polls in a
	// row. Zero tolerates transient errors up to MaxAttempts.
	MaxConsecutiveErrors int
}

func (o PollOptions) withDefaults() PollOptions {
	if o.Interval <= 0 {
		o.Interval = DefaultPollInterval
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.MaxConsecutiveErrors < 0 {
		o.MaxConsecutiveErrors = 0
	}
	return o
}

type PollResult struct {
	State    PollState
	Attempts int
	// Snapshot is the last successfully decoded snapshot, nil if none.
	Snapshot *domain.SessionSnapshot
	// Err is set only for PollErrored.
	Err error
}

// Poller drives one RCA session from creation to a terminal state.
type Poller struct {
	client ports.SessionClient
	clock  ports.Clock
	opts   PollOptions
	logger logrus.FieldLogger
}

func NewPoller(client ports.SessionClient, clock ports.Clock, opts PollOptions, logger logrus.FieldLogger) *Poller {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Poller{
		client: client,
		clock:  clock,
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

func (p *Poller) Options() PollOptions {
	return p.opts
}

// pollRun holds the state owned by a single Run call.
type pollRun struct {
	handle            domain.SessionHandle
	state             PollState
	attempts          int
	consecutiveErrors int
	seen              *domain.SeenOperations
	last              *domain.SessionSnapshot
	logger            logrus.FieldLogger
}

func (r *pollRun) transition(to PollState) {
	if r.state == to {
		return
	}
	r.logger.WithFields(logrus.Fields{
		"from":    r.state.String(),
		"to":      to.String(),
		"attempt": r.attempts,
	}).Debug("rca session state transition")
	r.state = to
}

func (r *pollRun) result(err error) PollResult {
	return PollResult{State: r.state, Attempts: r.attempts, Snapshot: r.last, Err: err}
}

func (p *Poller) Run(ctx context.Context, handle domain.SessionHandle, apiKey string, reporter ports.ProgressReporter) PollResult {
	run := &pollRun{
		handle: handle,
		state:  PollCreated,
		seen:   domain.NewSeenOperations(),
		logger: p.logger.WithField("session_id", handle.SessionID),
	}
	run.transition(PollPolling)

	for run.attempts < p.opts.MaxAttempts {
		run.attempts++

		snapshot, err := p.client.GetSessionStatus(ctx, handle, apiKey)
		if err != nil {
			if stop := p.handlePollError(ctx, run, err, reporter); stop != nil {
				run.transition(PollErrored)
				return run.result(stop)
			}
		} else {
			run.consecutiveErrors = 0
			run.last = &snapshot
			reportNewOperations(run.seen, snapshot.Operations, reporter)

			if next, terminal := terminalState(snapshot.Status); terminal {
				run.transition(next)
				return run.result(nil)
			}
		}

		if run.attempts >= p.opts.MaxAttempts {
			break
		}
		if err := p.clock.Sleep(ctx, p.opts.Interval); err != nil {
			run.transition(PollErrored)
			return run.result(fmt.Errorf("wait for next poll: %w", err))
		}
	}

	run.transition(PollTimedOut)
	return run.result(nil)
}

// handlePollError reports a failed poll and returns a non-nil error when
// polling must stop.
func (p *Poller) handlePollError(ctx context.Context, run *pollRun, err error, reporter ports.ProgressReporter) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("poll rca session: %w", ctxErr)
	}
	if domain.IsAuthError(err) {
		return err
	}

	run.consecutiveErrors++
	run.logger.WithError(err).WithFields(logrus.Fields{
		"attempt":            run.attempts,
		"consecutive_errors": run.consecutiveErrors,
	}).Debug("rca session poll failed")
	if reporter != nil {
		reporter.PollFailed(run.attempts, err)
	}

	if p.opts.MaxConsecutiveErrors > 0 && run.consecutiveErrors >= p.opts.MaxConsecutiveErrors {
		return fmt.Errorf("%w (%d): %w", ErrTooManyPollErrors, run.consecutiveErrors, err)
	}
	return nil
}

func reportNewOperations(seen *domain.SeenOperations, operations []string, reporter ports.ProgressReporter) {
	for _, op := range operations {
		if !seen.Add(op) {
			continue
		}
		if reporter != nil {
			reporter.OperationStarted(op)
		}
	}
}

func terminalState(status domain.SessionStatus) (PollState, bool) {
	switch status {
	case domain.SessionCompleted:
		return PollCompleted, true
	case domain.SessionFailed:
		return PollFailed, true
	case domain.SessionStuck:
		return PollStuck, true
	default:
		return PollPolling, false
	}
}
