package rca

import (
	"fmt"
	"io"
	"time"

	"github.com/komodorio/kubectl-komodor/internal/application"
	"github.com/komodorio/kubectl-komodor/internal/domain"
	"github.com/komodorio/kubectl-komodor/internal/ports"
)

// Progress prints poll progress as it arrives. Operations go to out, failed
// polls to errOut.
type Progress struct {
	out    io.Writer
	errOut io.Writer
	styles styles
}

var _ ports.ProgressReporter = (*Progress)(nil)

func NewProgress(out io.Writer, errOut io.Writer) *Progress {
	return &Progress{out: out, errOut: errOut, styles: newStyles()}
}

func (p *Progress) OperationStarted(op string) {
	_, _ = fmt.Fprintln(p.out, p.styles.progress.Render("> "+op+"..."))
}

func (p *Progress) PollFailed(attempt int, err error) {
	_, _ = fmt.Fprintln(p.errOut, p.styles.failure.Render(fmt.Sprintf("Error polling RCA results (attempt %d): %v", attempt, err)))
}

func RenderStarting(target domain.AnalysisTarget) string {
	s := newStyles()
	location := fmt.Sprintf("on cluster '%s'", target.ClusterName)
	if target.Namespace != "" {
		location = fmt.Sprintf("in namespace '%s' %s", target.Namespace, location)
	}
	return s.info.Render(fmt.Sprintf("Starting RCA session for %s '%s' %s...", target.Kind, target.Name, location))
}

func RenderSessionStarted(handle domain.SessionHandle) string {
	s := newStyles()
	return s.success.Render("RCA session started with ID: "+handle.SessionID) + "\n" +
		s.info.Render("Polling for results...")
}

// RenderOutcome returns the one-line message for a terminal state that has
// no report. Completed and errored runs return "".
func RenderOutcome(result application.PollResult, interval time.Duration) string {
	s := newStyles()
	switch result.State {
	case application.PollFailed:
		return s.failure.Render("RCA analysis failed")
	case application.PollStuck:
		return s.warning.Render("RCA analysis got stuck")
	case application.PollTimedOut:
		waited := time.Duration(result.Attempts) * interval
		return s.warning.Render(fmt.Sprintf("RCA analysis timed out after %d attempts (%s)", result.Attempts, waited))
	default:
		return ""
	}
}
