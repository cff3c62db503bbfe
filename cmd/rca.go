package cmd

import (
	"encoding/json"
	"fmt"

	rcarender "github.com/komodorio/kubectl-komodor/internal/adapters/render/rca"
	"github.com/komodorio/kubectl-komodor/internal/application"
	"github.com/komodorio/kubectl-komodor/internal/domain"
	"github.com/spf13/cobra"
)

func newRCACmd(app *app) *cobra.Command {
	var flags targetFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rca <resource-type> <resource-name>",
		Short: "Run a Komodor root-cause analysis on a resource",
		Long:  "Start a Komodor root-cause analysis (RCA) session for a resource and wait for its result. Requires an API key stored with 'kubectl komodor auth'.",
		Example: "  kubectl komodor rca deploy api -n default\n" +
			"  kubectl komodor rca pod web-0 --cluster prod --json",
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, target, err := resolveTarget(app, args[0], args[1], flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			progressOut := out
			if asJSON {
				// Keep stdout parseable.
				progressOut = cmd.ErrOrStderr()
			} else if _, err := fmt.Fprintln(out, rcarender.RenderStarting(target)); err != nil {
				return err
			}
			progress := rcarender.NewProgress(progressOut, cmd.ErrOrStderr())

			var session application.ActiveSession
			start := func() error {
				var startErr error
				session, startErr = app.analysis.StartSession(cmd.Context(), target)
				return startErr
			}
			if asJSON {
				err = start()
			} else {
				err = runSessionSpinner(cmd.Context(), cmd.ErrOrStderr(), start)
			}
			if err != nil {
				return err
			}

			if !asJSON {
				if _, err := fmt.Fprintln(out, rcarender.RenderSessionStarted(session.Handle)); err != nil {
					return err
				}
			}

			result := app.analysis.Await(cmd.Context(), session, progress)
			if result.State == application.PollErrored {
				return fmt.Errorf("rca session %s: %w", session.Handle.SessionID, result.Err)
			}

			if asJSON {
				return writeResultJSON(cmd, result)
			}

			if result.State == application.PollCompleted && result.Snapshot != nil {
				_, err = fmt.Fprint(out, "\n"+rcarender.RenderReport(*result.Snapshot))
				return err
			}

			_, err = fmt.Fprintln(out, "\n"+rcarender.RenderOutcome(result, app.analysis.PollOptions().Interval))
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the final session state as JSON")

	return cmd
}

type rcaResultJSON struct {
	State    string                  `json:"state"`
	Attempts int                     `json:"attempts"`
	Session  *domain.SessionSnapshot `json:"session,omitempty"`
}

func writeResultJSON(cmd *cobra.Command, result application.PollResult) error {
	payload := rcaResultJSON{
		State:    result.State.String(),
		Attempts: result.Attempts,
		Session:  result.Snapshot,
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
