package cmd

import (
	"fmt"

	"github.com/komodorio/kubectl-komodor/internal/application"
	"github.com/spf13/cobra"
)

func newOpenCmd(app *app) *cobra.Command {
	var flags targetFlags
	var noBrowser bool

	cmd := &cobra.Command{
		Use:   "open <resource-type> <resource-name>",
		Short: "Open a resource in the Komodor dashboard",
		Example: "  kubectl komodor open deploy api -n default\n" +
			"  kubectl komodor open sc gp3 --cluster prod --no-browser",
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptor, target, err := resolveTarget(app, args[0], args[1], flags)
			if err != nil {
				return err
			}

			dashboardURL, err := application.BuildDashboardURL(app.settings.AppURL, descriptor, target, app.clock.Now())
			if err != nil {
				return fmt.Errorf("build dashboard url: %w", err)
			}

			if noBrowser {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), dashboardURL)
				return err
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Opening Komodor URL: %s\n", dashboardURL); err != nil {
				return err
			}
			return app.opener.Open(cmd.Context(), dashboardURL)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Print the dashboard URL without opening a browser")

	return cmd
}
