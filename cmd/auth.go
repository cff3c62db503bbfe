package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "auth <api-key>",
		Short:   "Store the Komodor API key",
		Long:    "Store the Komodor API key used by 'rca'. The key is written to config.json in the config directory (~/.kubectl-komodor, or $KOMODOR_CONFIG_DIR) with owner-only permissions.",
		Example: "  kubectl komodor auth 1a2b3c4d",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.analysis.SaveAPIKey(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, "API key saved successfully"); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "Configuration saved to: %s\n", path)
			return err
		},
	}
}
