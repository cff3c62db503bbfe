package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect plugin settings",
	}

	cmd.AddCommand(newConfigViewCmd(app))

	return cmd
}

func newConfigViewCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Print the effective settings as TOML",
		Long:  "Print the effective settings after applying settings.toml and KOMODOR_* environment variables. The output can be saved as settings.toml in the config directory.",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := app.settings.MarshalTOML()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			source := app.settings.File
			if source == "" {
				source = "none"
			}
			if _, err := fmt.Fprintf(out, "# config dir: %s\n# settings file: %s\n", app.settings.ConfigDir, source); err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}
