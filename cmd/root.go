package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	kubeconfig  string
	kubeContext string
	verbose     bool
}

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	global := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "kubectl-komodor",
		Short:         "Komodor plugin for kubectl: open resources in Komodor and run root-cause analysis",
		Long:          "kubectl-komodor links cluster resources to the Komodor dashboard and runs Komodor root-cause analysis (RCA) sessions from the terminal. Install it on PATH and call it as 'kubectl komodor'.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&global.kubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	rootCmd.PersistentFlags().StringVar(&global.kubeContext, "context", "", "Kubeconfig context to use")
	rootCmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "Enable debug logging")

	app, err := wireApp(global)
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		app.logger.SetOutput(cmd.ErrOrStderr())
		if global.verbose {
			app.logger.SetLevel(logrus.DebugLevel)
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newOpenCmd(app),
		newRCACmd(app),
		newResourcesCmd(),
		newConfigCmd(app),
	)

	return rootCmd
}
