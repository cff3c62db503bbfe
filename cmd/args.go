package cmd

import (
	"fmt"

	"github.com/komodorio/kubectl-komodor/internal/domain"
	"github.com/spf13/cobra"
)

// exactArgs is cobra.ExactArgs with the usage line appended, since usage
// output is silenced on errors.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w\nUsage: %s", err, cmd.UseLine())
		}
		return nil
	}
}

type targetFlags struct {
	namespace string
	cluster   string
}

func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.namespace, "namespace", "n", "", "Resource namespace (defaults to the kubectl context namespace)")
	cmd.Flags().StringVarP(&f.cluster, "cluster", "c", "", "Komodor cluster name (defaults to the kubectl context cluster)")
}

func resolveTarget(app *app, resourceType string, resourceName string, flags targetFlags) (domain.ResourceDescriptor, domain.AnalysisTarget, error) {
	descriptor, ok := domain.ResolveResourceType(resourceType)
	if !ok {
		return domain.ResourceDescriptor{}, domain.AnalysisTarget{}, &domain.NotFoundError{
			Token:     resourceType,
			Supported: domain.PrimaryAliases(),
		}
	}

	overrides := domain.TargetOverrides{Namespace: flags.namespace, Cluster: flags.cluster}

	var ambient domain.KubeContext
	if overrides.Cluster == "" || (overrides.Namespace == "" && !descriptor.IsClusterScoped) {
		kubeCtx, err := app.kubeContext()
		if err != nil {
			return domain.ResourceDescriptor{}, domain.AnalysisTarget{}, err
		}
		ambient = kubeCtx
	}

	target, err := domain.NewAnalysisTarget(descriptor, resourceName, ambient, overrides)
	if err != nil {
		return domain.ResourceDescriptor{}, domain.AnalysisTarget{}, err
	}

	return descriptor, target, nil
}
