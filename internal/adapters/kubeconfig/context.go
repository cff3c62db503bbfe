package kubeconfig

import (
	"fmt"

	"github.com/komodorio/kubectl-komodor/internal/domain"
	"k8s.io/client-go/tools/clientcmd"
)

const defaultNamespace = "default"

// Loader reads the ambient kubectl context using the standard loading rules
// (KUBECONFIG, then ~/.kube/config) unless ExplicitPath is set.
type Loader struct {
	ExplicitPath    string
	ContextOverride string
}

// Load returns the selected context. An absent kubeconfig yields a context
// with no cluster and the default namespace.
func (l Loader) Load() (domain.KubeContext, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	rules.ExplicitPath = l.ExplicitPath

	clientConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		rules,
		&clientcmd.ConfigOverrides{CurrentContext: l.ContextOverride},
	)

	raw, err := clientConfig.RawConfig()
	if err != nil {
		return domain.KubeContext{}, fmt.Errorf("load kubeconfig: %w", err)
	}

	contextName := raw.CurrentContext
	if l.ContextOverride != "" {
		contextName = l.ContextOverride
	}
	if contextName == "" {
		return domain.KubeContext{Namespace: defaultNamespace}, nil
	}

	kubeContext, ok := raw.Contexts[contextName]
	if !ok && l.ContextOverride != "" {
		return domain.KubeContext{}, fmt.Errorf("kubeconfig context %q not found", contextName)
	}

	namespace := defaultNamespace
	if kubeContext != nil && kubeContext.Namespace != "" {
		namespace = kubeContext.Namespace
	}

	return domain.KubeContext{
		ContextName: contextName,
		Cluster:     domain.ClusterFromContextName(contextName),
		Namespace:   namespace,
	}, nil
}
