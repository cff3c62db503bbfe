package domain

import (
	"errors"
	"strings"
)

var (
	ErrResourceNameRequired = errors.New("resource name is required")
	ErrClusterRequired      = errors.New("cluster name is required: pass --cluster or select a kubectl context")
)

// KubeContext is the ambient kubectl context, read once at the CLI boundary.
type KubeContext struct {
	ContextName string
	Cluster     string
	Namespace   string
}

// TargetOverrides holds values supplied explicitly on the command line.
// Empty fields fall back to the ambient context.
type TargetOverrides struct {
	Namespace string
	Cluster   string
}

type AnalysisTarget struct {
	Kind        string
	Name        string
	Namespace   string
	ClusterName string
}

func NewAnalysisTarget(descriptor ResourceDescriptor, name string, ambient KubeContext, overrides TargetOverrides) (AnalysisTarget, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return AnalysisTarget{}, ErrResourceNameRequired
	}

	cluster := firstNonEmpty(overrides.Cluster, ambient.Cluster)
	if cluster == "" {
		return AnalysisTarget{}, ErrClusterRequired
	}

	namespace := firstNonEmpty(overrides.Namespace, ambient.Namespace)
	if descriptor.IsClusterScoped {
		namespace = ""
	}

	return AnalysisTarget{
		Kind:        descriptor.CanonicalKind,
		Name:        name,
		Namespace:   namespace,
		ClusterName: cluster,
	}, nil
}

// ClusterFromContextName derives a cluster name from a kubectl context name.
// EKS style contexts ("arn:aws:eks:region:account:cluster/name") keep only the
// segment after the last slash.
func ClusterFromContextName(contextName string) string {
	contextName = strings.TrimSpace(contextName)
	if i := strings.LastIndex(contextName, "/"); i >= 0 {
		return contextName[i+1:]
	}
	return contextName
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
