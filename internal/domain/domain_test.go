package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveResourceTypeEveryAliasCaseInsensitive(t *testing.T) {
	for _, descriptor := range SupportedResourceTypes() {
		canonical, ok := ResolveResourceType(descriptor.CanonicalKind)
		require.True(t, ok, descriptor.CanonicalKind)
		assert.Equal(t, descriptor, canonical)

		for _, alias := range descriptor.Aliases {
			for _, variant := range []string{alias, strings.ToUpper(alias), capitalize(alias), "  " + alias + " "} {
				got, ok := ResolveResourceType(variant)
				require.True(t, ok, "alias %q", variant)
				assert.Equal(t, canonical, got, "alias %q", variant)
			}
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func TestResolveResourceTypeUnknown(t *testing.T) {
	for _, token := range []string{"", "widget", "deploymentz", "pod/", "cluster role"} {
		_, ok := ResolveResourceType(token)
		assert.False(t, ok, token)
	}
}

func TestResolveResourceTypeDescriptorFields(t *testing.T) {
	tests := []struct {
		token         string
		kind          string
		category      ResourceCategory
		segment       string
		clusterScoped bool
	}{
		{token: "deploy", kind: "Deployment", category: CategoryWorkloads, segment: "deployments"},
		{token: "ds", kind: "DaemonSet", category: CategoryWorkloads, segment: "daemonset"},
		{token: "Argo Rollouts", kind: "Argo Rollout", category: CategoryWorkloads, segment: "argo rollouts"},
		{token: "sc", kind: "StorageClass", category: CategoryStorage, segment: "storage-classes", clusterScoped: true},
		{token: "HPA", kind: "HorizontalPodAutoscaler", category: CategoryConfiguration, segment: "hpas"},
		{token: "netpol", kind: "NetworkPolicy", category: CategoryNetwork, segment: "networkpolicies"},
		{token: "clusterrolebindings", kind: "ClusterRoleBinding", category: CategoryAccessControl, segment: "cluster-role-bindings", clusterScoped: true},
		{token: "clusterrole", kind: "ClusterRole", category: CategoryAccessControl, segment: "cluster-roles", clusterScoped: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ResolveResourceType(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.kind, got.CanonicalKind)
			assert.Equal(t, tt.category, got.DisplayCategory)
			assert.Equal(t, tt.segment, got.URLSegment)
			assert.Equal(t, tt.clusterScoped, got.IsClusterScoped)
		})
	}
}

func TestResolveResourceTypeReturnsCopy(t *testing.T) {
	got, ok := ResolveResourceType("pod")
	require.True(t, ok)
	got.Aliases[0] = "mutated"

	again, ok := ResolveResourceType("pod")
	require.True(t, ok)
	assert.Equal(t, "pod", again.Aliases[0])
}

func TestSupportedResourceTypesCoversTable(t *testing.T) {
	kinds := make([]string, 0)
	for _, descriptor := range SupportedResourceTypes() {
		kinds = append(kinds, descriptor.CanonicalKind)
	}

	assert.Equal(t, []string{
		"Pod", "ReplicaSet", "Deployment", "Job", "CronJob", "StatefulSet", "DaemonSet", "Argo Rollout",
		"PersistentVolumeClaim", "PersistentVolume", "StorageClass",
		"ConfigMap", "Secret", "ResourceQuota", "LimitRange", "HorizontalPodAutoscaler", "PodDisruptionBudget",
		"Service", "Endpoints", "Ingress", "NetworkPolicy", "EndpointSlice",
		"ServiceAccount", "ClusterRole", "Role", "ClusterRoleBinding", "RoleBinding",
	}, kinds)
	assert.Len(t, PrimaryAliases(), len(kinds))
	assert.Equal(t, "deploy", PrimaryAliases()[2])
}

func TestNewAnalysisTargetPrefersOverrides(t *testing.T) {
	deploy, _ := ResolveResourceType("deploy")
	ambient := KubeContext{ContextName: "arn:aws:eks:us-east-1:1:cluster/prod", Cluster: "prod", Namespace: "team-a"}

	target, err := NewAnalysisTarget(deploy, "api", ambient, TargetOverrides{})
	require.NoError(t, err)
	assert.Equal(t, AnalysisTarget{Kind: "Deployment", Name: "api", Namespace: "team-a", ClusterName: "prod"}, target)

	target, err = NewAnalysisTarget(deploy, "api", ambient, TargetOverrides{Namespace: "kube-system", Cluster: "staging"})
	require.NoError(t, err)
	assert.Equal(t, AnalysisTarget{Kind: "Deployment", Name: "api", Namespace: "kube-system", ClusterName: "staging"}, target)
}

func TestNewAnalysisTargetClusterScopedAlwaysDropsNamespace(t *testing.T) {
	ambient := KubeContext{Cluster: "prod", Namespace: "team-a"}
	for _, token := range []string{"sc", "clusterrole", "clusterrolebinding"} {
		descriptor, ok := ResolveResourceType(token)
		require.True(t, ok)

		for _, overrides := range []TargetOverrides{{}, {Namespace: "kube-system"}} {
			target, err := NewAnalysisTarget(descriptor, "standard", ambient, overrides)
			require.NoError(t, err)
			assert.Empty(t, target.Namespace, fmt.Sprintf("%s %+v", token, overrides))
		}
	}
}

func TestNewAnalysisTargetValidation(t *testing.T) {
	pod, _ := ResolveResourceType("pod")

	_, err := NewAnalysisTarget(pod, "  ", KubeContext{Cluster: "prod"}, TargetOverrides{})
	assert.ErrorIs(t, err, ErrResourceNameRequired)

	_, err = NewAnalysisTarget(pod, "web-0", KubeContext{}, TargetOverrides{})
	assert.ErrorIs(t, err, ErrClusterRequired)
}

func TestClusterFromContextName(t *testing.T) {
	assert.Equal(t, "prod", ClusterFromContextName("arn:aws:eks:us-east-1:123456789012:cluster/prod"))
	assert.Equal(t, "kind-dev", ClusterFromContextName("kind-dev"))
	assert.Equal(t, "", ClusterFromContextName(""))
}

func TestClassifySessionFlags(t *testing.T) {
	tests := []struct {
		name                    string
		complete, failed, stuck bool
		want                    SessionStatus
		wantConflict            bool
	}{
		{name: "running", want: SessionRunning},
		{name: "complete", complete: true, want: SessionCompleted},
		{name: "failed", failed: true, want: SessionFailed},
		{name: "stuck", stuck: true, want: SessionStuck},
		{name: "failed beats complete", complete: true, failed: true, want: SessionFailed, wantConflict: true},
		{name: "stuck beats complete", complete: true, stuck: true, want: SessionStuck, wantConflict: true},
		{name: "failed beats stuck", failed: true, stuck: true, want: SessionFailed, wantConflict: true},
		{name: "all set", complete: true, failed: true, stuck: true, want: SessionFailed, wantConflict: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conflict := ClassifySessionFlags(tt.complete, tt.failed, tt.stuck)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantConflict, conflict)
			assert.Equal(t, tt.want != SessionRunning, got.IsTerminal())
		})
	}
}

func TestSeenOperationsAdd(t *testing.T) {
	seen := NewSeenOperations()

	assert.True(t, seen.Add("a"))
	assert.False(t, seen.Add("a"))
	assert.True(t, seen.Add("b"))
	assert.Equal(t, 2, seen.Len())
}

func TestErrorMessagesNameTheInput(t *testing.T) {
	notFound := &NotFoundError{Token: "widget", Supported: []string{"pod", "deploy"}}
	assert.Equal(t, `unsupported resource type "widget". Supported types: pod, deploy`, notFound.Error())

	missing := &AuthError{}
	assert.Contains(t, missing.Error(), "kubectl komodor auth <api-key>")

	rejected := &AuthError{Op: "create rca session", StatusCode: 401}
	assert.Contains(t, rejected.Error(), "401 Unauthorized")
	assert.True(t, IsAuthError(fmt.Errorf("wrapped: %w", rejected)))

	remote := &RemoteError{Op: "get rca session", StatusCode: 502, Status: "502 Bad Gateway", Body: "upstream"}
	assert.Equal(t, "get rca session: remote returned 502 Bad Gateway: upstream", remote.Error())

	cause := errors.New("connection refused")
	transport := &TransportError{Op: "create rca session", Err: cause}
	assert.ErrorIs(t, transport, cause)
	assert.False(t, IsAuthError(transport))
}
