package domain

import "strings"

type ResourceCategory string

const (
	CategoryWorkloads     ResourceCategory = "workloads"
	CategoryStorage       ResourceCategory = "storage"
	CategoryConfiguration ResourceCategory = "configuration"
	CategoryNetwork       ResourceCategory = "network"
	CategoryAccessControl ResourceCategory = "access-control"
)

// ResourceDescriptor describes how a Kubernetes kind is addressed in the
// Komodor dashboard.
type ResourceDescriptor struct {
	CanonicalKind   string
	DisplayName     string
	DisplayCategory ResourceCategory
	URLSegment      string
	IsClusterScoped bool
	// Aliases are lower-case; the first one is the short form shown to users.
	Aliases []string
}

func (d ResourceDescriptor) PrimaryAlias() string {
	if len(d.Aliases) == 0 {
		return strings.ToLower(d.CanonicalKind)
	}
	return d.Aliases[0]
}

var resourceTypes = []ResourceDescriptor{
	// Workloads
	{CanonicalKind: "Pod", DisplayName: "Pods", DisplayCategory: CategoryWorkloads, URLSegment: "pods",
		Aliases: []string{"pod", "pods"}},
	{CanonicalKind: "ReplicaSet", DisplayName: "ReplicaSets", DisplayCategory: CategoryWorkloads, URLSegment: "replicasets",
		Aliases: []string{"rs", "replicaset", "replicasets"}},
	{CanonicalKind: "Deployment", DisplayName: "Deployments", DisplayCategory: CategoryWorkloads, URLSegment: "deployments",
		Aliases: []string{"deploy", "deployment", "deployments"}},
	{CanonicalKind: "Job", DisplayName: "Jobs", DisplayCategory: CategoryWorkloads, URLSegment: "jobs",
		Aliases: []string{"job", "jobs"}},
	{CanonicalKind: "CronJob", DisplayName: "CronJobs", DisplayCategory: CategoryWorkloads, URLSegment: "cronjobs",
		Aliases: []string{"cronjob", "cronjobs"}},
	{CanonicalKind: "StatefulSet", DisplayName: "StatefulSets", DisplayCategory: CategoryWorkloads, URLSegment: "statefulsets",
		Aliases: []string{"sts", "statefulset", "statefulsets"}},
	{CanonicalKind: "DaemonSet", DisplayName: "DaemonSets", DisplayCategory: CategoryWorkloads, URLSegment: "daemonset",
		Aliases: []string{"ds", "daemonset", "daemonsets"}},
	{CanonicalKind: "Argo Rollout", DisplayName: "Argo Rollouts", DisplayCategory: CategoryWorkloads, URLSegment: "argo rollouts",
		Aliases: []string{"argo", "rollout", "argo rollout", "argo rollouts"}},

	// Storage
	{CanonicalKind: "PersistentVolumeClaim", DisplayName: "PVCs", DisplayCategory: CategoryStorage, URLSegment: "pvcs",
		Aliases: []string{"pvc", "pvcs", "persistentvolumeclaim", "persistentvolumeclaims"}},
	{CanonicalKind: "PersistentVolume", DisplayName: "PVs", DisplayCategory: CategoryStorage, URLSegment: "pvs",
		Aliases: []string{"pv", "pvs", "persistentvolume", "persistentvolumes"}},
	{CanonicalKind: "StorageClass", DisplayName: "Storage Classes", DisplayCategory: CategoryStorage, URLSegment: "storage-classes",
		Aliases: []string{"sc", "storageclass", "storageclasses"}, IsClusterScoped: true},

	// Configuration
	{CanonicalKind: "ConfigMap", DisplayName: "ConfigMaps", DisplayCategory: CategoryConfiguration, URLSegment: "configmaps",
		Aliases: []string{"cm", "configmap", "configmaps"}},
	{CanonicalKind: "Secret", DisplayName: "Secrets", DisplayCategory: CategoryConfiguration, URLSegment: "secrets",
		Aliases: []string{"secret", "secrets"}},
	{CanonicalKind: "ResourceQuota", DisplayName: "Resource Quotas", DisplayCategory: CategoryConfiguration, URLSegment: "resourcequotas",
		Aliases: []string{"rq", "resourcequota", "resourcequotas"}},
	{CanonicalKind: "LimitRange", DisplayName: "Limit Ranges", DisplayCategory: CategoryConfiguration, URLSegment: "limitranges",
		Aliases: []string{"limitrange", "limitranges"}},
	{CanonicalKind: "HorizontalPodAutoscaler", DisplayName: "HPAs", DisplayCategory: CategoryConfiguration, URLSegment: "hpas",
		Aliases: []string{"hpa", "hpas", "horizontalpodautoscaler", "horizontalpodautoscalers"}},
	{CanonicalKind: "PodDisruptionBudget", DisplayName: "PDBs", DisplayCategory: CategoryConfiguration, URLSegment: "pdbs",
		Aliases: []string{"pdb", "pdbs", "poddisruptionbudget", "poddisruptionbudgets"}},

	// Network
	{CanonicalKind: "Service", DisplayName: "Kubernetes Services", DisplayCategory: CategoryNetwork, URLSegment: "services",
		Aliases: []string{"svc", "service", "services"}},
	{CanonicalKind: "Endpoints", DisplayName: "Endpoints", DisplayCategory: CategoryNetwork, URLSegment: "endpoints",
		Aliases: []string{"endpoint", "endpoints"}},
	{CanonicalKind: "Ingress", DisplayName: "Ingresses", DisplayCategory: CategoryNetwork, URLSegment: "ingresses",
		Aliases: []string{"ing", "ingress", "ingresses"}},
	{CanonicalKind: "NetworkPolicy", DisplayName: "Network Policies", DisplayCategory: CategoryNetwork, URLSegment: "networkpolicies",
		Aliases: []string{"netpol", "networkpolicy", "networkpolicies"}},
	{CanonicalKind: "EndpointSlice", DisplayName: "Endpoint Slices", DisplayCategory: CategoryNetwork, URLSegment: "endpointslices",
		Aliases: []string{"endpointslice", "endpointslices"}},

	// Access control
	{CanonicalKind: "ServiceAccount", DisplayName: "Service Accounts", DisplayCategory: CategoryAccessControl, URLSegment: "service-accounts",
		Aliases: []string{"sa", "serviceaccount", "serviceaccounts"}},
	{CanonicalKind: "ClusterRole", DisplayName: "Cluster Roles", DisplayCategory: CategoryAccessControl, URLSegment: "cluster-roles",
		Aliases: []string{"clusterrole", "clusterroles"}, IsClusterScoped: true},
	{CanonicalKind: "Role", DisplayName: "Roles", DisplayCategory: CategoryAccessControl, URLSegment: "roles",
		Aliases: []string{"role", "roles"}},
	{CanonicalKind: "ClusterRoleBinding", DisplayName: "Cluster Role Bindings", DisplayCategory: CategoryAccessControl, URLSegment: "cluster-role-bindings",
		Aliases: []string{"clusterrolebinding", "clusterrolebindings"}, IsClusterScoped: true},
	{CanonicalKind: "RoleBinding", DisplayName: "Role Bindings", DisplayCategory: CategoryAccessControl, URLSegment: "role-bindings",
		Aliases: []string{"rolebinding", "rolebindings"}},
}

var resourceTypesByAlias = indexResourceTypes(resourceTypes)

func indexResourceTypes(types []ResourceDescriptor) map[string]int {
	index := make(map[string]int)
	for i, descriptor := range types {
		for _, alias := range descriptor.Aliases {
			index[alias] = i
		}
	}
	return index
}

// ResolveResourceType matches token case-insensitively against the alias
// table. The boolean is false when no alias matches.
func ResolveResourceType(token string) (ResourceDescriptor, bool) {
	i, ok := resourceTypesByAlias[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return ResourceDescriptor{}, false
	}
	return cloneDescriptor(resourceTypes[i]), true
}

// SupportedResourceTypes returns the table in declaration order.
func SupportedResourceTypes() []ResourceDescriptor {
	out := make([]ResourceDescriptor, 0, len(resourceTypes))
	for _, descriptor := range resourceTypes {
		out = append(out, cloneDescriptor(descriptor))
	}
	return out
}

func PrimaryAliases() []string {
	aliases := make([]string, 0, len(resourceTypes))
	for _, descriptor := range resourceTypes {
		aliases = append(aliases, descriptor.PrimaryAlias())
	}
	return aliases
}

func cloneDescriptor(d ResourceDescriptor) ResourceDescriptor {
	d.Aliases = append([]string(nil), d.Aliases...)
	return d
}
