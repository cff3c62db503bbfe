package kubeconfig

import (
	"path/filepath"
	"testing"

	"github.com/komodorio/kubectl-komodor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

const eksContext = "arn:aws:eks:us-east-1:123456789012:cluster/prod-east"

func writeKubeconfig(t *testing.T, current string, contexts map[string]string) string {
	t.Helper()

	config := clientcmdapi.NewConfig()
	config.Clusters["c"] = &clientcmdapi.Cluster{Server: "https://127.0.0.1:6443"}
	config.AuthInfos["u"] = &clientcmdapi.AuthInfo{Token: "t"}
	for name, namespace := range contexts {
		config.Contexts[name] = &clientcmdapi.Context{Cluster: "c", AuthInfo: "u", Namespace: namespace}
	}
	config.CurrentContext = current

	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, clientcmd.WriteToFile(*config, path))
	return path
}

func TestLoaderDerivesClusterFromARNContext(t *testing.T) {
	path := writeKubeconfig(t, eksContext, map[string]string{eksContext: "payments"})

	got, err := Loader{ExplicitPath: path}.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.KubeContext{ContextName: eksContext, Cluster: "prod-east", Namespace: "payments"}, got)
}

func TestLoaderDefaultsNamespace(t *testing.T) {
	path := writeKubeconfig(t, "kind-dev", map[string]string{"kind-dev": ""})

	got, err := Loader{ExplicitPath: path}.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.KubeContext{ContextName: "kind-dev", Cluster: "kind-dev", Namespace: "default"}, got)
}

func TestLoaderHonoursContextOverride(t *testing.T) {
	path := writeKubeconfig(t, "kind-dev", map[string]string{"kind-dev": "", "staging": "web"})

	got, err := Loader{ExplicitPath: path, ContextOverride: "staging"}.Load()
	require.NoError(t, err)
	assert.Equal(t, "staging", got.Cluster)
	assert.Equal(t, "web", got.Namespace)
}

func TestLoaderUnknownContextOverride(t *testing.T) {
	path := writeKubeconfig(t, "kind-dev", map[string]string{"kind-dev": ""})

	_, err := Loader{ExplicitPath: path, ContextOverride: "missing"}.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"missing" not found`)
}

func TestLoaderMissingExplicitFile(t *testing.T) {
	_, err := Loader{ExplicitPath: filepath.Join(t.TempDir(), "nope")}.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load kubeconfig")
}

func TestLoaderWithoutKubeconfigHasNoCluster(t *testing.T) {
	t.Setenv("KUBECONFIG", filepath.Join(t.TempDir(), "absent"))

	got, err := Loader{}.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.KubeContext{Namespace: "default"}, got)
}

func TestLoaderReadsKUBECONFIGEnv(t *testing.T) {
	path := writeKubeconfig(t, eksContext, map[string]string{eksContext: ""})
	t.Setenv("KUBECONFIG", path)

	got, err := Loader{}.Load()
	require.NoError(t, err)
	assert.Equal(t, "prod-east", got.Cluster)
}
