package rca

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/komodorio/kubectl-komodor/internal/application"
	"github.com/komodorio/kubectl-komodor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReportAllSectionsInOrder(t *testing.T) {
	output := RenderReport(domain.SessionSnapshot{
		Status:       domain.SessionCompleted,
		ProblemShort: "OOMKilled",
		WhatHappened: []string{"Memory usage grew", "Container was killed"},
		EvidenceCollection: []domain.Evidence{
			{Query: "kubectl logs api", Snippet: "line1\nline2"},
			{Query: "kubectl describe pod api-0", Snippet: "Last State: Terminated"},
		},
		Recommendation: "Raise the memory limit",
	})

	rule := strings.Repeat("═", 80)
	assert.True(t, strings.HasPrefix(output, rule), output)
	assert.True(t, strings.HasSuffix(output, rule+"\n"), output)

	ordered := []string{
		"What Happened:",
		"! OOMKilled",
		"1. Memory usage grew",
		"2. Container was killed",
		"Related Evidence:",
		"1. From: kubectl logs api",
		"    line1",
		"    line2",
		"2. From: kubectl describe pod api-0",
		"    Last State: Terminated",
		"Suggested Remediation:",
		"Raise the memory limit",
	}
	last := -1
	for _, fragment := range ordered {
		idx := strings.Index(output, fragment)
		require.GreaterOrEqual(t, idx, 0, "missing %q in\n%s", fragment, output)
		assert.Greater(t, idx, last, "%q out of order", fragment)
		last = idx
	}
}

func TestRenderReportProblemShortOnly(t *testing.T) {
	output := RenderReport(domain.SessionSnapshot{ProblemShort: "ImagePullBackOff"})

	assert.Contains(t, output, "What Happened:")
	assert.Contains(t, output, "ImagePullBackOff")
	assert.NotContains(t, output, "Related Evidence:")
	assert.NotContains(t, output, "Suggested Remediation:")
	assert.Equal(t, 2, strings.Count(output, strings.Repeat("═", 80)))
}

func TestRenderReportWhatHappenedWithoutProblemShort(t *testing.T) {
	output := RenderReport(domain.SessionSnapshot{WhatHappened: []string{"Node drained"}})

	assert.Contains(t, output, "What Happened:")
	assert.Contains(t, output, "1. Node drained")
	assert.NotContains(t, output, "!")
}

func TestRenderReportEmptySnapshotOnlyHasRules(t *testing.T) {
	output := RenderReport(domain.SessionSnapshot{})

	rule := strings.Repeat("═", 80)
	assert.Equal(t, rule+"\n\n"+rule+"\n", output)
}

func TestProgressPrintsOperationsAndFailures(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	progress := NewProgress(out, errOut)

	progress.OperationStarted("Collecting events")
	progress.OperationStarted("Reading logs")
	progress.PollFailed(3, errors.New("connection reset"))

	assert.Equal(t, "> Collecting events...\n> Reading logs...\n", out.String())
	assert.Contains(t, errOut.String(), "attempt 3")
	assert.Contains(t, errOut.String(), "connection reset")
}

func TestRenderStarting(t *testing.T) {
	namespaced := RenderStarting(domain.AnalysisTarget{Kind: "Deployment", Name: "api", Namespace: "default", ClusterName: "prod"})
	assert.Equal(t, "Starting RCA session for Deployment 'api' in namespace 'default' on cluster 'prod'...", namespaced)

	clusterScoped := RenderStarting(domain.AnalysisTarget{Kind: "StorageClass", Name: "gp3", ClusterName: "prod"})
	assert.Equal(t, "Starting RCA session for StorageClass 'gp3' on cluster 'prod'...", clusterScoped)
}

func TestRenderSessionStarted(t *testing.T) {
	output := RenderSessionStarted(domain.SessionHandle{SessionID: "sess-1"})
	assert.Equal(t, "RCA session started with ID: sess-1\nPolling for results...", output)
}

func TestRenderOutcome(t *testing.T) {
	testCases := []struct {
		name   string
		result application.PollResult
		want   string
	}{
		{name: "failed", result: application.PollResult{State: application.PollFailed}, want: "RCA analysis failed"},
		{name: "stuck", result: application.PollResult{State: application.PollStuck}, want: "RCA analysis got stuck"},
		{name: "timed out", result: application.PollResult{State: application.PollTimedOut, Attempts: 60}, want: "RCA analysis timed out after 60 attempts (5m0s)"},
		{name: "completed", result: application.PollResult{State: application.PollCompleted}, want: ""},
		{name: "errored", result: application.PollResult{State: application.PollErrored}, want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RenderOutcome(tc.result, 5*time.Second))
		})
	}
}
