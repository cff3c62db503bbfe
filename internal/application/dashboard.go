package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/komodorio/kubectl-komodor/internal/domain"
)

const (
	DefaultAppBaseURL = "https://app.komodor.com"

	drawerTypeResourceByData = "ResourceDrawerByData"
	deletedPodsWindow        = time.Hour
)

type resourceDrawer struct {
	Index                int    `json:"index"`
	DrawerType           string `json:"drawerType"`
	Cluster              string `json:"cluster"`
	Namespace            string `json:"namespace"`
	ResourceType         string `json:"resourceType"`
	ResourceName         string `json:"resourceName"`
	BuildPreloadResource bool   `json:"buildPreloadResource"`
}

// BuildDashboardURL returns the deep link that opens target's drawer in the
// Komodor resources view, with the deleted-pods window ending at now.
func BuildDashboardURL(appBaseURL string, descriptor domain.ResourceDescriptor, target domain.AnalysisTarget, now time.Time) (string, error) {
	if appBaseURL == "" {
		appBaseURL = DefaultAppBaseURL
	}
	parsed, err := url.Parse(appBaseURL)
	if err != nil {
		return "", fmt.Errorf("parse app base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("app base url must use http or https")
	}
	if target.ClusterName == "" {
		return "", domain.ErrClusterRequired
	}

	drawers, err := json.Marshal([]resourceDrawer{{
		Index:                0,
		DrawerType:           drawerTypeResourceByData,
		Cluster:              target.ClusterName,
		Namespace:            target.Namespace,
		ResourceType:         descriptor.CanonicalKind,
		ResourceName:         target.Name,
		BuildPreloadResource: true,
	}})
	if err != nil {
		return "", fmt.Errorf("encode drawers: %w", err)
	}

	end := now.UnixMilli()
	start := now.Add(-deletedPodsWindow).UnixMilli()

	var b strings.Builder
	b.WriteString(strings.TrimRight(parsed.String(), "/"))
	b.WriteString("/main/resources/")
	b.WriteString(url.PathEscape(string(descriptor.DisplayCategory)))
	b.WriteString("/")
	b.WriteString(url.PathEscape(descriptor.URLSegment))
	b.WriteString("/")
	b.WriteString(url.PathEscape(target.ClusterName))
	b.WriteString("?drawers=")
	b.WriteString(encodeURIComponent(string(drawers)))
	b.WriteString("&workspaceId=")
	b.WriteString(encodeURIComponent("cluster-" + target.ClusterName))
	b.WriteString("&deleted-pods-timeWindow=")
	b.WriteString(strconv.FormatInt(start, 10) + "-" + strconv.FormatInt(end, 10))
	b.WriteString("&deleted-pods-timeframe=hour")

	return b.String(), nil
}

// encodeURIComponent escapes like the browser function of the same name, so
// spaces become %20 rather than '+'.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
