package cmd

import (
	"fmt"
	"net/http"

	"github.com/komodorio/kubectl-komodor/internal/adapters/browser"
	filestore "github.com/komodorio/kubectl-komodor/internal/adapters/credentials/file"
	"github.com/komodorio/kubectl-komodor/internal/adapters/komodor"
	"github.com/komodorio/kubectl-komodor/internal/adapters/kubeconfig"
	"github.com/komodorio/kubectl-komodor/internal/adapters/settings"
	"github.com/komodorio/kubectl-komodor/internal/application"
	"github.com/komodorio/kubectl-komodor/internal/domain"
	"github.com/komodorio/kubectl-komodor/internal/ports"
	"github.com/komodorio/kubectl-komodor/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

type app struct {
	settings settings.Settings
	logger   *logrus.Logger
	analysis *application.AnalysisService
	opener   ports.URLOpener
	global   *globalOptions
	clock    ports.Clock
}

func wireApp(global *globalOptions) (*app, error) {
	cfg, err := settings.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(cfg.Log.Level)

	client := &komodor.Client{
		BaseURL:        cfg.APIURL,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.HTTP.Timeout,
		UserAgent:      "kubectl-komodor/" + version.Version,
		Logger:         logger,
	}
	store := filestore.NewStore(afero.NewOsFs(), cfg.ConfigDir)
	clock := ports.SystemClock{}

	return &app{
		settings: cfg,
		logger:   logger,
		analysis: application.NewAnalysisService(client, store, clock, cfg.PollOptions(), logger),
		opener:   browser.NewOpener(),
		global:   global,
		clock:    clock,
	}, nil
}

// kubeContext reads the ambient kubectl context honouring --kubeconfig and
// --context.
func (a *app) kubeContext() (domain.KubeContext, error) {
	loader := kubeconfig.Loader{
		ExplicitPath:    a.global.kubeconfig,
		ContextOverride: a.global.kubeContext,
	}
	kubeCtx, err := loader.Load()
	if err != nil {
		return domain.KubeContext{}, err
	}
	a.logger.WithFields(logrus.Fields{
		"context":   kubeCtx.ContextName,
		"cluster":   kubeCtx.Cluster,
		"namespace": kubeCtx.Namespace,
	}).Debug("resolved kube context")
	return kubeCtx, nil
}
