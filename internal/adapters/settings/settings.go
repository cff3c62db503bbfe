package settings

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/komodorio/kubectl-komodor/internal/adapters/komodor"
	"github.com/komodorio/kubectl-komodor/internal/application"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	configName = "settings"
	configType = "toml"

	defaultConfigDirName = ".kubectl-komodor"
	defaultLogLevel      = "warn"

	keyConfigDir          = "config_dir"
	keyAPIURL             = "api_url"
	keyAppURL             = "app_url"
	keyPollInterval       = "poll.interval"
	keyPollMaxAttempts    = "poll.max_attempts"
	keyPollMaxConsecutive = "poll.max_consecutive_errors"
	keyHTTPTimeout        = "http.timeout"
	keyLogLevel           = "log.level"
)

var envBindings = map[string]string{
	keyConfigDir:          "KOMODOR_CONFIG_DIR",
	keyAPIURL:             "KOMODOR_API_URL",
	keyAppURL:             "KOMODOR_APP_URL",
	keyPollInterval:       "KOMODOR_POLL_INTERVAL",
	keyPollMaxAttempts:    "KOMODOR_POLL_MAX_ATTEMPTS",
	keyPollMaxConsecutive: "KOMODOR_POLL_MAX_CONSECUTIVE_ERRORS",
	keyHTTPTimeout:        "KOMODOR_HTTP_TIMEOUT",
	keyLogLevel:           "KOMODOR_LOG_LEVEL",
}

type Settings struct {
	ConfigDir string
	// File is the settings file that was read, empty when none exists.
	File   string
	APIURL string
	AppURL string
	Poll   PollSettings
	HTTP   HTTPSettings
	Log    LogSettings
}

type PollSettings struct {
	Interval             time.Duration
	MaxAttempts          int
	MaxConsecutiveErrors int
}

type HTTPSettings struct {
	Timeout time.Duration
}

type LogSettings struct {
	Level logrus.Level
}

func (s Settings) PollOptions() application.PollOptions {
	return application.PollOptions{
		Interval:             s.Poll.Interval,
		MaxAttempts:          s.Poll.MaxAttempts,
		MaxConsecutiveErrors: s.Poll.MaxConsecutiveErrors,
	}
}

// Load resolves settings from defaults, {configDir}/settings.toml and the
// KOMODOR_* environment, later sources winning.
func Load(cfg *viper.Viper) (Settings, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	for key, env := range envBindings {
		if err := cfg.BindEnv(key, env); err != nil {
			return Settings{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	configDir := cfg.GetString(keyConfigDir)
	if configDir == "" {
		defaultDir, err := DefaultConfigDir()
		if err != nil {
			return Settings{}, err
		}
		configDir = defaultDir
	}
	configDir, err := filepath.Abs(configDir)
	if err != nil {
		return Settings{}, fmt.Errorf("resolve config directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)
	cfg.SetDefault(keyAPIURL, komodor.DefaultBaseURL)
	cfg.SetDefault(keyAppURL, application.DefaultAppBaseURL)
	cfg.SetDefault(keyPollInterval, application.DefaultPollInterval)
	cfg.SetDefault(keyPollMaxAttempts, application.DefaultMaxAttempts)
	cfg.SetDefault(keyPollMaxConsecutive, 0)
	cfg.SetDefault(keyHTTPTimeout, komodor.DefaultRequestTimeout)
	cfg.SetDefault(keyLogLevel, defaultLogLevel)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Settings{}, fmt.Errorf("read settings file: %w", err)
		}
	}

	level, err := logrus.ParseLevel(cfg.GetString(keyLogLevel))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid %s: %w", keyLogLevel, err)
	}

	settings := Settings{
		ConfigDir: configDir,
		File:      cfg.ConfigFileUsed(),
		APIURL:    cfg.GetString(keyAPIURL),
		AppURL:    cfg.GetString(keyAppURL),
		Poll: PollSettings{
			Interval:             cfg.GetDuration(keyPollInterval),
			MaxAttempts:          cfg.GetInt(keyPollMaxAttempts),
			MaxConsecutiveErrors: cfg.GetInt(keyPollMaxConsecutive),
		},
		HTTP: HTTPSettings{Timeout: cfg.GetDuration(keyHTTPTimeout)},
		Log:  LogSettings{Level: level},
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func (s Settings) Validate() error {
	if err := validateBaseURL(keyAPIURL, s.APIURL); err != nil {
		return err
	}
	if err := validateBaseURL(keyAppURL, s.AppURL); err != nil {
		return err
	}
	if s.Poll.Interval <= 0 {
		return fmt.Errorf("%s must be positive, got %s", keyPollInterval, s.Poll.Interval)
	}
	if s.Poll.MaxAttempts <= 0 {
		return fmt.Errorf("%s must be positive, got %d", keyPollMaxAttempts, s.Poll.MaxAttempts)
	}
	if s.Poll.MaxConsecutiveErrors < 0 {
		return fmt.Errorf("%s must not be negative, got %d", keyPollMaxConsecutive, s.Poll.MaxConsecutiveErrors)
	}
	if s.HTTP.Timeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", keyHTTPTimeout, s.HTTP.Timeout)
	}
	return nil
}

// DefaultConfigDir returns ~/.kubectl-komodor.
func DefaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, defaultConfigDirName), nil
}

func validateBaseURL(key string, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid %s %q: must use http or https", key, raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid %s %q: missing host", key, raw)
	}
	return nil
}
