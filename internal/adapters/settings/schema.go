package settings

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

type settingsSchema struct {
	APIURL string     `toml:"api_url"`
	AppURL string     `toml:"app_url"`
	Poll   pollSchema `toml:"poll"`
	HTTP   httpSchema `toml:"http"`
	Log    logSchema  `toml:"log"`
}

type pollSchema struct {
	Interval             string `toml:"interval"`
	MaxAttempts          int    `toml:"max_attempts"`
	MaxConsecutiveErrors int    `toml:"max_consecutive_errors"`
}

type httpSchema struct {
	Timeout string `toml:"timeout"`
}

type logSchema struct {
	Level string `toml:"level"`
}

func toSchema(s Settings) settingsSchema {
	return settingsSchema{
		APIURL: s.APIURL,
		AppURL: s.AppURL,
		Poll: pollSchema{
			Interval:             s.Poll.Interval.String(),
			MaxAttempts:          s.Poll.MaxAttempts,
			MaxConsecutiveErrors: s.Poll.MaxConsecutiveErrors,
		},
		HTTP: httpSchema{Timeout: s.HTTP.Timeout.String()},
		Log:  logSchema{Level: s.Log.Level.String()},
	}
}

// MarshalTOML renders the effective settings in the settings.toml layout,
// so the output can be saved back as a settings file.
func (s Settings) MarshalTOML() ([]byte, error) {
	data, err := toml.Marshal(toSchema(s))
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}
