package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/alarm/internal/util"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Settings holds the user-tunable knobs. Values come from ALARM_* environment
// variables, then an optional config.yaml, then the defaults below.
type Settings struct {
	Theme         string
	AlertMode     string
	LogFile       string
	ActivityLimit int
}

// Load reads settings from the environment and the user's config directory.
func Load() (Settings, error) {
	return LoadFrom(util.ConfigDir(AppName))
}

// LoadFrom reads settings, looking for config.yaml in dir.
func LoadFrom(dir string) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("alert", AlertAuto)
	v.SetDefault("log_file", "")
	v.SetDefault("activity_limit", DefaultActivityLimit)

	if dir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	limit, err := cast.ToIntE(v.Get("activity_limit"))
	if err != nil {
		return Settings{}, fmt.Errorf("activity_limit %q is not a whole number", v.GetString("activity_limit"))
	}

	s := Settings{
		Theme:         strings.ToLower(strings.TrimSpace(v.GetString("theme"))),
		AlertMode:     strings.ToLower(strings.TrimSpace(v.GetString("alert"))),
		LogFile:       strings.TrimSpace(v.GetString("log_file")),
		ActivityLimit: util.Clamp(limit, 1, MaxActivityLimit),
	}
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports settings that cannot be honoured.
func (s Settings) Validate() error {
	switch s.AlertMode {
	case AlertAuto, AlertTone, AlertBell, AlertText:
		return nil
	default:
		return fmt.Errorf("unknown alert mode %q (want auto, tone, bell or text)", s.AlertMode)
	}
}
