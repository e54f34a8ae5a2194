// Package config reads optional settings from
// $XDG_CONFIG_HOME/trastodon/config.toml (or ~/.config/trastodon/config.toml)
// with TRASTODON_* environment overrides, e.g. TRASTODON_LOG_LEVEL=debug.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = "trastodon"
	envPrefix  = "TRASTODON"

	appNameKey           = "app.name"
	appWebsiteKey        = "app.website"
	notificationLimitKey = "notifications.limit"
	grammarSeedKey       = "grammar.seed"
	httpTimeoutKey       = "http.timeout"
	logLevelKey          = "log.level"
	logFileKey           = "log.file"
	logMaxSizeKey        = "log.max_size_mb"

	// Mastodon caps a notifications page at 80 entries.
	maxNotificationLimit = 80
)

type Config struct {
	AppName           string
	AppWebsite        string
	NotificationLimit int
	GrammarSeed       int64
	HTTPTimeout       time.Duration
	LogLevel          string
	LogFile           string
	LogMaxSizeMB      int
}

func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	if dir, err := configHome(); err == nil {
		cfg.AddConfigPath(filepath.Join(dir, configDir))
	}

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(appNameKey, "trastodon")
	cfg.SetDefault(appWebsiteKey, "")
	cfg.SetDefault(notificationLimitKey, 40)
	cfg.SetDefault(grammarSeedKey, 0)
	cfg.SetDefault(httpTimeoutKey, 30*time.Second)
	cfg.SetDefault(logLevelKey, "warn")
	cfg.SetDefault(logFileKey, "")
	cfg.SetDefault(logMaxSizeKey, 10)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	c := Config{
		AppName:           strings.TrimSpace(cfg.GetString(appNameKey)),
		AppWebsite:        strings.TrimSpace(cfg.GetString(appWebsiteKey)),
		NotificationLimit: cfg.GetInt(notificationLimitKey),
		GrammarSeed:       cfg.GetInt64(grammarSeedKey),
		HTTPTimeout:       cfg.GetDuration(httpTimeoutKey),
		LogLevel:          cfg.GetString(logLevelKey),
		LogFile:           cfg.GetString(logFileKey),
		LogMaxSizeMB:      cfg.GetInt(logMaxSizeKey),
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) validate() error {
	if c.AppName == "" {
		return fmt.Errorf("%s must not be empty", appNameKey)
	}
	if c.NotificationLimit < 1 || c.NotificationLimit > maxNotificationLimit {
		return fmt.Errorf("%s must be between 1 and %d, got %d", notificationLimitKey, maxNotificationLimit, c.NotificationLimit)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%s must not be negative", httpTimeoutKey)
	}
	return nil
}

func configHome() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}
