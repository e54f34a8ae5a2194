package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	if body == "" {
		return
	}

	dir := filepath.Join(home, "trastodon")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	writeConfig(t, "")

	cfg, err := Load(viper.New())

	require.NoError(t, err)
	assert.Equal(t, Config{
		AppName:           "trastodon",
		NotificationLimit: 40,
		HTTPTimeout:       30 * time.Second,
		LogLevel:          "warn",
		LogMaxSizeMB:      10,
	}, cfg)
}

func TestLoadConfigFile(t *testing.T) {
	writeConfig(t, `
[app]
name = "poetry bot"
website = "https://bots.example"

[notifications]
limit = 20

[grammar]
seed = 99

[http]
timeout = "5s"

[log]
level = "debug"
file = "/tmp/trastodon.log"
max_size_mb = 2
`)

	cfg, err := Load(nil)

	require.NoError(t, err)
	assert.Equal(t, "poetry bot", cfg.AppName)
	assert.Equal(t, "https://bots.example", cfg.AppWebsite)
	assert.Equal(t, 20, cfg.NotificationLimit)
	assert.Equal(t, int64(99), cfg.GrammarSeed)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/trastodon.log", cfg.LogFile)
	assert.Equal(t, 2, cfg.LogMaxSizeMB)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	writeConfig(t, "[log]\nlevel = \"error\"\n")
	t.Setenv("TRASTODON_LOG_LEVEL", "info")
	t.Setenv("TRASTODON_NOTIFICATIONS_LIMIT", "5")

	cfg, err := Load(viper.New())

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.NotificationLimit)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "limit too large", body: "[notifications]\nlimit = 500\n"},
		{name: "limit zero", body: "[notifications]\nlimit = 0\n"},
		{name: "empty app name", body: "[app]\nname = \"  \"\n"},
		{name: "malformed toml", body: "[app\nname = \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, tt.body)

			_, err := Load(viper.New())

			assert.Error(t, err)
		})
	}
}
