package environment_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/taskpad/sdk/environment"
)

type testConfig struct {
	Host     string        `toml:"host" env:"HOST" default:"localhost"`
	Port     int           `toml:"port" env:"PORT" default:"8080"`
	Timeout  time.Duration `toml:"timeout" env:"TIMEOUT" default:"5s"`
	Debug    bool          `toml:"debug" env:"DEBUG" default:"false"`
	Origins  []string      `toml:"origins" env:"ORIGINS" separator:","`
	Secret   string        `toml:"secret" env:"SECRET" required:"true"`
	internal string        // unexported, must be skipped
}

func TestParseEnvTagsDefaults(t *testing.T) {
	t.Setenv("APP_SECRET", "hunter2")

	var cfg testConfig
	require.NoError(t, environment.ParseEnvTags("APP", &cfg))

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.Origins)
	assert.Equal(t, "hunter2", cfg.Secret)
	assert.Empty(t, cfg.internal)
}

func TestParseEnvTagsOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "example.com")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_TIMEOUT", "1m")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("APP_ORIGINS", "https://a.com, https://b.com")
	t.Setenv("APP_SECRET", "hunter2")

	var cfg testConfig
	require.NoError(t, environment.ParseEnvTags("APP", &cfg))

	assert.Equal(t, "example.com", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.Origins)
}

func TestParseEnvTagsRequired(t *testing.T) {
	var cfg testConfig
	err := environment.ParseEnvTags("MISSING", &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MISSING_SECRET")
}

func TestParseEnvTagsRejectsNonPointer(t *testing.T) {
	var cfg testConfig
	assert.Error(t, environment.ParseEnvTags("APP", cfg))
}

func TestParseConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
host = "from-file.example.com"
port = 7070
debug = true
secret = "file-secret"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("APP_CONFIG_FILE", path)

	var cfg testConfig
	require.NoError(t, environment.ParseConfig("APP", &cfg))

	assert.Equal(t, "from-file.example.com", cfg.Host)
	assert.Equal(t, 7070, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "file-secret", cfg.Secret)
}

func TestParseConfigFallsBackToEnv(t *testing.T) {
	t.Setenv("APP_HOST", "from-env.example.com")
	t.Setenv("APP_SECRET", "env-secret")

	var cfg testConfig
	require.NoError(t, environment.ParseConfig("APP", &cfg))
	assert.Equal(t, "from-env.example.com", cfg.Host)
}

func TestGetEnvKeyPrefix(t *testing.T) {
	assert.Equal(t, "APP_PORT", environment.GetEnvKeyPrefix("APP", "PORT"))
	assert.Equal(t, "PORT", environment.GetEnvKeyPrefix("", "PORT"))
}

func TestGetPrefixEnvOrDefault(t *testing.T) {
	t.Setenv("APP_MODE", "staging")

	assert.Equal(t, "staging", environment.GetPrefixEnvOrDefault("APP", "MODE", "dev"))
	assert.Equal(t, "dev", environment.GetPrefixEnvOrDefault("APP", "UNSET", "dev"))
}
