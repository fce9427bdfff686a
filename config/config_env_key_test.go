package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"analytics": map[string]any{
			"apiKey":        "",
			"flushInterval": "5s",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ANALYTICS_APIKEY", want: "analytics.apiKey"},
		{envKey: "ANALYTICS_FLUSHINTERVAL", want: "analytics.flushInterval"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`env:
  env: develop
  serviceName: appname
  log:
    level: debug
analytics:
  provider: http
  apiKey: phc_from_file
  host: http://localhost:8000
  timeout: 3s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("ANALYTICS_APIKEY", "phc_from_env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	require.NotNil(t, cfg.Analytics)
	assert.Equal(t, "http", cfg.Analytics.Provider)
	assert.Equal(t, "phc_from_env", cfg.Analytics.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Analytics.Timeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Analytics: &AnalyticsConfig{Provider: "http"}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultAnalyticsTimeout, cfg.Analytics.Timeout)
	assert.Equal(t, int64(defaultAvatarMaxBytes), cfg.Storage.AvatarMaxBytes)
}
