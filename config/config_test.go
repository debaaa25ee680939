package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
yr:
  baseURL: https://www.yr.no
  timeout: 30s
  userAgent: meteogram/test
log:
  level: info
metrics:
  textfile: ""
defaults:
  dark: true
  crop: false
  transparent: true
  unhideDark: false
`

func TestLoad(t *testing.T) {
	cfg, err := Load([]byte(testConfig))
	require.NoError(t, err)

	assert.Equal(t, "https://www.yr.no", cfg.Yr.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Yr.Timeout)
	assert.Equal(t, "meteogram/test", cfg.Yr.UserAgent)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Metrics.Textfile)
	assert.Equal(t, Defaults{Dark: true, Transparent: true}, cfg.Defaults)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("METEOGRAM_YR_BASE_URL", "http://localhost:8080")
	t.Setenv("METEOGRAM_YR_TIMEOUT", "2s")
	t.Setenv("METEOGRAM_LOG_LEVEL", "debug")
	t.Setenv("METEOGRAM_METRICS_TEXTFILE", "/tmp/meteogram.prom")
	t.Setenv("METEOGRAM_DEFAULTS_DARK", "false")
	t.Setenv("METEOGRAM_DEFAULTS_UNHIDE_DARK", "true")

	cfg, err := Load([]byte(testConfig))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Yr.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Yr.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/meteogram.prom", cfg.Metrics.Textfile)
	assert.False(t, cfg.Defaults.Dark)
	assert.True(t, cfg.Defaults.UnhideDark)
	assert.True(t, cfg.Defaults.Transparent)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "malformed yaml", raw: "yr: [\n"},
		{name: "relative base url", raw: "yr:\n  baseURL: www.yr.no\n  timeout: 1s\n"},
		{name: "missing timeout", raw: "yr:\n  baseURL: https://www.yr.no\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}
