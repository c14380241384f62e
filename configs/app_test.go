package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-page/internal/domain/entity"
	"weather-page/pkg/resource"
)

const testProperties = `
app:
  output-path: ${WP_CFG_OUTPUT_PATH:index.html}
  features:
    hourly-strip: ${WP_CFG_HOURLY:false}
    moon-phase: true
  forecast:
    strategy: first-seen
    hourly-slots: 4
  server:
    port: 5000
    context-path: /
openweather:
  base-url: http://localhost:8080
  units: metric
  lang: zh_tw
  timeout: 5s
  requests-per-second: 2
cities:
  - name: 台北市
    query: Taipei,tw
    timezone: Asia/Taipei
    lat: 25.04
    lon: 121.53
  - name: Chicago
    query: Chicago,us
`

func loadProperties(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, resource.Init(path))
}

func TestLoadApp(t *testing.T) {
	t.Setenv("WP_CFG_HOURLY", "true")
	loadProperties(t, testProperties)

	cfg, err := LoadApp()
	require.NoError(t, err)

	assert.Equal(t, "index.html", cfg.OutputPath)
	assert.True(t, cfg.Features.HourlyStrip)
	assert.True(t, cfg.Features.MoonPhase)
	assert.False(t, cfg.Features.FallbackCoordinates)
	assert.Equal(t, "first-seen", cfg.Forecast.Strategy)
	assert.Equal(t, 4, cfg.Forecast.HourlySlots)
	assert.Equal(t, 5*time.Second, cfg.OpenWeather.Timeout)
	assert.Equal(t, 2.0, cfg.OpenWeather.RequestsPerSecond)
	assert.Equal(t, "http://localhost:8080", cfg.OpenWeather.AstronomyBaseURL)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "/", cfg.Server.ContextPath)

	require.Len(t, cfg.Cities, 2)
	assert.Equal(t, "台北市", cfg.Cities[0].Name)
	assert.Equal(t, "Asia/Taipei", cfg.Cities[0].Timezone)
	require.NotNil(t, cfg.Cities[0].Latitude)
	assert.InDelta(t, 25.04, *cfg.Cities[0].Latitude, 1e-9)
	assert.Nil(t, cfg.Cities[1].Latitude)
}

func TestValidate(t *testing.T) {
	valid := func() *AppConfig {
		return &AppConfig{
			OutputPath:  "index.html",
			OpenWeather: OpenWeatherConfig{BaseURL: "http://localhost"},
			Cities:      []entity.City{{Name: "Chicago", Query: "Chicago,us"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *AppConfig) {}},
		{name: "empty output path", mutate: func(c *AppConfig) { c.OutputPath = "" }, wantErr: true},
		{name: "no cities", mutate: func(c *AppConfig) { c.Cities = nil }, wantErr: true},
		{name: "city without query", mutate: func(c *AppConfig) { c.Cities[0].Query = "" }, wantErr: true},
		{name: "negative slots", mutate: func(c *AppConfig) { c.Forecast.HourlySlots = -1 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadEnv_ReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OWM_API_KEY=from-dotenv\nAPPLICATION_NAME=weather-page-test\n"), 0o644))
	t.Setenv("OWM_API_KEY", "")
	require.NoError(t, os.Unsetenv("OWM_API_KEY"))
	t.Setenv("APPLICATION_NAME", "")
	require.NoError(t, os.Unsetenv("APPLICATION_NAME"))

	env, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", env.OpenWeatherKey)
	assert.Equal(t, "weather-page-test", env.ApplicationName)
}

func TestLoadEnv_MissingDotEnvIsIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
