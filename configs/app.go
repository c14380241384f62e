package configs

import (
	"fmt"
	"time"

	"weather-page/internal/domain/entity"
	"weather-page/pkg/resource"
)

// AppConfig is the typed view of application.yml used by the binaries.
type AppConfig struct {
	OutputPath  string
	Features    FeatureConfig
	Forecast    ForecastConfig
	OpenWeather OpenWeatherConfig
	Server      ServerConfig
	Cities      []entity.City
}

type FeatureConfig struct {
	HourlyStrip         bool
	MoonPhase           bool
	FallbackCoordinates bool
}

type ForecastConfig struct {
	Strategy    string
	HourlySlots int
}

type OpenWeatherConfig struct {
	BaseURL           string
	AstronomyBaseURL  string
	IconURL           string
	Units             string
	Lang              string
	Timeout           time.Duration
	RequestsPerSecond float64
}

type ServerConfig struct {
	Port        string
	ContextPath string
}

// LoadApp reads the typed configuration from the properties already loaded into pkg/resource.
func LoadApp() (*AppConfig, error) {
	cfg := &AppConfig{
		OutputPath: resource.GetString("app.output-path"),
		Features: FeatureConfig{
			HourlyStrip:         resource.GetBool("app.features.hourly-strip"),
			MoonPhase:           resource.GetBool("app.features.moon-phase"),
			FallbackCoordinates: resource.GetBool("app.features.fallback-coordinates"),
		},
		Forecast: ForecastConfig{
			Strategy:    resource.GetString("app.forecast.strategy"),
			HourlySlots: resource.GetInt("app.forecast.hourly-slots"),
		},
		OpenWeather: OpenWeatherConfig{
			BaseURL:           resource.GetString("openweather.base-url"),
			AstronomyBaseURL:  resource.GetString("openweather.astronomy-base-url"),
			IconURL:           resource.GetString("openweather.icon-url"),
			Units:             resource.GetString("openweather.units"),
			Lang:              resource.GetString("openweather.lang"),
			Timeout:           resource.GetDuration("openweather.timeout"),
			RequestsPerSecond: resource.GetFloat64("openweather.requests-per-second"),
		},
		Server: ServerConfig{
			Port:        resource.GetString("app.server.port"),
			ContextPath: resource.GetString("app.server.context-path"),
		},
	}

	if err := resource.UnmarshalKey("cities", &cfg.Cities); err != nil {
		return nil, fmt.Errorf("parse cities: %w", err)
	}
	if cfg.OpenWeather.AstronomyBaseURL == "" {
		cfg.OpenWeather.AstronomyBaseURL = cfg.OpenWeather.BaseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate ensures the configuration is safe to use.
func (c *AppConfig) Validate() error {
	if c.OutputPath == "" {
		return fmt.Errorf("app.output-path cannot be empty")
	}
	if c.OpenWeather.BaseURL == "" {
		return fmt.Errorf("openweather.base-url cannot be empty")
	}
	if len(c.Cities) == 0 {
		return fmt.Errorf("cities cannot be empty")
	}
	for i, city := range c.Cities {
		if city.Name == "" || city.Query == "" {
			return fmt.Errorf("cities[%d] needs both name and query", i)
		}
	}
	if c.Forecast.HourlySlots < 0 {
		return fmt.Errorf("app.forecast.hourly-slots cannot be negative")
	}
	if c.OpenWeather.RequestsPerSecond < 0 {
		return fmt.Errorf("openweather.requests-per-second cannot be negative")
	}
	return nil
}
