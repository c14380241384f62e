package api

import (
	"context"

	"weather-page/internal/domain/entity"
	"weather-page/internal/domain/model/external"
)

// WeatherGateway defines the OpenWeatherMap calls used to build a city report
type WeatherGateway interface {
	// GetCurrentWeather gets current conditions for a city query such as "Taipei,tw"
	GetCurrentWeather(ctx context.Context, query string) (*external.CurrentWeatherResponse, error)

	// GetForecast gets the 5 day / 3 hour forecast for a coordinate pair
	GetForecast(ctx context.Context, coordinates entity.Coordinates) (*external.ForecastResponse, error)
}

// AstronomyGateway defines the daily astronomical data lookup
type AstronomyGateway interface {
	// GetMoonPhase returns today's moon phase fraction, 0 and 1 being new moon and 0.5 full moon
	GetMoonPhase(ctx context.Context, coordinates entity.Coordinates) (float64, error)
}
