package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	"weather-page/internal/domain/entity"
	"weather-page/internal/domain/gateway/api"
	"weather-page/internal/domain/model/external"
	"weather-page/internal/domain/usecase/forecast"
	"weather-page/internal/domain/usecase/moon"
	"weather-page/pkg/log"
)

// Options selects the optional parts of a report.
type Options struct {
	Strategy forecast.Strategy
	// HourlySlots is the length of the hourly strip. Zero disables it.
	HourlySlots int
	MoonPhase   bool
	// FallbackCoordinates uses the city's configured coordinates when the current-weather call fails.
	FallbackCoordinates bool
	// FetchFailedText is the description shown when the current-weather call fails.
	FetchFailedText string
}

type reportUseCase struct {
	weatherGateway   api.WeatherGateway
	astronomyGateway api.AstronomyGateway
	options          Options
	now              func() time.Time
}

// NewReportUseCase creates the report use case. astronomyGateway may be nil when the moon phase is disabled.
func NewReportUseCase(weatherGateway api.WeatherGateway, astronomyGateway api.AstronomyGateway, options Options, now func() time.Time) UseCase {
	if now == nil {
		now = time.Now
	}
	return &reportUseCase{
		weatherGateway:   weatherGateway,
		astronomyGateway: astronomyGateway,
		options:          options,
		now:              now,
	}
}

// BuildReports builds one report per city, sequentially and in configuration order
func (uc *reportUseCase) BuildReports(ctx context.Context, requestID string, cities []entity.City) []entity.CityReport {
	reports := make([]entity.CityReport, 0, len(cities))
	for _, city := range cities {
		reports = append(reports, uc.BuildCityReport(ctx, requestID, city))
	}
	return reports
}

// BuildCityReport fetches current weather, forecast and optional extras for a single city
func (uc *reportUseCase) BuildCityReport(ctx context.Context, requestID string, city entity.City) entity.CityReport {
	report := entity.CityReport{City: city, Forecast: []entity.ForecastDay{}}

	current, err := uc.weatherGateway.GetCurrentWeather(ctx, city.Query)
	var coordinates entity.Coordinates
	coordinatesKnown := false

	if err != nil {
		log.Warn("Current weather unavailable",
			zap.String("request_id", requestID),
			zap.String("city", city.Name),
			zap.Error(err))
		report.Current = entity.UnavailableWeather(uc.options.FetchFailedText)
		if uc.options.FallbackCoordinates {
			coordinates, coordinatesKnown = city.FallbackCoordinates()
		}
	} else {
		report.Current = toCurrentWeather(current)
		coordinates = entity.Coordinates{Lat: current.Coord.Lat, Lon: current.Coord.Lon}
		coordinatesKnown = true
	}

	if !coordinatesKnown {
		log.Info("Skipping forecast, coordinates unknown",
			zap.String("request_id", requestID),
			zap.String("city", city.Name))
		return report
	}

	forecastResponse, err := uc.weatherGateway.GetForecast(ctx, coordinates)
	if err != nil {
		log.Warn("Forecast unavailable",
			zap.String("request_id", requestID),
			zap.String("city", city.Name),
			zap.Error(err))
	} else {
		loc := uc.location(city, current, forecastResponse)
		entries := toForecastEntries(forecastResponse)
		now := uc.now()

		report.Forecast = forecast.Aggregate(entries, now, loc, uc.options.Strategy)
		if uc.options.HourlySlots > 0 {
			report.Hourly = forecast.Hourly(entries, now, loc, uc.options.HourlySlots)
		}
	}

	if uc.options.MoonPhase && uc.astronomyGateway != nil {
		phase := uc.moonPhase(ctx, requestID, city, coordinates)
		report.Moon = &phase
	}

	log.Info("City report built",
		zap.String("request_id", requestID),
		zap.String("city", city.Name),
		zap.Bool("current_available", report.Current.Available()),
		zap.Int("forecast_days", len(report.Forecast)))
	return report
}

func (uc *reportUseCase) moonPhase(ctx context.Context, requestID string, city entity.City, coordinates entity.Coordinates) entity.MoonPhase {
	fraction, err := uc.astronomyGateway.GetMoonPhase(ctx, coordinates)
	if err != nil {
		log.Warn("Moon phase unavailable, using new moon",
			zap.String("request_id", requestID),
			zap.String("city", city.Name),
			zap.Error(err))
		return moon.NewMoon()
	}
	return moon.Lookup(fraction)
}

// location resolves the zone used for "today": the configured IANA zone, else the UTC offset
// reported by the provider, else UTC.
func (uc *reportUseCase) location(city entity.City, current *external.CurrentWeatherResponse, forecastResponse *external.ForecastResponse) *time.Location {
	if city.Timezone != "" {
		loc, err := time.LoadLocation(city.Timezone)
		if err == nil {
			return loc
		}
		log.Warnf("Unknown timezone %q for city %s, using provider offset: %v", city.Timezone, city.Name, err)
	}
	switch {
	case forecastResponse != nil && forecastResponse.City.Timezone != 0:
		return time.FixedZone("", forecastResponse.City.Timezone)
	case current != nil && current.Timezone != 0:
		return time.FixedZone("", current.Timezone)
	}
	return time.UTC
}

func toCurrentWeather(response *external.CurrentWeatherResponse) entity.CurrentWeather {
	weather := external.FirstWeather(response.Weather)
	temperature := response.Main.Temp
	return entity.CurrentWeather{
		Temperature: &temperature,
		Description: weather.Description,
		IconCode:    weather.Icon,
	}
}

func toForecastEntries(response *external.ForecastResponse) []entity.ForecastEntry {
	entries := make([]entity.ForecastEntry, 0, len(response.List))
	for _, item := range response.List {
		weather := external.FirstWeather(item.Weather)
		entries = append(entries, entity.ForecastEntry{
			Time:        time.Unix(item.Dt, 0).UTC(),
			Temp:        item.Main.Temp,
			TempMin:     item.Main.TempMin,
			TempMax:     item.Main.TempMax,
			Description: weather.Description,
			IconCode:    weather.Icon,
		})
	}
	return entries
}
