package report

import (
	"context"

	"weather-page/internal/domain/entity"
)

type UseCase interface {
	// BuildReports builds one report per city, sequentially and in configuration order
	BuildReports(ctx context.Context, requestID string, cities []entity.City) []entity.CityReport

	// BuildCityReport fetches current weather, forecast and optional extras for a single city.
	// Upstream failures degrade the report instead of failing it.
	BuildCityReport(ctx context.Context, requestID string, city entity.City) entity.CityReport
}
