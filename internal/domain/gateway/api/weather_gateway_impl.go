package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"weather-page/internal/domain/entity"
	"weather-page/internal/domain/model/external"
	"weather-page/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway over an OpenWeatherMap client
func NewWeatherGateway(httpClient *http.Client) WeatherGateway {
	return &weatherGatewayImpl{
		httpClient: httpClient,
	}
}

// GetCurrentWeather gets current conditions for a city query
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, query string) (*external.CurrentWeatherResponse, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/data/2.5/weather").
		WithQueryParams(map[string]string{"q": query}).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.CurrentWeatherResponse), nil
	}
	return nil, upstreamError("current weather", status, errResp, err)
}

// GetForecast gets the 3-hour forecast for a coordinate pair
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, coordinates entity.Coordinates) (*external.ForecastResponse, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/data/2.5/forecast").
		WithQueryParams(coordinateParams(coordinates)).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.ForecastResponse), nil
	}
	return nil, upstreamError("forecast", status, errResp, err)
}

func coordinateParams(coordinates entity.Coordinates) map[string]string {
	return map[string]string{
		"lat": strconv.FormatFloat(coordinates.Lat, 'f', -1, 64),
		"lon": strconv.FormatFloat(coordinates.Lon, 'f', -1, 64),
	}
}

// upstreamError wraps err with the message OpenWeatherMap put in the error body, when there is one.
func upstreamError(call string, status int, errResp any, err error) error {
	if errResp != nil {
		if errorResponse, ok := errResp.(*external.APIErrorResponse); ok && errorResponse.Message != "" {
			return fmt.Errorf("%s request failed with status %d (cod %s): %s: %w", call, status, errorResponse.Code(), errorResponse.Message, err)
		}
	}
	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Errorf("%s request failed with status %d: %w", call, status, err)
	}
	return fmt.Errorf("%s request failed: %w", call, err)
}
