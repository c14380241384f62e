package api

import (
	"context"
	"errors"

	"weather-page/internal/domain/entity"
	"weather-page/internal/domain/model/external"
	"weather-page/pkg/http"
)

// ErrNoDailyData is returned when the One Call response holds no daily entries.
var ErrNoDailyData = errors.New("one call response has no daily data")

type astronomyGatewayImpl struct {
	httpClient *http.Client
}

// NewAstronomyGateway creates an AstronomyGateway backed by the OpenWeatherMap One Call API
func NewAstronomyGateway(httpClient *http.Client) AstronomyGateway {
	return &astronomyGatewayImpl{
		httpClient: httpClient,
	}
}

// GetMoonPhase reads daily[0].moon_phase for the coordinates
func (a *astronomyGatewayImpl) GetMoonPhase(ctx context.Context, coordinates entity.Coordinates) (float64, error) {
	params := coordinateParams(coordinates)
	params["exclude"] = "current,minutely,hourly,alerts"

	successResp, errResp, status, err := a.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/data/3.0/onecall").
		WithQueryParams(params).
		WithSuccessResp(&external.OneCallResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return 0, upstreamError("moon phase", status, errResp, err)
	}

	response := successResp.(*external.OneCallResponse)
	if len(response.Daily) == 0 {
		return 0, ErrNoDailyData
	}
	return response.Daily[0].MoonPhase, nil
}
