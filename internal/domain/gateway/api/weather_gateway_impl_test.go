package api

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-page/internal/domain/entity"
	"weather-page/pkg/http"
)

const currentWeatherBody = `{
  "coord": {"lon": 121.5319, "lat": 25.0478},
  "weather": [{"id": 803, "main": "Clouds", "description": "多雲", "icon": "04d"}],
  "main": {"temp": 29.4, "temp_min": 28.1, "temp_max": 30.2},
  "dt": 1760850000,
  "timezone": 28800,
  "name": "Taipei"
}`

const forecastBody = `{
  "cnt": 2,
  "list": [
    {"dt": 1760853600, "main": {"temp": 28.9, "temp_min": 28.0, "temp_max": 29.5},
     "weather": [{"description": "小雨", "icon": "10d"}], "dt_txt": "2025-10-19 06:00:00"},
    {"dt": 1760864400, "main": {"temp": 27.1, "temp_min": 26.4, "temp_max": 27.3},
     "weather": [], "dt_txt": "2025-10-19 09:00:00"}
  ],
  "city": {"name": "Taipei", "coord": {"lat": 25.0478, "lon": 121.5319}, "country": "TW", "timezone": 28800}
}`

func newTestClient(t *testing.T, handler nethttp.HandlerFunc) *http.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewOpenWeatherClient(server.URL, OpenWeatherSettings{APIKey: "key", Units: "metric", Lang: "zh_tw"}, http.ClientOptions{})
}

func TestGetCurrentWeather(t *testing.T) {
	client := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "Taipei,tw", query.Get("q"))
		assert.Equal(t, "key", query.Get("appid"))
		assert.Equal(t, "metric", query.Get("units"))
		assert.Equal(t, "zh_tw", query.Get("lang"))
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(currentWeatherBody))
	})

	response, err := NewWeatherGateway(client).GetCurrentWeather(context.Background(), "Taipei,tw")

	require.NoError(t, err)
	assert.InDelta(t, 25.0478, response.Coord.Lat, 1e-9)
	assert.InDelta(t, 121.5319, response.Coord.Lon, 1e-9)
	assert.InDelta(t, 29.4, response.Main.Temp, 1e-9)
	require.Len(t, response.Weather, 1)
	assert.Equal(t, "多雲", response.Weather[0].Description)
	assert.Equal(t, "04d", response.Weather[0].Icon)
	assert.Equal(t, 28800, response.Timezone)
}

func TestGetCurrentWeatherNotFound(t *testing.T) {
	client := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	})

	response, err := NewWeatherGateway(client).GetCurrentWeather(context.Background(), "Atlantis,xx")

	require.Error(t, err)
	assert.Nil(t, response)
	assert.Contains(t, err.Error(), "(cod 404): city not found")
	var statusErr *http.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, nethttp.StatusNotFound, statusErr.StatusCode)
}

func TestGetForecast(t *testing.T) {
	client := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/data/2.5/forecast", r.URL.Path)
		assert.Equal(t, "25.0478", r.URL.Query().Get("lat"))
		assert.Equal(t, "121.5319", r.URL.Query().Get("lon"))
		_, _ = w.Write([]byte(forecastBody))
	})

	response, err := NewWeatherGateway(client).GetForecast(context.Background(), entity.Coordinates{Lat: 25.0478, Lon: 121.5319})

	require.NoError(t, err)
	require.Len(t, response.List, 2)
	assert.Equal(t, int64(1760853600), response.List[0].Dt)
	assert.InDelta(t, 29.5, response.List[0].Main.TempMax, 1e-9)
	assert.Equal(t, "10d", response.List[0].Weather[0].Icon)
	assert.Empty(t, response.List[1].Weather)
	assert.Equal(t, 28800, response.City.Timezone)
}

func TestGetForecastMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, _ = w.Write([]byte(`{"list": "not-a-list"}`))
	})

	_, err := NewWeatherGateway(client).GetForecast(context.Background(), entity.Coordinates{})
	require.Error(t, err)
}

func TestGetMoonPhase(t *testing.T) {
	client := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/data/3.0/onecall", r.URL.Path)
		assert.Equal(t, "current,minutely,hourly,alerts", r.URL.Query().Get("exclude"))
		_, _ = w.Write([]byte(`{"lat":41.8781,"lon":-87.6298,"daily":[{"dt":1760893200,"moon_phase":0.93},{"dt":1760979600,"moon_phase":0.97}]}`))
	})

	fraction, err := NewAstronomyGateway(client).GetMoonPhase(context.Background(), entity.Coordinates{Lat: 41.8781, Lon: -87.6298})

	require.NoError(t, err)
	assert.InDelta(t, 0.93, fraction, 1e-9)
}

func TestGetMoonPhaseWithoutDailyData(t *testing.T) {
	client := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, _ = w.Write([]byte(`{"daily":[]}`))
	})

	_, err := NewAstronomyGateway(client).GetMoonPhase(context.Background(), entity.Coordinates{})
	require.ErrorIs(t, err, ErrNoDailyData)
}

func TestGetMoonPhaseUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	})

	_, err := NewAstronomyGateway(client).GetMoonPhase(context.Background(), entity.Coordinates{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(cod 401): Invalid API key")
}
