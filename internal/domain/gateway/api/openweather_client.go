package api

import (
	"weather-page/pkg/http"
)

// OpenWeatherSettings holds the query parameters sent on every OpenWeatherMap call.
type OpenWeatherSettings struct {
	APIKey string
	Units  string
	Lang   string
}

// NewOpenWeatherClient creates the HTTP client shared by the OpenWeatherMap gateways. The API key is
// sent as the appid parameter and masked in logs.
func NewOpenWeatherClient(baseUrl string, settings OpenWeatherSettings, clientOptions http.ClientOptions) *http.Client {
	params := map[string]string{"appid": settings.APIKey}
	if settings.Units != "" {
		params["units"] = settings.Units
	}
	if settings.Lang != "" {
		params["lang"] = settings.Lang
	}
	for k, v := range clientOptions.DefaultQueryParams {
		params[k] = v
	}
	clientOptions.DefaultQueryParams = params
	clientOptions.RedactedParams = append(clientOptions.RedactedParams, "appid")

	return http.NewHttpClient(baseUrl, clientOptions)
}
