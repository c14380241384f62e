package main

import (
	"context"
	"encoding/xml"
	"os"

	"weather-page/internal/domain/model/external"
	"weather-page/pkg/http"
	"weather-page/pkg/log"
)

// XML structure for the current weather endpoint with mode=xml.
// Only a few attributes are mapped, unknown elements are ignored by encoding/xml.
type CurrentWeatherXML struct {
	XMLName xml.Name `xml:"current"`
	City    struct {
		Name string `xml:"name,attr"`
	} `xml:"city"`
	Temperature struct {
		Value float64 `xml:"value,attr"`
		Unit  string  `xml:"unit,attr"`
	} `xml:"temperature"`
	Weather struct {
		Value string `xml:"value,attr"`
		Icon  string `xml:"icon,attr"`
	} `xml:"weather"`
}

func main() {
	defer log.Sync()

	// Client Options with the API key as a redacted default parameter
	clientOptions := http.ClientOptions{
		DefaultQueryParams: map[string]string{
			"appid": os.Getenv("OWM_API_KEY"),
			"units": "metric",
			"lang":  "zh_tw",
		},
		RedactedParams:    []string{"appid"},
		RequestsPerSecond: 1,
		Logger:            http.ZapLogger{},
	}

	// Creating a Client
	client := http.NewHttpClient("https://api.openweathermap.org", clientOptions)

	// Success Request
	success, failure, status, err := client.Request().
		WithContext(context.Background()).
		WithPath("/data/2.5/weather").
		WithQueryParams(map[string]string{"q": "Taipei,tw"}).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		log.Errorw("Request Error", "status", status, "error", err, "body", failure)
	} else {
		log.Infow("Request Success", "status", status, "body", success)
	}

	// Error Request, unknown city
	success, failure, status, err = client.Request().
		WithPath("/data/2.5/weather").
		WithQueryParams(map[string]string{"q": "Atlantis,zz"}).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		log.Errorw("Request Error", "status", status, "error", err, "body", failure)
	} else {
		log.Infow("Request Success", "status", status, "body", success)
	}

	// XML response decoded by content type
	success, failure, status, err = client.Request().
		WithPath("/data/2.5/weather").
		WithQueryParams(map[string]string{"q": "Chicago,us", "mode": "xml"}).
		WithSuccessResp(&CurrentWeatherXML{}).
		Execute()

	if err != nil {
		log.Errorw("Request Error", "status", status, "error", err, "body", failure)
	} else {
		log.Infow("Request Success", "status", status, "body", success)
	}
}
