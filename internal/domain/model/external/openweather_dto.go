package external

import (
	"encoding/json"
	"strings"
)

// CurrentWeatherResponse represents the response from the /data/2.5/weather endpoint
type CurrentWeatherResponse struct {
	Coord   CoordDTO     `json:"coord"`
	Main    MainDTO      `json:"main"`
	Weather []WeatherDTO `json:"weather"`
	Name    string       `json:"name"`
	Dt      int64        `json:"dt"`
	// Timezone is the shift in seconds from UTC
	Timezone int `json:"timezone"`
}

// ForecastResponse represents the response from the /data/2.5/forecast endpoint
type ForecastResponse struct {
	Cnt  int                `json:"cnt"`
	List []ForecastEntryDTO `json:"list"`
	City ForecastCityDTO    `json:"city"`
}

// ForecastEntryDTO is a single 3-hour forecast record
type ForecastEntryDTO struct {
	Dt      int64        `json:"dt"`
	Main    MainDTO      `json:"main"`
	Weather []WeatherDTO `json:"weather"`
	DtTxt   string       `json:"dt_txt"`
}

type ForecastCityDTO struct {
	Name     string   `json:"name"`
	Coord    CoordDTO `json:"coord"`
	Country  string   `json:"country"`
	Timezone int      `json:"timezone"`
}

type CoordDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type MainDTO struct {
	Temp    float64 `json:"temp"`
	TempMin float64 `json:"temp_min"`
	TempMax float64 `json:"temp_max"`
}

type WeatherDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// OneCallResponse represents the subset of the /data/3.0/onecall response used for the moon phase
type OneCallResponse struct {
	Lat            float64        `json:"lat"`
	Lon            float64        `json:"lon"`
	Timezone       string         `json:"timezone"`
	TimezoneOffset int            `json:"timezone_offset"`
	Daily          []OneCallDaily `json:"daily"`
}

type OneCallDaily struct {
	Dt        int64   `json:"dt"`
	MoonPhase float64 `json:"moon_phase"`
}

// FirstWeather returns weather[0], or an empty value when the list is empty.
func FirstWeather(weather []WeatherDTO) WeatherDTO {
	if len(weather) == 0 {
		return WeatherDTO{}
	}
	return weather[0]
}

// APIErrorResponse represents error responses from OpenWeatherMap. cod is a number on some
// endpoints and a string on others.
type APIErrorResponse struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
}

func (e APIErrorResponse) Code() string {
	return strings.Trim(string(e.Cod), `"`)
}
