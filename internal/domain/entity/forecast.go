package entity

import "time"

// DayLabel identifies a forecast day relative to the city's today.
type DayLabel string

const (
	Tomorrow DayLabel = "tomorrow"
	DayAfter DayLabel = "day-after"
)

// ForecastEntry is one 3-hour record of the forecast endpoint.
type ForecastEntry struct {
	Time        time.Time `json:"time"`
	Temp        float64   `json:"temp"`
	TempMin     float64   `json:"tempMin"`
	TempMax     float64   `json:"tempMax"`
	Description string    `json:"description"`
	IconCode    string    `json:"iconCode"`
}

// ForecastDay summarises the entries of one future local calendar day.
type ForecastDay struct {
	Label       DayLabel `json:"label"`
	Date        string   `json:"date"`
	TempMax     float64  `json:"tempMax"`
	TempMin     float64  `json:"tempMin"`
	Description string   `json:"description"`
	IconCode    string   `json:"iconCode"`
}

// HourlySlot is one entry of the optional hourly strip.
type HourlySlot struct {
	Time        string  `json:"time"`
	Temp        float64 `json:"temp"`
	Description string  `json:"description"`
	IconCode    string  `json:"iconCode"`
}
