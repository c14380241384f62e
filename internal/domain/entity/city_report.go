package entity

// CityReport is everything rendered on one city card.
type CityReport struct {
	City     City           `json:"city"`
	Current  CurrentWeather `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
	Hourly   []HourlySlot   `json:"hourly,omitempty"`
	Moon     *MoonPhase     `json:"moon,omitempty"`
}
