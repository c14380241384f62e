package entity

// CurrentWeather holds the conditions shown in the "today" block of a card.
type CurrentWeather struct {
	// Temperature is nil when the current-weather call failed.
	Temperature *float64 `json:"temperature"`
	Description string   `json:"description"`
	IconCode    string   `json:"iconCode"`
}

// UnavailableWeather is the placeholder used when the current-weather call fails.
func UnavailableWeather(description string) CurrentWeather {
	return CurrentWeather{Description: description}
}

func (w CurrentWeather) Available() bool {
	return w.Temperature != nil
}
