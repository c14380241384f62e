package entity

// City is one configured location rendered as a card on the page.
type City struct {
	Name  string `json:"name" mapstructure:"name"`
	Query string `json:"query" mapstructure:"query"`
	// Timezone is an IANA zone name. Empty means the offset reported by the forecast endpoint.
	Timezone string `json:"timezone" mapstructure:"timezone"`
	// Latitude and Longitude are approximate coordinates used when the current-weather call fails
	// and fallback coordinates are enabled.
	Latitude  *float64 `json:"lat,omitempty" mapstructure:"lat"`
	Longitude *float64 `json:"lon,omitempty" mapstructure:"lon"`
}

// FallbackCoordinates returns the configured approximate coordinates, if both are set.
func (c City) FallbackCoordinates() (Coordinates, bool) {
	if c.Latitude == nil || c.Longitude == nil {
		return Coordinates{}, false
	}
	return Coordinates{Lat: *c.Latitude, Lon: *c.Longitude}, true
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
