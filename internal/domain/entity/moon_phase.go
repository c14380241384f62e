package entity

// MoonPhase is the named phase of the moon for a city's date.
type MoonPhase struct {
	Key      string  `json:"key"`
	Symbol   string  `json:"symbol"`
	Fraction float64 `json:"fraction"`
}
