// Package moon names the phase of the moon from an illuminated-cycle fraction.
package moon

import "weather-page/internal/domain/entity"

const (
	New            = "new"
	WaxingCrescent = "waxing-crescent"
	FirstQuarter   = "first-quarter"
	WaxingGibbous  = "waxing-gibbous"
	Full           = "full"
	WaningGibbous  = "waning-gibbous"
	LastQuarter    = "last-quarter"
	WaningCrescent = "waning-crescent"
)

type bound struct {
	upper  float64
	key    string
	symbol string
}

// phases is ordered by upper bound; the first bound >= fraction wins.
var phases = []bound{
	{0.02, New, "🌑"},
	{0.23, WaxingCrescent, "🌒"},
	{0.27, FirstQuarter, "🌓"},
	{0.48, WaxingGibbous, "🌔"},
	{0.52, Full, "🌕"},
	{0.73, WaningGibbous, "🌖"},
	{0.77, LastQuarter, "🌗"},
	{1.00, WaningCrescent, "🌘"},
}

// Keys lists every phase key in cycle order.
func Keys() []string {
	keys := make([]string, len(phases))
	for i, p := range phases {
		keys[i] = p.key
	}
	return keys
}

// Lookup maps fraction to its phase. Values above 1 fall back to the new moon.
func Lookup(fraction float64) entity.MoonPhase {
	for _, p := range phases {
		if fraction <= p.upper {
			return entity.MoonPhase{Key: p.key, Symbol: p.symbol, Fraction: fraction}
		}
	}
	return NewMoon()
}

// NewMoon is the phase used when the fraction is unknown.
func NewMoon() entity.MoonPhase {
	return entity.MoonPhase{Key: phases[0].key, Symbol: phases[0].symbol}
}
