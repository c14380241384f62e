package render

import "weather-page/internal/domain/usecase/moon"

// LookupFunc resolves a catalog key, returning fallback when the key is unknown.
type LookupFunc func(key, fallback string) string

// CatalogLabels builds the page labels from a message catalog. Missing keys keep the zh-TW defaults.
func CatalogLabels(lookup LookupFunc) Labels {
	labels := Labels{
		Lang:        lookup("page.lang", "zh-TW"),
		Title:       lookup("page.title", "自動更新天氣網頁"),
		Heading:     lookup("page.heading", "城市天氣預報"),
		UpdatedAt:   lookup("page.updated-at", "最後更新："),
		Today:       lookup("label.today", "今日"),
		Tomorrow:    lookup("label.tomorrow", "明天"),
		DayAfter:    lookup("label.day-after", "後天"),
		Unavailable: lookup("label.unavailable", "N/A"),
		Hourly:      lookup("label.hourly", "逐時預報"),
		Moon:        lookup("label.moon", "今日月相"),
		MoonPhases:  make(map[string]string, len(moon.Keys())),
	}
	for _, key := range moon.Keys() {
		labels.MoonPhases[key] = lookup("moon."+key, key)
	}
	return labels
}
