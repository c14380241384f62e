package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-page/internal/domain/entity"
)

func testLabels() Labels {
	return Labels{
		Lang:        "zh-TW",
		Title:       "自動更新天氣網頁",
		Heading:     "三城天氣",
		Today:       "今日",
		Tomorrow:    "明天",
		DayAfter:    "後天",
		Unavailable: "N/A",
		Hourly:      "逐時",
		Moon:        "月相",
		UpdatedAt:   "最後更新：",
		MoonPhases:  map[string]string{"full": "滿月"},
	}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	renderer, err := NewRenderer(testLabels(), "")
	require.NoError(t, err)
	return renderer
}

func temperature(v float64) *float64 { return &v }

func sampleReports() []entity.CityReport {
	return []entity.CityReport{
		{
			City:    entity.City{Name: "台北市"},
			Current: entity.CurrentWeather{Temperature: temperature(29.4), Description: "多雲", IconCode: "04d"},
			Forecast: []entity.ForecastDay{
				{Label: entity.Tomorrow, Date: "10/20", TempMax: 31, TempMin: 24.5, Description: "小雨", IconCode: "10d"},
				{Label: entity.DayAfter, Date: "10/21", TempMax: 30.2, TempMin: 23.9, Description: "晴", IconCode: "01d"},
			},
			Hourly: []entity.HourlySlot{{Time: "15:00", Temp: 28, Description: "多雲", IconCode: "04d"}},
			Moon:   &entity.MoonPhase{Key: "full", Symbol: "🌕", Fraction: 0.5},
		},
		{
			City:     entity.City{Name: "Atlantis"},
			Current:  entity.UnavailableWeather("fetch failed"),
			Forecast: []entity.ForecastDay{},
		},
	}
}

var renderedAt = time.Date(2025, 10, 19, 6, 5, 0, 0, time.FixedZone("UTC+8", 8*3600))

func TestRenderIsDeterministic(t *testing.T) {
	renderer := newTestRenderer(t)

	first := renderer.Render(sampleReports(), renderedAt)
	second := renderer.Render(sampleReports(), renderedAt)

	assert.Equal(t, first, second)
}

func TestRenderDocument(t *testing.T) {
	html := newTestRenderer(t).Render(sampleReports(), renderedAt)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>\n<html lang=\"zh-TW\">"))
	assert.Contains(t, html, "<title>自動更新天氣網頁</title>")
	assert.Contains(t, html, `<div class="city-title">台北市</div>`)
	assert.Contains(t, html, "<div>今日</div>")
	assert.Contains(t, html, "<div>29.4°C</div>")
	assert.Contains(t, html, `<img src="https://openweathermap.org/img/wn/04d@2x.png" alt="多雲">`)
	assert.Contains(t, html, "<div>明天 (10/20)</div>")
	assert.Contains(t, html, "<div>31.0°C / 24.5°C</div>")
	assert.Contains(t, html, "<div>後天 (10/21)</div>")
	assert.Contains(t, html, `<div class="hourly-title">逐時</div>`)
	assert.Contains(t, html, `<div class="moon-phase">月相: 🌕 滿月</div>`)
	// footer is always rendered in UTC
	assert.Contains(t, html, "最後更新： 2025-10-18 22:05 UTC")
	assert.Equal(t, 2, strings.Count(html, `<div class="weather-card">`))
	assert.True(t, strings.HasSuffix(html, "</html>\n"))
}

func TestRenderUnavailableCityOmitsImage(t *testing.T) {
	reports := sampleReports()[1:]
	html := newTestRenderer(t).Render(reports, renderedAt)

	assert.Contains(t, html, "<div>N/A°C</div>")
	assert.Contains(t, html, "<div>fetch failed</div>")
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, "明天")
	assert.NotContains(t, html, `class="hourly-strip"`)
	assert.NotContains(t, html, `class="moon-phase"`)
}

func TestRenderDoesNotEscape(t *testing.T) {
	reports := []entity.CityReport{{
		City:    entity.City{Name: "<b>Chicago</b>"},
		Current: entity.CurrentWeather{Temperature: temperature(12), Description: "few clouds & mist"},
	}}

	html := newTestRenderer(t).Render(reports, renderedAt)

	assert.Contains(t, html, "<b>Chicago</b>")
	assert.Contains(t, html, "few clouds & mist")
	assert.Contains(t, html, "<div>12.0°C</div>")
}

func TestRenderRoundsCurrentTemperature(t *testing.T) {
	reports := []entity.CityReport{{
		City:    entity.City{Name: "Chicago"},
		Current: entity.CurrentWeather{Temperature: temperature(23.456), Description: "clear"},
	}}

	html := newTestRenderer(t).Render(reports, renderedAt)

	assert.Contains(t, html, "<div>23.5°C</div>")
	assert.NotContains(t, html, "23.456")
}

func TestRenderCustomIconURL(t *testing.T) {
	renderer, err := NewRenderer(testLabels(), "https://cdn.example.com/{{icon}}.png")
	require.NoError(t, err)

	html := renderer.Render(sampleReports()[:1], renderedAt)
	assert.Contains(t, html, `src="https://cdn.example.com/10d.png"`)
}

func TestRenderUnknownMoonKeyUsesKey(t *testing.T) {
	reports := []entity.CityReport{{
		City:    entity.City{Name: "Chicago"},
		Current: entity.UnavailableWeather("fetch failed"),
		Moon:    &entity.MoonPhase{Key: "waning-crescent", Symbol: "🌘"},
	}}

	html := newTestRenderer(t).Render(reports, renderedAt)
	assert.Contains(t, html, "月相: 🌘 waning-crescent")
}

func TestNewRendererRejectsBrokenIconTemplate(t *testing.T) {
	_, err := NewRenderer(testLabels(), "https://cdn.example.com/{{icon.png")
	require.Error(t, err)
}
