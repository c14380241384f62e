// Package render turns city reports into the static HTML page.
package render

import (
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"

	"weather-page/internal/domain/entity"
	"weather-page/pkg/util/numberutils"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	startTag        = "{{"
	endTag          = "}}"
	timestampLayout = "2006-01-02 15:04 UTC"
	// DefaultIconURL is the OpenWeatherMap icon CDN address; {{icon}} is replaced by the icon code.
	DefaultIconURL = "https://openweathermap.org/img/wn/{{icon}}@2x.png"
)

// Labels holds every user-visible text of the page.
type Labels struct {
	Lang        string
	Title       string
	Heading     string
	Today       string
	Tomorrow    string
	DayAfter    string
	Unavailable string
	Hourly      string
	Moon        string
	UpdatedAt   string
	TempUnit    string
	MoonPhases  map[string]string
}

// Renderer substitutes reports into the page templates. Values are inserted verbatim, without
// HTML escaping.
type Renderer struct {
	labels  Labels
	iconURL *fasttemplate.Template
	page    *fasttemplate.Template
	card    *fasttemplate.Template
	block   *fasttemplate.Template
	icon    *fasttemplate.Template
	hourly  *fasttemplate.Template
	slot    *fasttemplate.Template
	moon    *fasttemplate.Template
}

// NewRenderer parses the embedded templates. iconURL falls back to DefaultIconURL when empty.
func NewRenderer(labels Labels, iconURL string) (*Renderer, error) {
	if iconURL == "" {
		iconURL = DefaultIconURL
	}
	if labels.TempUnit == "" {
		labels.TempUnit = "°C"
	}

	r := &Renderer{labels: labels}
	var err error
	if r.iconURL, err = fasttemplate.NewTemplate(iconURL, startTag, endTag); err != nil {
		return nil, fmt.Errorf("parse icon url template: %w", err)
	}

	targets := map[string]**fasttemplate.Template{
		"page.html":   &r.page,
		"card.html":   &r.card,
		"block.html":  &r.block,
		"icon.html":   &r.icon,
		"hourly.html": &r.hourly,
		"slot.html":   &r.slot,
		"moon.html":   &r.moon,
	}
	for name, target := range targets {
		content, err := templateFS.ReadFile("templates/" + name)
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", name, err)
		}
		if *target, err = fasttemplate.NewTemplate(string(content), startTag, endTag); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
	}
	return r, nil
}

// Render produces the whole document. The same reports and timestamp always give the same bytes.
func (r *Renderer) Render(reports []entity.CityReport, at time.Time) string {
	var cards strings.Builder
	for _, report := range reports {
		cards.WriteString(r.renderCard(report))
	}

	return r.page.ExecuteString(map[string]interface{}{
		"lang":          r.labels.Lang,
		"title":         r.labels.Title,
		"heading":       r.labels.Heading,
		"cards":         cards.String(),
		"updated_label": r.labels.UpdatedAt,
		"updated_at":    at.UTC().Format(timestampLayout),
	})
}

func (r *Renderer) renderCard(report entity.CityReport) string {
	var blocks strings.Builder
	blocks.WriteString(r.renderBlock(r.labels.Today, r.currentTemperature(report.Current), report.Current.Description, report.Current.IconCode))

	for _, day := range report.Forecast {
		label := fmt.Sprintf("%s (%s)", r.dayLabel(day.Label), day.Date)
		temperature := fmt.Sprintf("%s%s / %s%s",
			numberutils.FormatFloat64(day.TempMax), r.labels.TempUnit,
			numberutils.FormatFloat64(day.TempMin), r.labels.TempUnit)
		blocks.WriteString(r.renderBlock(label, temperature, day.Description, day.IconCode))
	}

	return r.card.ExecuteString(map[string]interface{}{
		"name":   report.City.Name,
		"blocks": blocks.String(),
		"hourly": r.renderHourly(report.Hourly),
		"moon":   r.renderMoon(report.Moon),
	})
}

func (r *Renderer) renderBlock(label, temperature, description, iconCode string) string {
	return r.block.ExecuteString(map[string]interface{}{
		"label":       label,
		"temperature": temperature,
		"description": description,
		"icon":        r.renderIcon(iconCode, description),
	})
}

// renderIcon returns an empty string for an empty icon code so no broken image is emitted.
func (r *Renderer) renderIcon(iconCode, alt string) string {
	if iconCode == "" {
		return ""
	}
	if alt == "" {
		alt = "icon"
	}
	return r.icon.ExecuteString(map[string]interface{}{
		"url": r.iconURL.ExecuteString(map[string]interface{}{"icon": iconCode}),
		"alt": alt,
	})
}

func (r *Renderer) renderHourly(slots []entity.HourlySlot) string {
	if len(slots) == 0 {
		return ""
	}
	var rendered strings.Builder
	for _, slot := range slots {
		rendered.WriteString(r.slot.ExecuteString(map[string]interface{}{
			"time":        slot.Time,
			"icon":        r.renderIcon(slot.IconCode, slot.Description),
			"temperature": numberutils.FormatFloat64(slot.Temp) + r.labels.TempUnit,
		}))
	}
	return r.hourly.ExecuteString(map[string]interface{}{
		"title": r.labels.Hourly,
		"slots": rendered.String(),
	})
}

func (r *Renderer) renderMoon(phase *entity.MoonPhase) string {
	if phase == nil {
		return ""
	}
	name, ok := r.labels.MoonPhases[phase.Key]
	if !ok {
		name = phase.Key
	}
	return r.moon.ExecuteString(map[string]interface{}{
		"label":  r.labels.Moon,
		"symbol": phase.Symbol,
		"name":   name,
	})
}

func (r *Renderer) currentTemperature(current entity.CurrentWeather) string {
	if !current.Available() {
		return r.labels.Unavailable + r.labels.TempUnit
	}
	return numberutils.FormatFloat64(numberutils.Round(*current.Temperature, 1)) + r.labels.TempUnit
}

func (r *Renderer) dayLabel(label entity.DayLabel) string {
	if label == entity.DayAfter {
		return r.labels.DayAfter
	}
	return r.labels.Tomorrow
}
