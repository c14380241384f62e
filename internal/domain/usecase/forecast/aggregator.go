// Package forecast turns 3-hour forecast entries into per-day summaries and an hourly strip.
package forecast

import (
	"time"

	"weather-page/internal/domain/entity"
	"weather-page/pkg/util/numberutils"
)

// Strategy selects how future days are picked from the entry list.
type Strategy string

const (
	// StrategyDateRange keeps only entries dated today+1 and today+2, whatever their order.
	StrategyDateRange Strategy = "range"
	// StrategyFirstSeen groups days in first-seen order and stops scanning at a third distinct date.
	StrategyFirstSeen Strategy = "first-seen"
)

const (
	maxDays    = 2
	dateLayout = "01/02"
	hourLayout = "15:04"
)

// ParseStrategy maps a configuration value to a Strategy, defaulting to StrategyDateRange.
func ParseStrategy(value string) Strategy {
	if Strategy(value) == StrategyFirstSeen {
		return StrategyFirstSeen
	}
	return StrategyDateRange
}

type dayGroup struct {
	date    time.Time
	entries []entity.ForecastEntry
}

// Aggregate summarises at most two future local days of entries. today may be any instant of the
// city's current day; loc is the city's zone.
func Aggregate(entries []entity.ForecastEntry, today time.Time, loc *time.Location, strategy Strategy) []entity.ForecastDay {
	if loc == nil {
		loc = time.UTC
	}
	todayDate := localDate(today, loc)

	var groups []*dayGroup
	if strategy == StrategyFirstSeen {
		groups = groupFirstSeen(entries, todayDate, loc)
	} else {
		groups = groupDateRange(entries, todayDate, loc)
	}

	days := make([]entity.ForecastDay, 0, len(groups))
	for i, group := range groups {
		label := entity.Tomorrow
		if strategy == StrategyFirstSeen {
			if i == 1 {
				label = entity.DayAfter
			}
		} else if group.date.Equal(todayDate.AddDate(0, 0, 2)) {
			label = entity.DayAfter
		}
		days = append(days, summarise(group, label))
	}
	return days
}

func groupFirstSeen(entries []entity.ForecastEntry, today time.Time, loc *time.Location) []*dayGroup {
	var groups []*dayGroup
	index := make(map[string]*dayGroup)

	for _, entry := range entries {
		date := localDate(entry.Time, loc)
		if date.Equal(today) {
			continue
		}
		key := date.Format(time.DateOnly)
		group, ok := index[key]
		if !ok {
			if len(groups) == maxDays {
				break
			}
			group = &dayGroup{date: date}
			index[key] = group
			groups = append(groups, group)
		}
		group.entries = append(group.entries, entry)
	}
	return groups
}

func groupDateRange(entries []entity.ForecastEntry, today time.Time, loc *time.Location) []*dayGroup {
	groups := make([]*dayGroup, maxDays)
	for i := range groups {
		groups[i] = &dayGroup{date: today.AddDate(0, 0, i+1)}
	}

	for _, entry := range entries {
		date := localDate(entry.Time, loc)
		for _, group := range groups {
			if date.Equal(group.date) {
				group.entries = append(group.entries, entry)
				break
			}
		}
	}

	kept := groups[:0]
	for _, group := range groups {
		if len(group.entries) > 0 {
			kept = append(kept, group)
		}
	}
	return kept
}

func summarise(group *dayGroup, label entity.DayLabel) entity.ForecastDay {
	maxTemps := make([]float64, len(group.entries))
	minTemps := make([]float64, len(group.entries))
	descriptions := make([]string, len(group.entries))
	icons := make([]string, len(group.entries))
	for i, entry := range group.entries {
		maxTemps[i] = entry.TempMax
		minTemps[i] = entry.TempMin
		descriptions[i] = entry.Description
		icons[i] = entry.IconCode
	}

	return entity.ForecastDay{
		Label:       label,
		Date:        group.date.Format(dateLayout),
		TempMax:     numberutils.Round(numberutils.MaxFloat64(maxTemps...), 1),
		TempMin:     numberutils.Round(numberutils.MinFloat64(minTemps...), 1),
		Description: Mode(descriptions),
		IconCode:    Mode(icons),
	}
}

// Mode returns the most frequent value. Ties go to the value seen first.
func Mode(values []string) string {
	counts := make(map[string]int, len(values))
	best, bestCount := "", 0
	for _, value := range values {
		counts[value]++
	}
	for _, value := range values {
		if counts[value] > bestCount {
			best, bestCount = value, counts[value]
		}
	}
	return best
}

// Hourly returns up to n slots starting at the first entry not before now.
func Hourly(entries []entity.ForecastEntry, now time.Time, loc *time.Location, n int) []entity.HourlySlot {
	if loc == nil {
		loc = time.UTC
	}
	slots := make([]entity.HourlySlot, 0, n)
	for _, entry := range entries {
		if len(slots) == n {
			break
		}
		if entry.Time.Before(now) {
			continue
		}
		slots = append(slots, entity.HourlySlot{
			Time:        entry.Time.In(loc).Format(hourLayout),
			Temp:        numberutils.Round(entry.Temp, 1),
			Description: entry.Description,
			IconCode:    entry.IconCode,
		})
	}
	return slots
}

// localDate truncates t to midnight of its calendar day in loc.
func localDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
