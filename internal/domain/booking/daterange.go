package booking

import (
	"strings"
	"time"
)

// DateRange is a closed interval at calendar-date granularity. Both
// ends optional; a fully open range means unbounded. An inverted range
// (from after to) is legal input and simply contains no dates.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

func (r DateRange) Unbounded() bool {
	return r.From == nil && r.To == nil
}

// ContainsDate tests membership by calendar date, inclusive on both ends.
func (r DateRange) ContainsDate(t time.Time) bool {
	day := StartOfDay(t)
	if r.From != nil && day.Before(StartOfDay(*r.From)) {
		return false
	}
	if r.To != nil && day.After(StartOfDay(*r.To)) {
		return false
	}
	return true
}

// ===============================
// Relative date presets
// ===============================

type Preset string

const (
	PresetAll       Preset = "all"
	PresetToday     Preset = "today"
	PresetTomorrow  Preset = "tomorrow"
	PresetThisWeek  Preset = "this_week"
	PresetNextWeek  Preset = "next_week"
	PresetThisMonth Preset = "this_month"
	PresetCustom    Preset = "custom"
)

// ParsePreset normalizes a raw preset name. Unknown names fall back to
// PresetAll so a stale query string widens rather than hides results.
func ParsePreset(raw string) Preset {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_")
	switch Preset(normalized) {
	case PresetToday, PresetTomorrow, PresetThisWeek, PresetNextWeek, PresetThisMonth, PresetCustom:
		return Preset(normalized)
	}
	return PresetAll
}

// ResolveDateRange anchors a preset to an injected "now". Single-day
// presets return from == to; the filter compares by date equality, so
// "to" does not need to be end of day. The custom range is passed
// through verbatim, inverted or not.
func ResolveDateRange(preset Preset, now time.Time, custom DateRange) DateRange {
	switch preset {
	case PresetToday:
		d := StartOfDay(now)
		return DateRange{From: &d, To: &d}

	case PresetTomorrow:
		d := StartOfDay(now).AddDate(0, 0, 1)
		return DateRange{From: &d, To: &d}

	case PresetThisWeek:
		from := StartOfWeek(now)
		to := from.AddDate(0, 0, 6)
		return DateRange{From: &from, To: &to}

	case PresetNextWeek:
		from := StartOfWeek(now).AddDate(0, 0, 7)
		to := from.AddDate(0, 0, 6)
		return DateRange{From: &from, To: &to}

	case PresetThisMonth:
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to := from.AddDate(0, 1, -1)
		return DateRange{From: &from, To: &to}

	case PresetCustom:
		return custom
	}

	return DateRange{}
}
