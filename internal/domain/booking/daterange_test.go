package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreset(t *testing.T) {
	assert.Equal(t, PresetToday, ParsePreset("today"))
	assert.Equal(t, PresetThisWeek, ParsePreset("this-week"))
	assert.Equal(t, PresetThisWeek, ParsePreset("this_week"))
	assert.Equal(t, PresetNextWeek, ParsePreset("Next-Week"))
	assert.Equal(t, PresetCustom, ParsePreset("custom"))
	assert.Equal(t, PresetAll, ParsePreset(""))
	assert.Equal(t, PresetAll, ParsePreset("fortnight"))
}

func TestResolveDateRange_Presets(t *testing.T) {
	// Wednesday afternoon
	now := datetime(2026, 6, 3, 16, 45)

	day := func(d int) time.Time { return datetime(2026, 6, d, 0, 0) }

	tests := []struct {
		name   string
		preset Preset
		from   time.Time
		to     time.Time
	}{
		{"today", PresetToday, day(3), day(3)},
		{"tomorrow", PresetTomorrow, day(4), day(4)},
		{"this week", PresetThisWeek, day(1), day(7)},
		{"next week", PresetNextWeek, day(8), day(14)},
		{"this month", PresetThisMonth, day(1), day(30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := ResolveDateRange(tt.preset, now, DateRange{})
			require.NotNil(t, rng.From)
			require.NotNil(t, rng.To)
			assert.Equal(t, tt.from, *rng.From)
			assert.Equal(t, tt.to, *rng.To)
		})
	}
}

func TestResolveDateRange_All(t *testing.T) {
	rng := ResolveDateRange(PresetAll, datetime(2026, 6, 3, 12, 0), DateRange{})
	assert.True(t, rng.Unbounded())
}

func TestResolveDateRange_CustomPassThrough(t *testing.T) {
	from := datetime(2026, 6, 10, 0, 0)
	to := datetime(2026, 6, 1, 0, 0)
	custom := DateRange{From: &from, To: &to}

	rng := ResolveDateRange(PresetCustom, datetime(2026, 6, 3, 12, 0), custom)
	assert.Equal(t, custom, rng) // verbatim, even inverted
}

func TestResolveDateRange_DeterministicWithinDay(t *testing.T) {
	morning := datetime(2026, 6, 3, 0, 1)
	night := datetime(2026, 6, 3, 23, 59)

	a := ResolveDateRange(PresetToday, morning, DateRange{})
	b := ResolveDateRange(PresetToday, night, DateRange{})
	assert.Equal(t, *a.From, *b.From)
	assert.Equal(t, *a.To, *b.To)
}

func TestResolveDateRange_WeekSpansWeekendBoundary(t *testing.T) {
	// Sunday still belongs to the week that started the previous Monday
	sunday := datetime(2026, 6, 7, 10, 0)

	rng := ResolveDateRange(PresetThisWeek, sunday, DateRange{})
	assert.Equal(t, datetime(2026, 6, 1, 0, 0), *rng.From)
	assert.Equal(t, datetime(2026, 6, 7, 0, 0), *rng.To)
}

func TestDateRange_ContainsDate(t *testing.T) {
	from := datetime(2026, 6, 1, 0, 0)
	to := datetime(2026, 6, 7, 0, 0)
	rng := DateRange{From: &from, To: &to}

	assert.True(t, rng.ContainsDate(datetime(2026, 6, 1, 0, 0)))
	assert.True(t, rng.ContainsDate(datetime(2026, 6, 7, 23, 59))) // inclusive by date
	assert.False(t, rng.ContainsDate(datetime(2026, 5, 31, 23, 59)))
	assert.False(t, rng.ContainsDate(datetime(2026, 6, 8, 0, 0)))

	assert.True(t, DateRange{}.ContainsDate(datetime(1999, 1, 1, 0, 0)))
}

func TestDateRange_InvertedMatchesNothing(t *testing.T) {
	from := datetime(2026, 6, 10, 0, 0)
	to := datetime(2026, 6, 1, 0, 0)
	rng := DateRange{From: &from, To: &to}

	for d := 1; d <= 30; d++ {
		assert.False(t, rng.ContainsDate(datetime(2026, 6, d, 12, 0)), "day %d", d)
	}
}
