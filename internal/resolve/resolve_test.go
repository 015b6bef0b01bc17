package resolve

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var utc = Resolver{Location: time.UTC}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestResolveScenarios(t *testing.T) {
	tests := []struct {
		name               string
		start, end, dur    string
		wantStart, wantEnd time.Time
		wantAllDay         bool
	}{
		{"single all-day", "2025-01-01", "", "",
			at(2025, 1, 1, 0, 0), at(2025, 1, 2, 0, 0), true},
		{"timed default hour", "2025-02-03 09:00", "", "",
			at(2025, 2, 3, 9, 0), at(2025, 2, 3, 10, 0), false},
		{"multi-day all-day", "2025-02-03", "2025-02-05", "",
			at(2025, 2, 3, 0, 0), at(2025, 2, 6, 0, 0), true},
		{"timed with duration", "2025-02-03T14:15", "", "30m",
			at(2025, 2, 3, 14, 15), at(2025, 2, 3, 14, 45), false},
		{"explicit end wins", "2025-02-03T14:15", "2025-02-03T14:30", "2h",
			at(2025, 2, 3, 14, 15), at(2025, 2, 3, 14, 30), false},
		{"all-day ignores duration", "2025-02-03", "", "3h",
			at(2025, 2, 3, 0, 0), at(2025, 2, 4, 0, 0), true},
		{"all-day ignores bad duration", "2025-02-03", "", "garbage",
			at(2025, 2, 3, 0, 0), at(2025, 2, 4, 0, 0), true},
		{"timed end ignores bad duration", "2025-02-03T14:15", "2025-02-03 16:00", "x",
			at(2025, 2, 3, 14, 15), at(2025, 2, 3, 16, 0), false},
		{"hours duration crosses midnight", "2025-12-31 23:30", "", "2h",
			at(2025, 12, 31, 23, 30), at(2026, 1, 1, 1, 30), false},
		{"all-day same start and end", "2025-02-03", "2025-02-03", "",
			at(2025, 2, 3, 0, 0), at(2025, 2, 4, 0, 0), true},
		{"surrounding whitespace", "  2025-02-03  ", "", "",
			at(2025, 2, 3, 0, 0), at(2025, 2, 4, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utc.Resolve(tt.start, tt.end, tt.dur)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllDay, got.AllDay)
			assert.True(t, tt.wantStart.Equal(got.Start), "start: got %s want %s", got.Start, tt.wantStart)
			assert.True(t, tt.wantEnd.Equal(got.End), "end: got %s want %s", got.End, tt.wantEnd)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name            string
		start, end, dur string
		want            error
	}{
		{"bad start", "2025/01/01", "", "", ErrInvalidDateFormat},
		{"bad end", "2025-01-01", "tomorrow", "", ErrInvalidDateFormat},
		{"month 13", "2025-13-01", "", "", ErrInvalidDateFormat},
		{"hour 25", "2025-01-01 25:00", "", "", ErrInvalidDateFormat},
		{"all-day start timed end", "2025-01-01", "2025-01-02 10:00", "", ErrMixedEventKind},
		{"timed start all-day end", "2025-01-01T09:00", "2025-01-02", "", ErrMixedEventKind},
		{"timed start all-day end with duration", "2025-01-01T09:00", "2025-01-02", "30m", ErrMixedEventKind},
		{"bad duration", "2025-01-01T09:00", "", "90s", ErrInvalidDurationFormat},
		{"zero duration", "2025-01-01T09:00", "", "0m", ErrInvalidDurationFormat},
		{"timed end before start", "2025-01-01T09:00", "2025-01-01T08:00", "", ErrEndBeforeStart},
		{"timed end equals start", "2025-01-01T09:00", "2025-01-01 09:00", "", ErrEndBeforeStart},
		{"all-day end before start", "2025-01-05", "2025-01-01", "", ErrEndBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := utc.Resolve(tt.start, tt.end, tt.dur)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestResolveDefaultDurationIsOneHour(t *testing.T) {
	for _, s := range []string{"2024-02-29 00:00", "2025-06-15T12:34", "1999-12-31 23:59"} {
		got, err := utc.Resolve(s, "", "")
		require.NoError(t, err, s)
		assert.False(t, got.AllDay)
		assert.Equal(t, 60*time.Minute, got.Duration(), s)
	}
}

func TestResolverCustomDefaultDuration(t *testing.T) {
	r := Resolver{Location: time.UTC, DefaultDuration: 15 * time.Minute}
	got, err := r.Resolve("2025-02-03 09:00", "", "")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, got.Duration())
}

func TestResolveUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	got, err := Resolver{Location: loc}.Resolve("2025-02-03 09:00", "", "")
	require.NoError(t, err)
	assert.Equal(t, loc, got.Start.Location())
	assert.Equal(t, 0, got.Start.UTC().Hour())
}

func TestResolveAllDayAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	got, err := Resolver{Location: loc}.Resolve("2025-03-09", "", "")
	require.NoError(t, err)
	assert.Equal(t, 0, got.End.Hour())
	assert.Equal(t, 10, got.End.Day())
	assert.Equal(t, 23*time.Hour, got.Duration())
}

func TestRangeString(t *testing.T) {
	one, err := utc.Resolve("2025-01-01", "", "")
	require.NoError(t, err)
	assert.Equal(t, "all-day 2025-01-01", one.String())
	assert.Equal(t, 1, one.Days())

	multi, err := utc.Resolve("2025-02-03", "2025-02-05", "")
	require.NoError(t, err)
	assert.Equal(t, "all-day 2025-02-03 .. 2025-02-05", multi.String())
	assert.Equal(t, 3, multi.Days())

	timed, err := utc.Resolve("2025-02-03T14:15", "", "30m")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-03 14:15 .. 2025-02-03 14:45", timed.String())
	assert.Equal(t, 0, timed.Days())
}
