package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDateWindowSingleDay(t *testing.T) {
	w, err := ResolveDateWindow("2026-03-15", "", "", "")
	require.NoError(t, err)
	assert.True(t, w.Filtered)
	assert.Equal(t, 15, w.Start.Day())
	assert.Equal(t, 0, w.Start.Hour())
	assert.Equal(t, 23, w.End.Hour())
	assert.Equal(t, w.Start.Day(), w.End.Day())
}

func TestResolveDateWindowMonth(t *testing.T) {
	w, err := ResolveDateWindow("", "2026-02", "", "")
	require.NoError(t, err)
	assert.True(t, w.Filtered)
	assert.Equal(t, 1, w.Start.Day())
	assert.Equal(t, time.February, w.Start.Month())
	assert.Equal(t, 28, w.End.Day())
}

func TestResolveDateWindowRange(t *testing.T) {
	w, err := ResolveDateWindow("", "", "2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.True(t, w.Filtered)
	assert.Equal(t, 1, w.Start.Day())
	assert.Equal(t, 31, w.End.Day())

	_, err = ResolveDateWindow("", "", "2026-02-01", "2026-01-01")
	assert.Error(t, err)
}

func TestResolveDateWindowEmpty(t *testing.T) {
	w, err := ResolveDateWindow("", "", "", "")
	require.NoError(t, err)
	assert.False(t, w.Filtered)
}

func TestResolveDateWindowInvalidFormats(t *testing.T) {
	_, err := ResolveDateWindow("15-03-2026", "", "", "")
	assert.Error(t, err)

	_, err = ResolveDateWindow("", "Feb-2026", "", "")
	assert.Error(t, err)

	_, err = ResolveDateWindow("", "", "bogus", "")
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	ts := time.Date(2026, 3, 15, 14, 30, 45, 0, time.UTC)

	start := BeginningOfDay(ts)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), start)

	end := EndOfDay(ts)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 15, end.Day())
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 4, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, 0, DaysBetween(a, a))
}
