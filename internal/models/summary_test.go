package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Empty(t, s.Rows)
	assert.Zero(t, s.TotalVolume)
	assert.False(t, s.ShowTotal)
	assert.False(t, s.ShowClearAll)
}

func TestSummarize_BenchAndSquat(t *testing.T) {
	entries := []Entry{
		{Exercise: "Bench Press", Reps: 10, Weight: 135},
		{Exercise: "Squat", Reps: 5, Weight: 225},
	}

	s := Summarize(entries)
	assert.Equal(t, 2475.0, s.TotalVolume)
	assert.True(t, s.ShowTotal)
	assert.True(t, s.ShowClearAll)
	assert.Equal(t, "Total Volume: 2475 lbs", s.TotalText())

	if assert.Len(t, s.Rows, 2) {
		assert.Equal(t, 0, s.Rows[0].Index)
		assert.Equal(t, 1350.0, s.Rows[0].Volume)
		assert.Equal(t, "Bench Press — 10 reps @ 135 lbs", s.Rows[0].Text())
		assert.Equal(t, "(Volume: 1350)", s.Rows[0].VolumeText())
		assert.Equal(t, 1125.0, s.Rows[1].Volume)
	}

	assert.Equal(t, 1125.0, TotalVolume(entries[1:]))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "135", FormatNumber(135))
	assert.Equal(t, "2.5", FormatNumber(2.5))
	assert.Equal(t, "0", FormatNumber(0))
}
