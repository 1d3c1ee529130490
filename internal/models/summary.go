package models

import (
	"fmt"
	"strconv"
)

// Row is the rendered form of one log entry.
type Row struct {
	Index    int
	Exercise string
	Reps     int
	Weight   float64
	Volume   float64
}

// Text is the row's main display line.
func (r Row) Text() string {
	return fmt.Sprintf("%s — %d reps @ %s lbs", r.Exercise, r.Reps, FormatNumber(r.Weight))
}

// VolumeText is the row's volume suffix.
func (r Row) VolumeText() string {
	return fmt.Sprintf("(Volume: %s)", FormatNumber(r.Volume))
}

// Summary is everything the view needs to draw the current log.
type Summary struct {
	Rows         []Row
	TotalVolume  float64
	ShowTotal    bool
	ShowClearAll bool
}

// TotalText is the total volume line shown above the list.
func (s Summary) TotalText() string {
	return fmt.Sprintf("Total Volume: %s lbs", FormatNumber(s.TotalVolume))
}

// Summarize derives the render state from the log. Nothing is cached.
func Summarize(entries []Entry) Summary {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{
			Index:    i,
			Exercise: e.Exercise,
			Reps:     e.Reps,
			Weight:   e.Weight,
			Volume:   e.Volume(),
		}
	}
	nonEmpty := len(entries) > 0
	return Summary{
		Rows:         rows,
		TotalVolume:  TotalVolume(entries),
		ShowTotal:    nonEmpty,
		ShowClearAll: nonEmpty,
	}
}

// FormatNumber renders a number with the fewest digits that round-trip,
// so 135 prints as "135" and 2.5 as "2.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
