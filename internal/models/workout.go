package models

// Entry is one logged set. Entries are identified only by their position in
// the log and are never modified after creation.
type Entry struct {
	Exercise string  `json:"exercise"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
}

// Volume returns reps × weight for this entry.
func (e Entry) Volume() float64 {
	return float64(e.Reps) * e.Weight
}

// TotalVolume sums the volume of every entry. An empty log has zero volume.
func TotalVolume(entries []Entry) float64 {
	total := 0.0
	for _, e := range entries {
		total += e.Volume()
	}
	return total
}
