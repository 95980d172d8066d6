package schedule

import (
	"math"
	"sort"
)

// LightState is a target colour temperature (kelvin) and brightness (percent).
type LightState struct {
	ColorTemperature int `json:"colorTemperature"`
	Brightness       int `json:"brightness"`
}

// Interval is the span between two adjacent entries of a segment.
type Interval struct {
	Start Entry
	End   Entry
}

// CalculateTargetLightState linearly interpolates both values for a time
// inside the interval, rounding to the nearest integer.
func (i Interval) CalculateTargetLightState(at TimeOfDay) LightState {
	intervalDuration := float64(i.End.Time - i.Start.Time)
	if intervalDuration <= 0 {
		return i.Start.State()
	}
	progress := float64(at-i.Start.Time) / intervalDuration

	return LightState{
		ColorTemperature: interpolate(i.Start.ColorTemperature, i.End.ColorTemperature, progress),
		Brightness:       interpolate(i.Start.Brightness, i.End.Brightness, progress),
	}
}

// the interpolated value is rounded, not the delta, so a tie rounds the
// same way whichever direction the interval runs
func interpolate(start int, end int, progress float64) int {
	return int(math.Round(float64(start) + float64(end-start)*progress))
}

// Resolve returns the light state for at within a non-empty, ordered entry
// list. Times before the first entry or at/after the last entry take that
// entry's values unchanged.
func Resolve(entries []Entry, at TimeOfDay) LightState {
	first, last := entries[0], entries[len(entries)-1]
	if at < first.Time {
		return first.State()
	}
	if at >= last.Time {
		return last.State()
	}

	// index of the first entry strictly after at; always in [1, len-1] here
	next := sort.Search(len(entries), func(i int) bool { return entries[i].Time > at })
	return Interval{Start: entries[next-1], End: entries[next]}.CalculateTargetLightState(at)
}
