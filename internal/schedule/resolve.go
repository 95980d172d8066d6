package schedule

import "time"

// Resolution is the outcome of resolving a schedule at a point in time.
type Resolution struct {
	Target  LightState
	Segment Segment
	// Fallback is set when the selected segment had no entries and the
	// default entry was used instead.
	Fallback bool
	// Warning is non-nil when the sun window was degenerate.
	Warning *DegenerateSunWindowWarning
}

// ResolveSchedule computes the light state that should be active at now.
// sunrise and sunset must fall on the same day as now.
func ResolveSchedule(sch Schedule, now, sunrise, sunset time.Time) Resolution {
	segment, warning := SelectSegment(now, sunrise, sunset)
	res := Resolution{Segment: segment, Warning: warning}

	var entries []Entry
	switch segment {
	case BeforeSunrise:
		entries = sch.beforeSunrise
	case AfterSunset:
		entries = sch.afterSunset
	default:
		res.Target = sch.daylight.State()
		return res
	}

	if len(entries) == 0 {
		res.Target = sch.daylight.State()
		res.Fallback = true
		return res
	}

	res.Target = Resolve(entries, TimeOfDayOf(now))
	return res
}
