package schedule

import "time"

// Segment is one of the three daily lighting regimes.
type Segment int

const (
	BeforeSunrise Segment = iota
	Daylight
	AfterSunset
)

func (s Segment) String() string {
	switch s {
	case BeforeSunrise:
		return "beforeSunrise"
	case Daylight:
		return "default"
	case AfterSunset:
		return "afterSunset"
	}
	return "unknown"
}

// SelectSegment returns the segment governing query for the given same-day
// sunrise and sunset. If sunset is not after sunrise the whole day is
// Daylight and a warning is returned alongside.
func SelectSegment(query, sunrise, sunset time.Time) (Segment, *DegenerateSunWindowWarning) {
	if !sunset.After(sunrise) {
		return Daylight, &DegenerateSunWindowWarning{Sunrise: sunrise, Sunset: sunset}
	}
	switch {
	case query.Before(sunrise):
		return BeforeSunrise, nil
	case query.Before(sunset):
		return Daylight, nil
	default:
		return AfterSunset, nil
	}
}
