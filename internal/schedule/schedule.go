package schedule

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

const (
	MinColorTemperature = 1000
	MaxColorTemperature = 10000
	MinBrightness       = 0
	MaxBrightness       = 100
)

// Entry is a colour temperature (kelvin) and brightness (percent) reached at Time.
// Time is ignored for the default (daylight) entry.
type Entry struct {
	Time             TimeOfDay
	ColorTemperature int
	Brightness       int
}

// State returns the light state of the entry.
func (e Entry) State() LightState {
	return LightState{ColorTemperature: e.ColorTemperature, Brightness: e.Brightness}
}

// Schedule is a validated, immutable daily lighting schedule.
// The zero value is not usable, build one with NewSchedule or FromDefinition.
type Schedule struct {
	name          string
	lightIDs      []int
	beforeSunrise []Entry
	daylight      Entry
	afterSunset   []Entry
}

// NewSchedule validates the supplied values and returns a Schedule.
// On failure the returned error is an *InvalidScheduleError and the returned
// Schedule is the zero value.
func NewSchedule(name string, lightIDs []int, beforeSunrise []Entry, daylight *Entry, afterSunset []Entry) (Schedule, error) {
	for i, id := range lightIDs {
		if id <= 0 {
			return Schedule{}, invalid(name, fmt.Sprintf("associatedDeviceIDs[%d]", i), "light id must be positive, got %d", id)
		}
	}

	if daylight == nil {
		return Schedule{}, invalid(name, "defaultSegment", "a default colour temperature and brightness are required")
	}
	if err := validateEntry(name, "default", *daylight); err != nil {
		return Schedule{}, err
	}

	if err := validateSegment(name, "beforeSunrise", beforeSunrise); err != nil {
		return Schedule{}, err
	}
	if err := validateSegment(name, "afterSunset", afterSunset); err != nil {
		return Schedule{}, err
	}

	ids := lo.Uniq(lightIDs)
	sort.Ints(ids)

	d := *daylight
	d.Time = 0

	return Schedule{
		name:          name,
		lightIDs:      ids,
		beforeSunrise: append([]Entry{}, beforeSunrise...),
		daylight:      d,
		afterSunset:   append([]Entry{}, afterSunset...),
	}, nil
}

func validateSegment(schedule string, segment string, entries []Entry) error {
	for i, e := range entries {
		if err := validateEntry(schedule, fmt.Sprintf("%s[%d]", segment, i), e); err != nil {
			return err
		}
		if i > 0 && e.Time <= entries[i-1].Time {
			return invalid(schedule, fmt.Sprintf("%s[%d].time", segment, i),
				"%s must be later than the previous entry (%s)", e.Time, entries[i-1].Time)
		}
	}
	return nil
}

func validateEntry(schedule string, field string, e Entry) error {
	if e.ColorTemperature < MinColorTemperature || e.ColorTemperature > MaxColorTemperature {
		return invalid(schedule, field+".colorTemperature", "%dK is outside [%d, %d]",
			e.ColorTemperature, MinColorTemperature, MaxColorTemperature)
	}
	if e.Brightness < MinBrightness || e.Brightness > MaxBrightness {
		return invalid(schedule, field+".brightness", "%d%% is outside [%d, %d]",
			e.Brightness, MinBrightness, MaxBrightness)
	}
	return nil
}

func (s Schedule) Name() string { return s.name }

// LightIDs returns the associated light ids in ascending order.
func (s Schedule) LightIDs() []int { return append([]int{}, s.lightIDs...) }

func (s Schedule) BeforeSunrise() []Entry { return append([]Entry{}, s.beforeSunrise...) }

func (s Schedule) AfterSunset() []Entry { return append([]Entry{}, s.afterSunset...) }

// Daylight returns the default entry that applies between sunrise and sunset.
func (s Schedule) Daylight() Entry { return s.daylight }

// ValidateActivation checks an entry and light ids given for a one-off activation.
func ValidateActivation(entry Entry, lightIDs []int) error {
	if len(lightIDs) == 0 {
		return invalid("", "lightIDs", "at least one light is required")
	}
	for i, id := range lightIDs {
		if id <= 0 {
			return invalid("", fmt.Sprintf("lightIDs[%d]", i), "light id must be positive, got %d", id)
		}
	}
	return validateEntry("", "entry", entry)
}
