package schedule

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Definition is a schedule as uploaded by the web interface or stored in the
// config file. It is untrusted until converted with FromDefinition.
type Definition struct {
	Name                    string            `json:"name" mapstructure:"name"`
	AssociatedDeviceIDs     []any             `json:"associatedDeviceIDs" mapstructure:"associatedDeviceIDs"`
	DefaultColorTemperature *int              `json:"defaultColorTemperature" mapstructure:"defaultColorTemperature"`
	DefaultBrightness       *int              `json:"defaultBrightness" mapstructure:"defaultBrightness"`
	BeforeSunrise           []EntryDefinition `json:"beforeSunrise" mapstructure:"beforeSunrise"`
	AfterSunset             []EntryDefinition `json:"afterSunset" mapstructure:"afterSunset"`
}

// EntryDefinition is a single timed entry of a Definition.
type EntryDefinition struct {
	Time             string `json:"time" mapstructure:"time"`
	ColorTemperature int    `json:"colorTemperature" mapstructure:"colorTemperature"`
	Brightness       int    `json:"brightness" mapstructure:"brightness"`
}

// FromDefinition parses and validates a Definition.
func FromDefinition(def Definition) (Schedule, error) {
	ids := make([]int, 0, len(def.AssociatedDeviceIDs))
	for i, raw := range def.AssociatedDeviceIDs {
		id, err := parseLightID(raw)
		if err != nil {
			return Schedule{}, invalid(def.Name, fmt.Sprintf("associatedDeviceIDs[%d]", i), "%v", err)
		}
		ids = append(ids, id)
	}

	before, err := parseEntries(def.Name, "beforeSunrise", def.BeforeSunrise)
	if err != nil {
		return Schedule{}, err
	}
	after, err := parseEntries(def.Name, "afterSunset", def.AfterSunset)
	if err != nil {
		return Schedule{}, err
	}

	var daylight *Entry
	if def.DefaultColorTemperature != nil && def.DefaultBrightness != nil {
		daylight = &Entry{ColorTemperature: *def.DefaultColorTemperature, Brightness: *def.DefaultBrightness}
	}

	return NewSchedule(def.Name, ids, before, daylight, after)
}

// ToDefinition converts a schedule back to its uploadable form,
// times are always written in the current "15:04" format.
func ToDefinition(s Schedule) Definition {
	ct, bri := s.daylight.ColorTemperature, s.daylight.Brightness
	def := Definition{
		Name:                    s.name,
		AssociatedDeviceIDs:     make([]any, 0, len(s.lightIDs)),
		DefaultColorTemperature: &ct,
		DefaultBrightness:       &bri,
	}
	for _, id := range s.lightIDs {
		def.AssociatedDeviceIDs = append(def.AssociatedDeviceIDs, id)
	}
	for _, e := range s.beforeSunrise {
		def.BeforeSunrise = append(def.BeforeSunrise, EntryDefinition{e.Time.String(), e.ColorTemperature, e.Brightness})
	}
	for _, e := range s.afterSunset {
		def.AfterSunset = append(def.AfterSunset, EntryDefinition{e.Time.String(), e.ColorTemperature, e.Brightness})
	}
	return def
}

// DefaultDefinition is used when no schedules are configured.
func DefaultDefinition() Definition {
	ct, bri := 2750, 100
	return Definition{
		Name:                    "default",
		AssociatedDeviceIDs:     []any{},
		DefaultColorTemperature: &ct,
		DefaultBrightness:       &bri,
		BeforeSunrise: []EntryDefinition{
			{Time: "04:00", ColorTemperature: 2000, Brightness: 60},
		},
		AfterSunset: []EntryDefinition{
			{Time: "20:00", ColorTemperature: 2300, Brightness: 80},
			{Time: "22:00", ColorTemperature: 2000, Brightness: 60},
		},
	}
}

func parseEntries(schedule string, segment string, defs []EntryDefinition) ([]Entry, error) {
	entries := make([]Entry, 0, len(defs))
	for i, d := range defs {
		t, err := ParseTimeOfDay(d.Time)
		if err != nil {
			return nil, invalid(schedule, fmt.Sprintf("%s[%d].time", segment, i), "%v", err)
		}
		entries = append(entries, Entry{Time: t, ColorTemperature: d.ColorTemperature, Brightness: d.Brightness})
	}
	return entries, nil
}

func parseLightID(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("light id %v is not an integer", v)
		}
		return int(v), nil
	case json.Number:
		id, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("light id %q is not an integer", v.String())
		}
		return id, nil
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("light id %q is not an integer", v)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("light id %v has unsupported type %T", raw, raw)
	}
}
