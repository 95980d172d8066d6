package models

import "time"

// LightCommand asks the dispatcher to move one light to a state.
type LightCommand struct {
	LightID          int
	ScheduleName     string
	ColorTemperature int
	Brightness       int
}

// DaylightLight is the stored view of a light the service controls.
type DaylightLight struct {
	ID int `json:"id"`

	// the name of the schedule that last targeted this light
	ScheduleName string `json:"schedule"`

	// false while a manually activated entry is in effect
	Automatic bool `json:"automatic"`

	// whether the light was unreachable during the last attempted update
	Unreachable bool `json:"unreachable"`

	TargetColorTemperature int `json:"targetColorTemperature"`
	TargetBrightness       int `json:"targetBrightness"`

	LastUpdateTime             *time.Time `json:"lastUpdateTime,omitempty"`
	LastUpdateColorTemperature *int       `json:"lastUpdateColorTemperature,omitempty"`
	LastUpdateBrightness       *int       `json:"lastUpdateBrightness,omitempty"`
}

// NeedsUpdate reports whether the target differs from what was last sent.
func (l DaylightLight) NeedsUpdate() bool {
	if l.LastUpdateColorTemperature == nil || l.LastUpdateBrightness == nil {
		return true
	}
	return *l.LastUpdateColorTemperature != l.TargetColorTemperature ||
		*l.LastUpdateBrightness != l.TargetBrightness
}

// DaylightScene is a bridge scene that follows a schedule.
type DaylightScene struct {
	ID           string
	Name         string
	ScheduleName string
	LightIDs     []int
}

// SunTimes holds the (clamped) sunrise and sunset for one day.
type SunTimes struct {
	Sunrise time.Time
	Sunset  time.Time
}

// ScheduleState is the resolved state of one schedule at a point in time.
type ScheduleState struct {
	Name             string `json:"name"`
	LightIDs         []int  `json:"lightIds"`
	Segment          string `json:"segment"`
	Fallback         bool   `json:"fallback"`
	ColorTemperature int    `json:"colorTemperature"`
	Brightness       int    `json:"brightness"`
}
