package schedule

import (
	"fmt"
	"strings"
	"time"
)

const timeOfDayFormat = "15:04"

// legacy entry format written by older versions of the web interface
const legacyTimeOfDayFormat = "3:04PM"

// TimeOfDay is a local wall-clock offset from midnight.
type TimeOfDay time.Duration

// NewTimeOfDay returns the time of day for the given hour and minute.
func NewTimeOfDay(hour int, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// TimeOfDayOf returns the wall-clock offset of t from midnight in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay(time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond()))
}

// ParseTimeOfDay parses "15:04" (or the legacy "3:04PM") into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{timeOfDayFormat, legacyTimeOfDayFormat} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute()), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q, expected HH:MM", s)
}

// On returns the instant showing this wall-clock time on the date of t, in
// t's location. The clock reading is kept on days with a DST change.
func (d TimeOfDay) On(t time.Time) time.Time {
	yr, mth, day := t.Date()
	offset := time.Duration(d)
	hour := offset / time.Hour
	offset -= hour * time.Hour
	min := offset / time.Minute
	offset -= min * time.Minute
	sec := offset / time.Second
	offset -= sec * time.Second
	return time.Date(yr, mth, day, int(hour), int(min), int(sec), int(offset), t.Location())
}

func (d TimeOfDay) String() string {
	total := time.Duration(d)
	return fmt.Sprintf("%02d:%02d", int(total.Hours()), int(total.Minutes())%60)
}

// MarshalText renders the time of day as "15:04".
func (d TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses "15:04" or "3:04PM".
func (d *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
