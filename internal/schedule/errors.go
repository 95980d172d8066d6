package schedule

import (
	"fmt"
	"time"
)

// InvalidScheduleError is returned when a schedule definition fails validation.
// Field names the offending field using the uploaded JSON names,
// e.g. "beforeSunrise[1].time" or "associatedDeviceIDs[0]".
type InvalidScheduleError struct {
	Schedule string
	Field    string
	Reason   string
}

func (e *InvalidScheduleError) Error() string {
	if e.Schedule == "" {
		return fmt.Sprintf("invalid schedule: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid schedule (%s): %s: %s", e.Schedule, e.Field, e.Reason)
}

func invalid(schedule string, field string, format string, args ...any) *InvalidScheduleError {
	return &InvalidScheduleError{Schedule: schedule, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// DegenerateSunWindowWarning reports a sunset at or before sunrise
// (polar day or night). Resolution continues with the default entry.
type DegenerateSunWindowWarning struct {
	Sunrise time.Time
	Sunset  time.Time
}

func (w *DegenerateSunWindowWarning) Error() string {
	return fmt.Sprintf("sunset (%s) is not after sunrise (%s), using default segment for the whole day",
		w.Sunset.Format(time.RFC3339), w.Sunrise.Format(time.RFC3339))
}
