package tui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wheelibin/daylight/internal/models"
	"github.com/wheelibin/daylight/internal/tui"
)

func Test_RenderStates(t *testing.T) {
	at := time.Date(2023, time.March, 1, 21, 0, 0, 0, time.UTC)
	sunTimes := models.SunTimes{
		Sunrise: time.Date(2023, time.March, 1, 7, 0, 0, 0, time.UTC),
		Sunset:  time.Date(2023, time.March, 1, 19, 0, 0, 0, time.UTC),
	}
	states := []models.ScheduleState{
		{Name: "bedroom", LightIDs: []int{1, 2}, Segment: "afterSunset", ColorTemperature: 2700, Brightness: 80},
		{Name: "hall", LightIDs: []int{3}, Segment: "afterSunset", Fallback: true, ColorTemperature: 4000, Brightness: 100},
	}

	out := tui.RenderStates(at, sunTimes, states)

	assert.Contains(t, out, "2023/03/01 21:00")
	assert.Contains(t, out, "sunrise 07:00")
	assert.Contains(t, out, "sunset 19:00")
	assert.Contains(t, out, "bedroom")
	assert.Contains(t, out, "1,2")
	assert.Contains(t, out, "#ffa657")
	assert.Contains(t, out, "afterSunset*")
	assert.Contains(t, out, "#ffcda6")
}

func Test_RenderStates_noSun(t *testing.T) {
	out := tui.RenderStates(time.Date(2023, time.June, 21, 12, 0, 0, 0, time.UTC), models.SunTimes{}, nil)

	assert.Contains(t, out, "sunrise --:--")
	assert.Contains(t, out, "Schedule")
}

func Test_Swatch(t *testing.T) {
	assert.Contains(t, tui.Swatch(6600), "#ffffff")
	assert.Contains(t, tui.Swatch(1000), "#ff4300")
}
