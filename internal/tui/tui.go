// Package tui renders resolved schedule states for the terminal.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/wheelibin/daylight/internal/colour"
	"github.com/wheelibin/daylight/internal/models"
)

const headerBackgroundColor = "#1e7ba0"

const swatchWidth = 8

type column struct {
	title string
	width int
}

var columns = []column{
	{"Schedule", 14},
	{"Lights", 12},
	{"Segment", 14},
	{"Kelvin", 7},
	{"Bri %", 6},
	{"Colour", swatchWidth + 10},
}

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(headerBackgroundColor))

	cellStyle = lipgloss.NewStyle().PaddingRight(1)

	fallbackStyle = cellStyle.Copy().Faint(true)
)

// Swatch renders a block filled with the display colour of kelvin, followed by its hex value.
func Swatch(kelvin int) string {
	hex := colour.KelvinToRGB(kelvin).Hex()
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", swatchWidth))
	return block + " " + hex
}

// RenderStates draws a table of the states resolved at `at`.
// A segment that fell back to the default entry is marked with "*".
func RenderStates(at time.Time, sunTimes models.SunTimes, states []models.ScheduleState) string {
	rows := []string{renderRow(lo.Map(columns, func(c column, _ int) string { return c.title }), headerStyle)}

	for _, st := range states {
		segment := st.Segment
		style := cellStyle
		if st.Fallback {
			segment += "*"
			style = fallbackStyle
		}
		rows = append(rows, renderRow([]string{
			st.Name,
			strings.Join(lo.Map(st.LightIDs, func(id int, _ int) string { return fmt.Sprint(id) }), ","),
			segment,
			fmt.Sprint(st.ColorTemperature),
			fmt.Sprint(st.Brightness),
			Swatch(st.ColorTemperature),
		}, style))
	}

	title := fmt.Sprintf("%s  sunrise %s  sunset %s",
		at.Format("2006/01/02 15:04"), clock(sunTimes.Sunrise), clock(sunTimes.Sunset))

	return lipgloss.JoinVertical(lipgloss.Left, title, baseStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

func renderRow(cells []string, style lipgloss.Style) string {
	rendered := make([]string, 0, len(cells))
	for i, cell := range cells {
		rendered = append(rendered, style.Copy().Width(columns[i].width).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func clock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Format("15:04")
}
