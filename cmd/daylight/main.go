package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"
	"github.com/wheelibin/daylight/internal/config"
	"github.com/wheelibin/daylight/internal/driver"
	"github.com/wheelibin/daylight/internal/schedule"
	"github.com/wheelibin/daylight/internal/sun"
	"github.com/wheelibin/daylight/internal/tui"
)

func main() {
	configFile := flag.StringP("config", "c", "", "path to the config file")
	atFlag := flag.String("at", "", "time to resolve, HH:MM today or RFC3339 (default now)")
	kelvin := flag.Int("kelvin", 0, "print the swatch of a single colour temperature and exit")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})

	if *kelvin != 0 {
		fmt.Println(tui.Swatch(*kelvin))
		return
	}

	at, err := parseAt(*atFlag, time.Now())
	if err != nil {
		logger.Fatal(err)
	}

	v, err := config.InitialiseConfig(*configFile)
	if err != nil {
		logger.Fatal(err)
	}
	cfg, err := config.Load(logger, v)
	if err != nil {
		logger.Fatal(err)
	}

	sunCalculator, err := sun.NewCalculator(logger, cfg.Latitude, cfg.Longitude, cfg.SunClamps)
	if err != nil {
		logger.Fatal(err)
	}

	// resolution only, nothing is dispatched
	d := driver.NewDriver(logger, cfg.Schedules, nil, sunCalculator, nil, cfg.UpdateInterval)
	states, err := d.Resolve(context.Background(), at)
	if err != nil {
		logger.Fatal(err)
	}

	fmt.Println(tui.RenderStates(at, sunCalculator.Times(at), states))
}

// parseAt reads the --at flag. A bare time of day is taken on now's date.
func parseAt(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	tod, err := schedule.ParseTimeOfDay(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("Error reading --at %q: expected HH:MM or RFC3339", value)
	}
	return tod.On(now), nil
}
