// Package sun supplies the sunrise and sunset times the schedules are anchored to.
package sun

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nathan-osman/go-sunrise"
	"github.com/robfig/cron/v3"
	"github.com/wheelibin/daylight/internal/models"
	"github.com/wheelibin/daylight/internal/schedule"
)

// runs just after midnight so a new day's times are logged once
const dailySpec = "1 0 * * *"

// Clamps bound the calculated sun times, each is an optional "15:04" time.
type Clamps struct {
	SunriseMin string `mapstructure:"sunriseMin" json:"sunriseMin"`
	SunriseMax string `mapstructure:"sunriseMax" json:"sunriseMax"`
	SunsetMin  string `mapstructure:"sunsetMin" json:"sunsetMin"`
	SunsetMax  string `mapstructure:"sunsetMax" json:"sunsetMax"`
}

type parsedClamps struct {
	sunriseMin, sunriseMax, sunsetMin, sunsetMax *schedule.TimeOfDay
}

type Calculator struct {
	logger *log.Logger
	lat    float64
	lng    float64
	clamps parsedClamps

	mu    sync.Mutex
	cache map[string]models.SunTimes

	cron *cron.Cron
}

func NewCalculator(logger *log.Logger, lat float64, lng float64, clamps Clamps) (*Calculator, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("Error creating sun calculator: location %v,%v is out of range", lat, lng)
	}

	parsed := parsedClamps{}
	fields := []struct {
		name  string
		value string
		dest  **schedule.TimeOfDay
	}{
		{"sunriseMin", clamps.SunriseMin, &parsed.sunriseMin},
		{"sunriseMax", clamps.SunriseMax, &parsed.sunriseMax},
		{"sunsetMin", clamps.SunsetMin, &parsed.sunsetMin},
		{"sunsetMax", clamps.SunsetMax, &parsed.sunsetMax},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		tod, err := schedule.ParseTimeOfDay(f.value)
		if err != nil {
			return nil, fmt.Errorf("Error reading sun clamp %s: %w", f.name, err)
		}
		*f.dest = &tod
	}

	return &Calculator{
		logger: logger,
		lat:    lat,
		lng:    lng,
		clamps: parsed,
		cache:  map[string]models.SunTimes{},
		cron:   cron.New(),
	}, nil
}

// ParseLocation reads a "lat,lng" pair.
func ParseLocation(geoLocation string) (float64, float64, error) {
	latLng := strings.Split(geoLocation, ",")
	if len(latLng) != 2 {
		return 0, 0, fmt.Errorf("Error reading location %q: expected \"lat,lng\"", geoLocation)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latLng[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("Error reading latitude from %q: %w", geoLocation, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(latLng[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("Error reading longitude from %q: %w", geoLocation, err)
	}
	return lat, lng, nil
}

// Times returns sunrise and sunset on the calendar day of date, in date's
// location. Where the sun does not rise or set both times are zero.
func (c *Calculator) Times(date time.Time) models.SunTimes {
	key := date.Format(time.DateOnly)

	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.cache[key]; ok {
		return t
	}

	t := c.calculate(date)
	c.cache[key] = t
	return t
}

func (c *Calculator) calculate(date time.Time) models.SunTimes {
	rise, set := sunrise.SunriseSunset(c.lat, c.lng, date.Year(), date.Month(), date.Day())
	if rise.IsZero() || set.IsZero() {
		c.logger.Warn("No sunrise or sunset for this location today", "date", date.Format(time.DateOnly))
		return models.SunTimes{}
	}

	rise = rise.In(date.Location())
	set = set.In(date.Location())

	c.logger.Debug("Calculated local sunrise and sunset",
		"sunrise", rise.Format("15:04"),
		"sunset", set.Format("15:04"),
	)

	return models.SunTimes{
		Sunrise: clamp(rise, c.clamps.sunriseMin, c.clamps.sunriseMax),
		Sunset:  clamp(set, c.clamps.sunsetMin, c.clamps.sunsetMax),
	}
}

func clamp(t time.Time, min *schedule.TimeOfDay, max *schedule.TimeOfDay) time.Time {
	if min != nil {
		if m := min.On(t); t.Before(m) {
			t = m
		}
	}
	if max != nil {
		if m := max.On(t); t.After(m) {
			t = m
		}
	}
	return t
}

// Prune drops cached days before now's calendar day.
func (c *Calculator) Prune(now time.Time) {
	today := now.Format(time.DateOnly)

	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.cache {
		if key < today {
			delete(c.cache, key)
		}
	}
}

// CachedDays is the number of days currently held in the cache.
func (c *Calculator) CachedDays() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

// Start registers the daily job that prunes the cache and logs the new day's times.
func (c *Calculator) Start() error {
	_, err := c.cron.AddFunc(dailySpec, func() {
		now := time.Now()
		c.Prune(now)
		t := c.Times(now)
		c.logger.Info("Sun times for today", "sunrise", t.Sunrise.Format("15:04"), "sunset", t.Sunset.Format("15:04"), "cachedDays", c.CachedDays())
	})
	if err != nil {
		return fmt.Errorf("Error scheduling daily sun update: %w", err)
	}
	c.cron.Start()
	return nil
}

func (c *Calculator) Stop() {
	ctx := c.cron.Stop()
	<-ctx.Done()
}
