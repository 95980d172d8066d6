// Package stream renders resolved schedule states for people: every tick is
// published over server-sent events with an RGB swatch per schedule, and a
// small HTTP API exposes manual activation and schedule uploads.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/r3labs/sse/v2"
	"github.com/samber/lo"
	"github.com/wheelibin/daylight/internal/colour"
	"github.com/wheelibin/daylight/internal/dispatch"
	"github.com/wheelibin/daylight/internal/models"
	"github.com/wheelibin/daylight/internal/schedule"
)

const StatesStream = "states"

type scheduleDriver interface {
	ActivateEntryNow(ctx context.Context, entry schedule.Entry, lightIDs []int) error
	SetAutomatic(ctx context.Context, lightID int, enabled bool) error
	ReplaceSchedules(schedules []schedule.Schedule)
	Schedules() []schedule.Schedule
}

type lightStore interface {
	GetAllLights() ([]models.DaylightLight, error)
}

type sceneDiscoverer interface {
	DiscoverScenes(scheduleNames []string) error
}

// Swatch is a colour temperature with its display colour.
type Swatch struct {
	Kelvin int    `json:"kelvin"`
	Hex    string `json:"hex"`
	R      uint8  `json:"r"`
	G      uint8  `json:"g"`
	B      uint8  `json:"b"`
}

func NewSwatch(kelvin int) Swatch {
	rgb := colour.KelvinToRGB(kelvin)
	return Swatch{Kelvin: kelvin, Hex: rgb.Hex(), R: rgb.R, G: rgb.G, B: rgb.B}
}

type ScheduleSwatch struct {
	models.ScheduleState
	Colour string `json:"colour"`
}

// StatesEvent is the payload of every event on the states stream.
type StatesEvent struct {
	Time      time.Time        `json:"time"`
	Schedules []ScheduleSwatch `json:"schedules"`
}

type Server struct {
	logger *log.Logger
	lights lightStore
	scenes sceneDiscoverer
	events *sse.Server

	mu     sync.RWMutex
	latest StatesEvent
}

func NewServer(logger *log.Logger, lights lightStore, scenes sceneDiscoverer) *Server {
	events := sse.New()
	// late subscribers read GET /states instead of a replay
	events.AutoReplay = false
	events.CreateStream(StatesStream)

	return &Server{
		logger: logger,
		lights: lights,
		scenes: scenes,
		events: events,
		latest: StatesEvent{Schedules: []ScheduleSwatch{}},
	}
}

// PublishStates records the states resolved at `at` and sends them to every subscriber.
func (s *Server) PublishStates(at time.Time, states []models.ScheduleState) {
	event := StatesEvent{
		Time: at,
		Schedules: lo.Map(states, func(st models.ScheduleState, _ int) ScheduleSwatch {
			return ScheduleSwatch{ScheduleState: st, Colour: colour.KelvinToRGB(st.ColorTemperature).Hex()}
		}),
	}

	s.mu.Lock()
	s.latest = event
	s.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Error encoding states event", "err", err)
		return
	}
	s.events.Publish(StatesStream, &sse.Event{Event: []byte(StatesStream), Data: data})
}

// Latest returns the most recently published states.
func (s *Server) Latest() StatesEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Server) Close() {
	s.events.Close()
}

// Handler builds the HTTP API. driver is the running schedule driver.
func (s *Server) Handler(driver scheduleDriver) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/events", func(c *gin.Context) {
		q := c.Request.URL.Query()
		q.Set("stream", StatesStream)
		c.Request.URL.RawQuery = q.Encode()
		s.events.ServeHTTP(c.Writer, c.Request)
	})

	r.GET("/swatch/:kelvin", func(c *gin.Context) {
		kelvin, err := strconv.Atoi(c.Param("kelvin"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "kelvin must be an integer"})
			return
		}
		c.JSON(http.StatusOK, NewSwatch(kelvin))
	})

	r.GET("/states", func(c *gin.Context) {
		lights, err := s.lights.GetAllLights()
		if err != nil {
			s.logger.Error("Error reading lights", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		latest := s.Latest()
		c.JSON(http.StatusOK, gin.H{"time": latest.Time, "schedules": latest.Schedules, "lights": lights})
	})

	r.POST("/lights/activate", func(c *gin.Context) {
		var req activateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		entry, err := req.entry()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = driver.ActivateEntryNow(c.Request.Context(), entry, req.LightIDs)
		var invalidErr *schedule.InvalidScheduleError
		switch {
		case errors.As(err, &invalidErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case err != nil:
			s.logger.Error("Error activating entry", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusOK, gin.H{"lightIds": lo.Uniq(req.LightIDs), "colour": colour.KelvinToRGB(entry.ColorTemperature).Hex()})
		}
	})

	r.PUT("/lights/:id/automatic", func(c *gin.Context) {
		lightID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "light id must be an integer"})
			return
		}
		var req automaticRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = driver.SetAutomatic(c.Request.Context(), lightID, *req.Enabled)
		switch {
		case errors.Is(err, dispatch.ErrUnknownLight):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err != nil:
			s.logger.Error("Error setting automatic mode", "light", lightID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusOK, gin.H{"id": lightID, "automatic": *req.Enabled})
		}
	})

	r.GET("/schedules", func(c *gin.Context) {
		c.JSON(http.StatusOK, lo.Map(driver.Schedules(), func(sch schedule.Schedule, _ int) schedule.Definition {
			return schedule.ToDefinition(sch)
		}))
	})

	r.PUT("/schedules", func(c *gin.Context) {
		var defs []schedule.Definition
		if err := c.ShouldBindJSON(&defs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		schedules, err := buildSchedules(defs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		driver.ReplaceSchedules(schedules)

		names := lo.Map(schedules, func(sch schedule.Schedule, _ int) string { return sch.Name() })
		if err := s.scenes.DiscoverScenes(names); err != nil {
			// the schedules are in use, only scene sync is affected
			s.logger.Error("Error discovering scenes", "err", err)
		}
		c.JSON(http.StatusOK, gin.H{"schedules": names})
	})

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http request", "method", c.Request.Method, "path", c.Request.URL.Path,
			"status", c.Writer.Status(), "duration", time.Since(start))
	}
}

type activateRequest struct {
	Time             string `json:"time"`
	ColorTemperature int    `json:"colorTemperature"`
	Brightness       int    `json:"brightness"`
	LightIDs         []int  `json:"lightIds"`
}

func (r activateRequest) entry() (schedule.Entry, error) {
	entry := schedule.Entry{ColorTemperature: r.ColorTemperature, Brightness: r.Brightness}
	if r.Time != "" {
		t, err := schedule.ParseTimeOfDay(r.Time)
		if err != nil {
			return schedule.Entry{}, err
		}
		entry.Time = t
	}
	return entry, nil
}

type automaticRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// buildSchedules validates an uploaded schedule set. Unlike the config file,
// an upload is all or nothing.
func buildSchedules(defs []schedule.Definition) ([]schedule.Schedule, error) {
	schedules := make([]schedule.Schedule, 0, len(defs))
	seen := map[string]bool{}
	var errs []error
	for _, def := range defs {
		sch, err := schedule.FromDefinition(def)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[sch.Name()] {
			errs = append(errs, errors.New("duplicate schedule name "+strconv.Quote(sch.Name())))
			continue
		}
		seen[sch.Name()] = true
		schedules = append(schedules, sch)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return schedules, nil
}
