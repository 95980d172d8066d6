// Package driver runs the periodic resolution of every schedule and hands
// the resulting light commands to the dispatcher.
package driver

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/wheelibin/daylight/internal/models"
	"github.com/wheelibin/daylight/internal/schedule"
)

type dispatcher interface {
	Dispatch(ctx context.Context, commands []models.LightCommand) error
	Activate(ctx context.Context, target schedule.LightState, lightIDs []int) error
	SetAutomatic(ctx context.Context, lightID int, enabled bool) error
}

type sunSource interface {
	Times(date time.Time) models.SunTimes
}

type publisher interface {
	PublishStates(at time.Time, states []models.ScheduleState)
}

type Driver struct {
	logger     *log.Logger
	dispatcher dispatcher
	sun        sunSource
	publisher  publisher
	interval   time.Duration

	schedules atomic.Pointer[[]schedule.Schedule]
}

// NewDriver builds a driver. publisher may be nil.
func NewDriver(
	logger *log.Logger,
	schedules []schedule.Schedule,
	dispatcher dispatcher,
	sun sunSource,
	publisher publisher,
	interval time.Duration,
) *Driver {
	d := &Driver{
		logger:     logger,
		dispatcher: dispatcher,
		sun:        sun,
		publisher:  publisher,
		interval:   interval,
	}
	d.ReplaceSchedules(schedules)
	return d
}

// ReplaceSchedules swaps the whole schedule set. Ticks already running keep the previous set.
func (d *Driver) ReplaceSchedules(schedules []schedule.Schedule) {
	s := append([]schedule.Schedule{}, schedules...)
	d.schedules.Store(&s)
	d.logger.Info("Schedules loaded", "count", len(s), "names", lo.Map(s, func(sch schedule.Schedule, _ int) string { return sch.Name() }))
}

func (d *Driver) Schedules() []schedule.Schedule {
	return append([]schedule.Schedule{}, *d.schedules.Load()...)
}

// Resolve computes the state of every schedule at now, one goroutine per schedule.
func (d *Driver) Resolve(ctx context.Context, now time.Time) ([]models.ScheduleState, error) {
	schedules := *d.schedules.Load()
	sunTimes := d.sun.Times(now)

	states := make([]models.ScheduleState, len(schedules))

	g, gctx := errgroup.WithContext(ctx)
	for i, sch := range schedules {
		i, sch := i, sch
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res := schedule.ResolveSchedule(sch, now, sunTimes.Sunrise, sunTimes.Sunset)
			if res.Warning != nil {
				d.logger.Warn("Degenerate sun window", "schedule", sch.Name(), "warning", res.Warning)
			}
			if res.Fallback {
				d.logger.Debug("Segment has no entries, using default", "schedule", sch.Name(), "segment", res.Segment)
			}

			states[i] = models.ScheduleState{
				Name:             sch.Name(),
				LightIDs:         sch.LightIDs(),
				Segment:          res.Segment.String(),
				Fallback:         res.Fallback,
				ColorTemperature: res.Target.ColorTemperature,
				Brightness:       res.Target.Brightness,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return states, nil
}

// Tick resolves every schedule at now and dispatches one command per light.
// A light in several schedules gets the command of the last one.
func (d *Driver) Tick(ctx context.Context, now time.Time) error {
	states, err := d.Resolve(ctx, now)
	if err != nil {
		return err
	}

	commands := []models.LightCommand{}
	for _, st := range states {
		d.logger.Info("Calculated target state", "schedule", st.Name, "segment", st.Segment,
			"colorTemperature", st.ColorTemperature, "brightness", st.Brightness)

		for _, id := range st.LightIDs {
			commands = append(commands, models.LightCommand{
				LightID:          id,
				ScheduleName:     st.Name,
				ColorTemperature: st.ColorTemperature,
				Brightness:       st.Brightness,
			})
		}
	}

	if d.publisher != nil {
		d.publisher.PublishStates(now, states)
	}

	return d.dispatcher.Dispatch(ctx, commands)
}

// Run ticks once straight away then every interval until ctx is cancelled.
func (d *Driver) Run(ctx context.Context) {
	d.logger.Debug("Driver.Run")

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.tick(ctx, time.Now())

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Driver.Run: stop signal received")
			return

		case t := <-ticker.C:
			d.logger.Debug("Driver.Run: calculating new target states...", "t", t)
			d.tick(ctx, t)
		}
	}
}

func (d *Driver) tick(ctx context.Context, now time.Time) {
	if err := d.Tick(ctx, now); err != nil && ctx.Err() == nil {
		d.logger.Error(err)
	}
}

// ActivateEntryNow applies entry, as is, to each light immediately. No
// segment selection or interpolation takes place and the lights leave
// automatic mode until SetAutomatic re-enables it.
func (d *Driver) ActivateEntryNow(ctx context.Context, entry schedule.Entry, lightIDs []int) error {
	if err := schedule.ValidateActivation(entry, lightIDs); err != nil {
		return err
	}
	return d.dispatcher.Activate(ctx, entry.State(), lo.Uniq(lightIDs))
}

// SetAutomatic switches a light back to (or out of) following its schedule.
func (d *Driver) SetAutomatic(ctx context.Context, lightID int, enabled bool) error {
	return d.dispatcher.SetAutomatic(ctx, lightID, enabled)
}
