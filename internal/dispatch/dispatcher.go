// Package dispatch applies light commands to the bridge.
//
// All bridge traffic goes through one Dispatcher which serialises it and
// spaces calls out with a throttled worker. Targets are stored before they
// are sent so a later command for the same light always wins. The lock is
// held per bridge call, not per run, so bridge events and activations are
// handled between the calls of a long run.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/daylight/internal/concurrency"
	"github.com/wheelibin/daylight/internal/hue"
	"github.com/wheelibin/daylight/internal/models"
	"github.com/wheelibin/daylight/internal/schedule"
)

var ErrUnknownLight = errors.New("unknown light")

type hueApiService interface {
	UpdateLightState(lightID int, target schedule.LightState) error
	DiscoverScenes(scheduleNames []string) ([]models.DaylightScene, error)
	UpdateSceneState(scene models.DaylightScene, target schedule.LightState) error
}

type lightRepo interface {
	UpsertTargets(commands []models.LightCommand) error
	SetManualTarget(lightID int, target schedule.LightState) error
	SetAutomatic(lightID int, automatic bool) (bool, error)
	ForgetLastUpdate(lightID int) error
	SetLightUnreachable(lightID int) error
	MarkLightAsUpdated(lightID int) error
	GetLight(lightID int) (models.DaylightLight, bool, error)
	GetAllControllingLightIDs() ([]int, error)
	AddScenes(scenes []models.DaylightScene) error
	UpdateSceneTargets(scheduleName string, target schedule.LightState) error
	GetScenesNeedingUpdate() ([]models.DaylightScene, []schedule.LightState, error)
	MarkSceneAsUpdated(sceneID string) error
}

type Dispatcher struct {
	logger        *log.Logger
	hueApiService hueApiService
	lightRepo     lightRepo
	interval      time.Duration

	mu sync.Mutex
}

func NewDispatcher(
	logger *log.Logger,
	hueApiService hueApiService,
	lightRepo lightRepo,
	interval time.Duration,
) *Dispatcher {
	return &Dispatcher{
		logger:        logger,
		hueApiService: hueApiService,
		lightRepo:     lightRepo,
		interval:      interval,
	}
}

// DiscoverScenes looks up the bridge scenes that follow the named schedules.
func (d *Dispatcher) DiscoverScenes(scheduleNames []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	scenes, err := d.hueApiService.DiscoverScenes(scheduleNames)
	if err != nil {
		return err
	}
	d.logger.Info("Discovered scenes", "count", len(scenes))
	return d.lightRepo.AddScenes(scenes)
}

// Dispatch stores the commands as targets, in order, then sends every
// changed target to the bridge.
func (d *Dispatcher) Dispatch(ctx context.Context, commands []models.LightCommand) error {
	if err := d.storeTargets(commands); err != nil {
		return err
	}

	if err := d.setAllScenesToTarget(ctx); err != nil {
		d.logger.Error(err)
	}

	d.mu.Lock()
	lightIDs, err := d.lightRepo.GetAllControllingLightIDs()
	d.mu.Unlock()
	if err != nil {
		return err
	}

	tw := concurrency.NewThrottledWorker(d.interval, func(lightID int) error {
		d.mu.Lock()
		defer d.mu.Unlock()
		return d.setLightStateToTarget(lightID)
	})
	return tw.Run(ctx, lightIDs)
}

func (d *Dispatcher) storeTargets(commands []models.LightCommand) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.lightRepo.UpsertTargets(commands); err != nil {
		return err
	}

	sceneTargets := map[string]schedule.LightState{}
	for _, cmd := range commands {
		sceneTargets[cmd.ScheduleName] = schedule.LightState{ColorTemperature: cmd.ColorTemperature, Brightness: cmd.Brightness}
	}
	for name, target := range sceneTargets {
		if err := d.lightRepo.UpdateSceneTargets(name, target); err != nil {
			d.logger.Error(err)
		}
	}
	return nil
}

func (d *Dispatcher) setAllScenesToTarget(ctx context.Context) error {
	d.mu.Lock()
	scenes, targets, err := d.lightRepo.GetScenesNeedingUpdate()
	d.mu.Unlock()
	if err != nil {
		return err
	}

	tw := concurrency.NewThrottledWorker(d.interval, func(st lo.Tuple2[models.DaylightScene, schedule.LightState]) error {
		d.mu.Lock()
		defer d.mu.Unlock()
		if err := d.hueApiService.UpdateSceneState(st.A, st.B); err != nil {
			return err
		}
		return d.lightRepo.MarkSceneAsUpdated(st.A.ID)
	})
	return tw.Run(ctx, lo.Zip2(scenes, targets))
}

// setLightStateToTarget sends the stored target of an automatic light to the bridge.
func (d *Dispatcher) setLightStateToTarget(lightID int) error {
	light, found, err := d.lightRepo.GetLight(lightID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("Error setting light (%d) to target: %w", lightID, ErrUnknownLight)
	}
	if !light.Automatic {
		d.logger.Debug("light is in manual mode, not updating", "light", lightID)
		return nil
	}

	d.logger.Debug("setting light to target", "light", lightID, "target", targetOf(light))

	return d.send(lightID, targetOf(light))
}

func targetOf(light models.DaylightLight) schedule.LightState {
	return schedule.LightState{ColorTemperature: light.TargetColorTemperature, Brightness: light.TargetBrightness}
}

// send applies target and records the outcome.
func (d *Dispatcher) send(lightID int, target schedule.LightState) error {
	err := d.hueApiService.UpdateLightState(lightID, target)
	switch {
	case errors.Is(err, hue.ErrUnreachable):
		d.logger.Warn("light is unreachable", "light", lightID)
		return d.lightRepo.SetLightUnreachable(lightID)
	case errors.Is(err, hue.ErrLightOff):
		// left pending, sent again when the light is switched on
		d.logger.Debug("light is off", "light", lightID)
		return nil
	case err != nil:
		return err
	}

	// mark the light as updated (clearing unreachable)
	return d.lightRepo.MarkLightAsUpdated(lightID)
}

// Activate applies target to each light straight away and switches the
// lights to manual mode so scheduled targets no longer replace it. A light
// that is off receives the target when it is next switched on.
func (d *Dispatcher) Activate(ctx context.Context, target schedule.LightState, lightIDs []int) error {
	d.mu.Lock()
	for _, lightID := range lightIDs {
		if err := d.lightRepo.SetManualTarget(lightID, target); err != nil {
			d.mu.Unlock()
			return err
		}
	}
	d.mu.Unlock()

	d.logger.Info("Activating entry", "lights", lightIDs, "colorTemperature", target.ColorTemperature, "brightness", target.Brightness)

	tw := concurrency.NewThrottledWorker(d.interval, func(lightID int) error {
		d.mu.Lock()
		defer d.mu.Unlock()
		return d.send(lightID, target)
	})
	return tw.Run(ctx, lightIDs)
}

// SetAutomatic switches a light between automatic and manual mode. A light
// returning to automatic mode is sent its scheduled target immediately.
func (d *Dispatcher) SetAutomatic(ctx context.Context, lightID int, enabled bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	found, err := d.lightRepo.SetAutomatic(lightID, enabled)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("Error setting automatic mode of light (%d): %w", lightID, ErrUnknownLight)
	}

	d.logger.Info("Automatic mode changed", "light", lightID, "automatic", enabled)

	if !enabled {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.setLightStateToTarget(lightID)
}

// HandleLightEvent reacts to a change reported by the bridge.
func (d *Dispatcher) HandleLightEvent(event hue.LightEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	light, found, err := d.lightRepo.GetLight(event.LightID)
	if err != nil {
		d.logger.Error(err)
		return
	}
	if !found {
		// not a light we are controlling so ignore
		d.logger.Debug("event received for a light without a schedule, ignoring", "light", event.LightID)
		return
	}

	switch {
	case event.Unreachable:
		d.logger.Debug("light became unreachable", "light", event.LightID)
		if err := d.lightRepo.SetLightUnreachable(event.LightID); err != nil {
			d.logger.Error(err)
		}

	case event.TurnedOff:
		// the bridge may reset the light when power returns, so the target
		// is sent again once it is back on
		d.logger.Debug("light was switched off", "light", event.LightID)
		if err := d.lightRepo.ForgetLastUpdate(event.LightID); err != nil {
			d.logger.Error(err)
		}

	case event.TurnedOn:
		// manual lights get their activated entry, automatic ones their scheduled target
		d.logger.Debug("light was switched on, setting to target", "light", event.LightID, "automatic", light.Automatic)
		if err := d.lightRepo.ForgetLastUpdate(event.LightID); err != nil {
			d.logger.Error(err)
			return
		}
		if err := d.send(event.LightID, targetOf(light)); err != nil {
			d.logger.Error(err)
		}
	}
}
