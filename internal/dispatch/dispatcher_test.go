package dispatch_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wheelibin/daylight/internal/dispatch"
	"github.com/wheelibin/daylight/internal/hue"
	"github.com/wheelibin/daylight/internal/models"
	"github.com/wheelibin/daylight/internal/schedule"

	"github.com/wheelibin/daylight/mocks"
)

func newDispatcher(t *testing.T) (*dispatch.Dispatcher, *mocks.MockDispatchHueApiService, *mocks.MockDispatchLightRepo) {
	mockHueService := mocks.NewMockDispatchHueApiService(t)
	mockLightRepo := mocks.NewMockDispatchLightRepo(t)
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	return dispatch.NewDispatcher(logger, mockHueService, mockLightRepo, time.Millisecond), mockHueService, mockLightRepo
}

func automaticLight(id int, ct int, bri int) models.DaylightLight {
	return models.DaylightLight{ID: id, Automatic: true, TargetColorTemperature: ct, TargetBrightness: bri}
}

func Test_DiscoverScenes(t *testing.T) {

	t.Run("should store scenes returned from hue service", func(t *testing.T) {
		t.Parallel()
		// arrange
		d, mockHueService, mockLightRepo := newDispatcher(t)
		scenes := []models.DaylightScene{{ID: "001", ScheduleName: "bedroom"}}
		mockHueService.On("DiscoverScenes", []string{"bedroom"}).Return(scenes, nil)
		mockLightRepo.On("AddScenes", scenes).Return(nil)

		// act
		err := d.DiscoverScenes([]string{"bedroom"})

		// assert
		assert.NoError(t, err)
	})

	t.Run("hue error: nothing stored", func(t *testing.T) {
		t.Parallel()
		d, mockHueService, mockLightRepo := newDispatcher(t)
		mockHueService.On("DiscoverScenes", mock.Anything).Return(nil, errors.New("an error"))

		err := d.DiscoverScenes([]string{"bedroom"})

		assert.EqualError(t, err, "an error")
		mockLightRepo.AssertNotCalled(t, "AddScenes", mock.Anything)
	})
}

func Test_EnableAutomatic(t *testing.T) {
	lightID := 3
	target := schedule.LightState{ColorTemperature: 2000, Brightness: 60}

	t.Run("should call hue service to update the light", func(t *testing.T) {
		t.Parallel()
		// arrange
		d, mockHueService, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("SetAutomatic", lightID, true).Return(true, nil)

		// expectations
		mockLightRepo.On("GetLight", lightID).Return(automaticLight(lightID, 2000, 60), true, nil)
		mockHueService.On("UpdateLightState", lightID, target).Return(nil)
		mockLightRepo.On("MarkLightAsUpdated", lightID).Return(nil)

		// act
		err := d.SetAutomatic(context.Background(), lightID, true)

		// assert
		assert.NoError(t, err)
	})

	t.Run("error getting target: should do nothing and return the error", func(t *testing.T) {
		t.Parallel()
		d, mockHueService, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("SetAutomatic", lightID, true).Return(true, nil)
		mockLightRepo.On("GetLight", lightID).Return(models.DaylightLight{}, false, errors.New("an error"))

		err := d.SetAutomatic(context.Background(), lightID, true)

		assert.EqualError(t, err, "an error")
		mockLightRepo.AssertNotCalled(t, "MarkLightAsUpdated", lightID)
		mockHueService.AssertNotCalled(t, "UpdateLightState", lightID, mock.Anything)
	})

	t.Run("unknown light: ErrUnknownLight", func(t *testing.T) {
		t.Parallel()
		d, _, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("SetAutomatic", lightID, true).Return(true, nil)
		mockLightRepo.On("GetLight", lightID).Return(models.DaylightLight{}, false, nil)

		assert.ErrorIs(t, d.SetAutomatic(context.Background(), lightID, true), dispatch.ErrUnknownLight)
	})

	t.Run("light unreachable: should set as unreachable in db", func(t *testing.T) {
		t.Parallel()
		d, mockHueService, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("SetAutomatic", lightID, true).Return(true, nil)
		mockLightRepo.On("GetLight", lightID).Return(automaticLight(lightID, 2000, 60), true, nil)
		mockHueService.On("UpdateLightState", lightID, target).Return(hue.ErrUnreachable)
		mockLightRepo.On("SetLightUnreachable", lightID).Return(nil)

		assert.NoError(t, d.SetAutomatic(context.Background(), lightID, true))
		mockLightRepo.AssertNotCalled(t, "MarkLightAsUpdated", lightID)
	})

	t.Run("light off: left pending", func(t *testing.T) {
		t.Parallel()
		d, mockHueService, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("SetAutomatic", lightID, true).Return(true, nil)
		mockLightRepo.On("GetLight", lightID).Return(automaticLight(lightID, 2000, 60), true, nil)
		mockHueService.On("UpdateLightState", lightID, target).Return(hue.ErrLightOff)

		assert.NoError(t, d.SetAutomatic(context.Background(), lightID, true))
		mockLightRepo.AssertNotCalled(t, "MarkLightAsUpdated", lightID)
		mockLightRepo.AssertNotCalled(t, "SetLightUnreachable", lightID)
	})

	t.Run("bridge error: returned, light not marked", func(t *testing.T) {
		t.Parallel()
		d, mockHueService, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("SetAutomatic", lightID, true).Return(true, nil)
		mockLightRepo.On("GetLight", lightID).Return(automaticLight(lightID, 2000, 60), true, nil)
		mockHueService.On("UpdateLightState", lightID, target).Return(errors.New("timeout"))

		assert.EqualError(t, d.SetAutomatic(context.Background(), lightID, true), "timeout")
		mockLightRepo.AssertNotCalled(t, "MarkLightAsUpdated", lightID)
	})
}

func Test_Dispatch(t *testing.T) {
	commands := []models.LightCommand{
		{LightID: 1, ScheduleName: "bedroom", ColorTemperature: 2000, Brightness: 60},
		{LightID: 2, ScheduleName: "bedroom", ColorTemperature: 2000, Brightness: 60},
		{LightID: 2, ScheduleName: "hall", ColorTemperature: 2750, Brightness: 100},
	}

	t.Run("stores targets then updates scenes and lights that need it", func(t *testing.T) {
		t.Parallel()
		// arrange
		d, mockHueService, mockLightRepo := newDispatcher(t)
		scene := models.DaylightScene{ID: "s1", ScheduleName: "bedroom", LightIDs: []int{1}}
		bedroom := schedule.LightState{ColorTemperature: 2000, Brightness: 60}
		hall := schedule.LightState{ColorTemperature: 2750, Brightness: 100}

		mockLightRepo.On("UpsertTargets", commands).Return(nil).Once()
		mockLightRepo.On("UpdateSceneTargets", "bedroom", bedroom).Return(nil).Once()
		mockLightRepo.On("UpdateSceneTargets", "hall", hall).Return(nil).Once()
		mockLightRepo.On("GetScenesNeedingUpdate").Return([]models.DaylightScene{scene}, []schedule.LightState{bedroom}, nil)
		mockHueService.On("UpdateSceneState", scene, bedroom).Return(nil).Once()
		mockLightRepo.On("MarkSceneAsUpdated", "s1").Return(nil).Once()

		// only light 2 has a changed target
		mockLightRepo.On("GetAllControllingLightIDs").Return([]int{2}, nil)
		mockLightRepo.On("GetLight", 2).Return(automaticLight(2, 2750, 100), true, nil)
		mockHueService.On("UpdateLightState", 2, hall).Return(nil).Once()
		mockLightRepo.On("MarkLightAsUpdated", 2).Return(nil).Once()

		// act
		err := d.Dispatch(context.Background(), commands)

		// assert
		assert.NoError(t, err)
		mockHueService.AssertNotCalled(t, "UpdateLightState", 1, mock.Anything)
	})

	t.Run("one light failing does not stop the others", func(t *testing.T) {
		t.Parallel()
		d, mockHueService, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("UpsertTargets", mock.Anything).Return(nil)
		mockLightRepo.On("UpdateSceneTargets", mock.Anything, mock.Anything).Return(nil)
		mockLightRepo.On("GetScenesNeedingUpdate").Return([]models.DaylightScene{}, []schedule.LightState{}, nil)
		mockLightRepo.On("GetAllControllingLightIDs").Return([]int{1, 2}, nil)
		mockLightRepo.On("GetLight", 1).Return(automaticLight(1, 2000, 60), true, nil)
		mockLightRepo.On("GetLight", 2).Return(automaticLight(2, 2750, 100), true, nil)
		boom := errors.New("boom")
		mockHueService.On("UpdateLightState", 1, mock.Anything).Return(boom)
		mockHueService.On("UpdateLightState", 2, mock.Anything).Return(nil)
		mockLightRepo.On("MarkLightAsUpdated", 2).Return(nil)

		err := d.Dispatch(context.Background(), commands)

		assert.ErrorIs(t, err, boom)
	})

	t.Run("error storing targets: nothing sent", func(t *testing.T) {
		t.Parallel()
		d, mockHueService, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("UpsertTargets", mock.Anything).Return(errors.New("disk full"))

		err := d.Dispatch(context.Background(), commands)

		assert.EqualError(t, err, "disk full")
		mockHueService.AssertNotCalled(t, "UpdateLightState", mock.Anything, mock.Anything)
	})
}

func Test_Activate(t *testing.T) {
	target := schedule.LightState{ColorTemperature: 4000, Brightness: 20}

	t.Run("stores a manual target and sends it to every light", func(t *testing.T) {
		t.Parallel()
		d, mockHueService, mockLightRepo := newDispatcher(t)
		for _, id := range []int{1, 2} {
			mockLightRepo.On("SetManualTarget", id, target).Return(nil).Once()
			mockHueService.On("UpdateLightState", id, target).Return(nil).Once()
			mockLightRepo.On("MarkLightAsUpdated", id).Return(nil).Once()
		}

		assert.NoError(t, d.Activate(context.Background(), target, []int{1, 2}))
		// the automatic mode check is bypassed
		mockLightRepo.AssertNotCalled(t, "GetLight", mock.Anything)
	})

	t.Run("unreachable light is recorded", func(t *testing.T) {
		t.Parallel()
		d, mockHueService, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("SetManualTarget", 1, target).Return(nil)
		mockHueService.On("UpdateLightState", 1, target).Return(hue.ErrUnreachable)
		mockLightRepo.On("SetLightUnreachable", 1).Return(nil)

		assert.NoError(t, d.Activate(context.Background(), target, []int{1}))
	})
}

func Test_SetAutomatic(t *testing.T) {

	t.Run("enabling sends the scheduled target straight away", func(t *testing.T) {
		t.Parallel()
		d, mockHueService, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("SetAutomatic", 1, true).Return(true, nil)
		mockLightRepo.On("GetLight", 1).Return(automaticLight(1, 2000, 60), true, nil)
		mockHueService.On("UpdateLightState", 1, schedule.LightState{ColorTemperature: 2000, Brightness: 60}).Return(nil)
		mockLightRepo.On("MarkLightAsUpdated", 1).Return(nil)

		assert.NoError(t, d.SetAutomatic(context.Background(), 1, true))
	})

	t.Run("disabling only changes the mode", func(t *testing.T) {
		t.Parallel()
		d, mockHueService, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("SetAutomatic", 1, false).Return(true, nil)

		assert.NoError(t, d.SetAutomatic(context.Background(), 1, false))
		mockHueService.AssertNotCalled(t, "UpdateLightState", mock.Anything, mock.Anything)
	})

	t.Run("unknown light: ErrUnknownLight", func(t *testing.T) {
		t.Parallel()
		d, _, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("SetAutomatic", 9, true).Return(false, nil)

		assert.ErrorIs(t, d.SetAutomatic(context.Background(), 9, true), dispatch.ErrUnknownLight)
	})
}

func Test_HandleLightEvent(t *testing.T) {

	t.Run("light switched on: resent its target", func(t *testing.T) {
		t.Parallel()
		d, mockHueService, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("GetLight", 1).Return(automaticLight(1, 2000, 60), true, nil)
		mockLightRepo.On("ForgetLastUpdate", 1).Return(nil)
		mockHueService.On("UpdateLightState", 1, schedule.LightState{ColorTemperature: 2000, Brightness: 60}).Return(nil)
		mockLightRepo.On("MarkLightAsUpdated", 1).Return(nil)

		d.HandleLightEvent(hue.LightEvent{LightID: 1, TurnedOn: true})
	})

	t.Run("light lost connectivity: marked unreachable", func(t *testing.T) {
		t.Parallel()
		d, _, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("GetLight", 1).Return(automaticLight(1, 2000, 60), true, nil)
		mockLightRepo.On("SetLightUnreachable", 1).Return(nil)

		d.HandleLightEvent(hue.LightEvent{LightID: 1, Unreachable: true})
	})

	t.Run("light without a schedule: ignored", func(t *testing.T) {
		t.Parallel()
		d, mockHueService, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("GetLight", 7).Return(models.DaylightLight{}, false, nil)

		d.HandleLightEvent(hue.LightEvent{LightID: 7, TurnedOn: true})
		mockLightRepo.AssertNotCalled(t, "ForgetLastUpdate", mock.Anything)
		mockHueService.AssertNotCalled(t, "UpdateLightState", mock.Anything, mock.Anything)
	})

	t.Run("light switched off: last update forgotten, nothing sent", func(t *testing.T) {
		t.Parallel()
		d, mockHueService, mockLightRepo := newDispatcher(t)
		mockLightRepo.On("GetLight", 1).Return(automaticLight(1, 2000, 60), true, nil)
		mockLightRepo.On("ForgetLastUpdate", 1).Return(nil).Once()

		d.HandleLightEvent(hue.LightEvent{LightID: 1, TurnedOff: true})
		mockHueService.AssertNotCalled(t, "UpdateLightState", mock.Anything, mock.Anything)
	})

	t.Run("manual light switched on: activated entry sent", func(t *testing.T) {
		t.Parallel()
		// arrange
		d, mockHueService, mockLightRepo := newDispatcher(t)
		manual := automaticLight(1, 4000, 20)
		manual.Automatic = false
		mockLightRepo.On("GetLight", 1).Return(manual, true, nil)
		mockLightRepo.On("ForgetLastUpdate", 1).Return(nil).Once()
		mockHueService.On("UpdateLightState", 1, schedule.LightState{ColorTemperature: 4000, Brightness: 20}).Return(nil).Once()
		mockLightRepo.On("MarkLightAsUpdated", 1).Return(nil).Once()

		// act
		d.HandleLightEvent(hue.LightEvent{LightID: 1, TurnedOn: true})
	})
}

func Test_Activate_lightOff(t *testing.T) {
	// arrange
	d, mockHueService, mockLightRepo := newDispatcher(t)
	target := schedule.LightState{ColorTemperature: 4000, Brightness: 20}
	manual := automaticLight(1, 4000, 20)
	manual.Automatic = false

	mockLightRepo.On("SetManualTarget", 1, target).Return(nil).Once()
	mockHueService.On("UpdateLightState", 1, target).Return(hue.ErrLightOff).Once()

	// act: activated while off, then switched on
	err := d.Activate(context.Background(), target, []int{1})

	mockLightRepo.On("GetLight", 1).Return(manual, true, nil)
	mockLightRepo.On("ForgetLastUpdate", 1).Return(nil).Once()
	mockHueService.On("UpdateLightState", 1, target).Return(nil).Once()
	mockLightRepo.On("MarkLightAsUpdated", 1).Return(nil).Once()
	d.HandleLightEvent(hue.LightEvent{LightID: 1, TurnedOn: true})

	// assert
	assert.NoError(t, err)
	mockHueService.AssertNumberOfCalls(t, "UpdateLightState", 2)
}

func Test_Dispatch_eventsHandledDuringRun(t *testing.T) {
	// arrange
	mockHueService := mocks.NewMockDispatchHueApiService(t)
	mockLightRepo := mocks.NewMockDispatchLightRepo(t)
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	d := dispatch.NewDispatcher(logger, mockHueService, mockLightRepo, 500*time.Millisecond)

	mockLightRepo.On("UpsertTargets", mock.Anything).Return(nil)
	mockLightRepo.On("UpdateSceneTargets", mock.Anything, mock.Anything).Return(nil)
	mockLightRepo.On("GetScenesNeedingUpdate").Return([]models.DaylightScene{}, []schedule.LightState{}, nil)
	mockLightRepo.On("GetAllControllingLightIDs").Return([]int{1, 2}, nil)
	mockLightRepo.On("GetLight", 1).Return(automaticLight(1, 2000, 60), true, nil)
	mockLightRepo.On("GetLight", 2).Return(automaticLight(2, 2000, 60), true, nil)
	mockLightRepo.On("MarkLightAsUpdated", mock.Anything).Return(nil)
	mockLightRepo.On("GetLight", 3).Return(automaticLight(3, 2000, 60), true, nil)
	mockLightRepo.On("SetLightUnreachable", 3).Return(nil).Once()

	firstSent := make(chan struct{})
	mockHueService.On("UpdateLightState", 1, mock.Anything).Return(nil).Once().Run(func(mock.Arguments) {
		close(firstSent)
	})
	mockHueService.On("UpdateLightState", 2, mock.Anything).Return(nil).Once()

	dispatchDone := make(chan struct{})
	go func() {
		_ = d.Dispatch(context.Background(), []models.LightCommand{{LightID: 1}, {LightID: 2}})
		close(dispatchDone)
	}()

	// act: an event arriving while the run waits between lights
	<-firstSent
	eventDone := make(chan struct{})
	go func() {
		d.HandleLightEvent(hue.LightEvent{LightID: 3, Unreachable: true})
		close(eventDone)
	}()

	// assert
	select {
	case <-eventDone:
	case <-dispatchDone:
		t.Fatal("event waited for the whole dispatch run")
	}
	<-dispatchDone
}
