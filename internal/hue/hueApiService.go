package hue

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/amimof/huego"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/daylight/internal/constants"
	"github.com/wheelibin/daylight/internal/models"
	"github.com/wheelibin/daylight/internal/schedule"
)

var (
	ErrUnreachable = errors.New("unreachable")
	// the light is switched off so its state was left alone
	ErrLightOff = errors.New("light is off")
)

// Bridge is the part of *huego.Bridge the service uses.
type Bridge interface {
	GetLights() ([]huego.Light, error)
	GetLight(id int) (*huego.Light, error)
	SetLightState(id int, state huego.State) (*huego.Response, error)
	GetScenes() ([]huego.Scene, error)
	SetSceneLightState(id string, lightID int, state *huego.State) (*huego.Response, error)
}

type HueAPIService struct {
	logger *log.Logger
	bridge Bridge
}

func NewHueAPIService(logger *log.Logger, bridge Bridge) *HueAPIService {
	return &HueAPIService{logger: logger, bridge: bridge}
}

// Connect builds a service talking to the bridge at host with the given user (application key).
func Connect(logger *log.Logger, host string, user string) *HueAPIService {
	return NewHueAPIService(logger, huego.New(host, user))
}

// MapColorTemperature converts kelvin into mired, limited to what the bridge accepts.
func MapColorTemperature(kelvin int) uint16 {
	kelvin = lo.Clamp(kelvin, constants.BridgeMinKelvin, constants.BridgeMaxKelvin)
	return uint16((float64(1) / float64(kelvin)) * float64(1000000))
}

// MapBrightness converts a percentage into the bridge's 1-254 scale.
// 0% maps to 1 as the bridge has no lower brightness for a light that is on.
func MapBrightness(percent int) uint8 {
	percent = lo.Clamp(percent, 0, 100)
	return uint8(lo.Max([]int{1, int(float64(percent) / float64(100) * float64(constants.BridgeMaxBrightness))}))
}

// InTolerance reports whether the current bridge state is already close enough to the target.
func InTolerance(current huego.State, ct uint16, bri uint8) bool {
	ctDiff := math.Abs(float64(current.Ct) - float64(ct))
	briDiff := math.Abs(float64(current.Bri) - float64(bri))
	return ctDiff < constants.ToleranceColourTempMired && briDiff < constants.ToleranceBrightness
}

// UpdateLightState moves a light that is on towards target.
// Returns ErrUnreachable or ErrLightOff when nothing was sent.
func (h *HueAPIService) UpdateLightState(lightID int, target schedule.LightState) error {
	light, err := h.bridge.GetLight(lightID)
	if err != nil {
		return fmt.Errorf("Error reading light (%d) from hue bridge: %w", lightID, err)
	}
	if light.State == nil || !light.State.Reachable {
		return ErrUnreachable
	}
	if !light.State.On {
		return ErrLightOff
	}

	ct := MapColorTemperature(target.ColorTemperature)
	bri := MapBrightness(target.Brightness)

	if InTolerance(*light.State, ct, bri) {
		h.logger.Debug("light already at target", "light", lightID, "ct", ct, "bri", bri)
		return nil
	}

	h.logger.Debug("updating light", "light", lightID, "ct", ct, "bri", bri)
	_, err = h.bridge.SetLightState(lightID, huego.State{On: true, Ct: ct, Bri: bri})
	if err != nil {
		return fmt.Errorf("Error setting state of light (%d): %w", lightID, err)
	}
	return nil
}

// AllLightIDs lists every light known to the bridge, in ascending order.
func (h *HueAPIService) AllLightIDs() ([]int, error) {
	lights, err := h.bridge.GetLights()
	if err != nil {
		return nil, fmt.Errorf("Error reading lights from hue bridge: %w", err)
	}
	ids := lo.Map(lights, func(l huego.Light, _ int) int { return l.ID })
	slices.Sort(ids)
	return ids, nil
}

// DiscoverScenes finds bridge scenes that follow one of the named schedules.
func (h *HueAPIService) DiscoverScenes(scheduleNames []string) ([]models.DaylightScene, error) {
	scenes, err := h.bridge.GetScenes()
	if err != nil {
		return nil, fmt.Errorf("Error reading scenes from hue bridge: %w", err)
	}

	daylightScenes := []models.DaylightScene{}

	for _, scene := range scenes {
		for _, name := range scheduleNames {
			if scene.Name != constants.ScenePrefix+name {
				continue
			}
			lightIDs := lo.FilterMap(scene.Lights, func(raw string, _ int) (int, bool) {
				id, err := strconv.Atoi(raw)
				return id, err == nil
			})
			daylightScenes = append(daylightScenes, models.DaylightScene{
				ID:           scene.ID,
				Name:         scene.Name,
				ScheduleName: name,
				LightIDs:     lightIDs,
			})
			h.logger.Debug("Found daylight scene", "name", scene.Name, "schedule", name)
		}
	}

	return daylightScenes, nil
}

// UpdateSceneState stores target as the state of every light in the scene.
func (h *HueAPIService) UpdateSceneState(scene models.DaylightScene, target schedule.LightState) error {
	state := &huego.State{
		On:  true,
		Ct:  MapColorTemperature(target.ColorTemperature),
		Bri: MapBrightness(target.Brightness),
	}

	var failed []string
	for _, lightID := range scene.LightIDs {
		if _, err := h.bridge.SetSceneLightState(scene.ID, lightID, state); err != nil {
			h.logger.Error("Error updating scene light", "scene", scene.Name, "light", lightID, "err", err)
			failed = append(failed, strconv.Itoa(lightID))
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("Error updating scene (%s) for lights %s", scene.Name, strings.Join(failed, ","))
	}
	return nil
}
