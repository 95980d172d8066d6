package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/daylight/internal/config"
	"github.com/wheelibin/daylight/internal/constants"
)

const configJSON = `{
  "bridgeIp": "192.168.1.20",
  "hueApplicationKey": "secret",
  "geoLocation": "51.5072,-0.1276",
  "logLevel": "debug",
  "updateInterval": "30s",
  "sun": { "sunriseMin": "06:00", "sunsetMax": "21:30" },
  "schedules": [
    {
      "name": "bedroom",
      "associatedDeviceIDs": [1, "2"],
      "defaultColorTemperature": 2750,
      "defaultBrightness": 100,
      "beforeSunrise": [ { "time": "4:00AM", "colorTemperature": 2000, "brightness": 60 } ],
      "afterSunset": [
        { "time": "20:00", "colorTemperature": 2300, "brightness": 80 },
        { "time": "22:00", "colorTemperature": 2000, "brightness": 60 }
      ]
    },
    {
      "name": "broken",
      "associatedDeviceIDs": [3],
      "defaultColorTemperature": 2750,
      "defaultBrightness": 150
    },
    {
      "name": "hall",
      "associatedDeviceIDs": [4],
      "defaultColorTemperature": 4000,
      "defaultBrightness": 90
    },
    {
      "name": "hall",
      "associatedDeviceIDs": [5],
      "defaultColorTemperature": 4000,
      "defaultBrightness": 90
    }
  ]
}`

func readConfig(t *testing.T, data string) *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	require.NoError(t, v.ReadConfig(strings.NewReader(data)))
	return v
}

func testLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
}

func Test_Load(t *testing.T) {

	t.Run("full config: invalid and duplicate schedules skipped", func(t *testing.T) {
		cfg, err := config.Load(testLogger(), readConfig(t, configJSON))
		require.NoError(t, err)

		assert.Equal(t, "192.168.1.20", cfg.BridgeIP)
		assert.Equal(t, "secret", cfg.HueApplicationKey)
		assert.Equal(t, 51.5072, cfg.Latitude)
		assert.Equal(t, -0.1276, cfg.Longitude)
		assert.Equal(t, "06:00", cfg.SunClamps.SunriseMin)
		assert.Equal(t, "21:30", cfg.SunClamps.SunsetMax)
		assert.Equal(t, log.DebugLevel, cfg.LogLevel)
		assert.Equal(t, 30*time.Second, cfg.UpdateInterval)
		assert.Equal(t, constants.DefaultHTTPAddress, cfg.HTTPAddress)
		assert.Equal(t, constants.DefaultDatabasePath, cfg.DatabasePath)
		assert.True(t, cfg.BridgeEvents)
		assert.False(t, cfg.UsingDefaultSchedule)

		require.Len(t, cfg.Schedules, 2)
		bedroom := cfg.Schedules[0]
		assert.Equal(t, "bedroom", bedroom.Name())
		assert.Equal(t, []int{1, 2}, bedroom.LightIDs())
		assert.Equal(t, "04:00", bedroom.BeforeSunrise()[0].Time.String())
		assert.Len(t, bedroom.AfterSunset(), 2)
		assert.Equal(t, 2750, bedroom.Daylight().ColorTemperature)

		assert.Equal(t, "hall", cfg.Schedules[1].Name())
		assert.Equal(t, []int{4}, cfg.Schedules[1].LightIDs())
	})

	t.Run("no schedules: default schedule", func(t *testing.T) {
		cfg, err := config.Load(testLogger(), readConfig(t, `{"geoLocation": "51.5,-0.1"}`))
		require.NoError(t, err)

		assert.True(t, cfg.UsingDefaultSchedule)
		require.Len(t, cfg.Schedules, 1)
		def := cfg.Schedules[0]
		assert.Equal(t, 2750, def.Daylight().ColorTemperature)
		assert.Equal(t, 100, def.Daylight().Brightness)
		assert.Equal(t, "04:00", def.BeforeSunrise()[0].Time.String())
		assert.Equal(t, 2300, def.AfterSunset()[0].ColorTemperature)
		assert.Equal(t, log.InfoLevel, cfg.LogLevel)
		assert.Equal(t, constants.MainUpdateInterval, cfg.UpdateInterval)
	})

	t.Run("invalid settings are all reported", func(t *testing.T) {
		_, err := config.Load(testLogger(), readConfig(t, `{"geoLocation": "somewhere", "logLevel": "loud"}`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "somewhere")
		assert.Contains(t, err.Error(), "loud")
	})
}

func Test_DecodeSchedules(t *testing.T) {

	t.Run("not a list: nothing decoded", func(t *testing.T) {
		assert.Empty(t, config.DecodeSchedules(testLogger(), map[string]any{"name": "x"}))
	})

	t.Run("malformed light id rejects only that schedule", func(t *testing.T) {
		raw := []any{
			map[string]any{"name": "a", "associatedDeviceIDs": []any{"lamp"}, "defaultColorTemperature": 2750, "defaultBrightness": 100},
			map[string]any{"name": "b", "associatedDeviceIDs": []any{2.0}, "defaultColorTemperature": 2750, "defaultBrightness": 100},
		}

		schedules := config.DecodeSchedules(testLogger(), raw)

		require.Len(t, schedules, 1)
		assert.Equal(t, "b", schedules[0].Name())
		assert.Equal(t, []int{2}, schedules[0].LightIDs())
	})
}

func Test_InitialiseConfig(t *testing.T) {

	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "daylight.json")
		require.NoError(t, os.WriteFile(path, []byte(configJSON), 0o600))

		v, err := config.InitialiseConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "192.168.1.20", v.GetString("bridgeIp"))
	})

	t.Run("missing file: error", func(t *testing.T) {
		_, err := config.InitialiseConfig(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}
