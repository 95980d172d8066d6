package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/wheelibin/daylight/internal/constants"
	"github.com/wheelibin/daylight/internal/schedule"
	"github.com/wheelibin/daylight/internal/sun"
)

var logLevels = map[string]log.Level{
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
	"fatal": log.FatalLevel,
}

type Config struct {
	BridgeIP          string
	HueApplicationKey string

	Latitude  float64
	Longitude float64
	SunClamps sun.Clamps

	HTTPAddress    string
	DatabasePath   string
	LogFile        string
	LogLevel       log.Level
	UpdateInterval time.Duration
	// subscribe to the bridge event stream to react to lights being switched on
	BridgeEvents bool

	Schedules []schedule.Schedule
	// set when no schedule was configured and the built in one is used,
	// it has no lights until they are assigned
	UsingDefaultSchedule bool
}

// InitialiseConfig finds and reads the config file. An explicit configFile
// overrides the search paths.
func InitialiseConfig(configFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")                  // name of config file (without extension)
		v.SetConfigType("json")                    // REQUIRED if the config file does not have the extension in the name
		v.AddConfigPath("/etc/daylight/")          // path to look for the config file in
		v.AddConfigPath("$HOME/.config/daylight/") // call multiple times to add many search paths
		v.AddConfigPath(".")                       // optionally look for config in the working directory
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("fatal error config file: %w", err)
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("httpAddress", constants.DefaultHTTPAddress)
	v.SetDefault("databasePath", constants.DefaultDatabasePath)
	v.SetDefault("logLevel", "info")
	v.SetDefault("updateInterval", constants.MainUpdateInterval)
	v.SetDefault("bridgeEvents", true)
}

// Load builds the Config from v. A schedule that fails validation is logged
// and skipped, the others are kept.
func Load(logger *log.Logger, v *viper.Viper) (*Config, error) {
	setDefaults(v)

	var errs []error

	lat, lng, err := sun.ParseLocation(v.GetString("geoLocation"))
	if err != nil {
		errs = append(errs, err)
	}

	level, ok := logLevels[strings.ToLower(v.GetString("logLevel"))]
	if !ok {
		errs = append(errs, fmt.Errorf("Error reading logLevel: unknown level %q, expected one of %v", v.GetString("logLevel"), lo.Keys(logLevels)))
	}

	interval := v.GetDuration("updateInterval")
	if interval <= 0 {
		errs = append(errs, fmt.Errorf("Error reading updateInterval: must be positive, got %q", v.GetString("updateInterval")))
	}

	clamps := sun.Clamps{}
	if err := v.UnmarshalKey("sun", &clamps); err != nil {
		errs = append(errs, fmt.Errorf("Error reading sun clamps: %w", err))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	cfg := &Config{
		BridgeIP:          v.GetString("bridgeIp"),
		HueApplicationKey: v.GetString("hueApplicationKey"),
		Latitude:          lat,
		Longitude:         lng,
		SunClamps:         clamps,
		HTTPAddress:       v.GetString("httpAddress"),
		DatabasePath:      v.GetString("databasePath"),
		LogFile:           v.GetString("logFile"),
		LogLevel:          level,
		UpdateInterval:    interval,
		BridgeEvents:      v.GetBool("bridgeEvents"),
	}

	cfg.Schedules = DecodeSchedules(logger, v.Get("schedules"))
	if len(cfg.Schedules) == 0 {
		logger.Warn("No valid schedules configured, using the default schedule")
		def, err := schedule.FromDefinition(schedule.DefaultDefinition())
		if err != nil {
			return nil, err
		}
		cfg.Schedules = []schedule.Schedule{def}
		cfg.UsingDefaultSchedule = true
	}

	return cfg, nil
}

// DecodeSchedules converts raw schedule definitions (as read from JSON) into
// schedules, logging and skipping any that are invalid.
func DecodeSchedules(logger *log.Logger, raw any) []schedule.Schedule {
	if raw == nil {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		logger.Error("Error reading schedules: expected a list", "type", fmt.Sprintf("%T", raw))
		return nil
	}

	schedules := []schedule.Schedule{}
	seen := map[string]bool{}
	for i, item := range items {
		def := schedule.Definition{}
		if err := mapstructure.Decode(item, &def); err != nil {
			logger.Error("Error reading schedule, skipping it", "index", i, "err", err)
			continue
		}

		sch, err := schedule.FromDefinition(def)
		if err != nil {
			logger.Error("Invalid schedule, skipping it", "index", i, "err", err)
			continue
		}

		if seen[sch.Name()] {
			logger.Error("Duplicate schedule name, skipping it", "index", i, "name", sch.Name())
			continue
		}
		seen[sch.Name()] = true

		schedules = append(schedules, sch)
	}
	return schedules
}
