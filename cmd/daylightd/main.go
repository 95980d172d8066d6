package main

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/samber/lo"
	flag "github.com/spf13/pflag"
	"github.com/wheelibin/daylight/internal/config"
	"github.com/wheelibin/daylight/internal/constants"
	"github.com/wheelibin/daylight/internal/dispatch"
	"github.com/wheelibin/daylight/internal/driver"
	"github.com/wheelibin/daylight/internal/hue"
	"github.com/wheelibin/daylight/internal/repos"
	"github.com/wheelibin/daylight/internal/schedule"
	"github.com/wheelibin/daylight/internal/stream"
	"github.com/wheelibin/daylight/internal/sun"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	configFile := flag.StringP("config", "c", "", "path to the config file")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		ReportCaller:    true,
	})
	logger.Info("daylightd starting")

	// read the config file
	v, err := config.InitialiseConfig(*configFile)
	if err != nil {
		logger.Fatal(err)
	}
	cfg, err := config.Load(logger, v)
	if err != nil {
		logger.Fatal(err)
	}

	logger.SetLevel(cfg.LogLevel)
	if cfg.LogFile != "" {
		logger.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename: cfg.LogFile,
			MaxAge:   3,
		}))
	}

	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	// create/wire up services
	lightRepo, err := repos.NewLightRepo(logger, db)
	if err != nil {
		logger.Fatal(err)
	}
	hueApiService := hue.Connect(logger, cfg.BridgeIP, cfg.HueApplicationKey)
	dispatcher := dispatch.NewDispatcher(logger, hueApiService, lightRepo, constants.BridgeThrottleInterval)

	if cfg.UsingDefaultSchedule {
		cfg.Schedules = defaultScheduleForAllLights(logger, hueApiService, cfg.Schedules)
	}

	sunCalculator, err := sun.NewCalculator(logger, cfg.Latitude, cfg.Longitude, cfg.SunClamps)
	if err != nil {
		logger.Fatal(err)
	}
	if err := sunCalculator.Start(); err != nil {
		logger.Fatal(err)
	}
	defer sunCalculator.Stop()

	server := stream.NewServer(logger, lightRepo, dispatcher)

	d := driver.NewDriver(logger, cfg.Schedules, dispatcher, sunCalculator, server, cfg.UpdateInterval)

	names := lo.Map(cfg.Schedules, func(sch schedule.Schedule, _ int) string { return sch.Name() })
	if err := dispatcher.DiscoverScenes(names); err != nil {
		logger.Error("Error discovering scenes", "err", err)
	}

	if cfg.BridgeEvents {
		consumer := hue.NewHueEventConsumer(logger, cfg.BridgeIP, cfg.HueApplicationKey)
		if err := consumer.Subscribe(dispatcher.HandleLightEvent); err != nil {
			// the schedules still apply, lights switched on are picked up on the next tick
			logger.Error("Error subscribing to bridge events", "err", err)
		} else {
			defer consumer.Unsubscribe()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddress,
		Handler: server.Handler(d),
	}
	go func() {
		logger.Info("http server listening", "address", cfg.HTTPAddress)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "err", err)
			stop()
		}
	}()

	// start the light update loop, returns once a signal is received
	d.Run(ctx)

	// cleanup before exit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	server.Close()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error stopping http server", "err", err)
	}
	logger.Info("daylightd is closing")
}

// defaultScheduleForAllLights assigns every bridge light to the built in schedule.
func defaultScheduleForAllLights(logger *log.Logger, hueApiService *hue.HueAPIService, schedules []schedule.Schedule) []schedule.Schedule {
	ids, err := hueApiService.AllLightIDs()
	if err != nil {
		logger.Error("Error reading lights for the default schedule", "err", err)
		return schedules
	}

	def := schedule.DefaultDefinition()
	def.AssociatedDeviceIDs = lo.ToAnySlice(ids)
	sch, err := schedule.FromDefinition(def)
	if err != nil {
		logger.Error(err)
		return schedules
	}
	logger.Info("Default schedule controls every light", "lights", ids)
	return []schedule.Schedule{sch}
}
