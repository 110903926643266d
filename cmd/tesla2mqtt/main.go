package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/diyk/TeslaClient/internal/api"
	"github.com/diyk/TeslaClient/internal/app"
	"github.com/diyk/TeslaClient/internal/config"
	"github.com/diyk/TeslaClient/internal/mqtt"
	"github.com/diyk/TeslaClient/internal/transmission"
	"github.com/sirupsen/logrus"
)

// version is injected at build time via ldflags
var version = "dev"

func main() {
	cfg, reportMode := parseFlags()

	logger := setupLogger(cfg.Verbose)

	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}

	// Report path ----------------------------------------------------------------
	if reportMode {
		runReportMode(cfg, logger)
		return
	}

	logger.WithFields(logrus.Fields{
		"version":  version,
		"api_url":  cfg.APIURL,
		"poll":     cfg.PollInterval,
		"mqtt_int": cfg.MQTTInterval,
	}).Info("Starting tesla2mqtt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Info("Shutdown signal received")
		cancel()
	}()

	// Core clients ---------------------------------------------------------------
	apiClient := api.NewClient(cfg.APIURL, cfg.GetAPITimeout(), logger)

	// Transmitters ---------------------------------------------------------------
	var mqttTx *transmission.MQTTTransmitter
	var bridge *transmission.CommandBridge
	var logTx *transmission.LogTransmitter
	if cfg.HasMQTT() {
		mqttClient, err := mqtt.NewClient(cfg.MQTTUrl, cfg.ClientID, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to create MQTT client")
		}
		defer mqttClient.Disconnect(250)

		mqttTx = transmission.NewMQTTTransmitter(mqttClient, cfg.DiscoveryPrefix, logger)
		bridge = transmission.NewCommandBridge(mqttClient, apiClient, logger)
		logger.Info("MQTT transmitter ready")
	} else {
		logTx = transmission.NewLogTransmitter(logger)
		logger.Warn("No MQTT URL configured; snapshots will only be logged")
	}

	// Run application ------------------------------------------------------------
	app.Run(ctx, cfg, apiClient, bridge, mqttTx, logTx, logger)

	logger.Info("tesla2mqtt stopped")
}

// -----------------------------------------------------------------------------
// Helpers & Flags
// -----------------------------------------------------------------------------

func parseFlags() (*config.Config, bool) {
	cfg := config.GetDefaultConfig()

	showVersion := flag.Bool("version", false, "Show version and exit")
	report := flag.Bool("report", false, "Print each vehicle's decoded option report and exit")

	flag.StringVar(&cfg.APIURL, "api-url", getEnv("TESLA2MQTT_API_URL", cfg.APIURL), "Owner API base URL")
	flag.StringVar(&cfg.VIN, "vin", getEnv("TESLA2MQTT_VIN", cfg.VIN), "Only bridge the vehicle with this VIN")
	flag.StringVar(&cfg.MQTTUrl, "mqtt-url", getEnv("TESLA2MQTT_MQTT_URL", cfg.MQTTUrl), "MQTT URL")
	flag.StringVar(&cfg.ClientID, "client-id", getEnv("TESLA2MQTT_CLIENT_ID", cfg.ClientID), "MQTT client identifier")
	flag.StringVar(&cfg.DiscoveryPrefix, "discovery-prefix", getEnv("TESLA2MQTT_DISCOVERY_PREFIX", cfg.DiscoveryPrefix), "HA discovery prefix")
	flag.BoolVar(&cfg.Verbose, "verbose", getEnv("TESLA2MQTT_VERBOSE", "false") == "true", "Verbose logging")

	pollIntervalStr := flag.String("poll-interval", getEnv("TESLA2MQTT_POLL_INTERVAL", ""), "Vehicle poll interval (e.g. 60s)")
	mqttIntervalStr := flag.String("mqtt-interval", getEnv("TESLA2MQTT_MQTT_INTERVAL", ""), "MQTT publish interval (e.g. 60s)")
	apiTimeoutStr := flag.String("api-timeout", getEnv("TESLA2MQTT_API_TIMEOUT", ""), "API request timeout in seconds")

	flag.Parse()

	if *showVersion {
		fmt.Printf("tesla2mqtt %s\n", version)
		os.Exit(0)
	}

	// Duration overrides
	if *pollIntervalStr != "" {
		if d, err := time.ParseDuration(*pollIntervalStr); err == nil && d > 0 {
			cfg.PollInterval = d
		} else if v, err2 := strconv.Atoi(*pollIntervalStr); err2 == nil && v > 0 {
			cfg.PollInterval = time.Duration(v) * time.Second
		}
	}
	if *mqttIntervalStr != "" {
		if d, err := time.ParseDuration(*mqttIntervalStr); err == nil && d > 0 {
			cfg.MQTTInterval = d
		} else if v, err2 := strconv.Atoi(*mqttIntervalStr); err2 == nil && v > 0 {
			cfg.MQTTInterval = time.Duration(v) * time.Second
		}
	}
	if *apiTimeoutStr != "" {
		if v, err := strconv.Atoi(*apiTimeoutStr); err == nil && v > 0 {
			cfg.APITimeout = v
		}
	}

	return cfg, *report
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setupLogger(verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}

// runReportMode fetches the vehicle list once and prints each decoded
// option report to stdout.
func runReportMode(cfg *config.Config, logger *logrus.Logger) {
	client := api.NewClient(cfg.APIURL, cfg.GetAPITimeout(), logger)

	vehicles, err := client.Vehicles(context.Background())
	if err != nil {
		logger.WithError(err).Fatal("Report mode failed")
	}

	for _, v := range vehicles {
		if cfg.VIN != "" && v.VIN != cfg.VIN {
			continue
		}
		fmt.Printf("%s (VIN %s, %s)\n", v.DisplayName, v.VIN, v.State)
		fmt.Print(v.Options().Report())
	}
}
