package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all configuration options for the bridge.
type Config struct {
	// API configuration
	APIURL     string `json:"api_url"`     // Owner API gateway base URL
	VIN        string `json:"vin"`         // Optional: only bridge this vehicle
	APITimeout int    `json:"api_timeout"` // API request timeout in seconds

	// MQTT configuration
	MQTTUrl         string `json:"mqtt_url"`         // MQTT URL (WebSocket or standard MQTT)
	DiscoveryPrefix string `json:"discovery_prefix"` // Home Assistant discovery prefix
	ClientID        string `json:"client_id"`        // MQTT client identifier

	// Application configuration
	Verbose      bool          `json:"verbose"`       // Enable verbose logging
	PollInterval time.Duration `json:"poll_interval"` // Vehicle poll cadence
	MQTTInterval time.Duration `json:"mqtt_interval"` // Minimum gap between MQTT publishes
}

// GetDefaultConfig returns a configuration with sensible defaults.
func GetDefaultConfig() *Config {
	return &Config{
		APIURL:     "http://localhost:4443/api/1",
		APITimeout: 10,

		DiscoveryPrefix: "homeassistant",
		ClientID:        "tesla2mqtt",

		PollInterval: VehiclePollInterval,
		MQTTInterval: MQTTTransmitInterval,
	}
}

// Validate checks if the configuration is valid and repairs values that
// only have one sane fallback.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("API URL is required")
	}
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("API URL must use http:// or https://")
	}

	if c.MQTTUrl != "" {
		if !strings.HasPrefix(c.MQTTUrl, "ws://") &&
			!strings.HasPrefix(c.MQTTUrl, "wss://") &&
			!strings.HasPrefix(c.MQTTUrl, "mqtt://") &&
			!strings.HasPrefix(c.MQTTUrl, "mqtts://") {
			return fmt.Errorf("MQTT URL must use supported protocol (ws://, wss://, mqtt://, or mqtts://)")
		}
	}

	if c.ClientID == "" {
		c.ClientID = "tesla2mqtt"
	}
	if c.APITimeout <= 0 {
		c.APITimeout = 10
	}
	if c.PollInterval <= 0 {
		c.PollInterval = VehiclePollInterval
	}
	if c.MQTTInterval <= 0 {
		c.MQTTInterval = MQTTTransmitInterval
	}

	return nil
}

// HasMQTT returns true if MQTT is configured.
func (c *Config) HasMQTT() bool {
	return c.MQTTUrl != ""
}

// GetAPITimeout returns the API timeout as a duration.
func (c *Config) GetAPITimeout() time.Duration {
	return time.Duration(c.APITimeout) * time.Second
}
