package config

import "time"

// Central place for all application-wide timing constants. Changing a
// value here immediately affects all components that import
// github.com/diyk/TeslaClient/internal/config.

const (
	// Polling / transmission intervals
	VehiclePollInterval  = 60 * time.Second // Poll the vehicle list and charge state
	ChargingPollInterval = 15 * time.Second // Poll cadence while a vehicle is charging
	MQTTTransmitInterval = 60 * time.Second // Publish to MQTT when idle
	MQTTChargingInterval = 10 * time.Second // Publish to MQTT while charging

	// Operation time-outs
	CommandTimeout = 30 * time.Second // Charge command round trip
	MQTTTimeout    = 5 * time.Second  // MQTT publish
)
