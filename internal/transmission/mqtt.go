package transmission

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/diyk/TeslaClient/internal/mqtt"
	"github.com/diyk/TeslaClient/internal/vehicle"
	"github.com/sirupsen/logrus"
)

// MQTTTransmitter publishes vehicle snapshots to the broker, with Home
// Assistant discovery so the entities appear without manual YAML.
type MQTTTransmitter struct {
	client            *mqtt.Client
	discoveryPrefix   string
	logger            *logrus.Logger
	publishedVehicles map[string]bool // VINs whose discovery configs are out
}

// HADiscoveryConfig is the Home Assistant MQTT discovery payload. Only
// the fields relevant to the entity type are set, the rest stay empty
// and are omitted from the JSON.
type HADiscoveryConfig struct {
	Name              string   `json:"name"`
	UniqueID          string   `json:"unique_id"`
	StateTopic        string   `json:"state_topic"`
	ValueTemplate     string   `json:"value_template,omitempty"`
	CommandTopic      string   `json:"command_topic,omitempty"`
	PayloadOn         string   `json:"payload_on,omitempty"`
	PayloadOff        string   `json:"payload_off,omitempty"`
	Min               int      `json:"min,omitempty"`
	Max               int      `json:"max,omitempty"`
	Options           []string `json:"options,omitempty"`
	DeviceClass       string   `json:"device_class,omitempty"`
	UnitOfMeasurement string   `json:"unit_of_measurement,omitempty"`
	Device            HADevice `json:"device"`
	AvailabilityTopic string   `json:"availability_topic"`
}

// HADevice groups all entities of one vehicle under a single device in
// Home Assistant.
type HADevice struct {
	Identifiers  []string `json:"identifiers"`
	Name         string   `json:"name"`
	Model        string   `json:"model"`
	Manufacturer string   `json:"manufacturer"`
}

// entityConfig describes one plain sensor entity fed from the state
// payload.
type entityConfig struct {
	Name        string
	ObjectID    string // state payload key and discovery object id
	Component   string
	DeviceClass string
	Unit        string
}

// snapshotEntities lists the sensor entities every vehicle gets. The
// charge figures come and go with the charge endpoint, the decoded
// configuration fields are always present.
var snapshotEntities = []entityConfig{
	{Name: "Battery Level", ObjectID: "battery_level", Component: "sensor", DeviceClass: "battery", Unit: "%"},
	{Name: "Battery Range", ObjectID: "battery_range", Component: "sensor", Unit: "mi"},
	{Name: "Charging State", ObjectID: "charging_state", Component: "sensor"},
	{Name: "Charge Limit", ObjectID: "charge_limit_soc", Component: "sensor", Unit: "%"},
	{Name: "Charge Rate", ObjectID: "charge_rate", Component: "sensor", Unit: "mi/h"},
	{Name: "Charger Power", ObjectID: "charger_power", Component: "sensor", DeviceClass: "power", Unit: "kW"},
	{Name: "Battery Pack", ObjectID: "battery", Component: "sensor"},
	{Name: "Paint", ObjectID: "paint", Component: "sensor"},
	{Name: "Wheels", ObjectID: "wheels", Component: "sensor"},
	{Name: "Trim", ObjectID: "trim", Component: "sensor"},
}

// NewMQTTTransmitter creates an MQTT transmitter.
func NewMQTTTransmitter(client *mqtt.Client, discoveryPrefix string, logger *logrus.Logger) *MQTTTransmitter {
	return &MQTTTransmitter{
		client:            client,
		discoveryPrefix:   discoveryPrefix,
		logger:            logger,
		publishedVehicles: make(map[string]bool),
	}
}

// Transmit publishes the snapshot state for one vehicle, pushing the
// discovery configs first if this VIN has not been seen yet.
func (t *MQTTTransmitter) Transmit(snap *vehicle.Snapshot) error {
	if !t.client.IsConnected() {
		return fmt.Errorf("MQTT client not connected")
	}

	if !t.publishedVehicles[snap.VIN] {
		if err := t.publishDiscovery(snap); err != nil {
			// Retry on the next transmit rather than fail the whole
			// publication.
			t.logger.WithError(err).WithField("vin", snap.VIN).Error("Failed to publish discovery configs")
		} else {
			t.publishedVehicles[snap.VIN] = true
		}
	}

	payload, err := buildStatePayload(snap)
	if err != nil {
		return fmt.Errorf("build state payload: %w", err)
	}
	if err := t.client.Publish(mqtt.StateTopic(snap.VIN), payload, true); err != nil {
		return fmt.Errorf("publish state: %w", err)
	}

	if err := t.client.PublishAvailability(true); err != nil {
		return fmt.Errorf("publish availability: %w", err)
	}

	t.logger.WithFields(logrus.Fields{
		"vin":  snap.VIN,
		"size": len(payload),
	}).Debug("Snapshot transmitted")
	return nil
}

// IsConnected reports whether the underlying MQTT client is connected.
func (t *MQTTTransmitter) IsConnected() bool {
	return t.client.IsConnected()
}

func (t *MQTTTransmitter) publishDiscovery(snap *vehicle.Snapshot) error {
	for _, msg := range discoveryMessages(t.discoveryPrefix, snap) {
		payload, err := json.Marshal(msg.Config)
		if err != nil {
			return fmt.Errorf("marshal discovery config %s: %w", msg.Config.UniqueID, err)
		}
		if err := t.client.Publish(msg.Topic, payload, true); err != nil {
			return fmt.Errorf("publish discovery config %s: %w", msg.Config.UniqueID, err)
		}
	}

	t.logger.WithFields(logrus.Fields{
		"vin":          snap.VIN,
		"display_name": snap.DisplayName,
	}).Info("Published Home Assistant discovery configs")
	return nil
}

// discoveryMessage pairs a discovery topic with its config payload.
type discoveryMessage struct {
	Topic  string
	Config HADiscoveryConfig
}

// discoveryMessages builds the full set of discovery configs for one
// vehicle: the plain sensors plus the charging switch, the charge limit
// number and the charge profile select.
func discoveryMessages(prefix string, snap *vehicle.Snapshot) []discoveryMessage {
	device := HADevice{
		Identifiers:  []string{fmt.Sprintf("tesla_%s", snap.VIN)},
		Name:         deviceName(snap),
		Model:        "Model S",
		Manufacturer: "Tesla",
	}
	stateTopic := mqtt.StateTopic(snap.VIN)
	availTopic := mqtt.AvailabilityTopic()

	var msgs []discoveryMessage
	for _, e := range snapshotEntities {
		msgs = append(msgs, discoveryMessage{
			Topic: mqtt.DiscoveryTopic(prefix, e.Component, snap.VIN, e.ObjectID),
			Config: HADiscoveryConfig{
				Name:              e.Name,
				UniqueID:          fmt.Sprintf("tesla_%s_%s", snap.VIN, e.ObjectID),
				StateTopic:        stateTopic,
				ValueTemplate:     fmt.Sprintf("{{ value_json.%s }}", e.ObjectID),
				DeviceClass:       e.DeviceClass,
				UnitOfMeasurement: e.Unit,
				Device:            device,
				AvailabilityTopic: availTopic,
			},
		})
	}

	msgs = append(msgs, discoveryMessage{
		Topic: mqtt.DiscoveryTopic(prefix, "switch", snap.VIN, "charging"),
		Config: HADiscoveryConfig{
			Name:              "Charging",
			UniqueID:          fmt.Sprintf("tesla_%s_charging", snap.VIN),
			StateTopic:        stateTopic,
			ValueTemplate:     "{{ value_json.charging }}",
			CommandTopic:      mqtt.ChargeSetTopic(snap.VIN),
			PayloadOn:         "ON",
			PayloadOff:        "OFF",
			Device:            device,
			AvailabilityTopic: availTopic,
		},
	})

	msgs = append(msgs, discoveryMessage{
		Topic: mqtt.DiscoveryTopic(prefix, "number", snap.VIN, "charge_limit"),
		Config: HADiscoveryConfig{
			Name:              "Charge Limit",
			UniqueID:          fmt.Sprintf("tesla_%s_charge_limit", snap.VIN),
			StateTopic:        stateTopic,
			ValueTemplate:     "{{ value_json.charge_limit_soc }}",
			CommandTopic:      mqtt.ChargeLimitSetTopic(snap.VIN),
			Min:               1,
			Max:               100,
			UnitOfMeasurement: "%",
			Device:            device,
			AvailabilityTopic: availTopic,
		},
	})

	msgs = append(msgs, discoveryMessage{
		Topic: mqtt.DiscoveryTopic(prefix, "select", snap.VIN, "charge_range"),
		Config: HADiscoveryConfig{
			Name:              "Charge Profile",
			UniqueID:          fmt.Sprintf("tesla_%s_charge_range", snap.VIN),
			StateTopic:        stateTopic,
			ValueTemplate:     "{{ value_json.charge_range }}",
			CommandTopic:      mqtt.ChargeRangeSetTopic(snap.VIN),
			Options:           []string{"standard", "max_range"},
			Device:            device,
			AvailabilityTopic: availTopic,
		},
	})

	return msgs
}

func deviceName(snap *vehicle.Snapshot) string {
	if snap.DisplayName != "" {
		return snap.DisplayName
	}
	return fmt.Sprintf("Tesla %s", snap.VIN)
}

// buildStatePayload flattens a snapshot into the JSON document the
// discovery templates read from. Charge figures are only present when
// the poll that produced the snapshot reached the charge endpoint.
func buildStatePayload(snap *vehicle.Snapshot) ([]byte, error) {
	state := map[string]interface{}{
		"vin":          snap.VIN,
		"display_name": snap.DisplayName,
		"state":        snap.State,

		"region":     snap.Region,
		"trim":       snap.Trim,
		"drive_side": snap.DriveSide,
		"battery":    snap.Battery,
		"paint":      snap.Paint,
		"roof":       snap.Roof,
		"wheels":     snap.Wheels,
		"seats":      snap.Seats,
		"decor":      snap.Decor,

		"performance":    snap.Performance,
		"perf_plus":      snap.PerfPlus,
		"air_suspension": snap.AirSuspension,
		"supercharger":   snap.Supercharger,
		"tech_package":   snap.TechPackage,

		"timestamp": snap.Timestamp.Format(time.RFC3339),
	}

	if cs := snap.Charge; cs != nil {
		state["charging_state"] = cs.ChargingState
		state["battery_level"] = cs.BatteryLevel
		state["charge_limit_soc"] = cs.ChargeLimitSoc
		state["battery_range"] = cs.BatteryRange
		state["est_battery_range"] = cs.EstBatteryRange
		state["charge_rate"] = cs.ChargeRate
		state["charger_power"] = cs.ChargerPower
		state["charger_voltage"] = cs.ChargerVoltage
		state["time_to_full_charge"] = cs.TimeToFullCharge

		if cs.IsCharging() {
			state["charging"] = "ON"
		} else {
			state["charging"] = "OFF"
		}
		if cs.ChargeToMaxRange {
			state["charge_range"] = "max_range"
		} else {
			state["charge_range"] = "standard"
		}
	}

	return json.Marshal(state)
}
