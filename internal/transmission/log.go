package transmission

import (
	"github.com/diyk/TeslaClient/internal/options"
	"github.com/diyk/TeslaClient/internal/vehicle"
	"github.com/sirupsen/logrus"
)

// LogTransmitter writes snapshots to the log. It is the fallback sink
// when no broker is configured, so a bare run still shows what was
// decoded. The full option report is logged once per vehicle, the
// charge figures on every change.
type LogTransmitter struct {
	logger   *logrus.Logger
	reported map[string]bool // VINs whose option report is out
}

// NewLogTransmitter creates a log transmitter.
func NewLogTransmitter(logger *logrus.Logger) *LogTransmitter {
	return &LogTransmitter{
		logger:   logger,
		reported: make(map[string]bool),
	}
}

// Transmit logs the snapshot.
func (t *LogTransmitter) Transmit(snap *vehicle.Snapshot) error {
	if !t.reported[snap.VIN] {
		t.reported[snap.VIN] = true
		t.logger.WithFields(logrus.Fields{
			"vin":  snap.VIN,
			"name": snap.DisplayName,
		}).Info("Decoded configuration:\n" + options.Decode(snap.OptionCodes).Report())
	}

	entry := t.logger.WithFields(logrus.Fields{
		"vin":   snap.VIN,
		"state": snap.State,
	})
	if cs := snap.Charge; cs != nil {
		entry = entry.WithFields(logrus.Fields{
			"charging":      cs.ChargingState,
			"battery_level": cs.BatteryLevel,
			"charge_limit":  cs.ChargeLimitSoc,
		})
	}
	entry.Info("Vehicle snapshot")
	return nil
}

// IsConnected always reports true; the log needs no connection.
func (t *LogTransmitter) IsConnected() bool { return true }
