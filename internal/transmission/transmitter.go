package transmission

import "github.com/diyk/TeslaClient/internal/vehicle"

// Transmitter pushes vehicle snapshots to an external consumer.
type Transmitter interface {
	Transmit(snap *vehicle.Snapshot) error
	IsConnected() bool
}
