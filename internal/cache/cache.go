package cache

import (
	"sync"

	"github.com/diyk/TeslaClient/internal/vehicle"
)

// Manager answers the question "has this vehicle changed since the
// last time I sent it?" for one transmitter. Each transmitter owns its
// own Manager, so a failed MQTT publish does not suppress the log sink
// and vice versa.
//
// Behaviour:
//   - The first sighting of a VIN always reports a change.
//   - Timestamps are ignored when comparing (see vehicle.Changed).
//   - The stored snapshot is replaced only when a difference is
//     detected to avoid unnecessary churn.
type Manager struct {
	mu   sync.Mutex
	prev map[string]*vehicle.Snapshot
}

// NewManager returns a ready-to-use cache manager.
func NewManager() *Manager {
	return &Manager{prev: make(map[string]*vehicle.Snapshot)}
}

// Changed compares the supplied snapshot against the previously stored
// one for the same VIN. If a change is detected it stores the snapshot
// and returns true.
func (m *Manager) Changed(cur *vehicle.Snapshot) bool {
	if cur == nil {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !vehicle.Changed(m.prev[cur.VIN], cur) {
		return false
	}
	m.prev[cur.VIN] = cur
	return true
}

// Forget drops the stored snapshot for a VIN so the next Changed call
// reports true. Used to force a retransmit after a failed send.
func (m *Manager) Forget(vin string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.prev, vin)
}
