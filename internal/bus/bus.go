package bus

import (
	"sync"

	"github.com/diyk/TeslaClient/internal/vehicle"
)

// Bus provides fan-out pub/sub semantics for vehicle snapshots. Each
// Subscribe call gets its own channel that receives every future
// publication. Past messages are not replayed. Safe for concurrent
// publishers and subscribers.
type Bus struct {
	mu          sync.RWMutex
	subscribers []chan *vehicle.Snapshot
}

// New creates a ready-to-use Bus.
func New() *Bus { return &Bus{} }

// Subscribe returns a read-only channel that will receive all future
// snapshots.
func (b *Bus) Subscribe() <-chan *vehicle.Snapshot {
	// One poll cycle publishes a snapshot per vehicle back-to-back;
	// the buffer holds a full account's worth so none are dropped
	// between scheduler ticks.
	ch := make(chan *vehicle.Snapshot, 8)
	b.mu.Lock()
	b.subscribers = append(b.subscribers, ch)
	b.mu.Unlock()
	return ch
}

// Publish delivers the snapshot to all subscribers without blocking. A
// subscriber whose buffer is full misses this snapshot and catches up
// on the next one.
func (b *Bus) Publish(s *vehicle.Snapshot) {
	b.mu.RLock()
	subs := make([]chan *vehicle.Snapshot, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.RUnlock()

	for _, ch := range subs {
		select {
		case ch <- s:
		default:
			continue
		}
	}
}
