package bus

import (
	"testing"
	"time"

	"github.com/diyk/TeslaClient/internal/vehicle"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := New()
	first := b.Subscribe()
	second := b.Subscribe()

	snap := &vehicle.Snapshot{VIN: "5YJSA1CN1CFP01234"}
	b.Publish(snap)

	for name, ch := range map[string]<-chan *vehicle.Snapshot{"first": first, "second": second} {
		select {
		case got := <-ch:
			if got != snap {
				t.Errorf("%s subscriber received %+v, want the published snapshot", name, got)
			}
		case <-time.After(time.Second):
			t.Errorf("%s subscriber received nothing", name)
		}
	}
}

func TestPublishNeverBlocksOnSlowSubscriber(t *testing.T) {
	b := New()
	slow := b.Subscribe()

	// Fill the buffer, then keep publishing. The publisher must not
	// stall even though nobody is draining the channel.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			b.Publish(&vehicle.Snapshot{VIN: "5YJSA1CN1CFP01234"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	// The slow subscriber still sees the first snapshot.
	select {
	case snap := <-slow:
		if snap == nil {
			t.Error("subscriber received nil snapshot")
		}
	default:
		t.Error("subscriber buffer is empty, want one snapshot")
	}
}

func TestPublishWithNoSubscribers(t *testing.T) {
	b := New()
	// Must not panic or block.
	b.Publish(&vehicle.Snapshot{VIN: "5YJSA1CN1CFP01234"})
}
