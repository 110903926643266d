package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diyk/TeslaClient/internal/api"
	"github.com/diyk/TeslaClient/internal/bus"
	"github.com/diyk/TeslaClient/internal/charge"
	"github.com/diyk/TeslaClient/internal/config"
	"github.com/diyk/TeslaClient/internal/vehicle"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newGateway serves a two-vehicle account: one online, one asleep.
// Only the online vehicle's charge endpoint may be hit.
func newGateway(t *testing.T, chargingState string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/vehicles":
			io.WriteString(w, `{"response":[
				{"id":1,"vehicle_id":11,"vin":"5YJSA1CN1CFP01234","display_name":"Kara","option_codes":"RENA,PBT85,WT19","state":"online"},
				{"id":2,"vehicle_id":22,"vin":"5YJSA1CN1CFP05678","display_name":"Hal","option_codes":"REEU,BT60","state":"asleep"}
			]}`)
		case "/vehicles/11/data_request/charge_state":
			fmt.Fprintf(w, `{"response":{"charging_state":%q,"battery_level":64,"charge_limit_soc":80}}`, chargingState)
		default:
			t.Errorf("unexpected request: %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
}

func drain(t *testing.T, sub <-chan *vehicle.Snapshot, n int) map[string]*vehicle.Snapshot {
	t.Helper()
	got := make(map[string]*vehicle.Snapshot, n)
	for i := 0; i < n; i++ {
		select {
		case snap := <-sub:
			got[snap.VIN] = snap
		case <-time.After(time.Second):
			t.Fatalf("received %d snapshots, want %d", i, n)
		}
	}
	return got
}

func TestPollPublishesSnapshotPerVehicle(t *testing.T) {
	srv := newGateway(t, "Stopped")
	defer srv.Close()

	cfg := config.GetDefaultConfig()
	client := api.NewClient(srv.URL, 2*time.Second, testLogger())
	messageBus := bus.New()
	sub := messageBus.Subscribe()

	interval := poll(context.Background(), cfg, client, nil, messageBus, testLogger())

	got := drain(t, sub, 2)

	online := got["5YJSA1CN1CFP01234"]
	if online == nil || online.Charge == nil {
		t.Fatalf("online vehicle snapshot = %+v, want charge state attached", online)
	}
	if online.Battery != "85kWh" {
		t.Errorf("battery = %q, want decoded 85kWh", online.Battery)
	}

	asleep := got["5YJSA1CN1CFP05678"]
	if asleep == nil {
		t.Fatal("asleep vehicle snapshot missing")
	}
	if asleep.Charge != nil {
		t.Error("asleep vehicle has charge state, want none")
	}

	if interval != cfg.PollInterval {
		t.Errorf("interval = %v, want %v while idle", interval, cfg.PollInterval)
	}
}

func TestPollSpeedsUpWhileCharging(t *testing.T) {
	srv := newGateway(t, "Charging")
	defer srv.Close()

	cfg := config.GetDefaultConfig()
	client := api.NewClient(srv.URL, 2*time.Second, testLogger())

	got := poll(context.Background(), cfg, client, nil, bus.New(), testLogger())
	if got != config.ChargingPollInterval {
		t.Errorf("interval = %v, want %v while charging", got, config.ChargingPollInterval)
	}
}

func TestPollVINFilter(t *testing.T) {
	srv := newGateway(t, "Stopped")
	defer srv.Close()

	cfg := config.GetDefaultConfig()
	cfg.VIN = "5YJSA1CN1CFP05678"
	client := api.NewClient(srv.URL, 2*time.Second, testLogger())
	messageBus := bus.New()
	sub := messageBus.Subscribe()

	poll(context.Background(), cfg, client, nil, messageBus, testLogger())

	got := drain(t, sub, 1)
	if got["5YJSA1CN1CFP05678"] == nil {
		t.Fatal("filtered VIN not published")
	}
	select {
	case snap := <-sub:
		t.Errorf("unexpected extra snapshot for %s", snap.VIN)
	default:
	}
}

func TestPollSurvivesGatewayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "offline", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := config.GetDefaultConfig()
	client := api.NewClient(srv.URL, 2*time.Second, testLogger())

	got := poll(context.Background(), cfg, client, nil, bus.New(), testLogger())
	if got != cfg.PollInterval {
		t.Errorf("interval = %v, want the idle interval after a failed poll", got)
	}
}

func TestTransmitInterval(t *testing.T) {
	base := time.Minute

	noCharge := &vehicle.Snapshot{}
	if got := transmitInterval(base, noCharge); got != base {
		t.Errorf("interval without charge state = %v, want %v", got, base)
	}

	charging := snapshotWithChargingState("Charging")
	if got := transmitInterval(base, charging); got != config.MQTTChargingInterval {
		t.Errorf("interval while charging = %v, want %v", got, config.MQTTChargingInterval)
	}

	stopped := snapshotWithChargingState("Stopped")
	if got := transmitInterval(base, stopped); got != base {
		t.Errorf("interval while stopped = %v, want %v", got, base)
	}
}

func snapshotWithChargingState(state string) *vehicle.Snapshot {
	return &vehicle.Snapshot{
		VIN:    "5YJSA1CN1CFP01234",
		Charge: &charge.State{ChargingState: state},
	}
}
