package app

import (
	"context"
	"time"

	"github.com/diyk/TeslaClient/internal/api"
	"github.com/diyk/TeslaClient/internal/bus"
	"github.com/diyk/TeslaClient/internal/cache"
	"github.com/diyk/TeslaClient/internal/charge"
	"github.com/diyk/TeslaClient/internal/config"
	"github.com/diyk/TeslaClient/internal/transmission"
	"github.com/diyk/TeslaClient/internal/vehicle"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// transmitInterval returns the publish cadence for one snapshot: the
// configured interval normally, faster while the vehicle is charging
// so the battery figures track the charge session.
func transmitInterval(base time.Duration, snap *vehicle.Snapshot) time.Duration {
	if snap != nil && snap.Charge.IsCharging() {
		return config.MQTTChargingInterval
	}
	return base
}

// Run wires the poller to the transmitters and blocks until ctx is
// cancelled. Either transmitter may be nil.
func Run(
	parentCtx context.Context,
	cfg *config.Config,
	client *api.Client,
	bridge *transmission.CommandBridge,
	mqttTx *transmission.MQTTTransmitter,
	logTx *transmission.LogTransmitter,
	logger *logrus.Logger,
) {
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	messageBus := bus.New()
	grp, ctx := errgroup.WithContext(ctx)

	// A successful remote command nudges the poller so the next state
	// publish shows the effect. Selecting on a nil channel blocks
	// forever, which is exactly right when no bridge is wired.
	var commanded <-chan struct{}
	if bridge != nil {
		commanded = bridge.Refresh()
	}

	// Collector -----------------------------------------------------------
	grp.Go(func() error {
		interval := poll(ctx, cfg, client, bridge, messageBus, logger)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-commanded:
			case <-ticker.C:
			}

			next := poll(ctx, cfg, client, bridge, messageBus, logger)
			if next != interval {
				interval = next
				ticker.Reset(interval)
				logger.WithField("interval", interval).Debug("Poll cadence changed")
			}
		}
	})

	// Central scheduler ----------------------------------------------------

	sub := messageBus.Subscribe()

	type txState struct {
		tx       transmission.Transmitter
		name     string
		interval time.Duration
		lastSent map[string]time.Time
		seen     *cache.Manager
	}

	var states []*txState
	if mqttTx != nil {
		states = append(states, &txState{
			tx:       mqttTx,
			name:     "MQTT",
			interval: cfg.MQTTInterval,
			lastSent: make(map[string]time.Time),
			seen:     cache.NewManager(),
		})
	}
	if logTx != nil {
		states = append(states, &txState{
			tx:       logTx,
			name:     "log",
			interval: cfg.MQTTInterval,
			lastSent: make(map[string]time.Time),
			seen:     cache.NewManager(),
		})
	}

	grp.Go(func() error {
		latest := make(map[string]*vehicle.Snapshot)
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case snap, ok := <-sub:
				if !ok {
					return nil
				}
				latest[snap.VIN] = snap
			case <-ticker.C:
				now := time.Now()
				for vin, snap := range latest {
					for _, st := range states {
						if now.Sub(st.lastSent[vin]) < transmitInterval(st.interval, snap) {
							continue
						}
						if !st.seen.Changed(snap) {
							continue
						}
						if err := st.tx.Transmit(snap); err != nil {
							logger.WithError(err).Warn(st.name + " transmit failed")
							// Forget the snapshot so the retry fires
							// once the interval allows it, even if
							// nothing changed in the meantime.
							st.seen.Forget(vin)
						}
						st.lastSent[vin] = now
					}
				}
			}
		}
	})

	if err := grp.Wait(); err != nil && err != context.Canceled {
		logger.WithError(err).Warn("app: background group exited")
	}
}

// poll fetches the vehicle list and each vehicle's charge state,
// publishes a snapshot per vehicle, and returns the cadence for the
// next cycle: faster while any vehicle is charging.
func poll(
	ctx context.Context,
	cfg *config.Config,
	client *api.Client,
	bridge *transmission.CommandBridge,
	messageBus *bus.Bus,
	logger *logrus.Logger,
) time.Duration {
	interval := cfg.PollInterval

	vehicles, err := client.Vehicles(ctx)
	if err != nil {
		logger.WithError(err).Warn("collector: vehicle list fetch failed")
		return interval
	}

	now := time.Now()
	for _, v := range vehicles {
		if cfg.VIN != "" && v.VIN != cfg.VIN {
			continue
		}

		if bridge != nil {
			if err := bridge.Register(v.VIN, v.VehicleID); err != nil {
				logger.WithError(err).WithField("vin", v.VIN).Warn("collector: command topics not subscribed")
			}
		}

		// Reading the charge state keeps an online car awake; never
		// wake a sleeping one just to look at its battery.
		var cs *charge.State
		if v.State == "online" {
			cs, err = client.ChargeState(ctx, v.VehicleID)
			if err != nil {
				logger.WithError(err).WithField("vin", v.VIN).Warn("collector: charge state fetch failed")
				cs = nil
			}
		}

		messageBus.Publish(vehicle.NewSnapshot(v, cs, now))

		if cs.IsCharging() {
			interval = config.ChargingPollInterval
		}
	}
	return interval
}
