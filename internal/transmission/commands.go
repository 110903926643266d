package transmission

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/diyk/TeslaClient/internal/charge"
	"github.com/diyk/TeslaClient/internal/config"
	"github.com/diyk/TeslaClient/internal/mqtt"
	"github.com/sirupsen/logrus"
)

// commandKind names the command topics the bridge listens on. The
// values match the object suffix of the topic they arrive on.
type commandKind string

const (
	kindCharge      commandKind = "charge"
	kindChargeLimit commandKind = "charge_limit"
	kindChargeRange commandKind = "charge_range"
)

// CommandBridge turns the payloads Home Assistant publishes on the
// per-vehicle command topics into charge commands. The outcome of each
// command goes out on the charge/result topic; a successful command
// also signals the poller so the next state publish shows the effect
// without waiting out the poll interval.
type CommandBridge struct {
	client  *mqtt.Client
	sender  charge.Sender
	logger  *logrus.Logger
	refresh chan struct{}

	mu          sync.Mutex
	controllers map[string]*charge.Controller
}

// NewCommandBridge creates a command bridge. Vehicles are wired in as
// the poller discovers them, via Register.
func NewCommandBridge(client *mqtt.Client, sender charge.Sender, logger *logrus.Logger) *CommandBridge {
	return &CommandBridge{
		client:      client,
		sender:      sender,
		logger:      logger,
		refresh:     make(chan struct{}, 1),
		controllers: make(map[string]*charge.Controller),
	}
}

// Refresh delivers one signal per successful command so the poller can
// re-read vehicle state right away.
func (b *CommandBridge) Refresh() <-chan struct{} { return b.refresh }

// Register subscribes the command topics for one vehicle. Safe to call
// on every poll; only the first sighting of a VIN subscribes.
func (b *CommandBridge) Register(vin string, vehicleID int64) error {
	b.mu.Lock()
	if _, ok := b.controllers[vin]; ok {
		b.mu.Unlock()
		return nil
	}
	b.controllers[vin] = charge.NewController(b.sender, vehicleID, b.logger)
	b.mu.Unlock()

	subs := map[string]commandKind{
		mqtt.ChargeSetTopic(vin):      kindCharge,
		mqtt.ChargeLimitSetTopic(vin): kindChargeLimit,
		mqtt.ChargeRangeSetTopic(vin): kindChargeRange,
	}
	for topic, kind := range subs {
		kind := kind
		err := b.client.Subscribe(topic, func(_ string, payload []byte) {
			// Handlers must not block; the command is an HTTP round
			// trip to the car.
			go b.handle(vin, kind, payload)
		})
		if err != nil {
			// Drop the controller so the next poll retries the
			// whole registration.
			b.mu.Lock()
			delete(b.controllers, vin)
			b.mu.Unlock()
			return err
		}
	}

	b.logger.WithFields(logrus.Fields{
		"vin":        vin,
		"vehicle_id": vehicleID,
	}).Info("Command topics wired")
	return nil
}

func (b *CommandBridge) handle(vin string, kind commandKind, payload []byte) {
	b.mu.Lock()
	ctrl := b.controllers[vin]
	b.mu.Unlock()
	if ctrl == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.CommandTimeout)
	defer cancel()

	res := applyCommand(ctx, ctrl, kind, payload)

	b.logger.WithFields(logrus.Fields{
		"vin":     vin,
		"kind":    string(kind),
		"payload": string(payload),
		"success": res.Success,
	}).Info("Handled charge command")

	if out, err := json.Marshal(res); err == nil {
		if err := b.client.Publish(mqtt.CommandResultTopic(vin), out, false); err != nil {
			b.logger.WithError(err).WithField("vin", vin).Warn("Command result not published")
		}
	}

	if res.Success {
		select {
		case b.refresh <- struct{}{}:
		default:
		}
	}
}

// applyCommand maps one command payload onto the controller. Payloads
// that fit no command are rejected locally without contacting the car,
// the same way the controller handles an out-of-range percentage.
func applyCommand(ctx context.Context, ctrl *charge.Controller, kind commandKind, payload []byte) charge.Result {
	text := strings.TrimSpace(string(payload))

	switch kind {
	case kindCharge:
		switch {
		case strings.EqualFold(text, "ON"):
			return ctrl.SetChargeState(ctx, true)
		case strings.EqualFold(text, "OFF"):
			return ctrl.SetChargeState(ctx, false)
		}
		return charge.Result{Success: false, Reason: fmt.Sprintf("unsupported charge payload %q", text)}

	case kindChargeLimit:
		percent, err := parsePercent(text)
		if err != nil {
			return charge.Result{Success: false, Reason: fmt.Sprintf("invalid charge limit %q", text)}
		}
		return ctrl.SetChargePercent(ctx, percent)

	case kindChargeRange:
		switch text {
		case "max_range":
			return ctrl.SetChargeRange(ctx, true)
		case "standard":
			return ctrl.SetChargeRange(ctx, false)
		}
		return charge.Result{Success: false, Reason: fmt.Sprintf("unsupported charge profile %q", text)}
	}

	return charge.Result{Success: false, Reason: fmt.Sprintf("unknown command kind %q", string(kind))}
}

// parsePercent accepts both forms Home Assistant number entities
// publish: "80" and "80.0".
func parsePercent(text string) (int, error) {
	if n, err := strconv.Atoi(text); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	return int(math.Round(f)), nil
}
