package charge

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of a charge command: whether the car accepted
// it and the reason when it did not. Commands rejected locally report
// through the same type, so callers never need to distinguish a local
// rejection from a remote one.
type Result struct {
	Success bool   `json:"result"`
	Reason  string `json:"reason"`
}

// Sender issues a named command against a vehicle and reports the
// outcome. The command name may carry parameters in query form, e.g.
// "set_charge_limit?percent=80".
type Sender interface {
	Command(ctx context.Context, vehicleID int64, name string) (Result, error)
}

// Controller issues the charging commands for a single vehicle.
type Controller struct {
	sender    Sender
	vehicleID int64
	logger    *logrus.Logger
}

// NewController creates a charge controller bound to one vehicle.
func NewController(sender Sender, vehicleID int64, logger *logrus.Logger) *Controller {
	return &Controller{
		sender:    sender,
		vehicleID: vehicleID,
		logger:    logger,
	}
}

// StartCharging starts the charge flow.
func (c *Controller) StartCharging(ctx context.Context) Result {
	return c.SetChargeState(ctx, true)
}

// StopCharging stops the charge flow.
func (c *Controller) StopCharging(ctx context.Context) Result {
	return c.SetChargeState(ctx, false)
}

// SetChargeState starts or stops charging.
func (c *Controller) SetChargeState(ctx context.Context, charging bool) Result {
	if charging {
		return c.send(ctx, "charge_start")
	}
	return c.send(ctx, "charge_stop")
}

// SetChargeRange selects the max range or the standard charge profile.
func (c *Controller) SetChargeRange(ctx context.Context, max bool) Result {
	if max {
		return c.send(ctx, "charge_max_range")
	}
	return c.send(ctx, "charge_standard")
}

// SetChargePercent sets the charge limit. Values outside 1-100 are
// rejected here without contacting the car.
func (c *Controller) SetChargePercent(ctx context.Context, percent int) Result {
	if percent < 1 || percent > 100 {
		return Result{Success: false, Reason: "value out of range"}
	}
	return c.send(ctx, fmt.Sprintf("set_charge_limit?percent=%d", percent))
}

func (c *Controller) send(ctx context.Context, name string) Result {
	res, err := c.sender.Command(ctx, c.vehicleID, name)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"vehicle_id": c.vehicleID,
			"command":    name,
		}).Warn("Charge command failed")
		return Result{Success: false, Reason: err.Error()}
	}
	if !res.Success {
		c.logger.WithFields(logrus.Fields{
			"vehicle_id": c.vehicleID,
			"command":    name,
			"reason":     res.Reason,
		}).Warn("Charge command rejected by vehicle")
	}
	return res
}
