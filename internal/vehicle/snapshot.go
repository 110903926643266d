package vehicle

import (
	"time"

	"github.com/diyk/TeslaClient/internal/charge"
)

// Snapshot is the published view of one vehicle: identity, the decoded
// configuration and the latest charge state. Charge is nil when the
// charge endpoint was unreachable on the poll that produced the
// snapshot.
type Snapshot struct {
	VIN         string `json:"vin"`
	DisplayName string `json:"display_name"`
	State       string `json:"state"`
	OptionCodes string `json:"option_codes"`

	Region    string `json:"region"`
	Trim      string `json:"trim"`
	DriveSide string `json:"drive_side"`
	Battery   string `json:"battery"`
	Paint     string `json:"paint"`
	Roof      string `json:"roof"`
	Wheels    string `json:"wheels"`
	Seats     string `json:"seats"`
	Decor     string `json:"decor"`

	Performance   bool `json:"performance"`
	PerfPlus      bool `json:"perf_plus"`
	AirSuspension bool `json:"air_suspension"`
	Supercharger  bool `json:"supercharger"`
	TechPackage   bool `json:"tech_package"`

	Charge *charge.State `json:"charge,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// NewSnapshot builds the publishable view of a vehicle from its decoded
// options and the latest charge state.
func NewSnapshot(v *Vehicle, cs *charge.State, now time.Time) *Snapshot {
	o := v.Options()
	return &Snapshot{
		VIN:         v.VIN,
		DisplayName: v.DisplayName,
		State:       v.State,
		OptionCodes: v.OptionCodes,

		Region:    o.Region().String(),
		Trim:      o.TrimLevel().String(),
		DriveSide: o.DriveSide().String(),
		Battery:   o.BatteryType().String(),
		Paint:     o.PaintColor().String(),
		Roof:      o.RoofType().String(),
		Wheels:    o.WheelType().String(),
		Seats:     o.SeatType().String(),
		Decor:     o.DecorType().String(),

		Performance:   o.IsPerformance(),
		PerfPlus:      o.IsPerfPlus(),
		AirSuspension: o.HasAirSuspension(),
		Supercharger:  o.HasSupercharger(),
		TechPackage:   o.HasTechPackage(),

		Charge:    cs,
		Timestamp: now,
	}
}

// Changed reports whether two snapshots differ in anything worth
// publishing. Timestamps are ignored so an unchanged car does not look
// new on every poll.
func Changed(prev, cur *Snapshot) bool {
	if prev == nil || cur == nil {
		return prev != cur
	}

	a, b := *prev, *cur
	a.Timestamp, b.Timestamp = time.Time{}, time.Time{}

	if (a.Charge == nil) != (b.Charge == nil) {
		return true
	}
	if a.Charge != nil && *a.Charge != *b.Charge {
		return true
	}
	a.Charge, b.Charge = nil, nil

	return a != b
}
