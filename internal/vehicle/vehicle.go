package vehicle

import (
	"sync"

	"github.com/diyk/TeslaClient/internal/options"
)

// Vehicle is one entry from the account's vehicle list. The identity
// fields come straight off the wire; VehicleID is the handle commands
// are issued against.
type Vehicle struct {
	ID          int64  `json:"id"`
	VehicleID   int64  `json:"vehicle_id"`
	VIN         string `json:"vin"`
	DisplayName string `json:"display_name"`
	OptionCodes string `json:"option_codes"`
	Color       string `json:"color"`
	State       string `json:"state"`

	decodeOnce sync.Once
	opts       *options.Options
}

// Options returns the decoded option codes. Decoding happens on the
// first call, later calls reuse the cached index.
func (v *Vehicle) Options() *options.Options {
	v.decodeOnce.Do(func() {
		v.opts = options.Decode(v.OptionCodes)
	})
	return v.opts
}
