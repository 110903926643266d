package options

import "strings"

// Options holds the decoded option codes of a single vehicle, keyed by
// the two character option prefix. Codes in the legacy X0 namespace are
// keyed by the whole code instead, since they carry no variant suffix.
//
// Lookups never fail. A code that is absent or not in the catalog shows
// up as false or as the Unknown member of its enumeration, so a nil or
// empty Options answers every question with the most conservative value.
type Options struct {
	index map[string]string
}

// Decode parses the comma separated option-code string reported by the
// vehicle API, for example "MS01,RENA,TM00,DRLH,BT85,PBCW,RFBC,WT19".
// Malformed tokens are skipped rather than rejected and an empty input
// yields an empty index, so Decode always returns a usable Options.
func Decode(raw string) *Options {
	o := &Options{index: make(map[string]string)}

	// The API reports the 85kWh pack as PBT85, the only three letter
	// prefix in the codebook. Normalize it to BT85 before tokenizing.
	raw = strings.ReplaceAll(raw, "PBT", "BT")

	for _, token := range strings.Split(raw, ",") {
		if len(token) < 2 {
			// Too short to carry a prefix.
			continue
		}
		key := token[:2]
		// X0 codes are atomic flags from the old codebook, not a
		// prefix plus variant pair. The whole code is the key.
		if key == "X0" {
			key = token
		}
		o.index[key] = token
	}
	return o
}

// option returns the stored code for the first prefix present in the
// index, probing in the given order. Missing prefixes yield "".
func (o *Options) option(prefixes ...string) string {
	if o == nil {
		return ""
	}
	for _, p := range prefixes {
		if code, ok := o.index[p]; ok {
			return code
		}
	}
	return ""
}

// HasOption reports whether the named option is present and enabled.
// X codes are plain flags, present means enabled. Every other option is
// enabled only when the stored code is the name with the 01 variant
// suffix: TP01 enables the tech package, TP00 reports the slot as empty.
func (o *Options) HasOption(name string) bool {
	code := o.option(name)
	if code == "" {
		return false
	}
	if strings.HasPrefix(name, "X") {
		return true
	}
	return code == name+"01"
}

// Region reports the market the vehicle was built for.
func (o *Options) Region() Region { return regionFromCode(o.option("RE")) }

// TrimLevel reports the production trim.
func (o *Options) TrimLevel() TrimLevel { return trimFromCode(o.option("TM")) }

// DriveSide reports the steering wheel side.
func (o *Options) DriveSide() DriveSide { return driveSideFromCode(o.option("DR")) }

// BatteryType reports the battery pack.
func (o *Options) BatteryType() BatteryType { return batteryFromCode(o.option("BT")) }

// RoofType reports the roof.
func (o *Options) RoofType() RoofType { return roofFromCode(o.option("RF")) }

// WheelType reports the wheels.
func (o *Options) WheelType() WheelType { return wheelFromCode(o.option("WT")) }

// DecorType reports the interior decor inlay.
func (o *Options) DecorType() DecorType { return decorFromCode(o.option("ID")) }

// AdapterType reports the bundled charging adapter.
func (o *Options) AdapterType() AdapterType { return adapterFromCode(o.option("AD")) }

// PaintColor reports the exterior paint. Paint is spread over three
// prefixes (solid, metallic, premium) which are probed in order.
func (o *Options) PaintColor() PaintColor {
	return paintFromCode(o.option("PB", "PM", "PP"))
}

// SeatType reports the seats. Seats are spread over four prefixes which
// are probed in order.
func (o *Options) SeatType() SeatType {
	return seatFromCode(o.option("IB", "IP", "IZ", "IS"))
}

// IsPerformance reports the performance drivetrain (PF).
func (o *Options) IsPerformance() bool { return o.HasOption("PF") }

// HasThirdRow reports the rear-facing third row seats (TR).
func (o *Options) HasThirdRow() bool { return o.HasOption("TR") }

// HasAirSuspension reports the active air suspension (SU).
func (o *Options) HasAirSuspension() bool { return o.HasOption("SU") }

// HasSupercharger reports supercharging capability (SC).
func (o *Options) HasSupercharger() bool { return o.HasOption("SC") }

// HasTechPackage reports the tech package (TP).
func (o *Options) HasTechPackage() bool { return o.HasOption("TP") }

// HasAudioUpgrade reports the upgraded sound system (AU).
func (o *Options) HasAudioUpgrade() bool { return o.HasOption("AU") }

// HasTwinCharger reports the twin onboard chargers (CH).
func (o *Options) HasTwinCharger() bool { return o.HasOption("CH") }

// HasHPWC reports the high power wall connector (HP).
func (o *Options) HasHPWC() bool { return o.HasOption("HP") }

// HasPaintArmor reports the paint armor film (PA).
func (o *Options) HasPaintArmor() bool { return o.HasOption("PA") }

// HasParcelShelf reports the parcel shelf (PS).
func (o *Options) HasParcelShelf() bool { return o.HasOption("PS") }

// HasPowerLiftgate reports the power liftgate (X001).
func (o *Options) HasPowerLiftgate() bool { return o.HasOption("X001") }

// HasNavSystem reports the navigation system (X003).
func (o *Options) HasNavSystem() bool { return o.HasOption("X003") }

// HasPremiumLighting reports the premium interior lighting (X007).
func (o *Options) HasPremiumLighting() bool { return o.HasOption("X007") }

// HasHomeLink reports the HomeLink garage opener (X011).
func (o *Options) HasHomeLink() bool { return o.HasOption("X011") }

// HasSatRadio reports satellite radio (X013).
func (o *Options) HasSatRadio() bool { return o.HasOption("X013") }

// HasPerfExterior reports the performance exterior package (X019).
func (o *Options) HasPerfExterior() bool { return o.HasOption("X019") }

// HasPerfPowertrain reports the performance powertrain package (X024).
func (o *Options) HasPerfPowertrain() bool { return o.HasOption("X024") }

// The following codes have been seen in the wild but are not confirmed
// against a delivered car yet.

// HasParkingSensors reports the parking sensors (PK).
func (o *Options) HasParkingSensors() bool { return o.HasOption("PK") }

// HasLightingPackage reports the lighting package (LP).
func (o *Options) HasLightingPackage() bool { return o.HasOption("LP") }

// HasSecurityPackage reports the security package (SP).
func (o *Options) HasSecurityPackage() bool { return o.HasOption("SP") }

// HasColdWeather reports the cold weather package (CW).
func (o *Options) HasColdWeather() bool { return o.HasOption("CW") }
