package options

import "fmt"

// Report renders the decoded configuration as a fixed-order, human
// readable summary. The layout and ordering never vary, so the same
// option string always produces byte-identical output.
func (o *Options) Report() string {
	return fmt.Sprintf(
		"    Region: %s\n"+
			"    Trim: %s\n"+
			"    Drive Side: %s\n"+
			"    Performance Options: [\n"+
			"       Performance: %t\n"+
			"       Performance+: %t\n"+
			"       Performance Exterior: %t\n"+
			"       Performance Powertrain: %t\n"+
			"    ]\n"+
			"    Battery: %s\n"+
			"    Color: %s\n"+
			"    Roof: %s\n"+
			"    Wheels: %s\n"+
			"    Seats: %s\n"+
			"    Decor: %s\n"+
			"    Air Suspension: %t\n"+
			"    Tech Upgrades: [\n"+
			"        Tech Package: %t\n"+
			"        Power Liftgate: %t\n"+
			"        Premium Lighting: %t\n"+
			"        HomeLink: %t\n"+
			"        Navigation: %t\n"+
			"    ]\n"+
			"    Audio: [\n"+
			"        Upgraded: %t\n"+
			"        Sat Radio: %t\n"+
			"    ]\n"+
			"    Charging: [\n"+
			"        Supercharger: %t\n"+
			"        Twin Chargers: %t\n"+
			"        HPWC: %t\n"+
			"    ]\n"+
			"    Options: [\n"+
			"        Parcel Shelf: %t\n"+
			"        Paint Armor: %t\n"+
			"        Third Row Seating: %t\n"+
			"    ]\n"+
			"    Newer Options: [\n"+
			"        Parking Sensors: %t\n"+
			"        Lighting Package: %t\n"+
			"        Security Package: %t\n"+
			"        Cold Weather Package: %t\n"+
			"    ]\n",
		o.Region(), o.TrimLevel(), o.DriveSide(),
		o.IsPerformance(), o.IsPerfPlus(),
		o.HasPerfExterior(), o.HasPerfPowertrain(),
		o.BatteryType(), o.PaintColor(), o.RoofType(), o.WheelType(),
		o.SeatType(), o.DecorType(), o.HasAirSuspension(),
		o.HasTechPackage(), o.HasPowerLiftgate(), o.HasPremiumLighting(),
		o.HasHomeLink(), o.HasNavSystem(),
		o.HasAudioUpgrade(), o.HasSatRadio(),
		o.HasSupercharger(), o.HasTwinCharger(), o.HasHPWC(),
		o.HasParcelShelf(), o.HasPaintArmor(), o.HasThirdRow(),
		o.HasParkingSensors(), o.HasLightingPackage(), o.HasSecurityPackage(),
		o.HasColdWeather())
}
