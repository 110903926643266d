package options

// Each option enumeration below is a closed set of known codes plus an
// Unknown member. Conversion from a raw code is total: anything not in
// the catalog, including a missing code, maps to Unknown. String()
// returns the catalog description, so enum values print as the names a
// buyer would recognize rather than as codes.

const unknownName = "Unknown"

// Region identifies the market a vehicle was configured for (RE prefix).
type Region string

// Region codes.
const (
	RENA Region = "RENA"
	RENC Region = "RENC"
	REEU Region = "REEU"

	RegionUnknown Region = ""
)

var regionNames = map[Region]string{
	RENA: "United States",
	RENC: "Canada",
	REEU: "Europe",
}

func regionFromCode(code string) Region {
	if _, ok := regionNames[Region(code)]; ok {
		return Region(code)
	}
	return RegionUnknown
}

func (r Region) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return unknownName
}

// TrimLevel identifies the production trim (TM prefix).
type TrimLevel string

// Trim codes.
const (
	TM00 TrimLevel = "TM00"
	TM02 TrimLevel = "TM02"

	TrimUnknown TrimLevel = ""
)

var trimNames = map[TrimLevel]string{
	TM00: "Standard Production Trim",
	TM02: "Signature Performance Trim",
}

func trimFromCode(code string) TrimLevel {
	if _, ok := trimNames[TrimLevel(code)]; ok {
		return TrimLevel(code)
	}
	return TrimUnknown
}

func (t TrimLevel) String() string {
	if name, ok := trimNames[t]; ok {
		return name
	}
	return unknownName
}

// DriveSide identifies the steering wheel side (DR prefix).
type DriveSide string

// Drive side codes.
const (
	DRLH DriveSide = "DRLH"
	DRRH DriveSide = "DRRH"

	DriveSideUnknown DriveSide = ""
)

var driveSideNames = map[DriveSide]string{
	DRLH: "Left Hand",
	DRRH: "Right Hand",
}

func driveSideFromCode(code string) DriveSide {
	if _, ok := driveSideNames[DriveSide(code)]; ok {
		return DriveSide(code)
	}
	return DriveSideUnknown
}

func (d DriveSide) String() string {
	if name, ok := driveSideNames[d]; ok {
		return name
	}
	return unknownName
}

// BatteryType identifies the battery pack (BT prefix, after the PBT
// normalization done by Decode).
type BatteryType string

// Battery pack codes.
const (
	BT85 BatteryType = "BT85"
	BT60 BatteryType = "BT60"
	BT40 BatteryType = "BT40"

	BatteryUnknown BatteryType = ""
)

var batteryNames = map[BatteryType]string{
	BT85: "85kWh",
	BT60: "60kWh",
	BT40: "40kWh (Software Limited)",
}

func batteryFromCode(code string) BatteryType {
	if _, ok := batteryNames[BatteryType(code)]; ok {
		return BatteryType(code)
	}
	return BatteryUnknown
}

func (b BatteryType) String() string {
	if name, ok := batteryNames[b]; ok {
		return name
	}
	return unknownName
}

// RoofType identifies the roof (RF prefix).
type RoofType string

// Roof codes.
const (
	RFBC RoofType = "RFBC"
	RFPO RoofType = "RFPO"
	RFBK RoofType = "RFBK"

	RoofUnknown RoofType = ""
)

var roofNames = map[RoofType]string{
	RFBC: "Body Color",
	RFPO: "Panoramic",
	RFBK: "Black",
}

func roofFromCode(code string) RoofType {
	if _, ok := roofNames[RoofType(code)]; ok {
		return RoofType(code)
	}
	return RoofUnknown
}

func (r RoofType) String() string {
	if name, ok := roofNames[r]; ok {
		return name
	}
	return unknownName
}

// WheelType identifies the wheels (WT prefix). Several codes map to the
// same wheel, they differ only by model year.
type WheelType string

// Wheel codes.
const (
	WT1P WheelType = "WT1P"
	WTX1 WheelType = "WTX1"
	WT19 WheelType = "WT19"
	WT21 WheelType = "WT21"
	WTSP WheelType = "WTSP"
	WTSG WheelType = "WTSG"
	WTAE WheelType = "WTAE"
	WTTB WheelType = "WTTB"

	WheelUnknown WheelType = ""
)

var wheelNames = map[WheelType]string{
	WT1P: `Silver 19"`,
	WTX1: `Silver 19"`,
	WT19: `Silver 19"`,
	WT21: `Silver 21"`,
	WTSP: `Gray 21"`,
	WTSG: `Gray Perf+ 21"`,
	WTAE: `Aero 19"`,
	WTTB: `Cyclone 19"`,
}

func wheelFromCode(code string) WheelType {
	if _, ok := wheelNames[WheelType(code)]; ok {
		return WheelType(code)
	}
	return WheelUnknown
}

func (w WheelType) String() string {
	if name, ok := wheelNames[w]; ok {
		return name
	}
	return unknownName
}

// DecorType identifies the interior decor inlay (ID prefix).
type DecorType string

// Decor codes.
const (
	IDCF DecorType = "IDCF"
	IDLW DecorType = "IDLW"
	IDOM DecorType = "IDOM"
	IDOG DecorType = "IDOG"
	IDPB DecorType = "IDPB"

	DecorUnknown DecorType = ""
)

var decorNames = map[DecorType]string{
	IDCF: "Carbon Fiber",
	IDLW: "Lacewood",
	IDOM: "Obeche Matte",
	IDOG: "Obeche Gloss",
	IDPB: "Piano Black",
}

func decorFromCode(code string) DecorType {
	if _, ok := decorNames[DecorType(code)]; ok {
		return DecorType(code)
	}
	return DecorUnknown
}

func (d DecorType) String() string {
	if name, ok := decorNames[d]; ok {
		return name
	}
	return unknownName
}

// AdapterType identifies the bundled charging adapter (AD prefix).
type AdapterType string

// Adapter codes.
const (
	AD02 AdapterType = "AD02"

	AdapterUnknown AdapterType = ""
)

var adapterNames = map[AdapterType]string{
	AD02: "NEMA 14-50",
}

func adapterFromCode(code string) AdapterType {
	if _, ok := adapterNames[AdapterType(code)]; ok {
		return AdapterType(code)
	}
	return AdapterUnknown
}

func (a AdapterType) String() string {
	if name, ok := adapterNames[a]; ok {
		return name
	}
	return unknownName
}

// PaintColor identifies the exterior paint. Solid colors use the PB
// prefix, metallics PM and the premium multicoats PP.
type PaintColor string

// Paint codes.
const (
	PBSB PaintColor = "PBSB"
	PBCW PaintColor = "PBCW"
	PMSS PaintColor = "PMSS"
	PMTG PaintColor = "PMTG"
	PMAB PaintColor = "PMAB"
	PMMB PaintColor = "PMMB"
	PMSG PaintColor = "PMSG"
	PPSW PaintColor = "PPSW"
	PPMR PaintColor = "PPMR"
	PPSR PaintColor = "PPSR"

	PaintUnknown PaintColor = ""
)

var paintNames = map[PaintColor]string{
	PBSB: "Black",
	PBCW: "Solid White",
	PMSS: "Silver",
	PMTG: "Metallic Dolphin Gray",
	PMAB: "Metallic Brown",
	PMMB: "Metallic Blue",
	PMSG: "Metallic Green",
	PPSW: "Pearl White",
	PPMR: "Premium Multicoat Red",
	PPSR: "Premium Signature Red",
}

func paintFromCode(code string) PaintColor {
	if _, ok := paintNames[PaintColor(code)]; ok {
		return PaintColor(code)
	}
	return PaintUnknown
}

func (p PaintColor) String() string {
	if name, ok := paintNames[p]; ok {
		return name
	}
	return unknownName
}

// SeatType identifies the seats. Base textile uses the IB prefix,
// leather IP, performance leather IZ (QZMB is a one-off code for the
// same trim) and signature perforated leather IS.
type SeatType string

// Seat codes.
const (
	IBMB SeatType = "IBMB"
	IPMB SeatType = "IPMB"
	IPMG SeatType = "IPMG"
	IPMT SeatType = "IPMT"
	IZZW SeatType = "IZZW"
	QZMB SeatType = "QZMB"
	IZMB SeatType = "IZMB"
	IZMG SeatType = "IZMG"
	IZMT SeatType = "IZMT"
	ISZW SeatType = "ISZW"
	ISZT SeatType = "ISZT"
	ISZB SeatType = "ISZB"

	SeatUnknown SeatType = ""
)

var seatNames = map[SeatType]string{
	IBMB: "Base Textile, Black",
	IPMB: "Leather, Black",
	IPMG: "Leather, Gray",
	IPMT: "Leather, Tan",
	IZZW: "Perf Leather with Grey Piping, White",
	QZMB: "Perf Leather with Piping, Black",
	IZMB: "Perf Leather with Piping, Black",
	IZMG: "Perf Leather with Piping, Gray",
	IZMT: "Perf Leather with Piping, Tan",
	ISZW: "Signature Perforated Leather, White",
	ISZT: "Signature Perforated Leather, Tan",
	ISZB: "Signature Perforated Leather, Black",
}

func seatFromCode(code string) SeatType {
	if _, ok := seatNames[SeatType(code)]; ok {
		return SeatType(code)
	}
	return SeatUnknown
}

func (s SeatType) String() string {
	if name, ok := seatNames[s]; ok {
		return name
	}
	return unknownName
}
