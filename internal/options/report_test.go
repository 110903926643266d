package options

import "testing"

func TestReport(t *testing.T) {
	raw := "MS01,RENA,TM00,DRLH,PF00,BT85,PBCW,RFBC,WT19,IBMB,IDBO,TR00,SU01,SC01"
	want := `    Region: United States
    Trim: Standard Production Trim
    Drive Side: Left Hand
    Performance Options: [
       Performance: false
       Performance+: false
       Performance Exterior: false
       Performance Powertrain: false
    ]
    Battery: 85kWh
    Color: Solid White
    Roof: Body Color
    Wheels: Silver 19"
    Seats: Base Textile, Black
    Decor: Unknown
    Air Suspension: true
    Tech Upgrades: [
        Tech Package: false
        Power Liftgate: false
        Premium Lighting: false
        HomeLink: false
        Navigation: false
    ]
    Audio: [
        Upgraded: false
        Sat Radio: false
    ]
    Charging: [
        Supercharger: true
        Twin Chargers: false
        HPWC: false
    ]
    Options: [
        Parcel Shelf: false
        Paint Armor: false
        Third Row Seating: false
    ]
    Newer Options: [
        Parking Sensors: false
        Lighting Package: false
        Security Package: false
        Cold Weather Package: false
    ]
`

	if got := Decode(raw).Report(); got != want {
		t.Errorf("Report() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestReportLoadedCar(t *testing.T) {
	raw := "RENC,TM02,DRRH,PF01,PBT85,PPMR,RFPO,WTSG,IZMG,IDCF,SU01,SC01,TP01,AU01,CH01,HP01,PA01,PS01,TR01,PK01,LP01,SP01,CW01,X001,X003,X007,X011,X013,X019,X024"
	want := `    Region: Canada
    Trim: Signature Performance Trim
    Drive Side: Right Hand
    Performance Options: [
       Performance: true
       Performance+: true
       Performance Exterior: true
       Performance Powertrain: true
    ]
    Battery: 85kWh
    Color: Premium Multicoat Red
    Roof: Panoramic
    Wheels: Gray Perf+ 21"
    Seats: Perf Leather with Piping, Gray
    Decor: Carbon Fiber
    Air Suspension: true
    Tech Upgrades: [
        Tech Package: true
        Power Liftgate: true
        Premium Lighting: true
        HomeLink: true
        Navigation: true
    ]
    Audio: [
        Upgraded: true
        Sat Radio: true
    ]
    Charging: [
        Supercharger: true
        Twin Chargers: true
        HPWC: true
    ]
    Options: [
        Parcel Shelf: true
        Paint Armor: true
        Third Row Seating: true
    ]
    Newer Options: [
        Parking Sensors: true
        Lighting Package: true
        Security Package: true
        Cold Weather Package: true
    ]
`

	if got := Decode(raw).Report(); got != want {
		t.Errorf("Report() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestReportDeterministic(t *testing.T) {
	raw := "RENA,TM00,BT60,PMSS,WTAE,X001,X013"
	first := Decode(raw).Report()
	for i := 0; i < 3; i++ {
		if got := Decode(raw).Report(); got != first {
			t.Fatalf("Report() varied between decodes of the same input")
		}
	}
}
