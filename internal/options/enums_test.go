package options

import (
	"fmt"
	"testing"
)

func TestEnumDescriptions(t *testing.T) {
	tests := []struct {
		val  fmt.Stringer
		want string
	}{
		{RENA, "United States"},
		{REEU, "Europe"},
		{TM00, "Standard Production Trim"},
		{DRLH, "Left Hand"},
		{BT40, "40kWh (Software Limited)"},
		{RFBK, "Black"},
		{WT1P, `Silver 19"`},
		{WTSG, `Gray Perf+ 21"`},
		{IDOM, "Obeche Matte"},
		{AD02, "NEMA 14-50"},
		{PMTG, "Metallic Dolphin Gray"},
		{PPMR, "Premium Multicoat Red"},
		{IZZW, "Perf Leather with Grey Piping, White"},
		{QZMB, "Perf Leather with Piping, Black"},

		// Values outside the catalog, including the zero value, fall
		// back to Unknown.
		{RegionUnknown, "Unknown"},
		{Region("RE99"), "Unknown"},
		{WheelType("WT99"), "Unknown"},
		{SeatUnknown, "Unknown"},
		{PaintColor("PXXX"), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.val.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.val, got, tt.want)
		}
	}
}

func TestWheelCodesSharingADescription(t *testing.T) {
	// Three codes name the same silver 19" wheel across model years.
	for _, w := range []WheelType{WT1P, WTX1, WT19} {
		if got := w.String(); got != `Silver 19"` {
			t.Errorf("%s.String() = %q, want %q", string(w), got, `Silver 19"`)
		}
	}
}
