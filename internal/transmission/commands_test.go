package transmission

import (
	"context"
	"io"
	"testing"

	"github.com/diyk/TeslaClient/internal/charge"
	"github.com/sirupsen/logrus"
)

type fakeSender struct {
	commands []string
	result   charge.Result
}

func (f *fakeSender) Command(_ context.Context, _ int64, name string) (charge.Result, error) {
	f.commands = append(f.commands, name)
	return f.result, nil
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestApplyCommand(t *testing.T) {
	tests := []struct {
		kind        commandKind
		payload     string
		wantCommand string // "" means no remote call
		wantSuccess bool
	}{
		{kindCharge, "ON", "charge_start", true},
		{kindCharge, "OFF", "charge_stop", true},
		{kindCharge, "on", "charge_start", true},
		{kindCharge, " ON ", "charge_start", true},
		{kindCharge, "maybe", "", false},
		{kindCharge, "", "", false},

		{kindChargeLimit, "80", "set_charge_limit?percent=80", true},
		{kindChargeLimit, "80.0", "set_charge_limit?percent=80", true},
		{kindChargeLimit, "1", "set_charge_limit?percent=1", true},
		{kindChargeLimit, "100", "set_charge_limit?percent=100", true},
		{kindChargeLimit, "0", "", false},
		{kindChargeLimit, "101", "", false},
		{kindChargeLimit, "eighty", "", false},

		{kindChargeRange, "max_range", "charge_max_range", true},
		{kindChargeRange, "standard", "charge_standard", true},
		{kindChargeRange, "turbo", "", false},
	}

	for _, tt := range tests {
		sender := &fakeSender{result: charge.Result{Success: true}}
		ctrl := charge.NewController(sender, 11, testLogger())

		res := applyCommand(context.Background(), ctrl, tt.kind, []byte(tt.payload))

		if res.Success != tt.wantSuccess {
			t.Errorf("applyCommand(%s, %q).Success = %v, want %v", tt.kind, tt.payload, res.Success, tt.wantSuccess)
		}
		switch {
		case tt.wantCommand == "" && len(sender.commands) != 0:
			t.Errorf("applyCommand(%s, %q) sent %v, want no remote call", tt.kind, tt.payload, sender.commands)
		case tt.wantCommand != "" && (len(sender.commands) != 1 || sender.commands[0] != tt.wantCommand):
			t.Errorf("applyCommand(%s, %q) sent %v, want [%q]", tt.kind, tt.payload, sender.commands, tt.wantCommand)
		}
	}
}

func TestApplyCommandRejectionCarriesReason(t *testing.T) {
	sender := &fakeSender{result: charge.Result{Success: true}}
	ctrl := charge.NewController(sender, 11, testLogger())

	res := applyCommand(context.Background(), ctrl, kindChargeLimit, []byte("150"))
	if res.Success {
		t.Error("Success = true, want false")
	}
	if res.Reason != "value out of range" {
		t.Errorf("Reason = %q, want the controller's out-of-range message", res.Reason)
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		text    string
		want    int
		wantErr bool
	}{
		{"80", 80, false},
		{"80.0", 80, false},
		{"79.6", 80, false},
		{"1", 1, false},
		{"", 0, true},
		{"full", 0, true},
	}

	for _, tt := range tests {
		got, err := parsePercent(tt.text)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePercent(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parsePercent(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
