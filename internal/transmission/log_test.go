package transmission

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLogTransmitterReportsOncePerVIN(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	tx := NewLogTransmitter(logger)
	snap := testSnapshot()
	snap.OptionCodes = "RENA,PBT85,WT19"

	for i := 0; i < 3; i++ {
		if err := tx.Transmit(snap); err != nil {
			t.Fatalf("Transmit() error: %v", err)
		}
	}

	out := buf.String()
	if got := strings.Count(out, "Decoded configuration"); got != 1 {
		t.Errorf("option report logged %d times, want once", got)
	}
	if !strings.Contains(out, "Battery: 85kWh") {
		t.Error("report output missing the decoded battery pack")
	}
	if got := strings.Count(out, "Vehicle snapshot"); got != 3 {
		t.Errorf("snapshot logged %d times, want 3", got)
	}
}

func TestLogTransmitterIsAlwaysConnected(t *testing.T) {
	tx := NewLogTransmitter(logrus.New())
	if !tx.IsConnected() {
		t.Error("IsConnected() = false, want true")
	}
}
