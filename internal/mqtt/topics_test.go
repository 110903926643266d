package mqtt

import "testing"

func TestTopicLayout(t *testing.T) {
	const vin = "5YJSA1CN1CFP01234"

	tests := []struct {
		got  string
		want string
	}{
		{AvailabilityTopic(), "tesla2mqtt/availability"},
		{StateTopic(vin), "tesla2mqtt/5YJSA1CN1CFP01234/state"},
		{ChargeSetTopic(vin), "tesla2mqtt/5YJSA1CN1CFP01234/charge/set"},
		{ChargeLimitSetTopic(vin), "tesla2mqtt/5YJSA1CN1CFP01234/charge_limit/set"},
		{ChargeRangeSetTopic(vin), "tesla2mqtt/5YJSA1CN1CFP01234/charge_range/set"},
		{CommandResultTopic(vin), "tesla2mqtt/5YJSA1CN1CFP01234/charge/result"},
		{DiscoveryTopic("homeassistant", "sensor", vin, "battery_level"),
			"homeassistant/sensor/tesla_5YJSA1CN1CFP01234/battery_level/config"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("topic = %q, want %q", tt.got, tt.want)
		}
	}
}
