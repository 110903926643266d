package charge

// State is the charge state snapshot the API reports for one vehicle.
// Field names mirror the wire names.
type State struct {
	ChargingState        string  `json:"charging_state"`
	BatteryLevel         int     `json:"battery_level"`
	ChargeLimitSoc       int     `json:"charge_limit_soc"`
	BatteryRange         float64 `json:"battery_range"`
	EstBatteryRange      float64 `json:"est_battery_range"`
	IdealBatteryRange    float64 `json:"ideal_battery_range"`
	ChargeRate           float64 `json:"charge_rate"`
	ChargerPower         int     `json:"charger_power"`
	ChargerVoltage       int     `json:"charger_voltage"`
	ChargerActualCurrent int     `json:"charger_actual_current"`
	ChargerPilotCurrent  int     `json:"charger_pilot_current"`
	TimeToFullCharge     float64 `json:"time_to_full_charge"`
	ChargePortDoorOpen   bool    `json:"charge_port_door_open"`
	FastChargerPresent   bool    `json:"fast_charger_present"`
	ChargeToMaxRange     bool    `json:"charge_to_max_range"`
}

// IsCharging reports whether the car is actively drawing power.
func (s *State) IsCharging() bool {
	return s != nil && s.ChargingState == "Charging"
}
