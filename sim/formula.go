package sim

// LapTime returns the time in seconds to cover lapDistance metres at avgSpeed m/s.
func LapTime(lapDistance, avgSpeed float64) (float64, error) {
	// !(x > 0) also rejects NaN.
	if !(avgSpeed > 0) {
		return 0, &DivisionError{Field: "avg_speed", Value: avgSpeed}
	}
	return lapDistance / avgSpeed, nil
}

// FuelBurn returns the fuel mass in kg consumed over lapTime seconds at fuelRate kg/s.
// Inputs are not validated; negative inputs give a negative burn.
func FuelBurn(fuelRate, lapTime float64) float64 {
	return fuelRate * lapTime
}

// GripAfter returns the grip coefficient after lapsCompleted laps of linear decay.
// No floor is applied, the result may be negative.
func GripAfter(initialGrip, degradationRate float64, lapsCompleted int) float64 {
	return initialGrip - degradationRate*float64(lapsCompleted)
}

// FuelRemaining returns the fuel left after laps laps of constant lapTime.
// Cumulative burn is rate x lapTime x laps, not a running per-lap sum.
func FuelRemaining(initialFuel, fuelRate, lapTime float64, laps int) float64 {
	return initialFuel - FuelBurn(fuelRate, lapTime)*float64(laps)
}
