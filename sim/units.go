package sim

import "fmt"

const (
	kmhPerMs  = 3.6
	lbsPerKg  = 2.20462
	secPerMin = 60
)

// KmhToMs converts km/h to m/s.
func KmhToMs(speedKmh float64) float64 { return speedKmh / kmhPerMs }

// MsToKmh converts m/s to km/h.
func MsToKmh(speedMs float64) float64 { return speedMs * kmhPerMs }

// KgToLbs converts kilograms to pounds.
func KgToLbs(massKg float64) float64 { return massKg * lbsPerKg }

// LbsToKg converts pounds to kilograms.
func LbsToKg(massLbs float64) float64 { return massLbs / lbsPerKg }

// FormatLapTime renders seconds as mm:ss.mmm. Non-positive input renders as "-".
func FormatLapTime(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	ms := int64(seconds*1000 + 0.5)
	minutes := ms / (secPerMin * 1000)
	ms -= minutes * secPerMin * 1000
	return fmt.Sprintf("%02d:%02d.%03d", minutes, ms/1000, ms%1000)
}

// FormatRaceTime renders seconds as h:mm:ss.mmm.
func FormatRaceTime(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	ms := int64(seconds*1000 + 0.5)
	hours := ms / 3_600_000
	ms -= hours * 3_600_000
	minutes := ms / 60_000
	ms -= minutes * 60_000
	return fmt.Sprintf("%d:%02d:%02d.%03d", hours, minutes, ms/1000, ms%1000)
}
