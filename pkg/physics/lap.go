package physics

import (
	"fmt"
	"math"
)

// FormatLap renders seconds as m.ss.t, or s.t under a minute.
func FormatLap(seconds float64) string {
	minutes := math.Floor(seconds / 60)
	secs := math.Floor(seconds - minutes*60)
	tenths := math.Floor(10 * (seconds - math.Floor(seconds)))
	if minutes > 0 {
		return fmt.Sprintf("%d.%02d.%d", int(minutes), int(secs), int(tenths))
	}
	return fmt.Sprintf("%d.%d", int(secs), int(tenths))
}

// Readout is the speed shown to the driver, in steps of 5.
func Readout(speed float64) int {
	return 5 * int(math.Round(speed/500))
}
