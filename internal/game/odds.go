package game

import "fmt"

// Level is a risk tier. Each tier trades win probability against multiplier
// growth across the 49-step sequence.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Steps is the length of every odds table.
const Steps = 49

func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelLow, LevelMedium, LevelHigh:
		return Level(s), nil
	default:
		return "", fmt.Errorf("invalid bet level: %q", s)
	}
}

// The multiplier tables are a fixed contract; do not regenerate or smooth
// them. Each is strictly increasing.
var lowOdds = [Steps]float64{
	1.02, 1.08, 1.13, 1.19, 1.25, 1.32, 1.38, 1.45, 1.53, 1.61,
	1.69, 1.78, 1.87, 1.96, 2.06, 2.17, 2.28, 2.4, 2.52, 2.65,
	2.78, 2.92, 3.07, 3.23, 3.4, 3.57, 3.75, 3.94, 4.14, 4.36,
	4.58, 4.81, 5.06, 5.32, 5.59, 5.87, 6.17, 6.49, 6.82, 7.17,
	7.53, 7.92, 8.32, 8.75, 9.19, 9.66, 10.16, 10.67, 11.22,
}

var mediumOdds = [Steps]float64{
	1.12, 1.28, 1.46, 1.67, 1.91, 2.18, 2.49, 2.85, 3.25, 3.72,
	4.25, 4.86, 5.56, 6.35, 7.26, 8.3, 9.48, 10.84, 12.39, 14.16,
	16.18, 18.49, 21.13, 24.15, 27.6, 31.55, 36.05, 41.2, 47.09, 53.82,
	61.51, 70.3, 80.34, 91.82, 104.94, 119.93, 137.06, 156.64, 179.02, 204.59,
	233.82, 267.23, 305.4, 349.03, 398.89, 455.88, 521.01, 595.44, 680.5,
}

var highOdds = [Steps]float64{
	1.22, 1.54, 1.93, 2.43, 3.05, 3.83, 4.8, 6.03, 7.57, 9.5,
	11.93, 14.97, 18.79, 23.59, 29.6, 37.16, 46.64, 58.53, 73.47, 92.21,
	115.74, 145.26, 182.32, 228.83, 287.21, 360.47, 452.43, 567.85, 712.71, 894.53,
	1122.73, 1409.14, 1768.61, 2219.79, 2786.07, 3496.8, 4388.84, 5508.45, 6913.66, 8677.35,
	10669.27, 17156.33, 21532.95, 27026.05, 33920.45, 42573.63, 53434.25, 67065.44, 84173.83,
}

// Odds returns the payout multiplier for a tier at a 1-based step. Steps past
// the end of the table clamp to the last entry rather than failing, so a late
// or replayed request can never crash resolution.
func Odds(level Level, step int) float64 {
	var table *[Steps]float64
	switch level {
	case LevelLow:
		table = &lowOdds
	case LevelMedium:
		table = &mediumOdds
	case LevelHigh:
		table = &highOdds
	default:
		return 0
	}
	if step > Steps {
		return table[Steps-1]
	}
	if step < 1 {
		return table[0]
	}
	return table[step-1]
}
