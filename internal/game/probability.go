package game

import "math/rand"

// WinProbabilityPercent maps a multiplier and a 1-based step to a win chance
// in [0,100]:
//
//	p = (1/multiplier)*100 - multiplier*step
//
// The penalty term uses the current step's multiplier, not a cumulative one;
// each step is evaluated on its own. A missing or non-positive multiplier
// always loses.
func WinProbabilityPercent(multiplier float64, step int) float64 {
	if multiplier <= 0 {
		return 0
	}
	p := (1/multiplier)*100 - multiplier*float64(step)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func LoseProbabilityPercent(multiplier float64, step int) float64 {
	return 100 - WinProbabilityPercent(multiplier, step)
}

// Result of one outcome draw.
type Result string

const (
	ResultWin  Result = "win"
	ResultLose Result = "lose"
)

// Outcome is one resolved step: the odds-table multiplier, the probability
// split, the raw uniform draw consumed and the verdict it produced.
type Outcome struct {
	Level                  Level
	Step                   int
	Multiplier             float64
	WinProbabilityPercent  float64
	LoseProbabilityPercent float64
	RandomValue            float64
	Result                 Result
}

// Engine resolves bet steps. The random source is a field so tests can swap
// in a deterministic one; the default draws a fresh uniform sample from
// math/rand per call.
type Engine struct {
	random func() float64
}

func NewEngine() *Engine {
	return &Engine{random: rand.Float64}
}

// NewEngineWithSource builds an engine drawing from src instead of the
// default source.
func NewEngineWithSource(src func() float64) *Engine {
	return &Engine{random: src}
}

// Resolve draws one outcome for a tier and step. A draw at or below the win
// probability wins; everything above loses.
func (e *Engine) Resolve(level Level, step int) Outcome {
	multiplier := Odds(level, step)
	winPct := WinProbabilityPercent(multiplier, step)

	r := e.random()
	result := ResultLose
	if r <= winPct/100 {
		result = ResultWin
	}

	return Outcome{
		Level:                  level,
		Step:                   step,
		Multiplier:             multiplier,
		WinProbabilityPercent:  winPct,
		LoseProbabilityPercent: 100 - winPct,
		RandomValue:            r,
		Result:                 result,
	}
}
