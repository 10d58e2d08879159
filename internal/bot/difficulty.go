package bot

import (
	"errors"
	"fmt"

	"ctchen222/tictactoe/internal/random"
)

// Difficulty names a skill level of the bot.
type Difficulty string

const (
	Easy       Difficulty = "easy"
	Medium     Difficulty = "medium"
	Hard       Difficulty = "hard"
	Impossible Difficulty = "impossible"
)

// drawRange is the exclusive upper bound of the gate's draw.
const drawRange = 100

var ErrUnknownDifficulty = errors.New("unknown difficulty")

var thresholds = map[Difficulty]int{
	Easy:       20,
	Medium:     50,
	Hard:       80,
	Impossible: 100,
}

// Difficulties lists the recognized levels from weakest to strongest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Impossible}
}

// ParseDifficulty maps a case-sensitive name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := thresholds[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// Threshold is the percentage of turns on which the cascade is consulted.
func (d Difficulty) Threshold() int {
	return thresholds[d]
}

// Gate decides, once per turn, whether the cascade is skipped in favour of a
// random legal move.
type Gate struct {
	threshold int
	rnd       random.Source
}

// NewGate creates a gate for difficulty d drawing from rnd.
func NewGate(d Difficulty, rnd random.Source) *Gate {
	return &Gate{threshold: d.Threshold(), rnd: rnd}
}

// Bypass draws from [0, 100) and reports whether the draw reached the threshold.
func (g *Gate) Bypass() bool {
	return g.rnd.IntN(drawRange) >= g.threshold
}
