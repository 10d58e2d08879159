package bot

import (
	"errors"
	"fmt"
	"slices"

	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/random"
)

// Rule names the step of the cascade that produced a move.
type Rule string

const (
	RuleRandom              Rule = "random"
	RuleWin                 Rule = "win"
	RuleBlock               Rule = "block"
	RuleFork                Rule = "fork"
	RuleBlockFork           Rule = "block-fork"
	RuleBlockForkWithThreat Rule = "block-fork-with-threat"
	RuleForceDefense        Rule = "force-defense"
	RuleCenter              Rule = "center"
	RuleOppositeCorner      Rule = "opposite-corner"
	RuleCorner              Rule = "corner"
	RuleSide                Rule = "side"
)

// ErrCascadeExhausted means no rule produced a move on a board that still had
// room. It points at a bug in the rules, never at bad input.
var ErrCascadeExhausted = errors.New("move cascade exhausted without a candidate")

// Decision is the chosen cell together with the rule and the tie set it was
// drawn from.
type Decision struct {
	Index      int
	Rule       Rule
	Candidates []int
}

// Choose runs the cascade and breaks ties with rnd.
func Choose(b *game.Board, own, opponent game.PlayerMark, rnd random.Source) (Decision, error) {
	rule, candidates, err := Candidates(b, own, opponent)
	if err != nil {
		return Decision{}, err
	}
	return Decision{
		Index:      random.Pick(rnd, candidates),
		Rule:       rule,
		Candidates: candidates,
	}, nil
}

// Candidates returns the first rule of the cascade that has at least one
// candidate cell, with all of its candidates in ascending order. opponent may
// be game.None while the opponent has not moved yet. The board is left as it
// was found.
func Candidates(b *game.Board, own, opponent game.PlayerMark) (Rule, []int, error) {
	known := opponent != game.None

	// 1. Win: Complete a line of our own.
	if cells := winningCells(b, own); len(cells) > 0 {
		return RuleWin, cells, nil
	}

	// 2. Block: Take the cell that would complete the opponent's line.
	if known {
		if cells := winningCells(b, opponent); len(cells) > 0 {
			return RuleBlock, cells, nil
		}
	}

	// 3. Fork: Open two lines at once.
	if cells := forkCells(b, own); len(cells) > 0 {
		return RuleFork, cells, nil
	}

	// 4. Counter the opponent's forks.
	if known {
		if rule, cells := counterFork(b, own, opponent); len(cells) > 0 {
			return rule, cells, nil
		}
	}

	// 5. Center
	if b[game.Center] == game.None {
		return RuleCenter, []int{game.Center}, nil
	}

	// 6. Opposite corner
	if known {
		if cells := oppositeCorners(b, opponent); len(cells) > 0 {
			return RuleOppositeCorner, cells, nil
		}
	}

	// 7. Corners
	if cells := emptyOf(b, game.Corners); len(cells) > 0 {
		return RuleCorner, cells, nil
	}

	// 8. Sides
	if cells := emptyOf(b, game.Sides); len(cells) > 0 {
		return RuleSide, cells, nil
	}

	return "", nil, fmt.Errorf("%w: board %s, mark %s", ErrCascadeExhausted, b, own)
}

// winningCells are the empty cells that complete a line for mark.
func winningCells(b *game.Board, mark game.PlayerMark) []int {
	var cells []int
	for _, i := range b.EmptyCellIndexes() {
		if b.Try(i, mark, func(b *game.Board) bool { return b.CheckWin(i, mark) }) {
			cells = append(cells, i)
		}
	}
	return cells
}

// createsFork reports whether marking i leaves two or more lines through it
// with two of mark and one empty cell.
func createsFork(b *game.Board, i int, mark game.PlayerMark) bool {
	return b.Try(i, mark, func(b *game.Board) bool {
		return game.MatchesPattern(*b, i, mark, 1, 2) >= 2
	})
}

// forkCells are the empty cells where mark creates a fork.
func forkCells(b *game.Board, mark game.PlayerMark) []int {
	var cells []int
	for _, i := range b.EmptyCellIndexes() {
		if createsFork(b, i, mark) {
			cells = append(cells, i)
		}
	}
	return cells
}

// forcesSafely reports whether own at i builds a two-in-a-row (a line with one
// own mark and two empties before the move) and no forced reply to it hands
// the opponent a fork.
func forcesSafely(b *game.Board, i int, own, opponent game.PlayerMark) bool {
	if game.MatchesPattern(*b, i, own, 2, 1) == 0 {
		return false
	}
	return b.Try(i, own, func(b *game.Board) bool {
		for _, line := range game.LinesThrough(i) {
			if n, empty := game.CountAlongLine(*b, line, own); n != 2 || empty != 1 {
				continue
			}
			if createsFork(b, emptyCellOf(b, line), opponent) {
				return false
			}
		}
		return true
	})
}

// counterFork implements step 4 of the cascade.
func counterFork(b *game.Board, own, opponent game.PlayerMark) (Rule, []int) {
	forks := forkCells(b, opponent)
	if len(forks) == 1 {
		return RuleBlockFork, forks
	}

	if len(forks) > 1 {
		var cells []int
		for _, i := range forks {
			if forcesSafely(b, i, own, opponent) {
				cells = append(cells, i)
			}
		}
		if len(cells) > 0 {
			return RuleBlockForkWithThreat, cells
		}
	}

	var cells []int
	for _, i := range b.EmptyCellIndexes() {
		if slices.Contains(forks, i) {
			continue
		}
		if forcesSafely(b, i, own, opponent) {
			cells = append(cells, i)
		}
	}
	return RuleForceDefense, cells
}

// oppositeCorners are the empty corners facing a corner held by opponent.
func oppositeCorners(b *game.Board, opponent game.PlayerMark) []int {
	var cells []int
	for _, c := range game.Corners {
		if b[c] == game.None && b[game.OppositeCorner(c)] == opponent {
			cells = append(cells, c)
		}
	}
	return cells
}

func emptyOf(b *game.Board, group [4]int) []int {
	var cells []int
	for _, i := range group {
		if b[i] == game.None {
			cells = append(cells, i)
		}
	}
	return cells
}

func emptyCellOf(b *game.Board, line game.Line) int {
	for _, i := range line.Cells {
		if b[i] == game.None {
			return i
		}
	}
	return -1
}
