package game

import (
	"fmt"
	"strings"
)

// Board is the 3x3 grid stored row-major.
type Board [CellCount]PlayerMark

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// ParseBoard decodes the 9-cell form produced by String. '/' may separate rows.
func ParseBoard(s string) (*Board, error) {
	s = strings.ReplaceAll(s, "/", "")
	if len(s) != CellCount {
		return nil, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidBoard, CellCount, len(s))
	}

	var b Board
	for i := 0; i < CellCount; i++ {
		switch s[i] {
		case 'X', 'x':
			b[i] = PlayerX
		case 'O', 'o':
			b[i] = PlayerO
		case '_', ' ', '.', '-':
			b[i] = None
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidBoard, s[i], i)
		}
	}
	return &b, nil
}

// String encodes the board as 9 characters, '_' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for _, cell := range b {
		sb.WriteByte(cell.Glyph())
	}
	return sb.String()
}

// CanMark reports whether index is on the board and empty.
func (b *Board) CanMark(index int) bool {
	return index >= 0 && index < CellCount && b[index] == None
}

// Mark writes mark into the cell. Callers validate with CanMark first.
func (b *Board) Mark(index int, mark PlayerMark) {
	b[index] = mark
}

// Unmark clears the cell. Only hypothetical moves are rolled back this way.
func (b *Board) Unmark(index int) {
	b[index] = None
}

// Try marks index, runs fn and restores the previous cell before returning,
// even when fn panics.
func (b *Board) Try(index int, mark PlayerMark, fn func(*Board) bool) bool {
	prev := b[index]
	b[index] = mark
	defer func() { b[index] = prev }()
	return fn(b)
}

// EmptyCellIndexes returns the empty cells in ascending order.
func (b *Board) EmptyCellIndexes() []int {
	indexes := make([]int, 0, CellCount)
	for i, cell := range b {
		if cell == None {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// AllCellsMarked reports whether no empty cell is left.
func (b *Board) AllCellsMarked() bool {
	for _, cell := range b {
		if cell == None {
			return false
		}
	}
	return true
}

// MarkedCount is the number of non-empty cells.
func (b *Board) MarkedCount() int {
	n := 0
	for _, cell := range b {
		if cell != None {
			n++
		}
	}
	return n
}

// OpponentMark scans row-major for a mark other than own.
func (b *Board) OpponentMark(own PlayerMark) (PlayerMark, bool) {
	for _, cell := range b {
		if cell != None && cell != own {
			return cell, true
		}
	}
	return None, false
}

// CheckWin reports whether a line through index is fully held by mark.
func (b *Board) CheckWin(index int, mark PlayerMark) bool {
	for _, line := range LinesThrough(index) {
		if own, _ := CountAlongLine(*b, line, mark); own == Size {
			return true
		}
	}
	return false
}

// Winner scans every line for a completed one.
func (b *Board) Winner() (PlayerMark, bool) {
	for _, line := range Lines {
		first := b[line.Cells[0]]
		if first == None {
			continue
		}
		if own, _ := CountAlongLine(*b, line, first); own == Size {
			return first, true
		}
	}
	return None, false
}

// IsDraw reports a full board without a winner.
func (b *Board) IsDraw() bool {
	if _, won := b.Winner(); won {
		return false
	}
	return b.AllCellsMarked()
}
