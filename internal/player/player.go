package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ctchen222/tictactoe/internal/game"

	"github.com/google/uuid"
)

// ErrQuit is returned when a human closes the input instead of moving.
var ErrQuit = errors.New("player quit the game")

// Player takes part in a match. Play must mark exactly one previously empty
// cell of the board with the player's mark and return its index.
type Player interface {
	ID() string
	Mark() game.PlayerMark
	IsBot() bool
	Play(ctx context.Context, board *game.Board) (int, error)
}

const (
	promptMessage = "What cell to mark? Type in index, from 0 to 8."
	retryMessage  = "Can't mark the cell with index %s, try again."
)

// Human reads moves line by line from an input stream.
type Human struct {
	id   string
	mark game.PlayerMark
	in   *bufio.Scanner
	out  io.Writer
}

// NewHuman creates a human player reading from in and prompting on out.
func NewHuman(mark game.PlayerMark, in io.Reader, out io.Writer) *Human {
	return &Human{
		id:   "human-" + uuid.New().String()[:8],
		mark: mark,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (h *Human) ID() string { return h.id }
func (h *Human) Mark() game.PlayerMark { return h.mark }
func (h *Human) IsBot() bool { return false }

// Play prompts until a markable index is entered.
func (h *Human) Play(ctx context.Context, board *game.Board) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		fmt.Fprintln(h.out, promptMessage)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return -1, fmt.Errorf("failed to read move: %w", err)
			}
			return -1, ErrQuit
		}

		text := strings.TrimSpace(h.in.Text())
		index, err := strconv.Atoi(text)
		if err != nil || !board.CanMark(index) {
			fmt.Fprintf(h.out, retryMessage+"\n", text)
			continue
		}

		board.Mark(index, h.mark)
		return index, nil
	}
}
