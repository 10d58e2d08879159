package match

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/player"
	"ctchen222/tictactoe/internal/random"
	"ctchen222/tictactoe/internal/random/mocks"

	"go.uber.org/mock/gomock"
)

// scripted plays a fixed list of cells.
type scripted struct {
	id    string
	mark  game.PlayerMark
	moves []int
	bot   bool
}

func (s *scripted) ID() string            { return s.id }
func (s *scripted) Mark() game.PlayerMark { return s.mark }
func (s *scripted) IsBot() bool           { return s.bot }

func (s *scripted) Play(_ context.Context, b *game.Board) (int, error) {
	if len(s.moves) == 0 {
		return -1, errors.New("script exhausted")
	}
	i := s.moves[0]
	s.moves = s.moves[1:]
	if i >= 0 && i < game.CellCount {
		b.Mark(i, s.mark)
	}
	return i, nil
}

// cheater fills two cells in one turn.
type cheater struct{ scripted }

func (c *cheater) Play(_ context.Context, b *game.Board) (int, error) {
	empty := b.EmptyCellIndexes()
	b.Mark(empty[0], c.mark)
	b.Mark(empty[1], c.mark)
	return empty[0], nil
}

func TestMatchWin(t *testing.T) {
	p1 := &scripted{id: "p1", mark: game.PlayerX, moves: []int{0, 1, 2}}
	p2 := &scripted{id: "p2", mark: game.PlayerO, moves: []int{3, 4}}

	var out strings.Builder
	m, err := New(p1, p2, WithFirstTurn(0), WithRenderer(&out))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	result, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if result.Winner != game.PlayerX || result.WinnerID != "p1" || result.IsTie() {
		t.Errorf("Expected p1 (X) to win, got %+v", result)
	}
	if result.Moves != 5 {
		t.Errorf("Expected 5 moves, got %d", result.Moves)
	}
	if got := result.Board.String(); got != "XXXOO____" {
		t.Errorf("Expected final board XXXOO____, got %s", got)
	}

	rendered := out.String()
	for _, want := range []string{
		"Round 1, player's #1 turn",
		"Round 2, player's #2 turn",
		"Round 5 - END",
		"| X | X | X |",
		"Player #1 wins!",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, rendered)
		}
	}
}

func TestMatchTie(t *testing.T) {
	p1 := &scripted{id: "p1", mark: game.PlayerX, moves: []int{0, 8, 7, 2, 3}}
	p2 := &scripted{id: "p2", mark: game.PlayerO, moves: []int{4, 1, 6, 5}}

	var out strings.Builder
	m, err := New(p1, p2, WithFirstTurn(0), WithRenderer(&out))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	result, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if !result.IsTie() || result.WinnerID != "" {
		t.Errorf("Expected a tie, got %+v", result)
	}
	if got := result.Board.String(); got != "XOXXOOOXX" {
		t.Errorf("Expected final board XOXXOOOXX, got %s", got)
	}
	if !strings.Contains(out.String(), "Round 10 - END") || !strings.Contains(out.String(), "It's a tie!") {
		t.Errorf("Unexpected tie output:\n%s", out.String())
	}
}

func TestMatchRandomFirstTurn(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().IntN(2).Return(1)

	p1 := &scripted{id: "p1", mark: game.PlayerX, moves: []int{3, 4}}
	p2 := &scripted{id: "p2", mark: game.PlayerO, moves: []int{0, 1, 2}}

	m, err := New(p1, p2, WithRandom(src))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	result, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if result.WinnerID != "p2" {
		t.Errorf("Expected p2 to move first and win, got %+v", result)
	}
}

func TestMatchRejectsIllegalMoves(t *testing.T) {
	tests := []struct {
		name string
		p1   player.Player
	}{
		{name: "Occupied cell", p1: &scripted{id: "p1", mark: game.PlayerX, moves: []int{4, 4}}},
		{name: "Out of range", p1: &scripted{id: "p1", mark: game.PlayerX, moves: []int{4, 9}}},
		{name: "Two marks in one turn", p1: &cheater{scripted{id: "p1", mark: game.PlayerX}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p2 := &scripted{id: "p2", mark: game.PlayerO, moves: []int{0, 1, 2}}
			m, err := New(tt.p1, p2, WithFirstTurn(0))
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			_, err = m.Run(context.Background())
			if !errors.Is(err, ErrIllegalMove) {
				t.Errorf("Expected ErrIllegalMove, got %v", err)
			}
		})
	}
}

func TestNewRejectsSameMarks(t *testing.T) {
	p1 := &scripted{id: "p1", mark: game.PlayerX}
	p2 := &scripted{id: "p2", mark: game.PlayerX}
	if _, err := New(p1, p2); !errors.Is(err, ErrSameMarks) {
		t.Errorf("Expected ErrSameMarks, got %v", err)
	}

	p2.mark = game.None
	if _, err := New(p1, p2); !errors.Is(err, game.ErrInvalidMark) {
		t.Errorf("Expected ErrInvalidMark, got %v", err)
	}
}

func TestMatchThinkDelayHonoursContext(t *testing.T) {
	p1 := &scripted{id: "p1", mark: game.PlayerX, moves: []int{0}, bot: true}
	p2 := &scripted{id: "p2", mark: game.PlayerO}

	m, err := New(p1, p2, WithFirstTurn(0), WithThinkDelay(time.Hour))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if m.Board().MarkedCount() != 0 {
		t.Errorf("Expected no move after cancellation, got %s", m.Board())
	}
}

func TestImpossibleBotsAlwaysTie(t *testing.T) {
	rnd := random.New(11)
	for i := range 25 {
		x, err := bot.NewBot(game.PlayerX, "impossible", rnd)
		if err != nil {
			t.Fatalf("NewBot() failed: %v", err)
		}
		o, err := bot.NewBot(game.PlayerO, "impossible", rnd)
		if err != nil {
			t.Fatalf("NewBot() failed: %v", err)
		}

		m, err := New(x, o, WithRandom(rnd))
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		result, err := m.Run(context.Background())
		if err != nil {
			t.Fatalf("game %d: Run() failed: %v", i, err)
		}
		if !result.IsTie() {
			t.Errorf("game %d: Expected a tie between impossible bots, got %s winning on %s", i, result.Winner, result.Board.String())
		}
	}
}
