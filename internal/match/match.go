package match

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/player"
	"ctchen222/tictactoe/internal/random"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("match")

var (
	// ErrIllegalMove is returned when a player breaks the move contract: the
	// returned cell must have been empty and must now hold the player's mark,
	// with no other cell touched.
	ErrIllegalMove = errors.New("illegal move")
	ErrSameMarks   = errors.New("players must use different marks")
)

// Result is the outcome of a finished match.
type Result struct {
	ID       string
	Winner   game.PlayerMark // None on a tie
	WinnerID string
	Moves    int
	Board    game.Board
}

func (r Result) IsTie() bool {
	return r.Winner == game.None
}

// Match alternates two players on one board until someone wins or the board
// fills up.
type Match struct {
	id         string
	players    [2]player.Player
	board      *game.Board
	out        io.Writer
	rnd        random.Source
	firstTurn  int // -1 draws the first turn from rnd
	thinkDelay time.Duration
}

type Option func(*Match)

// WithRenderer writes the board before each turn and the outcome to w.
func WithRenderer(w io.Writer) Option {
	return func(m *Match) { m.out = w }
}

// WithRandom sets the source used to draw the first turn.
func WithRandom(src random.Source) Option {
	return func(m *Match) { m.rnd = src }
}

// WithFirstTurn makes player i (0 or 1) move first.
func WithFirstTurn(i int) Option {
	return func(m *Match) { m.firstTurn = i }
}

// WithThinkDelay pauses before every bot move.
func WithThinkDelay(d time.Duration) Option {
	return func(m *Match) { m.thinkDelay = d }
}

func New(p1, p2 player.Player, opts ...Option) (*Match, error) {
	for _, p := range []player.Player{p1, p2} {
		if mark := p.Mark(); mark != game.PlayerX && mark != game.PlayerO {
			return nil, fmt.Errorf("player %s: %w: %q", p.ID(), game.ErrInvalidMark, mark)
		}
	}
	if p1.Mark() == p2.Mark() {
		return nil, fmt.Errorf("%w: both are %s", ErrSameMarks, p1.Mark())
	}

	m := &Match{
		id:        uuid.New().String(),
		players:   [2]player.Player{p1, p2},
		board:     game.NewBoard(),
		out:       io.Discard,
		firstTurn: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.firstTurn != 0 && m.firstTurn != 1 {
		if m.rnd == nil {
			m.rnd = random.NewUnseeded()
		}
		m.firstTurn = m.rnd.IntN(2)
	}
	return m, nil
}

func (m *Match) ID() string {
	return m.id
}

// Board returns the live board of the match.
func (m *Match) Board() *game.Board {
	return m.board
}

// Run plays the match to the end.
func (m *Match) Run(ctx context.Context) (Result, error) {
	ctx, span := tracer.Start(ctx, "match.Run", trace.WithAttributes(
		attribute.String("match.id", m.id),
		attribute.String("player1.id", m.players[0].ID()),
		attribute.String("player2.id", m.players[1].ID()),
	))
	defer span.End()

	turn := m.firstTurn
	round := 1
	won := false
	for !m.board.AllCellsMarked() {
		var err error
		won, err = m.playRound(ctx, round, turn)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Match aborted")
			slog.ErrorContext(ctx, "Match aborted", "match.id", m.id, "round", round, "error", err)
			return Result{}, err
		}
		if won {
			break
		}
		turn = 1 - turn
		round++
	}

	m.render(fmt.Sprintf("Round %d - END", round))

	result := Result{ID: m.id, Moves: m.board.MarkedCount(), Board: *m.board}
	if won {
		winner := m.players[turn]
		result.Winner = winner.Mark()
		result.WinnerID = winner.ID()
		fmt.Fprintf(m.out, "Player #%d wins!\n", turn+1)
	} else {
		fmt.Fprintln(m.out, "It's a tie!")
	}

	span.SetAttributes(attribute.String("match.winner", string(result.Winner)), attribute.Int("match.moves", result.Moves))
	slog.InfoContext(ctx, "Match finished", "match.id", m.id, "match.winner", result.Winner, "match.moves", result.Moves)
	return result, nil
}

func (m *Match) playRound(ctx context.Context, round, turn int) (bool, error) {
	p := m.players[turn]
	ctx, span := tracer.Start(ctx, "match.playRound", trace.WithAttributes(
		attribute.Int("match.round", round),
		attribute.String("player.id", p.ID()),
	))
	defer span.End()

	m.render(fmt.Sprintf("Round %d, player's #%d turn", round, turn+1))

	if p.IsBot() && m.thinkDelay > 0 {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(m.thinkDelay):
		}
	}

	before := *m.board
	index, err := p.Play(ctx, m.board)
	if err != nil {
		return false, err
	}
	if err := checkMove(before, *m.board, index, p.Mark()); err != nil {
		return false, fmt.Errorf("player %s: %w", p.ID(), err)
	}

	span.SetAttributes(attribute.Int("move.index", index))
	slog.DebugContext(ctx, "Player moved", "match.id", m.id, "player.id", p.ID(), "move.index", index)
	return m.board.CheckWin(index, p.Mark()), nil
}

// checkMove verifies that after differs from before by exactly mark at index.
func checkMove(before, after game.Board, index int, mark game.PlayerMark) error {
	if index < 0 || index >= game.CellCount {
		return fmt.Errorf("%w: index %d out of range", ErrIllegalMove, index)
	}
	if before[index] != game.None {
		return fmt.Errorf("%w: cell %d was already marked", ErrIllegalMove, index)
	}
	want := before
	want[index] = mark
	if after != want {
		return fmt.Errorf("%w: expected %s, board is %s", ErrIllegalMove, want, after)
	}
	return nil
}

func (m *Match) render(header string) {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n-------------\n")
	for r := range game.Size {
		sb.WriteString("|")
		for c := range game.Size {
			sb.WriteString(" ")
			sb.WriteByte(m.board[game.Index(r, c)].Glyph())
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("-------------\n")
	io.WriteString(m.out, sb.String())
}
