package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/player"
	"ctchen222/tictactoe/internal/random"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")
)

// ErrBoardFull is returned when the bot is asked to move with no empty cell.
var ErrBoardFull = errors.New("board is full")

var _ player.Player = (*Bot)(nil)

// Bot is the computer player of a single game.
type Bot struct {
	id         string
	mark       game.PlayerMark
	opponent   game.PlayerMark // None until the opponent's first mark shows up
	difficulty Difficulty
	gate       *Gate
	rnd        random.Source
	decisions  metric.Int64Counter
}

// NewBot creates a bot for one game. An unknown difficulty is rejected here,
// before any board is touched.
func NewBot(mark game.PlayerMark, difficulty string, rnd random.Source) (*Bot, error) {
	if mark != game.PlayerX && mark != game.PlayerO {
		return nil, fmt.Errorf("%w: %q", game.ErrInvalidMark, mark)
	}
	d, err := ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}

	decisions, err := meter.Int64Counter("bot.decisions",
		metric.WithDescription("Moves chosen by the bot, by cascade rule"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create decisions counter: %w", err)
	}

	return &Bot{
		id:         "bot-" + uuid.New().String()[:8],
		mark:       mark,
		difficulty: d,
		gate:       NewGate(d, rnd),
		rnd:        rnd,
		decisions:  decisions,
	}, nil
}

func (b *Bot) ID() string { return b.id }
func (b *Bot) Mark() game.PlayerMark { return b.mark }
func (b *Bot) IsBot() bool { return true }
func (b *Bot) Difficulty() Difficulty { return b.difficulty }

// Opponent returns the cached opponent mark, if it has been seen.
func (b *Bot) Opponent() (game.PlayerMark, bool) {
	return b.opponent, b.opponent != game.None
}

func (b *Bot) resolveOpponent(board *game.Board) game.PlayerMark {
	if b.opponent == game.None {
		if m, ok := board.OpponentMark(b.mark); ok {
			b.opponent = m
		}
	}
	return b.opponent
}

// Decide chooses a move without marking it. The board is left unchanged.
func (b *Bot) Decide(board *game.Board) (Decision, error) {
	if board.AllCellsMarked() {
		return Decision{}, ErrBoardFull
	}
	opponent := b.resolveOpponent(board)

	if b.gate.Bypass() {
		empty := board.EmptyCellIndexes()
		return Decision{
			Index:      random.Pick(b.rnd, empty),
			Rule:       RuleRandom,
			Candidates: empty,
		}, nil
	}
	return Choose(board, b.mark, opponent, b.rnd)
}

// Play chooses a move, marks it on the board and returns its index.
func (b *Bot) Play(ctx context.Context, board *game.Board) (int, error) {
	decision, err := b.Move(ctx, board)
	if err != nil {
		return -1, err
	}
	return decision.Index, nil
}

// Move is Play returning the whole decision.
func (b *Bot) Move(ctx context.Context, board *game.Board) (Decision, error) {
	ctx, span := tracer.Start(ctx, "bot.Play", trace.WithAttributes(
		attribute.String("player.id", b.id),
		attribute.String("bot.mark", string(b.mark)),
		attribute.String("bot.difficulty", string(b.difficulty)),
		attribute.String("board", board.String()),
	))
	defer span.End()

	decision, err := b.Decide(board)
	if err != nil {
		slog.ErrorContext(ctx, "Bot could not choose a move", "player.id", b.id, "board", board.String(), "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Bot could not choose a move")
		return Decision{}, err
	}

	board.Mark(decision.Index, b.mark)

	span.SetAttributes(
		attribute.Int("move.index", decision.Index),
		attribute.String("bot.rule", string(decision.Rule)),
		attribute.Int("bot.candidates", len(decision.Candidates)),
	)
	b.decisions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("rule", string(decision.Rule)),
		attribute.String("difficulty", string(b.difficulty)),
	))
	slog.DebugContext(ctx, "Bot chose move", "player.id", b.id, "move.index", decision.Index, "bot.rule", decision.Rule)

	return decision, nil
}
