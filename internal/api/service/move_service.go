package service

import (
	"context"
	"errors"
	"fmt"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/random"
	"ctchen222/tictactoe/pkg/proto"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("service")

var (
	ErrGameOver        = errors.New("game is already over")
	ErrInvalidPosition = errors.New("position cannot occur in a game")
)

//go:generate mockgen -source=move_service.go -destination=mocks/mock_move_service.go -package=mocks

// MoveService defines the move advisor's business logic.
type MoveService interface {
	NextMove(ctx context.Context, req *proto.MoveRequest) (*proto.MoveResponse, error)
	Difficulties(ctx context.Context) []proto.DifficultyInfo
}

type moveService struct {
	sourceFor func(seed uint64) random.Source
}

// NewMoveService creates a MoveService. A request seed of 0 gets an unseeded
// source.
func NewMoveService() MoveService {
	return &moveService{sourceFor: random.FromSeed}
}

// NextMove runs a fresh bot on the submitted board.
func (s *moveService) NextMove(ctx context.Context, req *proto.MoveRequest) (*proto.MoveResponse, error) {
	ctx, span := tracer.Start(ctx, "MoveService.NextMove", trace.WithAttributes(
		attribute.String("board", req.Board),
		attribute.String("bot.mark", req.Mark),
		attribute.String("bot.difficulty", req.Difficulty),
	))
	defer span.End()

	resp, err := s.nextMove(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to choose move")
		return nil, err
	}
	return resp, nil
}

func (s *moveService) nextMove(ctx context.Context, req *proto.MoveRequest) (*proto.MoveResponse, error) {
	board, err := game.ParseBoard(req.Board)
	if err != nil {
		return nil, err
	}
	mark, err := game.ParseMark(req.Mark)
	if err != nil {
		return nil, err
	}
	if err := checkPosition(board); err != nil {
		return nil, err
	}

	b, err := bot.NewBot(mark, req.Difficulty, s.sourceFor(req.Seed))
	if err != nil {
		return nil, err
	}
	decision, err := b.Move(ctx, board)
	if err != nil {
		return nil, err
	}

	row, col := game.RowCol(decision.Index)
	return &proto.MoveResponse{
		Index: decision.Index,
		Row:   row,
		Col:   col,
		Rule:  string(decision.Rule),
		Board: board.String(),
	}, nil
}

// checkPosition rejects finished boards and mark counts no game can produce.
func checkPosition(board *game.Board) error {
	if winner, won := board.Winner(); won {
		return fmt.Errorf("%w: %s has won", ErrGameOver, winner)
	}
	if board.AllCellsMarked() {
		return fmt.Errorf("%w: board is full", ErrGameOver)
	}
	x, o := 0, 0
	for _, m := range board {
		switch m {
		case game.PlayerX:
			x++
		case game.PlayerO:
			o++
		}
	}
	if x-o > 1 || o-x > 1 {
		return fmt.Errorf("%w: %d X and %d O", ErrInvalidPosition, x, o)
	}
	return nil
}

// Difficulties lists the levels with their thresholds.
func (s *moveService) Difficulties(_ context.Context) []proto.DifficultyInfo {
	levels := bot.Difficulties()
	infos := make([]proto.DifficultyInfo, 0, len(levels))
	for _, d := range levels {
		infos = append(infos, proto.DifficultyInfo{Name: string(d), Threshold: d.Threshold()})
	}
	return infos
}
