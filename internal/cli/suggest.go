package cli

import (
	"fmt"

	"ctchen222/tictactoe/internal/api/service"
	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/pkg/proto"

	"github.com/spf13/cobra"
)

func newSuggestCmd(cfg *config.Config) *cobra.Command {
	var (
		board string
		mark  string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Print the computer's move for a board",
		Example: `  tictactoe suggest --board XX__O____ --mark O
  tictactoe suggest --board "xx /oo./---" --mark x -d easy --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := service.NewMoveService().NextMove(cmd.Context(), &proto.MoveRequest{
				Board:      board,
				Mark:       mark,
				Difficulty: cfg.Difficulty,
				Seed:       cfg.Seed,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Move: %d (row %d, col %d) by rule %s\n", resp.Index, resp.Row, resp.Col, resp.Rule)
			fmt.Fprintf(cmd.OutOrStdout(), "Board: %s\n", resp.Board)
			return nil
		},
	}

	cmd.Flags().StringVarP(&board, "board", "b", "", "Board in row-major order, X, O and _ for empty")
	cmd.Flags().StringVarP(&mark, "mark", "m", "", "Mark to move: X or O")
	_ = cmd.MarkFlagRequired("board")
	_ = cmd.MarkFlagRequired("mark")
	return cmd
}
