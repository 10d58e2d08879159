package cli

import (
	"errors"
	"fmt"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/match"
	"ctchen222/tictactoe/internal/player"
	"ctchen222/tictactoe/internal/random"

	"github.com/spf13/cobra"
)

func newPlayCmd(cfg *config.Config) *cobra.Command {
	var (
		mark  string
		first string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game against the computer",
		RunE: func(cmd *cobra.Command, args []string) error {
			humanMark, err := game.ParseMark(mark)
			if err != nil {
				return err
			}
			rnd := random.FromSeed(cfg.Seed)

			human := player.NewHuman(humanMark, cmd.InOrStdin(), cmd.OutOrStdout())
			computer, err := bot.NewBot(humanMark.Opposite(), cfg.Difficulty, rnd)
			if err != nil {
				return err
			}

			opts := []match.Option{
				match.WithRenderer(cmd.OutOrStdout()),
				match.WithRandom(rnd),
				match.WithThinkDelay(cfg.ThinkDelay),
			}
			switch first {
			case "human":
				opts = append(opts, match.WithFirstTurn(0))
			case "computer":
				opts = append(opts, match.WithFirstTurn(1))
			case "random":
			default:
				return fmt.Errorf("invalid --first %q: want random, human or computer", first)
			}

			m, err := match.New(human, computer, opts...)
			if err != nil {
				return err
			}
			if _, err := m.Run(cmd.Context()); err != nil {
				if errors.Is(err, player.ErrQuit) {
					fmt.Fprintln(cmd.OutOrStdout(), "You've quit the game.")
					return nil
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mark, "mark", "m", "X", "Your mark: X or O")
	cmd.Flags().StringVar(&first, "first", "random", "Who moves first: random, human, computer")
	return cmd
}
