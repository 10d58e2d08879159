package cli

import (
	"fmt"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/match"
	"ctchen222/tictactoe/internal/random"

	"github.com/spf13/cobra"
)

// Tally counts the outcomes of simulated games.
type Tally struct {
	XWins int
	OWins int
	Ties  int
}

func newSimulateCmd(cfg *config.Config) *cobra.Command {
	var (
		games       int
		xDifficulty string
		oDifficulty string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play the computer against itself and print the tallies",
		RunE: func(cmd *cobra.Command, args []string) error {
			if games < 1 {
				return fmt.Errorf("invalid --games %d: must be positive", games)
			}
			if xDifficulty == "" {
				xDifficulty = cfg.Difficulty
			}
			if oDifficulty == "" {
				oDifficulty = cfg.Difficulty
			}

			rnd := random.FromSeed(cfg.Seed)
			var tally Tally
			for range games {
				x, err := bot.NewBot(game.PlayerX, xDifficulty, rnd)
				if err != nil {
					return err
				}
				o, err := bot.NewBot(game.PlayerO, oDifficulty, rnd)
				if err != nil {
					return err
				}

				m, err := match.New(x, o, match.WithRandom(rnd))
				if err != nil {
					return err
				}
				result, err := m.Run(cmd.Context())
				if err != nil {
					return err
				}

				switch result.Winner {
				case game.PlayerX:
					tally.XWins++
				case game.PlayerO:
					tally.OWins++
				default:
					tally.Ties++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Games: %d (X %s, O %s)\n", games, xDifficulty, oDifficulty)
			fmt.Fprintf(out, "X wins: %d\n", tally.XWins)
			fmt.Fprintf(out, "O wins: %d\n", tally.OWins)
			fmt.Fprintf(out, "Ties: %d\n", tally.Ties)
			return nil
		},
	}

	cmd.Flags().IntVarP(&games, "games", "n", 100, "Number of games")
	cmd.Flags().StringVar(&xDifficulty, "x-difficulty", "", "Difficulty of X (default --difficulty)")
	cmd.Flags().StringVar(&oDifficulty, "o-difficulty", "", "Difficulty of O (default --difficulty)")
	return cmd
}
