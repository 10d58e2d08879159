package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/internal/logger"
	"ctchen222/tictactoe/internal/telemetry"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg, loadErr := config.Load()
	var shutdown telemetry.ShutdownFunc

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against the computer",
		Long: `tictactoe plays tic-tac-toe in the terminal against a computer opponent.

The opponent follows the classic win, block, fork strategy. Its difficulty
sets how often it ignores the strategy and plays a random cell instead.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger.Init(cfg.SlogLevel(), cmd.ErrOrStderr())

			var err error
			shutdown, err = telemetry.InitOtel(cmd.Context(), cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(context.WithoutCancel(cmd.Context()))
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Difficulty, "difficulty", "d", cfg.Difficulty, "Computer difficulty: easy, medium, hard, impossible (env: TTT_DIFFICULTY)")
	rootCmd.PersistentFlags().DurationVar(&cfg.ThinkDelay, "think-delay", cfg.ThinkDelay, "Pause before each computer move (env: TTT_THINK_DELAY)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for a random one (env: TTT_SEED)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: TTT_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&cfg.OtelExporter, "otel-exporter", cfg.OtelExporter, "Telemetry exporter: none, stdout, otlp (env: TTT_OTEL_EXPORTER)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd(&cfg))
	rootCmd.AddCommand(newSimulateCmd(&cfg))
	rootCmd.AddCommand(newSuggestCmd(&cfg))
	rootCmd.AddCommand(newServeCmd(&cfg))

	return rootCmd
}

// Execute runs the root command until it returns or the process is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
