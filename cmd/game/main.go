package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/EstruturaDados/detective-quest-OruamC/internal/clues"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/config"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/console"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/engine"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/logging"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/mansion"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/narrator"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/suspects"
	"github.com/EstruturaDados/detective-quest-OruamC/internal/tui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	plain   bool
	narrate bool
	verbose bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Detective Quest - explore the mansion, collect clues, accuse a suspect",
	Long: `Detective Quest walks you through a mansion laid out as a binary tree.
Every room you enter may hold a clue; at the end you accuse a suspect, and the
accusation holds only if at least two of your clues point at them.

Keys: (e) esquerda, (d) direita, (s) sair.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return play(cmd.Context())
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an investigation (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return play(cmd.Context())
	},
}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the mansion layout",
	Run: func(cmd *cobra.Command, args []string) {
		mansion.Walk(mansion.Build(), func(room *mansion.Room, depth int) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", strings.Repeat("  ", depth), room.Name)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "use the line-based interface instead of the full-screen one")
	rootCmd.PersistentFlags().BoolVar(&narrate, "narrate", true, "describe rooms with Gemini when GEMINI_API_KEY is set")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file (default $DETECTIVE_LOG_FILE)")
	rootCmd.AddCommand(playCmd, mapCmd)
}

func play(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if verbose {
		cfg.LogLevel = zapcore.DebugLevel
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	layout := mansion.Layout()
	root := mansion.FromLayout(layout.Room)
	defer mansion.Release(root)
	index := suspects.FromRules(layout.Rules, suspects.DefaultBuckets)
	eng := engine.New(root, clues.New(), logger)
	logger.Info("investigation started", zap.String("title", layout.Title), zap.Int("rules", index.Len()))

	var n narrator.Narrator
	if narrate && cfg.CanNarrate() {
		g, err := narrator.NewGemini(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("creating narrator: %w", err)
		}
		defer g.Close()
		n = g
	}

	if plain || !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		_, err := console.New(os.Stdin, os.Stdout, n, logger).Play(ctx, eng, index)
		return err
	}
	return tui.Run(eng, index, n, logger)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
