package main

import (
	"fmt"
	"os"

	"gamelounge/internal/config"
	"gamelounge/internal/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgPath string
	verbose bool
	seed    uint64
	noColor bool

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lounge",
	Short: "gamelounge - terminal card, hand and board games",
	Long: `gamelounge is a bundle of small terminal games against simple computer players:

  21           Blackjack with a persistent bankroll and a Hi-Lo count
  RPS(LS)      Rock, Paper, Scissors, Lizard, Spock against eight personalities
  Tic-Tac-Toe  3x3 against a line-completing AI

Run without arguments to open the menu.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if verbose {
			loaded.Logging.DebugMode = true
			loaded.Logging.Level = "debug"
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", cfgPath, err)
		}
		cfg = loaded

		if noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		if err := logging.Initialize(cfg.Logging, "."); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logging.Get(logging.CategoryBoot).Info("starting",
			zap.String("command", cmd.Name()),
			zap.String("config", cfgPath),
			zap.String("version", cfg.Version))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
	},
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "lounge.yaml", "Config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to the log file")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed for reproducible games (0 = random)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors")

	rpsCmd.Flags().StringVar(&rpsOpponent, "opponent", "", "Opponent personality (default: config or random)")
	rpsCmd.Flags().Float64Var(&rpsTarget, "target", -1, "Points needed to win a match, 0 for endless (default: config)")

	bankCmd.AddCommand(bankShowCmd)
	bankCmd.AddCommand(bankResetCmd)

	statsCmd.Flags().IntVarP(&statsLimit, "limit", "n", 10, "Number of recent results to list")

	rootCmd.AddCommand(blackjackCmd)
	rootCmd.AddCommand(rpsCmd)
	rootCmd.AddCommand(tictactoeCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(rulesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
