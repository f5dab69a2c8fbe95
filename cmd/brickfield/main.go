// brickfield is a terminal brick breaker.
//
// Usage:
//
//	brickfield play           - Play in this terminal
//	brickfield serve          - Host games over SSH
//	brickfield scores         - Show high scores
//	brickfield sim            - Run a headless game with an autopilot paddle
//	brickfield config         - Print the default or effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.brickfield/scores.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickfield/internal/games/bricks"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Game flags shared by play, serve, sim and config
	flagConfig     string
	flagDifficulty string
)

// bricksID is the registered ID of the brickfield game.
const bricksID = "bricks"

// logger is the process logger, set up before any command runs.
var logger = log.Default()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickfield",
	Short: "Brickfield - break bricks in your terminal",
	Long: `Brickfield is a brick breaker for the terminal. Keep the ball in play
with the paddle and clear the field of bricks.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a headless game and print the result
  config   - Print the game configuration

Examples:
  brickfield play
  brickfield play --difficulty hard
  brickfield serve --ssh :2222
  brickfield sim --ticks 36000 --seed 42`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogger(cmd.ErrOrStderr())
	},
}

// setupLogger builds the process logger. With --log-file the log goes to
// that file, which keeps it off the game screen.
func setupLogger(stderr io.Writer) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	out := stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickfield",
		Level:           level,
	})
	log.SetDefault(logger)
	return nil
}

// applyGameFlags passes --config and --difficulty to the game package.
func applyGameFlags() {
	bricks.SetConfigPath(flagConfig)
	bricks.SetDifficultyPreset(flagDifficulty)
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickfield/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
