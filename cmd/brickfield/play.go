package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickfield/internal/audio"
	"github.com/vovakirdan/brickfield/internal/core"
	"github.com/vovakirdan/brickfield/internal/platform/tui"
	"github.com/vovakirdan/brickfield/internal/registry"
	"github.com/vovakirdan/brickfield/internal/storage"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A/H, Right/D/L - Move the paddle
  Mouse               - Paddle follows the pointer, click launches
  Space               - Launch the ball
  P/Esc               - Pause
  R                   - Restart (after game over)
  Tab                 - High scores (paused or after game over)
  Q/Ctrl+C            - Quit

Difficulty options:
  easy   - 5 lives, wide paddle, gentle brick boosts
  normal - Start at 30% difficulty, progresses to max
  hard   - 2 lives, narrow paddle, strong brick boosts
  fixed  - No progression, stays at config's initial level

Examples:
  brickfield play
  brickfield play --difficulty easy --sound
  brickfield play --config ./my-field.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	applyGameFlags()

	// Logs would draw over the game.
	if flagLogFile == "" {
		logger.SetOutput(io.Discard)
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(bricksID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	sound := false
	if flagSound {
		if err := audio.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			sound = true
			defer audio.Close()
		}
	}

	runErr := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Player: os.Getenv("USER"),
		Sound:  sound,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
