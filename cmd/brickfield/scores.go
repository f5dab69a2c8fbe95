package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickfield/internal/platform/tui"
	"github.com/vovakirdan/brickfield/internal/registry"
	"github.com/vovakirdan/brickfield/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs.

On a terminal the scores open in an interactive table; when output is
piped a plain list is printed instead.

Examples:
  brickfield scores
  brickfield scores --limit 20 | less
  brickfield scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print when not on a terminal")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	game, err := registry.Create(bricksID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(bricksID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "game", bricksID)
		return
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, bricksID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store, title); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, title string) error {
	runs, err := store.TopRuns(bricksID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickfield play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-6s  %-12s  %s\n", "Rank", "Score", "Result", "Bricks", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-6s  %-12s  %s\n", "----", "-----", "------", "------", "------", "----")

	for i, r := range runs {
		result := "lost"
		if r.Won {
			result = "cleared"
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-7s  %-6d  %-12s  %s\n",
			i+1, r.Score, result, r.Bricks, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(bricksID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Cleared: %d\n", stats.HighScore, stats.Runs, stats.Wins)
	return nil
}
