package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickfield/internal/core"
	"github.com/vovakirdan/brickfield/internal/games/bricks"
	"github.com/vovakirdan/brickfield/internal/storage"
)

var (
	flagSimTicks  int
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with an autopilot paddle",
	Long: `Play a game without a terminal: the paddle follows the ball and the
ball is launched as soon as it rests. Prints the outcome and a state hash;
the same seed, config and tick rate always give the same hash.

Examples:
  brickfield sim --seed 42
  brickfield sim --ticks 36000 --log-level debug
  brickfield sim --seed 7 --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60*5, "Maximum ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record the run in the scores database")
}

// simResult summarizes a headless run.
type simResult struct {
	State core.GameState
	Hash  uint64
}

func runSim(_ *cobra.Command, _ []string) {
	applyGameFlags()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := bricks.New()
	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = seed
	game.Reset(runtime)

	start := time.Now()
	res := simulate(game, flagSimTicks, logger)
	logger.Debug("simulation finished", "elapsed", time.Since(start))

	outcome := "running"
	switch {
	case res.State.Won:
		outcome = "cleared"
	case res.State.GameOver:
		outcome = "game over"
	}

	fmt.Printf("seed:    %d\n", seed)
	fmt.Printf("ticks:   %d\n", res.State.Ticks)
	fmt.Printf("outcome: %s\n", outcome)
	fmt.Printf("score:   %d\n", res.State.Score)
	fmt.Printf("lives:   %d\n", res.State.Lives)
	fmt.Printf("bricks:  %d\n", res.State.Bricks)
	fmt.Printf("hash:    %016x\n", res.Hash)

	if !flagSimRecord {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		GameID: game.ID(),
		Player: "sim",
		Score:  res.State.Score,
		Won:    res.State.Won,
		Bricks: res.State.Bricks,
		Ticks:  res.State.Ticks,
		Seed:   seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording run: %v\n", err)
		os.Exit(1)
	}
	logger.Info("run recorded", "id", id)
}

// simulate steps game with the autopilot until it ends or maxTicks pass.
func simulate(game *bricks.Game, maxTicks int, logger *log.Logger) simResult {
	state := game.State()
	for range maxTicks {
		result := game.Step(autopilot(game))
		state = result.State

		for _, e := range result.Events {
			switch e {
			case core.EventMiss:
				logger.Info("ball lost", "tick", state.Ticks, "lives", state.Lives)
			case core.EventBrick:
				logger.Debug("brick destroyed", "tick", state.Ticks, "score", state.Score, "ball", game.Model().Ball())
			default:
				logger.Debug("event", "tick", state.Ticks, "event", e)
			}
		}

		if state.GameOver {
			break
		}
	}

	snap := game.Snapshot()
	return simResult{State: state, Hash: snap.Hash()}
}

// autopilot launches a resting ball and steers the paddle center toward
// the ball.
func autopilot(game *bricks.Game) core.InputFrame {
	in := core.NewInputFrame()
	if game.Phase() == bricks.StateServe {
		in.Set(core.ActionLaunch)
		return in
	}

	ball := game.Model().Ball()
	paddle := game.Model().Paddle()
	center := paddle.X + paddle.Width/2

	const deadZone = 4
	switch {
	case ball.Center.X < center-deadZone:
		in.Set(core.ActionLeft)
	case ball.Center.X > center+deadZone:
		in.Set(core.ActionRight)
	}
	return in
}
