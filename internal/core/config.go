package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameTime returns the simulated seconds covered by one tick.
func (c RuntimeConfig) FrameTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended with the field cleared
	Paused   bool // Whether the game is paused
	Bricks   int  // Bricks destroyed so far
	Ticks    int  // Simulation ticks played
}

// Event is something noteworthy that happened during a tick, for sound and logs.
type Event int

const (
	EventWall   Event = iota // Ball reflected off the top or a side
	EventPaddle              // Ball reflected off the paddle
	EventBrick               // At least one brick destroyed
	EventMiss                // Ball fell past the bottom
	EventWin                 // Last brick destroyed
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventWall:
		return "wall"
	case EventPaddle:
		return "paddle"
	case EventBrick:
		return "brick"
	case EventMiss:
		return "miss"
	case EventWin:
		return "win"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
