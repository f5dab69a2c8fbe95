// Package audio plays short square-wave cues for game events.
// Nothing is played until Init succeeds, so headless runs and SSH
// sessions stay silent.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/vovakirdan/brickfield/internal/core"
)

const sampleRate = beep.SampleRate(44100)

var (
	mu          sync.Mutex
	initialized bool
)

// Init opens the speaker.
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return err
	}
	initialized = true
	return nil
}

// Close shuts down the speaker.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		speaker.Close()
		initialized = false
	}
}

// Play sounds the most important event of a tick. One cue per tick keeps
// a ball clearing two bricks from sounding twice.
func Play(events []core.Event) {
	mu.Lock()
	on := initialized
	mu.Unlock()
	if !on {
		return
	}

	if e, ok := pick(events); ok {
		speaker.Play(Cue(e))
	}
}

// priority orders events from most to least important.
var priority = []core.Event{
	core.EventWin,
	core.EventMiss,
	core.EventBrick,
	core.EventPaddle,
	core.EventWall,
}

func pick(events []core.Event) (core.Event, bool) {
	for _, p := range priority {
		for _, e := range events {
			if e == p {
				return e, true
			}
		}
	}
	return 0, false
}

// Cue returns the sound for an event.
func Cue(e core.Event) beep.Streamer {
	switch e {
	case core.EventWall:
		return squareWave(440, 30*time.Millisecond)
	case core.EventPaddle:
		return squareWave(880, 50*time.Millisecond)
	case core.EventBrick:
		return squareWave(1320, 40*time.Millisecond)
	case core.EventMiss:
		return beep.Seq(
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 100*time.Millisecond),
			squareWave(220, 150*time.Millisecond),
		)
	case core.EventWin:
		return beep.Seq(
			squareWave(523, 100*time.Millisecond),
			squareWave(659, 100*time.Millisecond),
			squareWave(784, 100*time.Millisecond),
			squareWave(1047, 200*time.Millisecond),
		)
	default:
		return beep.Silence(0)
	}
}

// squareWave generates a square wave tone for the given duration.
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	remaining := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if remaining <= 0 {
				return i, false
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			remaining--
		}
		return len(samples), true
	})
}
