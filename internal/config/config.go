// Package config provides YAML-based game configuration loading and
// difficulty management for brickfield.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/brickfield/internal/core"
)

// BrickfieldConfig contains all configuration for the brick field game.
// The simulation treats it as read-only; the model keeps its own copy.
type BrickfieldConfig struct {
	Scene      SceneConfig      `yaml:"scene"`
	Bricks     BricksConfig     `yaml:"bricks"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SceneConfig is the size of the play field in scene units (pixels).
type SceneConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Dims returns the scene size.
func (s SceneConfig) Dims() core.Dimensions {
	return core.Dimensions{Width: s.Width, Height: s.Height}
}

// Spacing is a horizontal/vertical gap between bricks.
type Spacing struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Columns       int     `yaml:"columns"`
	Rows          int     `yaml:"rows"`
	SideMargin    float64 `yaml:"side_margin"`
	TopMargin     float64 `yaml:"top_margin"`
	DepthFraction float64 `yaml:"depth_fraction"` // Share of the scene height given to the brick field
	Spacing       Spacing `yaml:"spacing"`
}

// PaddleConfig defines the paddle size and placement.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottom_margin"`
	Speed        float64 `yaml:"speed"` // Keyboard movement, units per second
}

// Dims returns the paddle size.
func (p PaddleConfig) Dims() core.Dimensions {
	return core.Dimensions{Width: p.Width, Height: p.Height}
}

// VelocityConfig is a velocity as written in YAML.
type VelocityConfig struct {
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius   float64        `yaml:"radius"`
	Velocity VelocityConfig `yaml:"velocity"` // Initial velocity; negative dy is up
	MaxBoost float64        `yaml:"max_boost"`
}

// InitialVelocity returns the configured launch velocity.
func (b BallConfig) InitialVelocity() core.Velocity {
	return core.Velocity{DX: b.Velocity.DX, DY: b.Velocity.DY}
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives       int `yaml:"lives"`
	BrickPoints int `yaml:"brick_points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the time scale at max difficulty
}

// BrickDims returns the size of a single brick. The brick field spans the
// scene width minus both side margins and DepthFraction of the scene height
// minus the top margin; bricks share it evenly after spacing.
func (c BrickfieldConfig) BrickDims() core.Dimensions {
	fieldW := c.Scene.Width - 2*c.Bricks.SideMargin
	fieldH := c.Scene.Height*c.Bricks.DepthFraction - c.Bricks.TopMargin

	cols := float64(c.Bricks.Columns)
	rows := float64(c.Bricks.Rows)

	return core.Dimensions{
		Width:  (fieldW - (cols-1)*c.Bricks.Spacing.Width) / cols,
		Height: (fieldH - (rows-1)*c.Bricks.Spacing.Height) / rows,
	}
}

// PaddleTopLeft returns where the paddle starts: centered horizontally,
// BottomMargin above the bottom of the scene.
func (c BrickfieldConfig) PaddleTopLeft() core.Position {
	return core.Position{
		X: c.Scene.Width/2 - c.Paddle.Width/2,
		Y: c.Scene.Height - c.Paddle.BottomMargin - c.Paddle.Height,
	}
}

// Validate reports configuration values the simulation cannot work with.
// Only configs read from files are validated; code-built configs are trusted.
func (c BrickfieldConfig) Validate() error {
	var errs []error

	if c.Scene.Width <= 0 || c.Scene.Height <= 0 {
		errs = append(errs, fmt.Errorf("scene must have positive size, got %vx%v", c.Scene.Width, c.Scene.Height))
	}
	if c.Bricks.Columns <= 0 || c.Bricks.Rows <= 0 {
		errs = append(errs, fmt.Errorf("bricks need at least one row and column, got %dx%d", c.Bricks.Columns, c.Bricks.Rows))
	} else if d := c.BrickDims(); d.Width <= 0 || d.Height <= 0 {
		errs = append(errs, fmt.Errorf("brick layout leaves no room for bricks (%.1fx%.1f)", d.Width, d.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle must have positive size, got %vx%v", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Ball.Radius < 0 {
		errs = append(errs, fmt.Errorf("ball radius must not be negative, got %v", c.Ball.Radius))
	}
	if c.Ball.MaxBoost < 0 {
		errs = append(errs, fmt.Errorf("max_boost must not be negative, got %v", c.Ball.MaxBoost))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
