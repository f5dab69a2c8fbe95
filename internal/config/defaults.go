package config

import (
	_ "embed"
)

//go:embed defaults/brickfield.yaml
var defaultBrickfieldYAML []byte

// DefaultBrickfieldConfig returns the default configuration: a 1024x768
// scene with a 10x10 brick grid.
func DefaultBrickfieldConfig() BrickfieldConfig {
	return BrickfieldConfig{
		Scene: SceneConfig{
			Width:  1024,
			Height: 768,
		},
		Bricks: BricksConfig{
			Columns:       10,
			Rows:          10,
			SideMargin:    170,
			TopMargin:     40,
			DepthFraction: 0.5,
			Spacing:       Spacing{Width: 10, Height: 5},
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       20,
			BottomMargin: 50,
			Speed:        600,
		},
		Ball: BallConfig{
			Radius:   5,
			Velocity: VelocityConfig{DX: 150, DY: -200},
			MaxBoost: 4,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			BrickPoints: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBrickfieldYAML
}
