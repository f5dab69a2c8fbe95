package bricks

import (
	"fmt"

	"github.com/vovakirdan/brickfield/internal/config"
	"github.com/vovakirdan/brickfield/internal/core"
)

// Ball is the single ball in play. It is a plain value: copies are
// independent, and == compares velocity, center, radius and live flag exactly.
type Ball struct {
	Center   core.Position
	Radius   float64 // Fixed after construction outside of tests
	Velocity core.Velocity
	Live     bool // false = resting on the paddle, true = moving freely
}

// NewBall places a ball at rest on top of block: centered horizontally, with
// a one unit gap between the ball's bottom and the block's top.
func NewBall(block core.Block, cfg config.BrickfieldConfig) Ball {
	return Ball{
		Center:   aboveBlock(block, cfg.Ball.Radius),
		Radius:   cfg.Ball.Radius,
		Velocity: cfg.Ball.InitialVelocity(),
		Live:     false,
	}
}

func aboveBlock(block core.Block, radius float64) core.Position {
	return block.TopLeft().
		RightBy(block.Width / 2).
		UpBy(radius + 1)
}

// TopLeft returns the top-left corner of the ball's bounding box.
func (b Ball) TopLeft() core.Position {
	return b.Center.Minus(core.Dimensions{Width: b.Radius, Height: b.Radius})
}

// HitsBottom reports whether the ball's bottom is below the scene.
func (b Ball) HitsBottom(cfg config.BrickfieldConfig) bool {
	return b.Center.Y+b.Radius > cfg.Scene.Height
}

// HitsTop reports whether the ball's top is above the scene.
func (b Ball) HitsTop(config.BrickfieldConfig) bool {
	return b.Center.Y-b.Radius < 0
}

// HitsSide reports whether the ball sticks out of the left or right side.
func (b Ball) HitsSide(cfg config.BrickfieldConfig) bool {
	return b.Center.X-b.Radius < 0 ||
		b.Center.X+b.Radius > cfg.Scene.Width
}

// HitsBlock reports whether the ball's bounding box overlaps block.
// Boxes that only touch along an edge do not overlap.
func (b Ball) HitsBlock(block core.Block) bool {
	top := b.Center.Y - b.Radius
	left := b.Center.X - b.Radius
	bottom := b.Center.Y + b.Radius
	right := b.Center.X + b.Radius

	if right <= block.X || block.Right() <= left {
		return false
	}
	if bottom <= block.Y || block.Bottom() <= top {
		return false
	}
	return true
}

// Next returns the ball as it would be after dt seconds of free motion.
// It does no collision handling and leaves b unchanged.
func (b Ball) Next(dt float64) Ball {
	result := b
	result.Center = b.Center.Plus(b.Velocity.Scale(dt))
	return result
}

// ReflectVertical negates the vertical velocity.
func (b *Ball) ReflectVertical() {
	b.Velocity.DY = -b.Velocity.DY
}

// ReflectHorizontal negates the horizontal velocity.
func (b *Ball) ReflectHorizontal() {
	b.Velocity.DX = -b.Velocity.DX
}

// DestroyBrick removes the first brick the ball overlaps and reports whether
// it found one. At most one brick is removed per call.
func (b Ball) DestroyBrick(bricks *Bricks) bool {
	for i, brick := range *bricks {
		if b.HitsBlock(brick) {
			bricks.remove(i)
			return true
		}
	}
	return false
}

// String formats the ball for test failures and debug logs.
func (b Ball) String() string {
	return fmt.Sprintf("Ball{center=(%g, %g) r=%g v=(%g, %g) live=%t}",
		b.Center.X, b.Center.Y, b.Radius, b.Velocity.DX, b.Velocity.DY, b.Live)
}

// Bricks is the unordered collection of remaining bricks. Order is not
// preserved across removals and equal bricks are interchangeable.
type Bricks []core.Block

// remove deletes the brick at i by moving the last brick into its slot.
func (bs *Bricks) remove(i int) {
	s := *bs
	last := len(s) - 1
	s[i] = s[last]
	*bs = s[:last]
}
