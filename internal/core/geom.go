// Package core provides fundamental types and utilities for the brickfield platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Position is a point in scene (pixel) space. Y grows downward.
type Position struct {
	X, Y float64
}

// RightBy returns the position moved d units to the right.
func (p Position) RightBy(d float64) Position {
	return Position{X: p.X + d, Y: p.Y}
}

// LeftBy returns the position moved d units to the left.
func (p Position) LeftBy(d float64) Position {
	return Position{X: p.X - d, Y: p.Y}
}

// UpBy returns the position moved d units up.
func (p Position) UpBy(d float64) Position {
	return Position{X: p.X, Y: p.Y - d}
}

// DownBy returns the position moved d units down.
func (p Position) DownBy(d float64) Position {
	return Position{X: p.X, Y: p.Y + d}
}

// Plus adds a displacement (usually a velocity already scaled by dt).
func (p Position) Plus(v Velocity) Position {
	return Position{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Minus subtracts a size from both coordinates.
func (p Position) Minus(d Dimensions) Position {
	return Position{X: p.X - d.Width, Y: p.Y - d.Height}
}

// Velocity is a 2D velocity in scene units per second.
// Negative DX points left, negative DY points up.
type Velocity struct {
	DX, DY float64
}

// Scale returns the velocity multiplied by k.
func (v Velocity) Scale(k float64) Velocity {
	return Velocity{DX: v.DX * k, DY: v.DY * k}
}

// Dimensions is the non-negative size of a rectangle.
type Dimensions struct {
	Width, Height float64
}

// Block is an axis-aligned rectangle in scene space, used for the paddle and
// for every brick. Blocks have no identity beyond their geometry.
type Block struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// BlockFromTopLeft builds a block from its top-left corner and size.
func BlockFromTopLeft(p Position, d Dimensions) Block {
	return Block{X: p.X, Y: p.Y, Width: d.Width, Height: d.Height}
}

// TopLeft returns the top-left corner.
func (b Block) TopLeft() Position {
	return Position{X: b.X, Y: b.Y}
}

// Right returns the x-coordinate of the right edge.
func (b Block) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Block) Bottom() float64 {
	return b.Y + b.Height
}

// Dims returns the block's size.
func (b Block) Dims() Dimensions {
	return Dimensions{Width: b.Width, Height: b.Height}
}

// Rect is a rectangle in screen cell coordinates, used by the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
