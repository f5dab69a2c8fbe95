package bricks

// BoostSource produces the horizontal speed change applied when the ball
// breaks a brick.
type BoostSource interface {
	Next() float64
}

// UniformBoost draws boosts uniformly from [-max, +max).
type UniformBoost struct {
	max float64
	rng *SimpleRNG
}

// NewUniformBoost creates a boost source bounded by maxBoost, seeded for
// reproducible runs.
func NewUniformBoost(maxBoost float64, seed int64) *UniformBoost {
	return &UniformBoost{
		max: maxBoost,
		rng: NewSimpleRNG(seed),
	}
}

// Next returns the next boost.
func (u *UniformBoost) Next() float64 {
	return (u.rng.Float64()*2 - 1) * u.max
}

// FixedBoost always returns the same boost. Tests stub the model with it.
type FixedBoost float64

// Next returns the fixed value.
func (f FixedBoost) Next() float64 {
	return float64(f)
}

// SimpleRNG is a deterministic 64-bit LCG whose whole state is one integer,
// so snapshots can capture and restore it.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1) built from the top 53 bits.
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// State returns the generator state.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// SetState restores a state captured with State.
func (r *SimpleRNG) SetState(s uint64) {
	r.state = s
}
