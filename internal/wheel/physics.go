package wheel

import (
	"fmt"
	"math"
	"math/rand"
)

// Spin tuning. One tick is one frame at 60 Hz, so a spin launched at 20
// deg/tick takes about eleven seconds to settle.
const (
	Friction = 0.992 // per-tick multiplicative velocity decay
	MinSpeed = 0.1   // deg/tick below which the wheel stops
	SpinMin  = 15.0  // initial velocity range, deg/tick
	SpinMax  = 25.0
)

// Config carries the physics constants so an invalid value is rejected once
// at construction instead of surfacing mid-spin.
type Config struct {
	Friction float64
	MinSpeed float64
	SpinMin  float64
	SpinMax  float64
}

func DefaultConfig() Config {
	return Config{Friction: Friction, MinSpeed: MinSpeed, SpinMin: SpinMin, SpinMax: SpinMax}
}

func (c Config) Validate() error {
	if c.Friction <= 0 || c.Friction >= 1 {
		return fmt.Errorf("wheel: friction %v outside (0,1)", c.Friction)
	}
	if c.MinSpeed <= 0 {
		return fmt.Errorf("wheel: min speed %v must be positive", c.MinSpeed)
	}
	if c.SpinMin <= 0 || c.SpinMax < c.SpinMin {
		return fmt.Errorf("wheel: spin velocity range [%v, %v] invalid", c.SpinMin, c.SpinMax)
	}
	return nil
}

// StartSpin kicks the wheel with a velocity drawn uniformly from the spin
// range. While a spin is already in flight it does nothing, so a spin can
// never be reset mid-decay.
func StartSpin(s *State, cfg Config, rng *rand.Rand) {
	if s.Phase == Spinning {
		return
	}
	s.Velocity = cfg.SpinMin + rng.Float64()*(cfg.SpinMax-cfg.SpinMin)
	s.Phase = Spinning
	s.WinnerIndex = noWinner
}

// Step advances the simulation by one fixed tick: rotate, decay, and stop
// once the velocity falls under the threshold, fixing the winner from the
// final rotation. Outside the Spinning phase it is a no-op.
func Step(s *State, cfg Config) {
	if s.Phase != Spinning {
		return
	}
	s.Rotation = Normalize360(s.Rotation + s.Velocity)
	s.Velocity *= cfg.Friction
	if s.Velocity < cfg.MinSpeed {
		s.Velocity = 0
		s.Phase = Stopped
		s.WinnerIndex = ResolveWinner(s.Rotation, PointerAngle, SliceWidth)
	}
}

// TicksToStop predicts how many ticks a spin starting at v0 needs to settle
// under the geometric decay.
func TicksToStop(v0 float64, cfg Config) int {
	return int(math.Ceil(math.Log(cfg.MinSpeed/v0) / math.Log(cfg.Friction)))
}
