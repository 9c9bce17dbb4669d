// Package config provides YAML-based configuration loading and difficulty
// presets for the breakout game.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains every tunable of the simulation.
type BreakoutConfig struct {
	World     WorldConfig    `yaml:"world"`
	Paddle    PaddleConfig   `yaml:"paddle"`
	Ball      BallConfig     `yaml:"ball"`
	Physics   PhysicsConfig  `yaml:"physics"`
	PowerUps  PowerUpConfig  `yaml:"powerups"`
	Particles ParticleConfig `yaml:"particles"`
	Effects   EffectsConfig  `yaml:"effects"`
	Gameplay  GameplayConfig `yaml:"gameplay"`
}

// WorldConfig defines the playfield in world units.
// Bricks fill the top half of the playfield.
type WorldConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// PaddleConfig defines the player paddle.
type PaddleConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Speed  float32 `yaml:"speed"`  // units per second
	Growth float32 `yaml:"growth"` // width added by pad-size-increase
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius      float32 `yaml:"radius"`
	VelocityX   float32 `yaml:"velocity_x"`
	VelocityY   float32 `yaml:"velocity_y"`
	SpeedFactor float32 `yaml:"speed_factor"` // multiplier applied by the speed power-up
}

// Clamp modes for the circle-vs-box closest point.
const (
	ClampFloat    = "float"
	ClampTruncate = "truncate"
)

// PhysicsConfig defines collision tunables.
type PhysicsConfig struct {
	ClampMode      string  `yaml:"clamp_mode"`      // "float" or "truncate"
	BounceStrength float32 `yaml:"bounce_strength"` // paddle deflection multiplier
}

// PowerUpConfig defines power-up spawning and lifetime.
type PowerUpConfig struct {
	CommonChance  int              `yaml:"common_chance"` // 1-in-N for sticky, speed, pass-through, increase
	RareChance    int              `yaml:"rare_chance"`   // 1-in-N for confuse, chaos
	Width         float32          `yaml:"width"`
	Height        float32          `yaml:"height"`
	FallSpeed     float32          `yaml:"fall_speed"`       // units per frame, measured at 60 fps
	ScaleFallByDT bool             `yaml:"scale_fall_by_dt"` // scale the fall by dt*60 instead of once per frame
	Durations     PowerUpDurations `yaml:"durations"`
}

// PowerUpDurations holds the active time in seconds per power-up kind.
type PowerUpDurations struct {
	Sticky      float32 `yaml:"sticky"`
	Speed       float32 `yaml:"speed"`
	PassThrough float32 `yaml:"pass_through"`
	Increase    float32 `yaml:"increase"`
	Confuse     float32 `yaml:"confuse"`
	Chaos       float32 `yaml:"chaos"`
}

// ParticleConfig defines the ball trail.
type ParticleConfig struct {
	Amount   int     `yaml:"amount"`
	PerFrame int     `yaml:"per_frame"`
	Size     float32 `yaml:"size"`
	Life     float32 `yaml:"life"`
	FadeRate float32 `yaml:"fade_rate"`
}

// EffectsConfig defines post-processing timings.
type EffectsConfig struct {
	ShakeTime float32 `yaml:"shake_time"`
}

// GameplayConfig defines scoring and session flow.
type GameplayConfig struct {
	BrickPoints int  `yaml:"brick_points"`
	StartLevel  int  `yaml:"start_level"`
	StartInMenu bool `yaml:"start_in_menu"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Validate checks that the configuration can drive a simulation.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %gx%g", ErrInvalid, c.World.Width, c.World.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size %gx%g", ErrInvalid, c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Width > c.World.Width:
		return fmt.Errorf("%w: paddle wider than world", ErrInvalid)
	case c.Ball.Radius < 0:
		return fmt.Errorf("%w: ball radius %g", ErrInvalid, c.Ball.Radius)
	case c.Ball.SpeedFactor <= 0:
		return fmt.Errorf("%w: ball speed factor %g", ErrInvalid, c.Ball.SpeedFactor)
	case c.Physics.BounceStrength <= 0:
		return fmt.Errorf("%w: bounce strength %g", ErrInvalid, c.Physics.BounceStrength)
	case c.PowerUps.FallSpeed <= 0:
		return fmt.Errorf("%w: power-up fall speed %g", ErrInvalid, c.PowerUps.FallSpeed)
	case c.PowerUps.CommonChance <= 0 || c.PowerUps.RareChance <= 0:
		return fmt.Errorf("%w: power-up chances must be positive", ErrInvalid)
	case c.Particles.Amount < 0 || c.Particles.PerFrame < 0:
		return fmt.Errorf("%w: particle counts must not be negative", ErrInvalid)
	case c.Physics.ClampMode != ClampFloat && c.Physics.ClampMode != ClampTruncate:
		return fmt.Errorf("%w: clamp mode %q", ErrInvalid, c.Physics.ClampMode)
	}
	return nil
}
