package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:  100,
			Height: 20,
			Speed:  500,
			Growth: 50,
		},
		Ball: BallConfig{
			Radius:      12.5,
			VelocityX:   100,
			VelocityY:   -350,
			SpeedFactor: 1.2,
		},
		Physics: PhysicsConfig{
			ClampMode:      ClampFloat,
			BounceStrength: 2,
		},
		PowerUps: PowerUpConfig{
			CommonChance: 75,
			RareChance:   15,
			Width:        60,
			Height:       20,
			FallSpeed:    1,
			Durations: PowerUpDurations{
				Sticky:      20,
				Speed:       10,
				PassThrough: 10,
				Increase:    10,
				Confuse:     15,
				Chaos:       15,
			},
		},
		Particles: ParticleConfig{
			Amount:   500,
			PerFrame: 2,
			Size:     10,
			Life:     1,
			FadeRate: 2.5,
		},
		Effects: EffectsConfig{
			ShakeTime: 0.05,
		},
		Gameplay: GameplayConfig{
			BrickPoints: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
