package breakout

import "math"

// Snapshot is a flat copy of the simulation state used to compare runs.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Time        float32
	State       int
	Paused      bool
	LevelIndex  int
	Score       int
	Bricks      int
	Remaining   int
	PaddleX     float32
	PaddleWidth float32
	ShakeTime   float32
	Effects     int // bit 0 shake, bit 1 confuse, bit 2 chaos

	// Ball is X, Y, VX, VY, SpeedScale
	Ball      [5]float32
	BallFlags int // bit 0 stuck, bit 1 sticky, bit 2 pass-through

	// Each power-up is 6 floats: Kind, X, Y, Duration, Activated, Destroyed
	PowerUpCount int
	PowerUpData  []float32

	// One entry per brick in layout order, 1 while standing
	BrickData []int

	Particles int
	RNGState  uint64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, len(g.level.Bricks))
	for i := range g.level.Bricks {
		if !g.level.Bricks[i].Destroyed {
			brickData[i] = 1
		}
	}

	powerUpData := make([]float32, 0, len(g.powerUps)*6)
	for _, p := range g.powerUps {
		powerUpData = append(powerUpData,
			float32(p.Kind), p.Position[0], p.Position[1], p.Duration,
			boolFloat(p.Activated), boolFloat(p.Destroyed))
	}

	var flags int
	if g.ball.Stuck {
		flags |= 1
	}
	if g.ball.Sticky {
		flags |= 2
	}
	if g.ball.PassThrough {
		flags |= 4
	}

	var effects int
	if g.effects.Shake {
		effects |= 1
	}
	if g.effects.Confuse {
		effects |= 2
	}
	if g.effects.Chaos {
		effects |= 4
	}

	var rngState uint64
	if r, ok := g.rng.(*SimpleRNG); ok {
		rngState = r.State()
	}

	return Snapshot{
		Time:        g.time,
		State:       int(g.state),
		Paused:      g.paused,
		LevelIndex:  g.levelIndex,
		Score:       g.score,
		Bricks:      g.bricks,
		Remaining:   g.level.Remaining(),
		PaddleX:     g.paddle.Position[0],
		PaddleWidth: g.paddle.Size[0],
		ShakeTime:   g.shakeTime,
		Effects:     effects,

		Ball:      [5]float32{g.ball.Position[0], g.ball.Position[1], g.ball.Velocity[0], g.ball.Velocity[1], g.ball.SpeedScale},
		BallFlags: flags,

		PowerUpCount: len(g.powerUps),
		PowerUpData:  powerUpData,

		BrickData: brickData,
		Particles: g.particles.Alive(),
		RNGState:  rngState,
	}
}

func boolFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(math.Float32bits(snap.Time))
	h = h*31 + uint64(snap.State)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bricks)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining)  //#nosec G115 -- hash computation
	h = h*31 + uint64(math.Float32bits(snap.PaddleX))
	h = h*31 + uint64(math.Float32bits(snap.PaddleWidth))
	h = h*31 + uint64(math.Float32bits(snap.ShakeTime))
	h = h*31 + uint64(snap.Effects)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallFlags)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Particles)    //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	for _, v := range snap.Ball {
		h = h*31 + uint64(math.Float32bits(v))
	}

	for _, v := range snap.PowerUpData {
		h = h*31 + uint64(math.Float32bits(v))
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
