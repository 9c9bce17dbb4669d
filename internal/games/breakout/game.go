package breakout

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/levels"
	"github.com/vovakirdan/tui-breakout/internal/resources"
)

// State is the top-level mode of the game.
type State int

const (
	StateActive State = iota
	StateMenu
	StateWin
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateMenu:
		return "menu"
	case StateWin:
		return "win"
	}
	return "unknown"
}

var (
	// ErrLevelIndex is returned when a level index is out of range.
	ErrLevelIndex = errors.New("breakout: level index out of range")
	// ErrNoLevels is returned when the game is created without levels.
	ErrNoLevels = errors.New("breakout: no levels")
)

// RunResult summarizes one attempt at a level, reported when the level is
// cleared or the ball is lost.
type RunResult struct {
	Level    string
	Score    int
	Bricks   int
	Cleared  bool
	Duration float32
}

// Option configures a Game.
type Option func(*Game)

// WithSeed seeds power-up and particle randomness.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = NewSimpleRNG(seed) }
}

// WithRoller replaces the random source.
func WithRoller(r Roller) Option {
	return func(g *Game) { g.rng = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithRunHook registers a callback for finished runs.
func WithRunHook(fn func(RunResult)) Option {
	return func(g *Game) { g.onRunEnd = fn }
}

// Game is the breakout simulation.
type Game struct {
	cfg      config.BreakoutConfig
	defs     []levels.Level
	res      *resources.Manager
	logger   *log.Logger
	rng      Roller
	onRunEnd func(RunResult)

	width  float32
	height float32
	clamp  ClampMode

	state      State
	paused     bool
	levelIndex int
	level      *Level
	paddle     *Object
	ball       *Ball
	powerUps   []*PowerUp
	particles  *ParticleGenerator
	effects    Effects
	shakeTime  float32
	time       float32
	runTime    float32
	score      int
	bricks     int

	background      *resources.Texture
	powerUpTextures [powerUpKinds]*resources.Texture
	sprites         []Sprite
}

// New creates a game over the given levels. Missing textures and an
// out-of-range start level are reported here, before the first frame.
func New(cfg config.BreakoutConfig, defs []levels.Level, res *resources.Manager, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	if len(defs) == 0 {
		return nil, ErrNoLevels
	}

	g := &Game{
		cfg:    cfg,
		defs:   defs,
		res:    res,
		logger: log.New(io.Discard),
		width:  cfg.World.Width,
		height: cfg.World.Height,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewSimpleRNG(1)
	}
	if cfg.Physics.ClampMode == config.ClampTruncate {
		g.clamp = ClampTruncate
	}

	textures := make(map[string]*resources.Texture)
	names := []string{resources.TextureBackground, resources.TexturePaddle, resources.TextureBall, resources.TextureParticle}
	names = append(names, resources.PowerUpTextures[:]...)
	for _, name := range names {
		tex, err := res.Texture(name)
		if err != nil {
			return nil, fmt.Errorf("breakout: %w", err)
		}
		textures[name] = tex
	}
	g.background = textures[resources.TextureBackground]
	for k := PowerUpKind(0); k < powerUpKinds; k++ {
		g.powerUpTextures[k] = textures[k.Texture()]
	}

	paddle := NewObject(mgl32.Vec2{}, mgl32.Vec2{cfg.Paddle.Width, cfg.Paddle.Height}, mgl32.Vec2{}, white, textures[resources.TexturePaddle])
	g.paddle = &paddle
	g.ball = NewBall(mgl32.Vec2{}, cfg.Ball.Radius, mgl32.Vec2{}, textures[resources.TextureBall])

	p := cfg.Particles
	g.particles = NewParticleGenerator(p.Amount, p.Size, p.Life, p.FadeRate, g.rng, textures[resources.TextureParticle])

	if err := g.LoadLevel(cfg.Gameplay.StartLevel); err != nil {
		return nil, err
	}
	if cfg.Gameplay.StartInMenu {
		g.state = StateMenu
	}
	return g, nil
}

// LoadLevel switches to the level at index and resets the player.
func (g *Game) LoadLevel(index int) error {
	if index < 0 || index >= len(g.defs) {
		return fmt.Errorf("%w: %d (have %d)", ErrLevelIndex, index, len(g.defs))
	}

	def := g.defs[index]
	level, err := NewLevel(def.Name, def.Grid, g.width, g.height/2, g.res)
	if err != nil {
		return err
	}

	g.levelIndex = index
	g.level = level
	g.startRun()
	g.ResetPlayer()
	g.logger.Info("level loaded", "index", index, "name", def.Name, "bricks", len(level.Bricks))
	return nil
}

// ResetLevel restores every brick of the current level.
func (g *Game) ResetLevel() {
	for i := range g.level.Bricks {
		g.level.Bricks[i].Destroyed = false
	}
	g.startRun()
}

func (g *Game) startRun() {
	g.score = 0
	g.bricks = 0
	g.runTime = 0
}

// ResetPlayer puts the paddle and a stuck ball back at the start and clears
// every power-up and effect.
func (g *Game) ResetPlayer() {
	g.paddle.Size = mgl32.Vec2{g.cfg.Paddle.Width, g.cfg.Paddle.Height}
	g.paddle.Position = mgl32.Vec2{g.width/2 - g.paddle.Size[0]/2, g.height - g.paddle.Size[1]}
	g.paddle.Color = white

	g.ball.Reset(g.stuckBallPosition(), mgl32.Vec2{g.cfg.Ball.VelocityX, g.cfg.Ball.VelocityY})

	g.effects = Effects{}
	g.shakeTime = 0
	g.powerUps = nil
	g.particles.Reset()
}

// stuckBallPosition centers the ball on top of the paddle.
func (g *Game) stuckBallPosition() mgl32.Vec2 {
	return mgl32.Vec2{
		g.paddle.Position[0] + g.paddle.Size[0]/2 - g.ball.Radius,
		g.paddle.Position[1] - g.ball.Radius*2,
	}
}

// Step runs one frame: input first, then the simulation.
func (g *Game) Step(in core.InputFrame, dt float32) {
	g.ProcessInput(dt, in)
	g.Update(dt)
}

// ProcessInput applies one frame of input.
func (g *Game) ProcessInput(dt float32, in core.InputFrame) {
	switch g.state {
	case StateMenu:
		g.processMenuInput(in)
	case StateWin:
		if in.Has(core.ActionConfirm) {
			g.effects.Chaos = false
			g.state = StateMenu
		}
	case StateActive:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return
		}

		velocity := g.cfg.Paddle.Speed * dt
		if in.Has(core.ActionLeft) {
			g.paddle.Position[0] -= velocity
		}
		if in.Has(core.ActionRight) {
			g.paddle.Position[0] += velocity
		}
		maxX := max(g.width-g.paddle.Size[0], 0)
		g.paddle.Position[0] = mgl32.Clamp(g.paddle.Position[0], 0, maxX)

		if g.ball.Stuck {
			g.ball.Position = g.stuckBallPosition()
		}
		if in.Has(core.ActionLaunch) {
			g.ball.Stuck = false
		}
	}
}

func (g *Game) processMenuInput(in core.InputFrame) {
	n := len(g.defs)
	switch {
	case in.Has(core.ActionConfirm):
		g.state = StateActive
		g.paused = false
		g.startRun()
	case in.Has(core.ActionUp):
		g.selectLevel((g.levelIndex + 1) % n)
	case in.Has(core.ActionDown):
		g.selectLevel((g.levelIndex - 1 + n) % n)
	}
}

func (g *Game) selectLevel(index int) {
	if err := g.LoadLevel(index); err != nil {
		g.logger.Error("cannot select level", "index", index, "err", err)
	}
}

// Update advances the simulation by dt seconds.
func (g *Game) Update(dt float32) {
	g.time += dt
	if g.state != StateActive || g.paused {
		return
	}
	g.runTime += dt

	g.ball.Advance(dt, g.width)
	g.doCollisions()

	p := g.cfg.Particles
	offset := mgl32.Vec2{g.ball.Radius / 2, g.ball.Radius / 2}
	g.particles.Update(dt, &g.ball.Object, p.PerFrame, offset)

	g.updatePowerUps(dt)

	// A catch or a paddle resize this frame may have moved the rest spot.
	if g.ball.Stuck {
		g.ball.Position = g.stuckBallPosition()
	}

	if g.shakeTime > 0 {
		g.shakeTime -= dt
		if g.shakeTime <= 0 {
			g.effects.Shake = false
		}
	}

	if g.level.Destructible() > 0 && g.level.IsCompleted() {
		g.finishRun(true)
		g.ResetLevel()
		g.ResetPlayer()
		g.effects.Chaos = true
		g.state = StateWin
		return
	}

	if g.ball.Position[1] >= g.height {
		g.finishRun(false)
		g.ResetLevel()
		g.ResetPlayer()
	}
}

func (g *Game) finishRun(cleared bool) {
	name := g.level.Name
	if cleared {
		g.logger.Info("level cleared", "level", name, "score", g.score, "time", g.runTime)
	} else {
		g.logger.Info("ball lost", "level", name, "score", g.score, "bricks", g.bricks)
	}
	if g.onRunEnd == nil || (!cleared && g.score == 0) {
		return
	}
	g.onRunEnd(RunResult{
		Level:    g.defs[g.levelIndex].ID,
		Score:    g.score,
		Bricks:   g.bricks,
		Cleared:  cleared,
		Duration: g.runTime,
	})
}

// doCollisions resolves ball vs bricks, power-ups vs paddle and ball vs
// paddle, in that order.
func (g *Game) doCollisions() {
	for i := range g.level.Bricks {
		box := &g.level.Bricks[i]
		if box.Destroyed {
			continue
		}
		c := CheckCircleAABB(g.ball, &box.Object, g.clamp)
		if !c.Hit {
			continue
		}

		if !box.Solid {
			box.Destroyed = true
			g.score += g.cfg.Gameplay.BrickPoints
			g.bricks++
			g.spawnPowerUps(&box.Object)
		} else {
			g.shakeTime = g.cfg.Effects.ShakeTime
			g.effects.Shake = true
		}

		if !(g.ball.PassThrough && !box.Solid) {
			ResolveCollision(g.ball, c)
		}
	}

	for _, p := range g.powerUps {
		if p.Destroyed {
			continue
		}
		if p.Position[1] >= g.height {
			p.Destroyed = true
			continue
		}
		if CheckAABB(g.paddle, &p.Object) {
			g.activatePowerUp(p)
			p.Destroyed = true
			p.Activated = true
		}
	}

	if g.ball.Stuck {
		return
	}
	if c := CheckCircleAABB(g.ball, g.paddle, g.clamp); c.Hit {
		g.bounceOffPaddle()
	}
}

// bounceOffPaddle steers the ball by where it hit the paddle while keeping
// its speed, and always sends it upward.
func (g *Game) bounceOffPaddle() {
	halfWidth := g.paddle.Size[0] / 2
	centerBoard := g.paddle.Position[0] + halfWidth
	distance := g.ball.Position[0] + g.ball.Radius - centerBoard
	percentage := distance / halfWidth

	speed := g.ball.Velocity.Len()
	g.ball.Velocity[0] = g.cfg.Ball.VelocityX * percentage * g.cfg.Physics.BounceStrength
	if g.ball.Velocity.Len() > 0 {
		g.ball.Velocity = g.ball.Velocity.Normalize().Mul(speed)
	}
	g.ball.Velocity[1] = -mgl32.Abs(g.ball.Velocity[1])
	g.ball.Stuck = g.ball.Sticky
}

// Frame collects the sprites for the current state. The returned slice is
// reused by the next call.
func (g *Game) Frame() Frame {
	s := g.sprites[:0]
	s = append(s, Sprite{
		Texture: g.background,
		Size:    mgl32.Vec2{g.width, g.height},
		Color:   white,
		Alpha:   1,
	})
	for i := range g.level.Bricks {
		if !g.level.Bricks[i].Destroyed {
			s = append(s, g.level.Bricks[i].Sprite())
		}
	}
	s = append(s, g.paddle.Sprite())
	var active []ActivePowerUp
	for _, p := range g.powerUps {
		if !p.Destroyed {
			s = append(s, p.Sprite())
		}
		if p.Activated {
			active = append(active, ActivePowerUp{Kind: p.Kind, Remaining: p.Duration})
		}
	}
	s = g.particles.AppendSprites(s)
	s = append(s, g.ball.Sprite())
	g.sprites = s

	return Frame{
		Sprites:   s,
		Effects:   g.effects,
		Time:      g.time,
		State:     g.state,
		Paused:    g.paused,
		Level:     g.levelIndex,
		LevelName: g.level.Name,
		Levels:    len(g.defs),
		Score:     g.score,
		Width:     g.width,
		Height:    g.height,
		Active:    active,
	}
}

// State returns the current mode.
func (g *Game) State() State { return g.state }

// Paused reports whether the active game is paused.
func (g *Game) Paused() bool { return g.paused }

// Score returns the score of the current run.
func (g *Game) Score() int { return g.score }

// LevelIndex returns the index of the current level.
func (g *Game) LevelIndex() int { return g.levelIndex }

// LevelID returns the identifier of the current level.
func (g *Game) LevelID() string { return g.defs[g.levelIndex].ID }

// Effects returns the current post-processing flags.
func (g *Game) Effects() Effects { return g.effects }

// Size returns the world dimensions.
func (g *Game) Size() (width, height float32) { return g.width, g.height }
