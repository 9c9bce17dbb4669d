package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/resources"
)

// PowerUpKind identifies a power-up. The order is the spawn roll order.
type PowerUpKind int

const (
	PowerUpSticky PowerUpKind = iota
	PowerUpSpeed
	PowerUpPassThrough
	PowerUpIncrease
	PowerUpConfuse
	PowerUpChaos
	powerUpKinds
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSticky:
		return "sticky"
	case PowerUpSpeed:
		return "speed"
	case PowerUpPassThrough:
		return "pass-through"
	case PowerUpIncrease:
		return "pad-size-increase"
	case PowerUpConfuse:
		return "confuse"
	case PowerUpChaos:
		return "chaos"
	default:
		return "unknown"
	}
}

// Texture returns the resource name of the kind's sprite.
func (k PowerUpKind) Texture() string {
	if k < 0 || k >= powerUpKinds {
		return ""
	}
	return resources.PowerUpTextures[k]
}

// Color returns the kind's tint.
func (k PowerUpKind) Color() mgl32.Vec3 {
	switch k {
	case PowerUpSticky:
		return mgl32.Vec3{1, 0.5, 1}
	case PowerUpSpeed:
		return mgl32.Vec3{0.5, 0.5, 1}
	case PowerUpPassThrough:
		return mgl32.Vec3{0.5, 1, 0.5}
	case PowerUpIncrease:
		return mgl32.Vec3{1, 0.6, 0.4}
	case PowerUpConfuse:
		return mgl32.Vec3{1, 0.3, 0.3}
	case PowerUpChaos:
		return mgl32.Vec3{0.9, 0.25, 0.25}
	}
	return white
}

// IsNegative reports whether the kind hinders the player.
func (k PowerUpKind) IsNegative() bool {
	return k == PowerUpConfuse || k == PowerUpChaos
}

func durationFor(k PowerUpKind, d config.PowerUpDurations) float32 {
	switch k {
	case PowerUpSticky:
		return d.Sticky
	case PowerUpSpeed:
		return d.Speed
	case PowerUpPassThrough:
		return d.PassThrough
	case PowerUpIncrease:
		return d.Increase
	case PowerUpConfuse:
		return d.Confuse
	case PowerUpChaos:
		return d.Chaos
	}
	return 0
}

// PowerUp is a falling pickup and, once caught, a running timer.
type PowerUp struct {
	Object
	Kind      PowerUpKind
	Duration  float32 // seconds left once activated
	Activated bool
}

var (
	commonKinds = [...]PowerUpKind{PowerUpSticky, PowerUpSpeed, PowerUpPassThrough, PowerUpIncrease}
	rareKinds   = [...]PowerUpKind{PowerUpConfuse, PowerUpChaos}
)

// RollPowerUp decides which power-up, if any, a destroyed brick drops.
// Kinds are tried in order and the first successful 1-in-N roll wins,
// so at most one power-up spawns and later kinds are not rolled at all.
func RollPowerUp(r Roller, commonChance, rareChance int) (PowerUpKind, bool) {
	for _, k := range commonKinds {
		if r.Intn(commonChance) == 0 {
			return k, true
		}
	}
	for _, k := range rareKinds {
		if r.Intn(rareChance) == 0 {
			return k, true
		}
	}
	return 0, false
}

// spawnPowerUps may drop a power-up at the position of a destroyed brick.
func (g *Game) spawnPowerUps(at *Object) {
	cfg := g.cfg.PowerUps
	kind, ok := RollPowerUp(g.rng, cfg.CommonChance, cfg.RareChance)
	if !ok {
		return
	}

	p := &PowerUp{
		Object: NewObject(
			at.Position,
			mgl32.Vec2{cfg.Width, cfg.Height},
			mgl32.Vec2{0, cfg.FallSpeed},
			kind.Color(),
			g.powerUpTextures[kind],
		),
		Kind:     kind,
		Duration: durationFor(kind, cfg.Durations),
	}
	g.powerUps = append(g.powerUps, p)
	g.logger.Debug("power-up spawned", "kind", kind, "x", at.Position[0], "y", at.Position[1])
}

// activatePowerUp applies a caught power-up's effect.
func (g *Game) activatePowerUp(p *PowerUp) {
	switch p.Kind {
	case PowerUpSticky:
		g.ball.Sticky = true
		g.paddle.Color = PowerUpSticky.Color()
	case PowerUpSpeed:
		factor := g.cfg.Ball.SpeedFactor
		g.ball.Velocity = g.ball.Velocity.Mul(factor)
		g.ball.SpeedScale *= factor
	case PowerUpPassThrough:
		g.ball.PassThrough = true
		g.ball.Color = mgl32.Vec3{1, 0.5, 0.5}
	case PowerUpIncrease:
		g.paddle.Size[0] += g.cfg.Paddle.Growth
	case PowerUpConfuse:
		if !g.effects.Chaos {
			g.effects.Confuse = true
		}
	case PowerUpChaos:
		if !g.effects.Confuse {
			g.effects.Chaos = true
		}
	}
	g.logger.Debug("power-up activated", "kind", p.Kind, "duration", p.Duration)
}

// revertPowerUp undoes the effect of an expired power-up kind.
func (g *Game) revertPowerUp(k PowerUpKind) {
	switch k {
	case PowerUpSticky:
		g.ball.Sticky = false
		g.paddle.Color = white
	case PowerUpSpeed:
		if g.ball.SpeedScale != 0 {
			g.ball.Velocity = g.ball.Velocity.Mul(1 / g.ball.SpeedScale)
		}
		g.ball.SpeedScale = 1
	case PowerUpPassThrough:
		g.ball.PassThrough = false
		g.ball.Color = white
	case PowerUpIncrease:
		g.paddle.Size[0] = g.cfg.Paddle.Width
	case PowerUpConfuse:
		g.effects.Confuse = false
	case PowerUpChaos:
		g.effects.Chaos = false
	}
	g.logger.Debug("power-up expired", "kind", k)
}

// fallFrameRate is the frame rate fall_speed is measured at. Scaling by dt
// keeps that speed at any frame rate instead of slowing it to units/second.
const fallFrameRate = 60

// updatePowerUps moves falling power-ups, counts down active ones and
// reverts a kind only when no other power-up of that kind is still active.
func (g *Game) updatePowerUps(dt float32) {
	for _, p := range g.powerUps {
		step := p.Velocity
		if g.cfg.PowerUps.ScaleFallByDT {
			step = step.Mul(dt * fallFrameRate)
		}
		p.Position = p.Position.Add(step)

		if !p.Activated {
			continue
		}
		p.Duration -= dt
		if p.Duration <= 0 {
			p.Activated = false
			if !isOtherPowerUpActive(g.powerUps, p.Kind) {
				g.revertPowerUp(p.Kind)
			}
		}
	}
	g.powerUps = prunePowerUps(g.powerUps)
}

// isOtherPowerUpActive reports whether any power-up of kind is activated.
// Callers deactivate the expiring one first so it does not count itself.
func isOtherPowerUpActive(list []*PowerUp, kind PowerUpKind) bool {
	for _, p := range list {
		if p.Activated && p.Kind == kind {
			return true
		}
	}
	return false
}

// prunePowerUps drops power-ups that are gone and not running:
// missed ones that fell off screen and caught ones whose time ran out.
func prunePowerUps(list []*PowerUp) []*PowerUp {
	kept := list[:0]
	for _, p := range list {
		if p.Destroyed && !p.Activated {
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	return kept
}
