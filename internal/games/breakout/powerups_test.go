package breakout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRollPowerUp(t *testing.T) {
	tests := []struct {
		name      string
		rolls     []int
		want      PowerUpKind
		wantOK    bool
		wantCalls int
	}{
		{"sticky first", []int{0}, PowerUpSticky, true, 1},
		{"speed second", []int{1, 0}, PowerUpSpeed, true, 2},
		{"pass-through", []int{1, 1, 0}, PowerUpPassThrough, true, 3},
		{"increase", []int{1, 1, 1, 0}, PowerUpIncrease, true, 4},
		{"confuse", []int{1, 1, 1, 1, 0}, PowerUpConfuse, true, 5},
		{"chaos", []int{1, 1, 1, 1, 1, 0}, PowerUpChaos, true, 6},
		{"nothing", []int{1, 1, 1, 1, 1, 1}, 0, false, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &scriptedRoller{rolls: tt.rolls}
			got, ok := RollPowerUp(r, 75, 15)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("RollPowerUp() = (%v, %v), expected (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
			if r.calls != tt.wantCalls {
				t.Errorf("rolled %d times, expected %d", r.calls, tt.wantCalls)
			}
		})
	}
}

func TestRollPowerUpChances(t *testing.T) {
	var seen []int
	r := rollerFunc(func(n int) int {
		seen = append(seen, n)
		return n - 1
	})
	RollPowerUp(r, 75, 15)

	want := []int{75, 75, 75, 75, 15, 15}
	if len(seen) != len(want) {
		t.Fatalf("rolled %v, expected %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("roll %d used n=%d, expected %d", i, seen[i], want[i])
		}
	}
}

type rollerFunc func(n int) int

func (f rollerFunc) Intn(n int) int { return f(n) }

func TestSpawnPowerUpAtBrick(t *testing.T) {
	g := newTestGame(t, WithRoller(&scriptedRoller{rolls: []int{1, 0}}))
	brick := NewObject(mgl32.Vec2{40, 60}, mgl32.Vec2{80, 30}, mgl32.Vec2{}, white, nil)

	g.spawnPowerUps(&brick)

	if len(g.powerUps) != 1 {
		t.Fatalf("len(powerUps) = %d, expected 1", len(g.powerUps))
	}
	p := g.powerUps[0]
	if p.Kind != PowerUpSpeed {
		t.Errorf("Kind = %v, expected %v", p.Kind, PowerUpSpeed)
	}
	if p.Position != brick.Position {
		t.Errorf("Position = %v, expected %v", p.Position, brick.Position)
	}
	if p.Duration != g.cfg.PowerUps.Durations.Speed {
		t.Errorf("Duration = %v, expected %v", p.Duration, g.cfg.PowerUps.Durations.Speed)
	}
	if p.Texture == nil || p.Texture.Name != PowerUpSpeed.Texture() {
		t.Errorf("Texture = %v, expected %q", p.Texture, PowerUpSpeed.Texture())
	}
}

func activated(g *Game, kind PowerUpKind, duration float32) *PowerUp {
	p := &PowerUp{Kind: kind, Duration: duration}
	g.activatePowerUp(p)
	p.Destroyed = true
	p.Activated = true
	g.powerUps = append(g.powerUps, p)
	return p
}

func TestSpeedExpiryWaitsForSibling(t *testing.T) {
	g := newTestGame(t)
	g.ball.Stuck = false
	base := g.ball.Velocity
	factor := g.cfg.Ball.SpeedFactor

	activated(g, PowerUpSpeed, 1)
	activated(g, PowerUpSpeed, 2)

	if mgl32.Abs(g.ball.SpeedScale-factor*factor) > 1e-4 {
		t.Fatalf("SpeedScale = %v, expected %v", g.ball.SpeedScale, factor*factor)
	}

	g.updatePowerUps(1.5)
	if mgl32.Abs(g.ball.SpeedScale-factor*factor) > 1e-4 {
		t.Errorf("first expiry reverted speed: SpeedScale = %v", g.ball.SpeedScale)
	}
	if len(g.powerUps) != 1 {
		t.Errorf("len(powerUps) = %d after first expiry, expected 1", len(g.powerUps))
	}

	g.updatePowerUps(1)
	if g.ball.SpeedScale != 1 {
		t.Errorf("SpeedScale = %v after last expiry, expected 1", g.ball.SpeedScale)
	}
	if !g.ball.Velocity.ApproxEqualThreshold(base, 1e-2) {
		t.Errorf("Velocity = %v, expected %v", g.ball.Velocity, base)
	}
	if len(g.powerUps) != 0 {
		t.Errorf("len(powerUps) = %d, expected 0", len(g.powerUps))
	}
}

func TestPowerUpEffects(t *testing.T) {
	tests := []struct {
		kind   PowerUpKind
		check  func(g *Game) bool
		revert func(g *Game) bool
	}{
		{
			PowerUpSticky,
			func(g *Game) bool { return g.ball.Sticky && g.paddle.Color == PowerUpSticky.Color() },
			func(g *Game) bool { return !g.ball.Sticky && g.paddle.Color == white },
		},
		{
			PowerUpPassThrough,
			func(g *Game) bool { return g.ball.PassThrough && g.ball.Color != white },
			func(g *Game) bool { return !g.ball.PassThrough && g.ball.Color == white },
		},
		{
			PowerUpIncrease,
			func(g *Game) bool { return g.paddle.Size[0] == g.cfg.Paddle.Width+g.cfg.Paddle.Growth },
			func(g *Game) bool { return g.paddle.Size[0] == g.cfg.Paddle.Width },
		},
		{
			PowerUpConfuse,
			func(g *Game) bool { return g.effects.Confuse },
			func(g *Game) bool { return !g.effects.Confuse },
		},
		{
			PowerUpChaos,
			func(g *Game) bool { return g.effects.Chaos },
			func(g *Game) bool { return !g.effects.Chaos },
		},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			g := newTestGame(t)
			activated(g, tt.kind, 0.5)
			if !tt.check(g) {
				t.Errorf("%v not applied", tt.kind)
			}
			g.updatePowerUps(1)
			if !tt.revert(g) {
				t.Errorf("%v not reverted", tt.kind)
			}
		})
	}
}

func TestConfuseAndChaosExclusive(t *testing.T) {
	g := newTestGame(t)
	activated(g, PowerUpChaos, 5)
	activated(g, PowerUpConfuse, 5)

	if !g.effects.Chaos || g.effects.Confuse {
		t.Errorf("Effects = %+v, expected chaos only", g.effects)
	}
}

func TestPowerUpFall(t *testing.T) {
	tests := []struct {
		name      string
		scaleByDT bool
		wantY     float32
	}{
		{"per frame", false, 101},
		{"scaled by dt", true, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.cfg.PowerUps.ScaleFallByDT = tt.scaleByDT
			p := &PowerUp{
				Object: NewObject(mgl32.Vec2{10, 100}, mgl32.Vec2{60, 20}, mgl32.Vec2{0, 1}, white, nil),
				Kind:   PowerUpSticky,
			}
			g.powerUps = []*PowerUp{p}

			g.updatePowerUps(0.5)
			if mgl32.Abs(p.Position[1]-tt.wantY) > 1e-4 {
				t.Errorf("Y = %v, expected %v", p.Position[1], tt.wantY)
			}

			// At 60 fps both modes fall the same distance.
			p.Position = mgl32.Vec2{10, 100}
			g.updatePowerUps(1.0 / 60)
			if mgl32.Abs(p.Position[1]-101) > 1e-3 {
				t.Errorf("Y after one 60 fps frame = %v, expected 101", p.Position[1])
			}
		})
	}
}

func TestPrunePowerUps(t *testing.T) {
	falling := &PowerUp{}
	missed := &PowerUp{Object: Object{Destroyed: true}}
	running := &PowerUp{Object: Object{Destroyed: true}, Activated: true}

	got := prunePowerUps([]*PowerUp{falling, missed, running})
	if len(got) != 2 || got[0] != falling || got[1] != running {
		t.Errorf("prunePowerUps() kept %d, expected falling and running", len(got))
	}
}

func TestPowerUpKindTexture(t *testing.T) {
	for k := PowerUpKind(0); k < powerUpKinds; k++ {
		if k.Texture() == "" {
			t.Errorf("%v has no texture", k)
		}
	}
	if PowerUpKind(-1).Texture() != "" {
		t.Error("invalid kind should have no texture")
	}
	if !PowerUpChaos.IsNegative() || PowerUpSpeed.IsNegative() {
		t.Error("IsNegative() misclassified")
	}
}
