package desktop

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func TestSpriteGeoM(t *testing.T) {
	tests := []struct {
		name     string
		rotation float32
		in       [2]float64
		want     [2]float64
	}{
		{"top-left corner", 0, [2]float64{0, 0}, [2]float64{100, 50}},
		{"bottom-right corner", 0, [2]float64{32, 16}, [2]float64{180, 70}},
		{"half turn swaps corners", math.Pi, [2]float64{0, 0}, [2]float64{180, 70}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := spriteGeoM(32, 16, mgl32.Vec2{100, 50}, mgl32.Vec2{80, 20}, tt.rotation)
			x, y := g.Apply(tt.in[0], tt.in[1])
			if math.Abs(x-tt.want[0]) > 1e-6 || math.Abs(y-tt.want[1]) > 1e-6 {
				t.Errorf("Apply(%v) = (%v, %v), expected %v", tt.in, x, y, tt.want)
			}
		})
	}
}

func TestShaderUniforms(t *testing.T) {
	u := shaderUniforms(breakout.Effects{Shake: true, Chaos: true}, 2.5)

	if u["Time"] != float32(2.5) {
		t.Errorf("Time = %v, expected 2.5", u["Time"])
	}
	if u["Shake"] != float32(1) || u["Confuse"] != float32(0) || u["Chaos"] != float32(1) {
		t.Errorf("uniforms = %v", u)
	}
}

func TestHUDLines(t *testing.T) {
	f := breakout.Frame{
		Level:     1,
		Levels:    4,
		LevelName: "Gaps",
		Score:     30,
		Width:     800,
		Height:    600,
		State:     breakout.StateWin,
		Active: []breakout.ActivePowerUp{
			{Kind: breakout.PowerUpSticky, Remaining: 3.2},
			{Kind: breakout.PowerUpConfuse, Remaining: 1},
		},
	}

	lines := hudLines(f, 16)
	var texts []string
	for _, l := range lines {
		texts = append(texts, l.text)
	}
	joined := strings.Join(texts, "|")

	for _, want := range []string{"Level 2/4  Gaps   Score 30", "sticky 4s", "!confuse 1s", "You WON!!!"} {
		if !strings.Contains(joined, want) {
			t.Errorf("hudLines() = %q, missing %q", joined, want)
		}
	}
	for _, l := range lines {
		if l.text == "!confuse 1s" && l.color != warnColor {
			t.Errorf("confuse line color = %v, expected %v", l.color, warnColor)
		}
		if l.text == "sticky 4s" && l.color == warnColor {
			t.Error("sticky line drawn in the warning color")
		}
		if l.text == "You WON!!!" && (!l.centered || l.x != 400) {
			t.Errorf("win text at x=%v centered=%v, expected centered on 400", l.x, l.centered)
		}
	}
}

func TestKeyTables(t *testing.T) {
	seen := make(map[core.Action]bool)
	for _, a := range heldKeys {
		seen[a] = true
	}
	for _, a := range pressedKeys {
		seen[a] = true
	}

	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionLaunch, core.ActionUp,
		core.ActionDown, core.ActionConfirm, core.ActionPause, core.ActionQuit} {
		if !seen[a] {
			t.Errorf("no key bound to %v", a)
		}
	}
}
