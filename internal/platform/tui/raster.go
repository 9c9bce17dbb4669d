package tui

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/resources"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

var (
	hudColor   = core.RGB(200, 200, 200)
	titleColor = core.RGB(255, 255, 135)
	warnColor  = core.RGB(255, 95, 95)
)

// glyphs maps texture names to the rune that fills their cells.
var glyphs = map[string]rune{
	resources.TextureBlock:      '█',
	resources.TextureBlockSolid: '▓',
	resources.TexturePaddle:     '▀',
	resources.TextureBall:       '●',
	resources.TextureParticle:   '·',
}

// powerUpLabels are drawn over power-up boxes, in power-up kind order.
var powerUpLabels = [...]string{"S", "F", "P", "W", "C", "X"}

func powerUpLabel(texture string) (string, bool) {
	for i, name := range resources.PowerUpTextures {
		if name == texture {
			return powerUpLabels[i], true
		}
	}
	return "", false
}

// Rasterizer draws breakout frames into a character grid.
// World coordinates are scaled to cells; each sprite fills the cells its
// box covers, tinted by its color times the texture's average color.
type Rasterizer struct {
	field *core.Screen
	sx    float32
	sy    float32
	means map[*resources.Texture]mgl32.Vec3
}

// NewRasterizer creates a rasterizer with an empty playfield.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		field: core.NewScreen(0, 0),
		means: make(map[*resources.Texture]mgl32.Vec3),
	}
}

// Render draws f into dst: a HUD line on top and the playfield below,
// with post effects applied to the playfield only.
func (r *Rasterizer) Render(f breakout.Frame, dst *core.Screen) {
	w, h := dst.Width(), dst.Height()-hudRows
	if w <= 0 || h <= 0 || f.Width <= 0 || f.Height <= 0 {
		return
	}

	r.field.Resize(w, h)
	r.field.Clear()
	r.sx = float32(w) / f.Width
	r.sy = float32(h) / f.Height

	f.Draw(r)
	r.compose(dst, f.Effects, f.Time)
	r.overlay(dst, f)
	r.hud(dst, f)
}

// DrawSprite fills the cells covered by a sprite.
func (r *Rasterizer) DrawSprite(tex *resources.Texture, pos, size mgl32.Vec2, _ float32, color mgl32.Vec3) {
	name := ""
	if tex != nil {
		name = tex.Name
		m := r.mean(tex)
		color = mgl32.Vec3{color[0] * m[0], color[1] * m[1], color[2] * m[2]}
	}
	c := core.RGBFloat(color[0], color[1], color[2])

	switch name {
	case resources.TextureBackground:
		return
	case resources.TextureBall:
		center := pos.Add(size.Mul(0.5))
		r.field.SetCell(int(center[0]*r.sx), int(center[1]*r.sy), core.Cell{Rune: glyphs[name], Color: c})
		return
	}

	x0, y0, x1, y1 := r.cells(pos, size)
	if label, ok := powerUpLabel(name); ok {
		r.field.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), core.Cell{Rune: '▒', Color: c})
		r.field.DrawText(x0+(x1-x0-len(label))/2, y0+(y1-y0-1)/2, label, c)
		return
	}

	g, ok := glyphs[name]
	if !ok {
		g = '█'
	}
	if (name == resources.TextureBlock || name == resources.TextureBlockSolid) && x1-x0 > 1 {
		x1-- // gap between neighbouring bricks
	}
	r.field.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), core.Cell{Rune: g, Color: c})
}

// DrawSpriteAdditive lights up an empty cell at the sprite center.
func (r *Rasterizer) DrawSpriteAdditive(_ *resources.Texture, pos, size mgl32.Vec2, color mgl32.Vec4) {
	center := pos.Add(size.Mul(0.5))
	x, y := int(center[0]*r.sx), int(center[1]*r.sy)
	if r.field.Get(x, y) != ' ' {
		return
	}
	rgb := color.Vec3().Mul(color[3])
	r.field.SetCell(x, y, core.Cell{Rune: glyphs[resources.TextureParticle], Color: core.RGBFloat(rgb[0], rgb[1], rgb[2])})
}

// cells converts a world box to a half-open cell range of at least one cell.
func (r *Rasterizer) cells(pos, size mgl32.Vec2) (x0, y0, x1, y1 int) {
	x0 = round(pos[0] * r.sx)
	y0 = round(pos[1] * r.sy)
	x1 = max(round((pos[0]+size[0])*r.sx), x0+1)
	y1 = max(round((pos[1]+size[1])*r.sy), y0+1)
	return x0, y0, x1, y1
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

// mean returns the alpha-weighted average color of a texture.
func (r *Rasterizer) mean(tex *resources.Texture) mgl32.Vec3 {
	if m, ok := r.means[tex]; ok {
		return m
	}

	m := mgl32.Vec3{1, 1, 1}
	if tex.Image != nil {
		var sr, sg, sb, sa uint64
		pix := tex.Image.Pix
		for i := 0; i+3 < len(pix); i += 4 {
			sr += uint64(pix[i])
			sg += uint64(pix[i+1])
			sb += uint64(pix[i+2])
			sa += uint64(pix[i+3])
		}
		// RGBA pixels are alpha-premultiplied.
		if sa > 0 {
			m = mgl32.Vec3{float32(sr) / float32(sa), float32(sg) / float32(sa), float32(sb) / float32(sa)}
		}
	}
	r.means[tex] = m
	return m
}

// compose copies the playfield into dst below the HUD, applying the post
// effects: chaos waves rows and keeps only shape outlines, confuse flips
// both axes and inverts colors, shake jitters the whole field by a cell.
func (r *Rasterizer) compose(dst *core.Screen, fx breakout.Effects, t float32) {
	w, h := r.field.Width(), r.field.Height()
	time := float64(t)

	var shakeX, shakeY int
	if fx.Shake {
		shakeX = int(math.Round(math.Cos(time * 10)))
		shakeY = int(math.Round(math.Cos(time*15) * 0.6))
	}

	for y := 0; y < h; y++ {
		wave := 0
		if fx.Chaos {
			wave = int(math.Round(math.Sin(time*3+float64(y)*0.6) * 3))
		}
		for x := 0; x < w; x++ {
			sx, sy := x, y
			switch {
			case fx.Chaos:
				sx = ((x+wave)%w + w) % w
			case fx.Confuse:
				sx, sy = w-1-x, h-1-y
			}
			sx += shakeX
			sy += shakeY

			cell := r.field.GetCell(sx, sy)
			switch {
			case fx.Chaos && r.interior(sx, sy):
				cell = core.Cell{Rune: ' '}
			case fx.Confuse && !fx.Chaos:
				cell.Color = cell.Color.Invert()
			}
			dst.SetCell(x, y+hudRows, cell)
		}
	}
}

// interior reports whether a filled cell is surrounded by the same rune.
func (r *Rasterizer) interior(x, y int) bool {
	c := r.field.Get(x, y)
	if c == ' ' {
		return false
	}
	return r.field.Get(x-1, y) == c && r.field.Get(x+1, y) == c &&
		r.field.Get(x, y-1) == c && r.field.Get(x, y+1) == c
}

// overlay draws state text over the playfield, unaffected by effects.
func (r *Rasterizer) overlay(dst *core.Screen, f breakout.Frame) {
	mid := hudRows + r.field.Height()/2
	switch {
	case f.State == breakout.StateMenu:
		dst.DrawTextCentered(mid, "Press ENTER to start", titleColor)
		dst.DrawTextCentered(mid+1, "Press W or S to select level", hudColor)
		dst.DrawTextCentered(mid+3, fmt.Sprintf("< %s >", f.LevelName), hudColor)
	case f.State == breakout.StateWin:
		dst.DrawTextCentered(mid, "You WON!!!", core.RGB(0, 255, 0))
		dst.DrawTextCentered(mid+1, "Press ENTER to continue", core.RGB(255, 255, 0))
	case f.Paused:
		dst.DrawTextCentered(mid, "PAUSED", titleColor)
		dst.DrawTextCentered(mid+1, "Press P to resume", hudColor)
	}
}

// hud draws the status line.
func (r *Rasterizer) hud(dst *core.Screen, f breakout.Frame) {
	status := fmt.Sprintf(" Level %d/%d  %s   Score %d", f.Level+1, f.Levels, f.LevelName, f.Score)
	dst.DrawText(0, 0, status, hudColor)

	x := len([]rune(status)) + 3
	for _, a := range f.Active {
		tag := fmt.Sprintf("[%s %.0fs]", a.Kind, math.Ceil(float64(a.Remaining)))
		c := a.Kind.Color()
		color := core.RGBFloat(c[0], c[1], c[2])
		if a.Kind.IsNegative() {
			tag = fmt.Sprintf("[!%s %.0fs]", a.Kind, math.Ceil(float64(a.Remaining)))
			color = warnColor
		}
		dst.DrawText(x, 0, tag, color)
		x += len(tag) + 1
	}
}
