// Package desktop runs breakout in a window with Ebitengine.
// Sprites are drawn into an offscreen scene which the post-processing
// shader copies to the screen; the HUD is drawn on top, unaffected.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/resources"
)

// maxFrameDelta caps dt after a stall so the ball cannot tunnel.
const maxFrameDelta = 100 * time.Millisecond

// heldKeys are sampled every frame while down.
var heldKeys = map[ebiten.Key]core.Action{
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyArrowRight: core.ActionRight,
}

// pressedKeys fire once per key press.
var pressedKeys = map[ebiten.Key]core.Action{
	ebiten.KeySpace:     core.ActionLaunch,
	ebiten.KeyW:         core.ActionUp,
	ebiten.KeyArrowUp:   core.ActionUp,
	ebiten.KeyS:         core.ActionDown,
	ebiten.KeyArrowDown: core.ActionDown,
	ebiten.KeyEnter:     core.ActionConfirm,
	ebiten.KeyP:         core.ActionPause,
	ebiten.KeyEscape:    core.ActionPause,
	ebiten.KeyQ:         core.ActionQuit,
}

// warnColor marks power-ups that hinder the player.
var warnColor = color.RGBA{R: 255, G: 95, B: 95, A: 255}

// App adapts a breakout game to ebiten.Game.
type App struct {
	game   *breakout.Game
	logger *log.Logger
	images map[*resources.Texture]*ebiten.Image
	scene  *ebiten.Image
	shader *ebiten.Shader
	face   text.Face
	target *ebiten.Image
	width  int
	height int
	last   time.Time
}

// NewApp compiles the post-processing shader and prepares the scene.
func NewApp(s registry.Session) (*App, error) {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	src, err := s.Resources.Shader(resources.ShaderPostProcess)
	if err != nil {
		return nil, err
	}
	shader, err := ebiten.NewShader(src.Source)
	if err != nil {
		return nil, fmt.Errorf("desktop: cannot compile shader %q: %w", src.Name, err)
	}

	w, h := s.Game.Size()
	return &App{
		game:   s.Game,
		logger: logger,
		images: make(map[*resources.Texture]*ebiten.Image),
		scene:  ebiten.NewImage(int(w), int(h)),
		shader: shader,
		face:   text.NewGoXFace(basicfont.Face7x13),
		width:  int(w),
		height: int(h),
		last:   time.Now(),
	}, nil
}

// Update samples input and advances the game by the wall-clock frame time.
func (a *App) Update() error {
	in := a.input()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	now := time.Now()
	dt := min(now.Sub(a.last), maxFrameDelta)
	a.last = now

	a.game.Step(in, float32(dt.Seconds()))
	return nil
}

func (a *App) input() core.InputFrame {
	in := core.NewInputFrame()
	for k, action := range heldKeys {
		if ebiten.IsKeyPressed(k) {
			in.Set(action)
		}
	}
	for k, action := range pressedKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Set(action)
		}
	}
	return in
}

// Draw renders the frame through the post-processing shader.
func (a *App) Draw(screen *ebiten.Image) {
	frame := a.game.Frame()

	a.scene.Clear()
	a.target = a.scene
	frame.Draw(a)

	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = a.scene
	op.Uniforms = shaderUniforms(frame.Effects, frame.Time)
	screen.DrawRectShader(a.width, a.height, a.shader, op)

	a.drawHUD(screen, frame)
}

// Layout keeps the logical screen at world size; ebiten scales the window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

// DrawSprite draws a textured quad into the scene.
func (a *App) DrawSprite(tex *resources.Texture, pos, size mgl32.Vec2, rotation float32, color mgl32.Vec3) {
	img := a.image(tex)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(img.Bounds().Dx(), img.Bounds().Dy(), pos, size, rotation)
	op.ColorScale.Scale(color[0], color[1], color[2], 1)
	op.Filter = ebiten.FilterLinear
	a.target.DrawImage(img, op)
}

// DrawSpriteAdditive draws a quad that brightens what is beneath it.
func (a *App) DrawSpriteAdditive(tex *resources.Texture, pos, size mgl32.Vec2, color mgl32.Vec4) {
	img := a.image(tex)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(img.Bounds().Dx(), img.Bounds().Dy(), pos, size, 0)
	alpha := color[3]
	op.ColorScale.Scale(color[0]*alpha, color[1]*alpha, color[2]*alpha, alpha)
	op.Blend = ebiten.BlendLighter
	a.target.DrawImage(img, op)
}

func (a *App) image(tex *resources.Texture) *ebiten.Image {
	if tex == nil || tex.Image == nil {
		return nil
	}
	if img, ok := a.images[tex]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(tex.Image)
	a.images[tex] = img
	return img
}

// spriteGeoM scales a w x h image to size, rotates it around its center
// and moves its top-left corner to pos.
func spriteGeoM(w, h int, pos, size mgl32.Vec2, rotation float32) ebiten.GeoM {
	var g ebiten.GeoM
	if w <= 0 || h <= 0 {
		return g
	}
	g.Scale(float64(size[0])/float64(w), float64(size[1])/float64(h))
	if rotation != 0 {
		g.Translate(-float64(size[0])/2, -float64(size[1])/2)
		g.Rotate(float64(rotation))
		g.Translate(float64(size[0])/2, float64(size[1])/2)
	}
	g.Translate(float64(pos[0]), float64(pos[1]))
	return g
}

// shaderUniforms maps effect flags to the post-processing shader inputs.
func shaderUniforms(fx breakout.Effects, t float32) map[string]any {
	return map[string]any{
		"Time":    t,
		"Shake":   flag(fx.Shake),
		"Confuse": flag(fx.Confuse),
		"Chaos":   flag(fx.Chaos),
	}
}

func flag(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// hudLine is a piece of HUD text.
type hudLine struct {
	text     string
	x, y     float64
	color    color.Color
	centered bool
}

// hudLines lays out the status line and any state overlay.
func hudLines(f breakout.Frame, lineHeight float64) []hudLine {
	white := color.White
	lines := []hudLine{{
		text:  fmt.Sprintf("Level %d/%d  %s   Score %d", f.Level+1, f.Levels, f.LevelName, f.Score),
		x:     8,
		y:     8,
		color: white,
	}}

	for i, p := range f.Active {
		c := p.Kind.Color()
		label := fmt.Sprintf("%s %.0fs", p.Kind, math.Ceil(float64(p.Remaining)))
		var tint color.Color = color.RGBA{R: unit8(c[0]), G: unit8(c[1]), B: unit8(c[2]), A: 255}
		if p.Kind.IsNegative() {
			label = "!" + label
			tint = warnColor
		}
		lines = append(lines, hudLine{
			text:  label,
			x:     8,
			y:     8 + float64(i+1)*lineHeight,
			color: tint,
		})
	}

	mid := float64(f.Height) / 2
	center := func(s string, y float64, c color.Color) {
		lines = append(lines, hudLine{text: s, x: float64(f.Width) / 2, y: y, color: c, centered: true})
	}
	switch {
	case f.State == breakout.StateMenu:
		center("Press ENTER to start", mid, white)
		center("Press W or S to select level", mid+lineHeight*1.5, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		center(f.LevelName, mid+lineHeight*3, white)
	case f.State == breakout.StateWin:
		center("You WON!!!", mid-lineHeight, color.RGBA{G: 255, A: 255})
		center("Press ENTER to continue", mid+lineHeight, color.RGBA{R: 255, G: 255, A: 255})
	case f.Paused:
		center("PAUSED", mid, white)
	}
	return lines
}

func unit8(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}

func (a *App) drawHUD(screen *ebiten.Image, f breakout.Frame) {
	_, lineHeight := text.Measure("M", a.face, 0)
	for _, l := range hudLines(f, lineHeight+4) {
		op := &text.DrawOptions{}
		x := l.x
		if l.centered {
			w, _ := text.Measure(l.text, a.face, 0)
			x -= w / 2
		}
		op.GeoM.Translate(x, l.y)
		op.ColorScale.ScaleWithColor(l.color)
		text.Draw(screen, l.text, a.face, op)
	}
}

// Run opens a window and blocks until it is closed or the player quits.
func Run(s registry.Session) error {
	app, err := NewApp(s)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle("Breakout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if s.Runtime.TickRate > 0 {
		ebiten.SetTPS(s.Runtime.TickRate)
	}

	app.logger.Info("window opened", "width", app.width, "height", app.height)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
