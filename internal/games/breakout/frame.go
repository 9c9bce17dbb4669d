package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/resources"
)

// Sprite is a single textured quad to draw.
type Sprite struct {
	Texture  *resources.Texture
	Position mgl32.Vec2 // top-left, world units
	Size     mgl32.Vec2
	Rotation float32 // radians, around the sprite center
	Color    mgl32.Vec3
	Alpha    float32
	Additive bool // particles glow by adding onto what is below
}

// ActivePowerUp is a running power-up shown in the HUD.
type ActivePowerUp struct {
	Kind      PowerUpKind
	Remaining float32
}

// Frame is everything a frontend needs to draw one frame.
// Sprites are in paint order.
type Frame struct {
	Sprites   []Sprite
	Effects   Effects
	Time      float32 // seconds since start, drives shader animation
	State     State
	Paused    bool
	Level     int
	LevelName string
	Levels    int
	Score     int
	Width     float32
	Height    float32
	Active    []ActivePowerUp
}

// Renderer draws textured quads tinted by color.
type Renderer interface {
	DrawSprite(tex *resources.Texture, pos, size mgl32.Vec2, rotation float32, color mgl32.Vec3)
}

// BlendRenderer is a Renderer that can also blend additively.
type BlendRenderer interface {
	Renderer
	DrawSpriteAdditive(tex *resources.Texture, pos, size mgl32.Vec2, color mgl32.Vec4)
}

// Draw replays the frame's sprites on r. Additive sprites fall back to a
// color scaled by alpha when r cannot blend.
func (f *Frame) Draw(r Renderer) {
	br, canBlend := r.(BlendRenderer)
	for _, s := range f.Sprites {
		if s.Additive {
			if canBlend {
				br.DrawSpriteAdditive(s.Texture, s.Position, s.Size, s.Color.Vec4(s.Alpha))
				continue
			}
			r.DrawSprite(s.Texture, s.Position, s.Size, s.Rotation, s.Color.Mul(s.Alpha))
			continue
		}
		r.DrawSprite(s.Texture, s.Position, s.Size, s.Rotation, s.Color)
	}
}
