package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/resources"
)

// Ball is the moving circle. Its box is 2*Radius on each side with
// Position at the top-left, so the circle center is Position + Radius.
type Ball struct {
	Object
	Radius      float32
	Stuck       bool    // rides on the paddle until launched
	Sticky      bool    // sticks again on the next paddle hit
	PassThrough bool    // destroys non-solid bricks without bouncing
	SpeedScale  float32 // product of active speed power-ups
}

// NewBall creates a ball resting stuck at pos.
func NewBall(pos mgl32.Vec2, radius float32, velocity mgl32.Vec2, tex *resources.Texture) *Ball {
	return &Ball{
		Object:     NewObject(pos, mgl32.Vec2{radius * 2, radius * 2}, velocity, white, tex),
		Radius:     radius,
		Stuck:      true,
		SpeedScale: 1,
	}
}

// Center returns the circle center.
func (b *Ball) Center() mgl32.Vec2 {
	return b.Position.Add(mgl32.Vec2{b.Radius, b.Radius})
}

// Advance integrates the position over dt and bounces off the left, right
// and top edges of a field boundaryWidth wide. There is no bottom edge;
// falling out is the loss condition. A stuck ball does not move.
func (b *Ball) Advance(dt, boundaryWidth float32) mgl32.Vec2 {
	if b.Stuck {
		return b.Position
	}

	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	if b.Position[0] <= 0 {
		b.Velocity[0] = -b.Velocity[0]
		b.Position[0] = 0
	} else if b.Position[0]+b.Size[0] >= boundaryWidth {
		b.Velocity[0] = -b.Velocity[0]
		b.Position[0] = boundaryWidth - b.Size[0]
	}
	if b.Position[1] <= 0 {
		b.Velocity[1] = -b.Velocity[1]
		b.Position[1] = 0
	}
	return b.Position
}

// Reset puts the ball back on the paddle with all power-up state cleared.
func (b *Ball) Reset(pos, velocity mgl32.Vec2) {
	b.Position = pos
	b.Velocity = velocity
	b.Stuck = true
	b.Sticky = false
	b.PassThrough = false
	b.Color = white
	b.SpeedScale = 1
}
