// Package breakout is the simulation: paddle, ball, bricks, power-ups,
// particles and post-effect flags, advanced one frame at a time by Step.
// It emits a Frame of sprites and never touches a window or a terminal.
package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/resources"
)

var white = mgl32.Vec3{1, 1, 1}

// Object is the state shared by everything drawn as a box.
// Position is the top-left corner.
type Object struct {
	Position  mgl32.Vec2
	Size      mgl32.Vec2
	Velocity  mgl32.Vec2
	Color     mgl32.Vec3
	Rotation  float32 // radians
	Solid     bool
	Destroyed bool
	Texture   *resources.Texture
}

// NewObject creates a live, non-solid object.
func NewObject(pos, size, velocity mgl32.Vec2, color mgl32.Vec3, tex *resources.Texture) Object {
	return Object{
		Position: pos,
		Size:     size,
		Velocity: velocity,
		Color:    color,
		Texture:  tex,
	}
}

// Center returns the middle of the object's box.
func (o *Object) Center() mgl32.Vec2 {
	return o.Position.Add(o.Size.Mul(0.5))
}

// Sprite returns the object as an opaque draw command.
func (o *Object) Sprite() Sprite {
	return Sprite{
		Texture:  o.Texture,
		Position: o.Position,
		Size:     o.Size,
		Rotation: o.Rotation,
		Color:    o.Color,
		Alpha:    1,
	}
}
