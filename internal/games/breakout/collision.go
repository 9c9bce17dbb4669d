package breakout

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is the compass side a collision vector points to.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// compass is checked in order; ties go to the earlier entry.
var compass = [...]mgl32.Vec2{
	Up:    {0, 1},
	Right: {1, 0},
	Down:  {0, -1},
	Left:  {-1, 0},
}

// ClampMode selects how the closest point on a box is computed.
type ClampMode int

const (
	// ClampFloat clamps in floating point.
	ClampFloat ClampMode = iota
	// ClampTruncate truncates both the difference and the half extents
	// toward zero before clamping, matching integer-clamping engines.
	ClampTruncate
)

// Collision is the result of a circle-vs-box test.
// Diff points from the circle center to the closest point on the box.
type Collision struct {
	Hit  bool
	Dir  Direction
	Diff mgl32.Vec2
}

// VectorDirection returns the compass direction with the largest dot
// product against target. The zero vector maps to Up.
func VectorDirection(target mgl32.Vec2) Direction {
	if target.Len() == 0 {
		return Up
	}
	n := target.Normalize()

	best := Up
	var bestDot float32
	for i, dir := range compass {
		if dot := n.Dot(dir); dot > bestDot {
			bestDot = dot
			best = Direction(i)
		}
	}
	return best
}

// CheckAABB reports whether two boxes overlap. Touching edges count.
func CheckAABB(a, b *Object) bool {
	collisionX := a.Position[0]+a.Size[0] >= b.Position[0] &&
		b.Position[0]+b.Size[0] >= a.Position[0]
	collisionY := a.Position[1]+a.Size[1] >= b.Position[1] &&
		b.Position[1]+b.Size[1] >= a.Position[1]
	return collisionX && collisionY
}

// CheckCircleAABB tests the ball against a box. A circle touching the box
// exactly at its radius collides; a zero-radius circle never does.
func CheckCircleAABB(ball *Ball, box *Object, mode ClampMode) Collision {
	if ball.Radius <= 0 {
		return Collision{}
	}

	center := ball.Center()
	half := box.Size.Mul(0.5)
	boxCenter := box.Position.Add(half)

	diff := center.Sub(boxCenter)
	clamped := mgl32.Vec2{
		clampAxis(diff[0], half[0], mode),
		clampAxis(diff[1], half[1], mode),
	}
	closest := boxCenter.Add(clamped)

	diff = closest.Sub(center)
	if diff.Len() <= ball.Radius {
		return Collision{Hit: true, Dir: VectorDirection(diff), Diff: diff}
	}
	return Collision{}
}

func clampAxis(v, half float32, mode ClampMode) float32 {
	if mode == ClampTruncate {
		iv, ih := int(v), int(half)
		return float32(max(-ih, min(ih, iv)))
	}
	return mgl32.Clamp(v, -half, half)
}

// ResolveCollision reflects the ball off the collided side and pushes it
// out of the box by the penetration depth along that axis.
func ResolveCollision(ball *Ball, c Collision) {
	switch c.Dir {
	case Left, Right:
		ball.Velocity[0] = -ball.Velocity[0]
		penetration := ball.Radius - mgl32.Abs(c.Diff[0])
		if c.Dir == Left {
			ball.Position[0] += penetration
		} else {
			ball.Position[0] -= penetration
		}
	default:
		ball.Velocity[1] = -ball.Velocity[1]
		penetration := ball.Radius - mgl32.Abs(c.Diff[1])
		if c.Dir == Up {
			ball.Position[1] -= penetration
		} else {
			ball.Position[1] += penetration
		}
	}
}
