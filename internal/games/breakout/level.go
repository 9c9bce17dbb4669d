package breakout

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/resources"
)

// Brick codes as found in level grids.
const (
	CodeEmpty = 0
	CodeSolid = 1
)

// brickColors maps codes to tints. Unknown codes are white.
var brickColors = map[int]mgl32.Vec3{
	1: {0.8, 0.8, 0.7},
	2: {0.2, 0.6, 1.0},
	3: {0.0, 0.7, 0.0},
	4: {0.8, 0.8, 0.4},
	5: {1.0, 0.5, 0.0},
}

// Brick is one tile of a level.
type Brick struct {
	Object
	Code int
}

// Level is the brick set of the level being played.
type Level struct {
	Name   string
	Bricks []Brick
}

// NewLevel lays out a grid of brick codes over a width x height area.
// Every cell has the same size; code 0 leaves a gap.
func NewLevel(name string, grid [][]int, width, height float32, res *resources.Manager) (*Level, error) {
	level := &Level{Name: name}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return level, nil
	}

	solidTex, err := res.Texture(resources.TextureBlockSolid)
	if err != nil {
		return nil, fmt.Errorf("breakout: level %q: %w", name, err)
	}
	blockTex, err := res.Texture(resources.TextureBlock)
	if err != nil {
		return nil, fmt.Errorf("breakout: level %q: %w", name, err)
	}

	unit := mgl32.Vec2{width / float32(len(grid[0])), height / float32(len(grid))}
	for y, row := range grid {
		for x, code := range row {
			if code == CodeEmpty {
				continue
			}
			color, ok := brickColors[code]
			if !ok {
				color = white
			}
			tex := blockTex
			if code == CodeSolid {
				tex = solidTex
			}

			pos := mgl32.Vec2{unit[0] * float32(x), unit[1] * float32(y)}
			obj := NewObject(pos, unit, mgl32.Vec2{}, color, tex)
			obj.Solid = code == CodeSolid
			level.Bricks = append(level.Bricks, Brick{Object: obj, Code: code})
		}
	}
	return level, nil
}

// IsCompleted reports whether every non-solid brick is destroyed.
func (l *Level) IsCompleted() bool {
	for i := range l.Bricks {
		if !l.Bricks[i].Solid && !l.Bricks[i].Destroyed {
			return false
		}
	}
	return true
}

// Remaining returns the number of destructible bricks still standing.
func (l *Level) Remaining() int {
	n := 0
	for i := range l.Bricks {
		if !l.Bricks[i].Solid && !l.Bricks[i].Destroyed {
			n++
		}
	}
	return n
}

// Destructible returns the number of non-solid bricks in the level.
func (l *Level) Destructible() int {
	n := 0
	for i := range l.Bricks {
		if !l.Bricks[i].Solid {
			n++
		}
	}
	return n
}
