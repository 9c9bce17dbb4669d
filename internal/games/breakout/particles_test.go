package breakout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestParticlePoolIsFixed(t *testing.T) {
	pg := NewParticleGenerator(5, 10, 1, 2.5, neverSpawn, nil)
	obj := NewObject(mgl32.Vec2{100, 100}, mgl32.Vec2{25, 25}, mgl32.Vec2{100, -350}, white, nil)

	for i := 0; i < 20; i++ {
		pg.Update(0.1, &obj, 2, mgl32.Vec2{})
		if len(pg.particles) != 5 {
			t.Fatalf("pool size = %d after %d updates, expected 5", len(pg.particles), i+1)
		}
		if pg.Alive() > 5 {
			t.Fatalf("Alive() = %d, exceeds pool", pg.Alive())
		}
	}

	pg.Update(2, &obj, 0, mgl32.Vec2{})
	if pg.Alive() != 0 {
		t.Errorf("Alive() = %d after outliving life, expected 0", pg.Alive())
	}
}

func TestParticleRespawnAndFade(t *testing.T) {
	// 50 gives zero jitter and full brightness.
	pg := NewParticleGenerator(3, 10, 1, 2.5, fixedRoller(50), nil)
	obj := NewObject(mgl32.Vec2{100, 100}, mgl32.Vec2{25, 25}, mgl32.Vec2{100, -350}, white, nil)
	offset := mgl32.Vec2{6.25, 6.25}

	pg.Update(0.1, &obj, 1, offset)

	sprites := pg.AppendSprites(nil)
	if len(sprites) != 1 {
		t.Fatalf("AppendSprites() returned %d sprites, expected 1", len(sprites))
	}
	s := sprites[0]

	// Spawned at obj+offset, then moved against a tenth of the velocity.
	want := mgl32.Vec2{106.25 - 1, 106.25 + 3.5}
	if !s.Position.ApproxEqualThreshold(want, 1e-3) {
		t.Errorf("Position = %v, expected %v", s.Position, want)
	}
	if mgl32.Abs(s.Alpha-0.75) > 1e-4 {
		t.Errorf("Alpha = %v, expected 0.75", s.Alpha)
	}
	if !s.Additive {
		t.Error("particle sprites should be additive")
	}
	if s.Size != (mgl32.Vec2{10, 10}) {
		t.Errorf("Size = %v, expected (10, 10)", s.Size)
	}
}

func TestParticleRecyclesOldestWhenFull(t *testing.T) {
	pg := NewParticleGenerator(2, 10, 1, 2.5, fixedRoller(50), nil)
	obj := NewObject(mgl32.Vec2{}, mgl32.Vec2{10, 10}, mgl32.Vec2{}, white, nil)

	pg.Update(0, &obj, 2, mgl32.Vec2{})
	obj.Position = mgl32.Vec2{50, 50}
	pg.Update(0, &obj, 1, mgl32.Vec2{})

	if pg.particles[0].Position != (mgl32.Vec2{50, 50}) {
		t.Errorf("slot 0 = %v, expected it to be overwritten", pg.particles[0].Position)
	}
	if pg.particles[1].Position != (mgl32.Vec2{}) {
		t.Errorf("slot 1 = %v, expected it untouched", pg.particles[1].Position)
	}
}

func TestParticleReset(t *testing.T) {
	pg := NewParticleGenerator(4, 10, 1, 2.5, neverSpawn, nil)
	obj := NewObject(mgl32.Vec2{}, mgl32.Vec2{10, 10}, mgl32.Vec2{}, white, nil)
	pg.Update(0.1, &obj, 3, mgl32.Vec2{})

	pg.Reset()
	if pg.Alive() != 0 || len(pg.particles) != 4 {
		t.Errorf("after Reset() Alive = %d pool = %d, expected 0 and 4", pg.Alive(), len(pg.particles))
	}
}
