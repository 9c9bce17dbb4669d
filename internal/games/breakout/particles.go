package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/resources"
)

// Particle is one trail sprite. It is alive while Life > 0.
type Particle struct {
	Position mgl32.Vec2
	Velocity mgl32.Vec2
	Color    mgl32.Vec4
	Life     float32
}

// ParticleGenerator owns a fixed pool of particles that is filled once and
// recycled; it never grows or shrinks after construction.
type ParticleGenerator struct {
	particles []Particle
	lastUsed  int
	size      float32
	life      float32
	fade      float32
	rng       Roller
	texture   *resources.Texture
}

// NewParticleGenerator creates a pool of amount dead particles.
func NewParticleGenerator(amount int, size, life, fade float32, rng Roller, tex *resources.Texture) *ParticleGenerator {
	return &ParticleGenerator{
		particles: make([]Particle, max(amount, 0)),
		size:      size,
		life:      life,
		fade:      fade,
		rng:       rng,
		texture:   tex,
	}
}

// Update respawns newParticles particles at obj (plus offset) and ages the whole pool.
func (pg *ParticleGenerator) Update(dt float32, obj *Object, newParticles int, offset mgl32.Vec2) {
	if len(pg.particles) == 0 {
		return
	}
	for i := 0; i < newParticles; i++ {
		pg.respawn(&pg.particles[pg.firstUnused()], obj, offset)
	}

	for i := range pg.particles {
		p := &pg.particles[i]
		p.Life -= dt
		if p.Life > 0 {
			p.Position = p.Position.Sub(p.Velocity.Mul(dt))
			p.Color[3] -= dt * pg.fade
		}
	}
}

// firstUnused finds a dead particle, searching from the last one handed out
// and then from the start. With none free, slot 0 is overwritten.
func (pg *ParticleGenerator) firstUnused() int {
	for i := pg.lastUsed; i < len(pg.particles); i++ {
		if pg.particles[i].Life <= 0 {
			pg.lastUsed = i
			return i
		}
	}
	for i := 0; i < pg.lastUsed; i++ {
		if pg.particles[i].Life <= 0 {
			pg.lastUsed = i
			return i
		}
	}
	pg.lastUsed = 0
	return 0
}

func (pg *ParticleGenerator) respawn(p *Particle, obj *Object, offset mgl32.Vec2) {
	jitter := float32(pg.rng.Intn(100)-50) / 10
	shade := 0.5 + float32(pg.rng.Intn(100))/100

	p.Position = obj.Position.Add(mgl32.Vec2{jitter, jitter}).Add(offset)
	p.Color = mgl32.Vec4{shade, shade, shade, 1}
	p.Life = pg.life
	p.Velocity = obj.Velocity.Mul(0.1)
}

// Alive returns the number of live particles.
func (pg *ParticleGenerator) Alive() int {
	n := 0
	for i := range pg.particles {
		if pg.particles[i].Life > 0 {
			n++
		}
	}
	return n
}

// Reset kills every particle without reallocating the pool.
func (pg *ParticleGenerator) Reset() {
	for i := range pg.particles {
		pg.particles[i] = Particle{}
	}
	pg.lastUsed = 0
}

// AppendSprites adds a sprite per live particle to dst.
func (pg *ParticleGenerator) AppendSprites(dst []Sprite) []Sprite {
	for i := range pg.particles {
		p := &pg.particles[i]
		if p.Life <= 0 {
			continue
		}
		dst = append(dst, Sprite{
			Texture:  pg.texture,
			Position: p.Position,
			Size:     mgl32.Vec2{pg.size, pg.size},
			Color:    p.Color.Vec3(),
			Alpha:    mgl32.Clamp(p.Color[3], 0, 1),
			Additive: true,
		})
	}
	return dst
}
