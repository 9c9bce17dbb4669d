package resources

import (
	"embed"
	"image"
	"image/color"
	"math"
	"path"
	"strings"
)

// Texture names the game looks up.
const (
	TextureBackground = "background"
	TextureBall       = "face"
	TexturePaddle     = "paddle"
	TextureBlock      = "block"
	TextureBlockSolid = "block_solid"
	TextureParticle   = "particle"
)

// ShaderPostProcess is the full-screen effect shader.
const ShaderPostProcess = "postprocessing"

//go:embed shaders/*.kage
var shaderFS embed.FS

// PowerUpTextures are the names of the six power-up sprites, indexed in
// sticky, speed, pass-through, increase, confuse, chaos order.
var PowerUpTextures = [...]string{
	"powerup_sticky",
	"powerup_speed",
	"powerup_passthrough",
	"powerup_increase",
	"powerup_confuse",
	"powerup_chaos",
}

// builtinTextures draws every default texture. Sprites are mostly white so
// that the per-sprite tint carries the color.
func builtinTextures() map[string]*image.RGBA {
	textures := map[string]*image.RGBA{
		TextureBackground: background(200, 150),
		TextureBall:       disc(32, 0.15),
		TexturePaddle:     bevel(128, 24, 4, 0.75),
		TextureBlock:      bevel(64, 32, 4, 0.7),
		TextureBlockSolid: hatched(64, 32),
		TextureParticle:   disc(16, 1),
	}
	for i, name := range PowerUpTextures {
		textures[name] = pips(120, 40, i+1)
	}
	return textures
}

func builtinShaders() map[string][]byte {
	shaders := make(map[string][]byte)
	entries, err := shaderFS.ReadDir("shaders")
	if err != nil {
		return shaders
	}
	for _, e := range entries {
		data, err := shaderFS.ReadFile(path.Join("shaders", e.Name()))
		if err != nil {
			continue
		}
		shaders[strings.TrimSuffix(e.Name(), path.Ext(e.Name()))] = data
	}
	return shaders
}

func gray(v float64, a uint8) color.RGBA {
	c := uint8(math.Round(math.Max(0, math.Min(1, v)) * float64(a)))
	return color.RGBA{R: c, G: c, B: c, A: a}
}

// background is a dark vertical gradient with a faint grid.
func background(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := 0.08 + 0.14*float64(y)/float64(h)
		for x := 0; x < w; x++ {
			c := color.RGBA{R: uint8(v * 120), G: uint8(v * 160), B: uint8(v * 255), A: 255}
			if x%20 == 0 || y%20 == 0 {
				c.B += 12
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// disc is a white circle; edge controls how soft the rim is (1 = fully radial falloff).
func disc(size int, edge float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r) / r
			if d > 1 {
				continue
			}
			a := 1.0
			if d > 1-edge {
				a = (1 - d) / edge
			}
			img.SetRGBA(x, y, gray(1-0.25*d*d, uint8(a*255)))
		}
	}
	return img
}

// bevel is a white box with a darker border and lighter top edge.
func bevel(w, h, border int, rim float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := 1.0
			switch {
			case y < border:
				v = 1
			case x < border || x >= w-border || y >= h-border:
				v = rim
			default:
				v = 0.9
			}
			img.SetRGBA(x, y, gray(v, 255))
		}
	}
	return img
}

// hatched is a bevelled box with diagonal stripes, marking indestructible bricks.
func hatched(w, h int) *image.RGBA {
	img := bevel(w, h, 4, 0.55)
	for y := 4; y < h-4; y++ {
		for x := 4; x < w-4; x++ {
			if (x+y)%8 < 3 {
				img.SetRGBA(x, y, gray(0.6, 255))
			}
		}
	}
	return img
}

// pips is a rounded capsule with n dots, one pattern per power-up kind.
func pips(w, h, n int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r := float64(h) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			cx := math.Max(r, math.Min(float64(w)-r, fx))
			if math.Hypot(fx-cx, fy-r) > r {
				continue
			}
			img.SetRGBA(x, y, gray(1, 255))
		}
	}
	spacing := float64(w) / float64(n+1)
	for i := 1; i <= n; i++ {
		cx := spacing * float64(i)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-r) <= r/3 {
					img.SetRGBA(x, y, gray(0.35, 255))
				}
			}
		}
	}
	return img
}
