package resources

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltins(t *testing.T) {
	m, err := NewDefaultManager("", nil)
	if err != nil {
		t.Fatalf("NewDefaultManager() error = %v", err)
	}

	names := []string{TextureBackground, TextureBall, TexturePaddle, TextureBlock, TextureBlockSolid, TextureParticle}
	names = append(names, PowerUpTextures[:]...)
	for _, name := range names {
		tex, err := m.Texture(name)
		if err != nil {
			t.Errorf("Texture(%q) error = %v", name, err)
			continue
		}
		if tex.Width() == 0 || tex.Height() == 0 {
			t.Errorf("Texture(%q) is empty", name)
		}
	}

	sh, err := m.Shader(ShaderPostProcess)
	if err != nil {
		t.Fatalf("Shader(%q) error = %v", ShaderPostProcess, err)
	}
	if len(sh.Source) == 0 {
		t.Error("post-processing shader source is empty")
	}
}

func TestMissingLookup(t *testing.T) {
	m := NewManager(nil)

	_, err := m.Texture("nope")
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Texture(missing) error = %v, expected *LoadError", err)
	}
	if le.Kind != "texture" || le.Name != "nope" || !errors.Is(err, ErrNotLoaded) {
		t.Errorf("LoadError = %+v, expected texture nope not loaded", le)
	}

	if _, err := m.Shader("nope"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Shader(missing) error = %v, expected ErrNotLoaded", err)
	}
}

func TestLoadDirOverrides(t *testing.T) {
	dir := t.TempDir()
	texDir := filepath.Join(dir, "textures")
	if err := os.MkdirAll(texDir, 0o755); err != nil {
		t.Fatal(err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	f, err := os.Create(filepath.Join(texDir, "block.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()
	os.WriteFile(filepath.Join(texDir, "notes.txt"), []byte("ignored"), 0o600)

	m, err := NewDefaultManager(dir, nil)
	if err != nil {
		t.Fatalf("NewDefaultManager() error = %v", err)
	}

	tex, err := m.Texture(TextureBlock)
	if err != nil {
		t.Fatalf("Texture(block) error = %v", err)
	}
	if tex.Width() != 3 || tex.Height() != 2 {
		t.Errorf("override size = %dx%d, expected 3x2", tex.Width(), tex.Height())
	}
	if r, _, _, _ := tex.Image.At(0, 0).RGBA(); r>>8 != 255 {
		t.Errorf("override pixel red = %d, expected 255", r>>8)
	}
	if _, err := m.Texture("notes"); err == nil {
		t.Error("non-png files should be ignored")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := NewDefaultManager(filepath.Join(dir, "missing"), nil); err == nil {
		t.Error("NewDefaultManager(missing dir) error = nil, expected error")
	}

	bad := filepath.Join(dir, "bad.png")
	os.WriteFile(bad, []byte("not a png"), 0o600)

	m := NewManager(nil)
	_, err := m.LoadTexture(bad, "bad")
	var le *LoadError
	if !errors.As(err, &le) || le.Path != bad {
		t.Errorf("LoadTexture(bad) error = %v, expected *LoadError with path", err)
	}

	if _, err := m.LoadShader(filepath.Join(dir, "none.kage"), "none"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadShader(missing) error = %v, expected ErrNotExist", err)
	}
}

func TestTextureNames(t *testing.T) {
	m, _ := NewDefaultManager("", nil)
	names := m.TextureNames()
	if len(names) != len(builtinTextures()) {
		t.Fatalf("TextureNames() = %d entries, expected %d", len(names), len(builtinTextures()))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("TextureNames() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
