// Package resources holds the textures and shaders the game draws with.
// Every frontend reads from the same Manager; the simulation only carries
// *Texture handles and never touches pixels.
package resources

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Texture is a named RGBA image.
type Texture struct {
	Name  string
	Image *image.RGBA
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.Image.Bounds().Dx() }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.Image.Bounds().Dy() }

// Shader is named shader source. Only the desktop frontend compiles it.
type Shader struct {
	Name   string
	Source []byte
}

// LoadError reports a resource that could not be loaded or found.
// It is fatal at startup.
type LoadError struct {
	Kind string // "texture" or "shader"
	Name string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("resources: cannot load %s %q from %s: %v", e.Kind, e.Name, e.Path, e.Err)
	}
	return fmt.Sprintf("resources: %s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ErrNotLoaded is wrapped by lookups of names that were never loaded.
var ErrNotLoaded = errors.New("not loaded")

// Manager stores textures and shaders by name.
type Manager struct {
	textures map[string]*Texture
	shaders  map[string]*Shader
	logger   *log.Logger
}

// NewManager creates an empty manager. A nil logger disables logging.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		textures: make(map[string]*Texture),
		shaders:  make(map[string]*Shader),
		logger:   logger,
	}
}

// NewDefaultManager creates a manager with every built-in texture and shader,
// then applies overrides from dir when it is not empty.
func NewDefaultManager(dir string, logger *log.Logger) (*Manager, error) {
	m := NewManager(logger)
	m.LoadBuiltins()
	if dir != "" {
		if err := m.LoadDir(dir); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// LoadBuiltins registers the generated textures and the embedded shaders.
func (m *Manager) LoadBuiltins() {
	for name, img := range builtinTextures() {
		m.textures[name] = &Texture{Name: name, Image: img}
	}
	for name, src := range builtinShaders() {
		m.shaders[name] = &Shader{Name: name, Source: src}
	}
	m.logger.Debug("loaded builtin resources", "textures", len(m.textures), "shaders", len(m.shaders))
}

// LoadTexture decodes a PNG file and stores it under name.
func (m *Manager) LoadTexture(path, name string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: "texture", Name: name, Path: path, Err: err}
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, &LoadError{Kind: "texture", Name: name, Path: path, Err: err}
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	tex := &Texture{Name: name, Image: rgba}
	m.textures[name] = tex
	m.logger.Debug("loaded texture", "name", name, "path", path, "w", tex.Width(), "h", tex.Height())
	return tex, nil
}

// LoadShader reads shader source from a file and stores it under name.
func (m *Manager) LoadShader(path, name string) (*Shader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Kind: "shader", Name: name, Path: path, Err: err}
	}
	sh := &Shader{Name: name, Source: src}
	m.shaders[name] = sh
	m.logger.Debug("loaded shader", "name", name, "path", path)
	return sh, nil
}

// LoadDir applies overrides from an asset directory laid out as
// textures/<name>.png and shaders/<name>.kage. Both subdirectories are optional,
// but the directory itself must exist.
func (m *Manager) LoadDir(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return &LoadError{Kind: "directory", Name: filepath.Base(dir), Path: dir, Err: err}
	}

	load := func(sub, ext string, fn func(path, name string) error) error {
		root := filepath.Join(dir, sub)
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if errors.Is(err, fs.ErrNotExist) && path == root {
				return filepath.SkipDir
			}
			if err != nil {
				return err
			}
			if d.IsDir() || strings.ToLower(filepath.Ext(path)) != ext {
				return nil
			}
			return fn(path, strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())))
		})
	}

	if err := load("textures", ".png", func(path, name string) error {
		_, err := m.LoadTexture(path, name)
		return err
	}); err != nil {
		return err
	}
	return load("shaders", ".kage", func(path, name string) error {
		_, err := m.LoadShader(path, name)
		return err
	})
}

// Texture returns the texture stored under name.
func (m *Manager) Texture(name string) (*Texture, error) {
	if tex, ok := m.textures[name]; ok {
		return tex, nil
	}
	return nil, &LoadError{Kind: "texture", Name: name, Err: ErrNotLoaded}
}

// Shader returns the shader stored under name.
func (m *Manager) Shader(name string) (*Shader, error) {
	if sh, ok := m.shaders[name]; ok {
		return sh, nil
	}
	return nil, &LoadError{Kind: "shader", Name: name, Err: ErrNotLoaded}
}

// TextureNames lists the stored texture names, sorted.
func (m *Manager) TextureNames() []string {
	names := make([]string, 0, len(m.textures))
	for name := range m.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
