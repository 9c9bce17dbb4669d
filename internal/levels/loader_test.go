package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/levels/formats"
)

func TestDefaults(t *testing.T) {
	levels, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults() error = %v", err)
	}
	if len(levels) != 4 {
		t.Fatalf("Defaults() returned %d levels, expected 4", len(levels))
	}

	expected := []struct {
		id, name string
		w, h     int
	}{
		{"01-standard", "Standard", 15, 8},
		{"02-gaps", "A few small gaps", 15, 8},
		{"03-invader", "Space invader", 13, 9},
		{"04-bounce", "Bounce galore", 13, 6},
	}
	for i, e := range expected {
		l := levels[i]
		w, h := l.Size()
		if l.ID != e.id || l.Name != e.name || w != e.w || h != e.h {
			t.Errorf("level %d = %s %q %dx%d, expected %s %q %dx%d", i, l.ID, l.Name, w, h, e.id, e.name, e.w, e.h)
		}
		if _, destructible := l.Count(); destructible == 0 {
			t.Errorf("level %s has no destructible bricks", l.ID)
		}
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "b.lvl"), []byte("2 2\n1 0\n"), 0o600)
	os.MkdirAll(filepath.Join(dir, "nested"), 0o755)
	os.WriteFile(filepath.Join(dir, "nested", "a.toml"), []byte("name = \"First\"\ngrid = [[3]]\n"), 0o600)
	os.WriteFile(filepath.Join(dir, "readme.md"), []byte("ignored"), 0o600)

	loader := NewLoader(dir)
	levels, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("LoadAll() returned %d levels, expected 2", len(levels))
	}
	if levels[0].ID != "a" || levels[0].Name != "First" {
		t.Errorf("levels[0] = %s %q, expected a \"First\"", levels[0].ID, levels[0].Name)
	}
	if levels[1].Name != "b" {
		t.Errorf("levels[1].Name = %q, expected id fallback \"b\"", levels[1].Name)
	}
	if levels[1].FilePath != filepath.ToSlash(filepath.Join(dir, "b.lvl")) && levels[1].FilePath != filepath.Join(dir, "b.lvl") {
		t.Errorf("FilePath = %q", levels[1].FilePath)
	}

	solid, destructible := levels[1].Count()
	if solid != 1 || destructible != 2 {
		t.Errorf("Count() = (%d, %d), expected (1, 2)", solid, destructible)
	}

	if _, err := loader.LoadByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadByID(missing) error = %v, expected ErrNotFound", err)
	}
	if l, err := loader.LoadByID("b"); err != nil || l.ID != "b" {
		t.Errorf("LoadByID(b) = %v, %v", l.ID, err)
	}
}

func TestLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "broken.lvl"), []byte("1 one\n"), 0o600)

	if _, err := NewLoader(dir).LoadAll(); !errors.Is(err, formats.ErrMalformed) {
		t.Errorf("LoadAll(broken) error = %v, expected ErrMalformed", err)
	}

	if _, err := NewLoader(t.TempDir()).LoadAll(); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadAll(empty dir) error = %v, expected ErrNotFound", err)
	}

	if _, err := NewLoader(filepath.Join(dir, "nope")).LoadAll(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadAll(missing dir) error = %v, expected ErrNotExist", err)
	}

	if _, err := NewLoader(dir).LoadFile("absent.lvl"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(absent) error = %v, expected ErrNotExist", err)
	}
}
