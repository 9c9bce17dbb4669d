// Package formats provides pluggable level file format parsers.
// Every format produces the same rectangular grid of brick codes:
// 0 is empty, 1 is solid, 2..5 are destructible colors.
package formats

import (
	"errors"
	"fmt"
	"strings"
)

// Level is a parsed level ready for use.
type Level struct {
	ID   string
	Name string
	Grid [][]int
}

var (
	// ErrMalformed is wrapped by every parse failure.
	ErrMalformed = errors.New("malformed level")
	// ErrEmpty means the file contained no rows.
	ErrEmpty = errors.New("empty level")
)

// Parse dispatches on the file extension (with leading dot, any case).
func Parse(data []byte, ext string) (Level, error) {
	switch strings.ToLower(ext) {
	case ".lvl", ".txt":
		return ParseGrid(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	}
	return Level{}, fmt.Errorf("unsupported level format %q", ext)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".lvl", ".txt", ".yaml", ".yml", ".toml"}
}

// IsSupported reports whether ext is a known level extension.
func IsSupported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range FormatExtensions() {
		if e == ext {
			return true
		}
	}
	return false
}

// validate checks the grid is non-empty, rectangular and has no negative codes.
func validate(grid [][]int) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return ErrEmpty
	}
	width := len(grid[0])
	for y, row := range grid {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformed, y+1, len(row), width)
		}
		for x, code := range row {
			if code < 0 {
				return fmt.Errorf("%w: negative brick code %d at row %d column %d", ErrMalformed, code, y+1, x+1)
			}
		}
	}
	return nil
}
