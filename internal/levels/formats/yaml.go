package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel is the YAML structure for a level file.
// Either rows (whitespace separated strings) or grid (integer lists) is used.
type YAMLLevel struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows,omitempty"`
	Grid [][]int  `yaml:"grid,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("%w: yaml: %v", ErrMalformed, err)
	}

	grid := yl.Grid
	if len(yl.Rows) > 0 {
		if len(grid) > 0 {
			return Level{}, fmt.Errorf("%w: both rows and grid given", ErrMalformed)
		}
		for i, text := range yl.Rows {
			row, err := parseRow(text)
			if err != nil {
				return Level{}, fmt.Errorf("row %d: %w", i+1, err)
			}
			grid = append(grid, row)
		}
	}

	if err := validate(grid); err != nil {
		return Level{}, err
	}
	return Level{ID: yl.ID, Name: yl.Name, Grid: grid}, nil
}
