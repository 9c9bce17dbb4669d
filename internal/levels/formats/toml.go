package formats

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLLevel is the TOML structure for a level file.
type TOMLLevel struct {
	ID   string  `toml:"id"`
	Name string  `toml:"name"`
	Grid [][]int `toml:"grid"`
}

// ParseTOML parses a TOML level file. Unknown keys are rejected so that
// typos such as "gird" do not silently produce an empty level.
func ParseTOML(data []byte) (Level, error) {
	var tl TOMLLevel
	meta, err := toml.Decode(string(data), &tl)
	if err != nil {
		return Level{}, fmt.Errorf("%w: toml: %v", ErrMalformed, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Level{}, fmt.Errorf("%w: unknown keys %s", ErrMalformed, strings.Join(keys, ", "))
	}

	if err := validate(tl.Grid); err != nil {
		return Level{}, err
	}
	return Level{ID: tl.ID, Name: tl.Name, Grid: tl.Grid}, nil
}
