package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ParseGrid parses the plain text format: one row per line, brick codes
// separated by whitespace. Blank lines are skipped. Lines starting with '#'
// are comments, and "# name: ..." sets the level name.
func ParseGrid(data []byte) (Level, error) {
	var level Level

	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			if key, value, ok := strings.Cut(strings.TrimSpace(text[1:]), ":"); ok {
				switch strings.TrimSpace(key) {
				case "name":
					level.Name = strings.TrimSpace(value)
				case "id":
					level.ID = strings.TrimSpace(value)
				}
			}
			continue
		}

		row, err := parseRow(text)
		if err != nil {
			return Level{}, fmt.Errorf("line %d: %w", line, err)
		}
		level.Grid = append(level.Grid, row)
	}
	if err := sc.Err(); err != nil {
		return Level{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := validate(level.Grid); err != nil {
		return Level{}, err
	}
	return level, nil
}

func parseRow(text string) ([]int, error) {
	fields := strings.Fields(text)
	row := make([]int, len(fields))
	for i, f := range fields {
		code, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: bad brick code %q", ErrMalformed, f)
		}
		row[i] = code
	}
	return row, nil
}
