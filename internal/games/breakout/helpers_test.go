package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/levels"
	"github.com/vovakirdan/tui-breakout/internal/resources"
)

// fixedRoller always returns the same value, clamped to [0, n).
type fixedRoller int

func (f fixedRoller) Intn(n int) int {
	return min(int(f), n-1)
}

// neverSpawn rolls the highest value so no power-up ever drops.
const neverSpawn = fixedRoller(1 << 30)

// scriptedRoller replays rolls in order, then never spawns.
type scriptedRoller struct {
	rolls []int
	calls int
}

func (s *scriptedRoller) Intn(n int) int {
	s.calls++
	if len(s.rolls) == 0 {
		return n - 1
	}
	v := s.rolls[0]
	s.rolls = s.rolls[1:]
	return v
}

func testResources(t *testing.T) *resources.Manager {
	t.Helper()
	m, err := resources.NewDefaultManager("", nil)
	if err != nil {
		t.Fatalf("NewDefaultManager() error = %v", err)
	}
	return m
}

func testLevels() []levels.Level {
	return []levels.Level{
		{ID: "one", Name: "One", Grid: [][]int{{0, 2, 0}}},
		{ID: "two", Name: "Two", Grid: [][]int{{1, 3, 4, 1}, {5, 0, 0, 2}}},
	}
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithRoller(neverSpawn)}, opts...)
	g, err := New(config.DefaultBreakoutConfig(), testLevels(), testResources(t), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}
