package breakout

// Effects are the full-screen post-processing flags.
// Confuse and Chaos are never both set by power-ups.
type Effects struct {
	Shake   bool
	Confuse bool
	Chaos   bool
}
