package tui

import "github.com/vovakirdan/tui-breakout/internal/registry"

// FrontendID is the registry ID of the terminal frontend.
const FrontendID = "terminal"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return frontend{} })
}

type frontend struct{}

func (frontend) ID() string    { return FrontendID }
func (frontend) Title() string { return "Terminal (Bubble Tea)" }

func (frontend) Run(s registry.Session) error { return Run(s) }
