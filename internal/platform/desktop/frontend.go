package desktop

import "github.com/vovakirdan/tui-breakout/internal/registry"

// FrontendID is the registry ID of the desktop frontend.
const FrontendID = "desktop"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return frontend{} })
}

type frontend struct{}

func (frontend) ID() string    { return FrontendID }
func (frontend) Title() string { return "Desktop window (Ebitengine)" }

func (frontend) Run(s registry.Session) error { return Run(s) }
