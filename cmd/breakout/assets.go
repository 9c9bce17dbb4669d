package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/resources"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List textures and shaders",
	Long: `Shows the textures and the post-processing shader the game will use,
after applying overrides from --assets.

Examples:
  breakout assets
  breakout assets --assets ./my-assets`,
	Args: cobra.NoArgs,
	Run:  runAssets,
}

func runAssets(cmd *cobra.Command, args []string) {
	res, err := resources.NewDefaultManager(flagAssets, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		os.Exit(1)
	}

	names := res.TextureNames()
	maxLen := len("Texture")
	for _, name := range names {
		maxLen = max(maxLen, len(name))
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Texture", "Size")
	fmt.Printf("  %-*s  %s\n", maxLen, "-------", "----")
	for _, name := range names {
		tex, err := res.Texture(name)
		if err != nil {
			continue
		}
		fmt.Printf("  %-*s  %dx%d\n", maxLen, name, tex.Width(), tex.Height())
	}

	fmt.Println()
	if sh, err := res.Shader(resources.ShaderPostProcess); err == nil {
		fmt.Printf("Shader: %s (%d bytes)\n", sh.Name, len(sh.Source))
	}
}
