package commands

import (
	"fmt"

	"github.com/teranos/gentypes/am"
	"github.com/teranos/gentypes/logger"
	"github.com/teranos/gentypes/version"
)

// printStartupBanner prints the user-friendly startup message
func printStartupBanner(cfg *am.Config, verbosity, port int, watching bool) {
	// ANSI escape codes
	green := "\033[32m"
	yellow := "\033[33m"
	blue := "\033[34m"
	bold := "\033[1m"
	reset := "\033[0m"

	versionInfo := version.Get()

	layout := "one module per interface"
	if cfg.Output.SingleFile {
		layout = "single file"
	}

	fmt.Printf("\n%s%s┌─ gentypes ──────────────────────────────────────────┐%s\n", green, bold, reset)
	fmt.Printf("%s│%s Version:     %s (commit %s)\n", green, reset, versionInfo.Version, versionInfo.Short())
	fmt.Printf("%s│%s Environment: %s\n", green, reset, cfg.Environment)
	fmt.Printf("%s│%s Output:      %s (%s)\n", green, reset, cfg.Output.Location, layout)
	fmt.Printf("%s│%s Schemas:     %s, %s\n", green, reset, cfg.Schema.APIDir, cfg.Schema.ComponentsDir)
	fmt.Printf("%s│%s Verbosity:   %s\n", green, reset, logger.LevelName(verbosity))
	if watching {
		fmt.Printf("%s│%s Watching:    schema changes\n", green, reset)
	}
	fmt.Printf("%s└─────────────────────────────────────────────────────┘%s\n", green, reset)

	fmt.Printf("\n%s%sStats at http://localhost:%d/api/types/stats%s\n", yellow, bold, port, reset)
	fmt.Printf("%sPress Ctrl+C to stop%s\n\n", blue, reset)
}
