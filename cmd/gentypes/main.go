package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/gentypes/am"
	"github.com/teranos/gentypes/cmd/gentypes/commands"
	"github.com/teranos/gentypes/errors"
	"github.com/teranos/gentypes/logger"
	"github.com/teranos/gentypes/typegen"
)

var rootCmd = &cobra.Command{
	Use:   "gentypes",
	Short: "gentypes - TypeScript interfaces from content-model schemas",
	Long: `gentypes - TypeScript interfaces from content-model schemas.

Reads content-type schemas (src/api/*/content-types/*/schema.json) and component
schemas (src/components/<category>/<name>.json) and writes TypeScript interfaces
for them, plus fixed interfaces for media, users, roles and API response envelopes.

Available commands:
  generate - Generate interfaces once
  serve    - Start the control surface (stats, listing, regenerate, websocket)
  watch    - Regenerate whenever schema files change
  check    - Exit non-zero when generated output is stale
  am       - Show and validate configuration ("I am")
  version  - Show version information

Examples:
  gentypes generate                        # Generate using gentypes.toml
  gentypes generate --single-file --output web/types/index.ts
  gentypes serve --watch                   # Control surface plus live regeneration
  gentypes check                           # CI freshness gate`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath != "" {
			am.UseConfigFile(configPath)
		}

		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if !jsonLogs {
			// Config errors surface in the command itself
			if cfg, err := am.Load(); err == nil {
				jsonLogs = cfg.Log.JSON
			}
		}

		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: gentypes.toml searched upward from the working directory)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit structured JSON logs")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx := commands.WithStats(context.Background(), typegen.NewStats())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
