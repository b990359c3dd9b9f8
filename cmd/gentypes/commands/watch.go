package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/gentypes/am"
	"github.com/teranos/gentypes/errors"
	"github.com/teranos/gentypes/logger"
	"github.com/teranos/gentypes/schema"
	"github.com/teranos/gentypes/typegen"
)

// WatchCmd regenerates whenever schema files change
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate interfaces when schema files change",
	Long: `Generate once, then watch the schema roots and regenerate after every change.

Bursts of writes are coalesced. Regeneration is refused in production.
A schema root that does not exist yet is watched from its nearest existing
parent and picked up once it is created.
Press Ctrl+C to stop.`,
	RunE: runWatch,
}

var watchDebounce = schema.DefaultDebounce

func init() {
	WatchCmd.Flags().DurationVar(&watchDebounce, "debounce", schema.DefaultDebounce, "Quiet period before regenerating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.IsProduction() {
		return errors.NewForbiddenError("watching is disabled in %s", am.EnvProduction)
	}

	gen := newGenerator(cmd.Context(), cfg)
	onChange := regenerateOnChange(gen, cfg.Environment, optionsFromConfig(cfg))
	if err := onChange(); err != nil {
		pterm.Warning.Printfln("Initial generation failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := startSchemaWatcher(cfg, onChange)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	pterm.Info.Printfln("Watching %v (Ctrl+C to stop)", schemaRoots(cfg))
	<-ctx.Done()
	pterm.Info.Println("Stopped watching")
	return nil
}

// startSchemaWatcher watches the configured roots and calls onChange after edits
func startSchemaWatcher(cfg *am.Config, onChange schema.ChangeCallback) (*schema.Watcher, error) {
	watcher, err := schema.NewWatcher(schemaRoots(cfg), watchDebounce, onChange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch schema roots")
	}
	watcher.Start()
	return watcher, nil
}

// regenerateOnChange builds the watcher callback.
// A production refusal is logged and swallowed; generation failures are
// already recorded in stats, so they are reported and returned.
func regenerateOnChange(gen *typegen.Generator, environment string, opts typegen.Options) schema.ChangeCallback {
	return func() error {
		err := gen.Regenerate(environment, opts)
		switch {
		case err == nil:
			pterm.Success.Printfln("Regenerated types in %s", opts.OutputLocation)
			return nil
		case errors.IsForbiddenError(err):
			logger.Infow("Schema change ignored", logger.FieldEnvironment, environment)
			return nil
		default:
			pterm.Error.Printfln("Regeneration failed: %v", err)
			return err
		}
	}
}
