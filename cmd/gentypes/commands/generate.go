package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/gentypes/am"
	"github.com/teranos/gentypes/logger"
	"github.com/teranos/gentypes/typegen"
)

// GenerateCmd runs one generation from configuration
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate TypeScript interfaces from schemas",
	Long: `Generate TypeScript interfaces for every content type and component.

Generation only runs in the development environment (GEN_TYPES_ENV or NODE_ENV).
Flags override the resolved configuration for this run only.

Examples:
  gentypes generate                                  # One module per interface
  gentypes generate --single-file --output types.ts  # One consolidated file
  gentypes generate --include 'api::vehicle.*'       # Scope to matching models`,
	RunE: runGenerate,
}

// generateFlags override configuration for a single run
type generateFlags struct {
	output     string
	singleFile bool
	clear      bool
	include    []string
	exclude    []string
}

var genFlags generateFlags

func init() {
	GenerateCmd.Flags().StringVarP(&genFlags.output, "output", "o", "", "Output directory, or file path with --single-file")
	GenerateCmd.Flags().BoolVar(&genFlags.singleFile, "single-file", false, "Write one consolidated file")
	GenerateCmd.Flags().BoolVar(&genFlags.clear, "clear", false, "Remove previous output before writing")
	GenerateCmd.Flags().StringSliceVar(&genFlags.include, "include", nil, "Include glob patterns (e.g. 'api::vehicle.*')")
	GenerateCmd.Flags().StringSliceVar(&genFlags.exclude, "exclude", nil, "Exclude glob patterns (e.g. 'component::fleet.*')")
}

// apply copies every flag the user set onto cfg
func (f generateFlags) apply(changed func(name string) bool, cfg am.Config) am.Config {
	if changed("output") {
		cfg.Output.Location = f.output
	}
	if changed("single-file") {
		cfg.Output.SingleFile = f.singleFile
	}
	if changed("clear") {
		cfg.Output.Clear = f.clear
	}
	if changed("include") {
		cfg.Filter.Include = f.include
	}
	if changed("exclude") {
		cfg.Filter.Exclude = f.exclude
	}
	return cfg
}

func runGenerate(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig()
	if err != nil {
		return err
	}
	cfg := genFlags.apply(cmd.Flags().Changed, *loaded)
	if err := cfg.Validate(); err != nil {
		return err
	}

	gen := newGenerator(cmd.Context(), &cfg)
	ran, err := generateOnce(&cfg, gen)
	if err != nil {
		pterm.Error.Println("Type generation failed")
		return err
	}
	if !ran {
		pterm.Info.Printfln("Skipped: generation only runs in %s (current: %s)", am.EnvDevelopment, cfg.Environment)
		return nil
	}

	outcome := gen.Stats().Current()
	pterm.Success.Printfln("Types written to %s", cfg.Output.Location)
	logger.Debugw("Generation finished", logger.FieldRunID, outcome.RunID)
	return nil
}

// generateOnce runs generation when cfg is a development environment.
// It reports whether a run happened.
func generateOnce(cfg *am.Config, gen *typegen.Generator) (bool, error) {
	if !cfg.IsDevelopment() {
		logger.Infow("Skipping type generation outside development",
			logger.FieldEnvironment, cfg.Environment)
		return false, nil
	}
	if err := gen.Run(optionsFromConfig(cfg)); err != nil {
		return true, err
	}
	return true, nil
}
