// Package typegen turns content-model schemas into TypeScript interfaces.
//
// A Generator discovers schemas under two roots (content types and
// components), filters them by identifier, builds one interface per model
// plus the fixed built-ins, and writes either one module per model or a
// single consolidated file.
package typegen

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/teranos/gentypes/errors"
	"github.com/teranos/gentypes/filter"
	"github.com/teranos/gentypes/logger"
	"github.com/teranos/gentypes/schema"
	"github.com/teranos/gentypes/typegen/typescript"
	"go.uber.org/zap"
)

// Options configure one generation run
type Options struct {
	// OutputLocation is a file path in single-file mode, a directory otherwise
	OutputLocation string
	SingleFile     bool
	SingleQuote    bool
	// ClearOutput removes OutputLocation before writing
	ClearOutput bool
	Filter      filter.Spec
	ExtendTypes typescript.Extensions
}

// Generator drives discovery, filtering, building and emission
type Generator struct {
	apiDir        string
	componentsDir string
	stats         *Stats
	logger        *zap.SugaredLogger

	// now and newRunID are swapped in tests
	now      func() time.Time
	newRunID func() string

	mu        sync.RWMutex
	listeners []func(Outcome)
}

// NewGenerator creates a generator over the two schema roots.
// stats receives every run's outcome; pass NewStats() when nothing else reads it.
func NewGenerator(apiDir, componentsDir string, stats *Stats) *Generator {
	if stats == nil {
		stats = NewStats()
	}
	return &Generator{
		apiDir:        apiDir,
		componentsDir: componentsDir,
		stats:         stats,
		logger:        logger.ComponentLogger("typegen"),
		now:           time.Now,
		newRunID:      uuid.NewString,
	}
}

// Stats returns the tracker this generator records into
func (g *Generator) Stats() *Stats {
	return g.stats
}

// OnRun registers a listener called with the outcome after every run
func (g *Generator) OnRun(fn func(Outcome)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, fn)
}

// Run generates all interfaces and records the outcome.
// Failures are recorded once and returned.
func (g *Generator) Run(opts Options) error {
	runID := g.newRunID()
	log := logger.ChildLogger(g.logger, logger.FieldRunID, runID)
	start := time.Now()

	err := g.generate(opts, log)
	if err != nil {
		err = errors.Wrap(err, "type generation failed")
		g.stats.RecordError(g.now(), runID, err.Error())
		log.Errorw("Type generation failed",
			logger.FieldError, err,
			logger.FieldDurationMS, time.Since(start).Milliseconds())
	} else {
		g.stats.RecordSuccess(g.now(), runID)
		log.Infow("Type generation complete",
			logger.FieldOutput, opts.OutputLocation,
			logger.FieldSingleFile, opts.SingleFile,
			logger.FieldDurationMS, time.Since(start).Milliseconds())
	}

	g.notify(g.stats.Current())
	return err
}

// Regenerate runs generation unless environment is production.
// A refusal is returned as errors.ErrForbidden and is not recorded.
func (g *Generator) Regenerate(environment string, opts Options) error {
	if environment == "production" {
		return errors.NewForbiddenError("type regeneration is disabled in production")
	}
	return g.Run(opts)
}

func (g *Generator) notify(outcome Outcome) {
	g.mu.RLock()
	listeners := make([]func(Outcome), len(g.listeners))
	copy(listeners, g.listeners)
	g.mu.RUnlock()

	for _, fn := range listeners {
		fn(outcome)
	}
}

// model is one schema ready for emission
type model struct {
	identity schema.Identity
	iface    *typescript.Interface
}

func (g *Generator) generate(opts Options, log *zap.SugaredLogger) error {
	if strings.TrimSpace(opts.OutputLocation) == "" {
		return errors.NewInvalidConfigError("output location is required")
	}

	if opts.ClearOutput {
		if err := os.RemoveAll(opts.OutputLocation); err != nil {
			return errors.Wrapf(err, "failed to clear %s", opts.OutputLocation)
		}
		log.Debugw("Cleared previous output", logger.FieldOutput, opts.OutputLocation)
	}

	components, err := g.buildModels(g.componentsDir, true, opts.Filter, false)
	if err != nil {
		return err
	}
	contentTypes, err := g.buildModels(g.apiDir, false, opts.Filter, false)
	if err != nil {
		return err
	}

	models := append(components, contentTypes...)
	builtins := typescript.Builtins(opts.ExtendTypes)
	quote := typescript.QuoteFor(opts.SingleQuote)

	if opts.SingleFile {
		return g.writeSingleFile(opts.OutputLocation, models, builtins, quote, log)
	}
	return g.writeModules(opts.OutputLocation, models, builtins, quote, log)
}

// buildModels loads, filters and builds every schema under root.
// listing selects the aggregate model name used by the interface-string map.
func (g *Generator) buildModels(root string, isComponent bool, spec filter.Spec, listing bool) ([]model, error) {
	files, err := schema.LoadAll(root, isComponent)
	if err != nil {
		return nil, err
	}

	var models []model
	for _, file := range files {
		id := file.Identity()
		if !spec.Allows(id.ID) {
			g.logger.Debugw("Model filtered out", logger.FieldModel, id.ID)
			continue
		}

		name := id.ModelName
		if listing {
			name = id.ListingName
		}
		models = append(models, model{identity: id, iface: typescript.Build(name, file, spec)})
	}
	return models, nil
}

// writeSingleFile concatenates every interface into one file.
// The import block only names types that are neither declared here nor built-in.
func (g *Generator) writeSingleFile(path string, models []model, builtins []typescript.Builtin, quote string, log *zap.SugaredLogger) error {
	var body strings.Builder
	declared := make(map[string]bool)
	imports := typescript.NewImportSet()

	for _, m := range models {
		body.WriteString("\n")
		body.WriteString(m.iface.Body)
		declared[m.iface.Name] = true
		imports.Add(m.iface.Imports...)
	}
	for _, b := range builtins {
		body.WriteString("\n")
		body.WriteString(b.Body)
	}

	var lines []string
	for _, name := range imports.Unresolved(declared) {
		lines = append(lines, typescript.ImportLine(name, quote))
	}

	content := body.String()
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n\n" + content
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}
	if err := writeFile(path, content); err != nil {
		return err
	}

	log.Infow("Generated consolidated interfaces",
		logger.FieldFile, path,
		logger.FieldCount, len(models)+len(builtins))
	return nil
}

// writeModules writes one module per model plus the built-in modules
func (g *Generator) writeModules(dir string, models []model, builtins []typescript.Builtin, quote string, log *zap.SugaredLogger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", dir)
	}

	for _, m := range models {
		path := filepath.Join(dir, m.identity.FileName)
		if err := writeFile(path, typescript.RenderModelFile(m.iface, quote)); err != nil {
			return err
		}
		log.Debugw("Generated interface",
			logger.FieldModel, m.identity.ModelName,
			logger.FieldFile, path)
	}

	for _, b := range builtins {
		if err := writeFile(filepath.Join(dir, b.FileName), typescript.RenderBuiltinFile(b, quote)); err != nil {
			return err
		}
	}

	log.Infow("Generated interface modules",
		logger.FieldOutput, dir,
		logger.FieldCount, len(models)+len(builtins))
	return nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
