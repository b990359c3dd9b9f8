package commands

import (
	"context"

	"github.com/teranos/gentypes/am"
	"github.com/teranos/gentypes/errors"
	"github.com/teranos/gentypes/filter"
	"github.com/teranos/gentypes/server"
	"github.com/teranos/gentypes/typegen"
	"github.com/teranos/gentypes/typegen/typescript"
)

type statsKey struct{}

// WithStats attaches the run tracker shared by the generators a command builds
func WithStats(ctx context.Context, s *typegen.Stats) context.Context {
	return context.WithValue(ctx, statsKey{}, s)
}

// statsFrom returns the tracker attached by WithStats, or a fresh one
func statsFrom(ctx context.Context) *typegen.Stats {
	if ctx != nil {
		if s, ok := ctx.Value(statsKey{}).(*typegen.Stats); ok && s != nil {
			return s
		}
	}
	return typegen.NewStats()
}

// loadConfig resolves and validates configuration.
// Invalid configuration stops the command before anything is generated.
func loadConfig() (*am.Config, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// optionsFromConfig maps resolved configuration onto generation options
func optionsFromConfig(cfg *am.Config) typegen.Options {
	return typegen.Options{
		OutputLocation: cfg.Output.Location,
		SingleFile:     cfg.Output.SingleFile,
		SingleQuote:    cfg.Output.SingleQuote,
		ClearOutput:    cfg.Output.Clear,
		Filter: filter.Spec{
			Include: cfg.Filter.Include,
			Exclude: cfg.Filter.Exclude,
		},
		ExtendTypes: typescript.Extensions{
			User:        cfg.ExtendTypes.User,
			Role:        cfg.ExtendTypes.Role,
			Media:       cfg.ExtendTypes.Media,
			MediaFormat: cfg.ExtendTypes.MediaFormat,
			FindOne:     cfg.ExtendTypes.FindOne,
			FindMany:    cfg.ExtendTypes.FindMany,
		},
	}
}

// newGenerator builds a generator over the configured schema roots
func newGenerator(ctx context.Context, cfg *am.Config) *typegen.Generator {
	return typegen.NewGenerator(cfg.Schema.APIDir, cfg.Schema.ComponentsDir, statsFrom(ctx))
}

// serverConfig maps resolved configuration onto the control surface config
func serverConfig(cfg *am.Config) server.Config {
	return server.Config{
		Environment:    cfg.Environment,
		Options:        optionsFromConfig(cfg),
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}
}

// schemaRoots lists the configured roots that should be watched
func schemaRoots(cfg *am.Config) []string {
	var roots []string
	for _, root := range []string{cfg.Schema.APIDir, cfg.Schema.ComponentsDir} {
		if root != "" {
			roots = append(roots, root)
		}
	}
	return roots
}
