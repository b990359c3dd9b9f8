package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/gentypes/errors"
	"github.com/teranos/gentypes/logger"
	"github.com/teranos/gentypes/server"
)

// ServeCmd starts the generation control surface
var ServeCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Start the generation control surface",
	Long: `Serve generation stats, the interface listing and a regenerate trigger over HTTP.

Routes:
  GET  /api/types             interface name -> declaration body
  GET  /api/types/stats       last run outcome plus model counts
  POST /api/types/regenerate  run generation now (refused in production)
  GET  /ws                    stats snapshot pushed after every run
  GET  /health                liveness

In development a generation runs at startup. With --watch, schema edits
trigger regeneration and connected dashboards refresh live.`,
	RunE: runServe,
}

var (
	serveWatch bool
	servePort  int
)

func init() {
	ServeCmd.Flags().BoolVar(&serveWatch, "watch", false, "Regenerate when schema files change")
	ServeCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides server.port)")
}

func runServe(cmd *cobra.Command, args []string) error {
	verbosity, _ := cmd.Flags().GetCount("verbose")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srvCfg := serverConfig(cfg)
	if cmd.Flags().Changed("port") {
		srvCfg.Port = servePort
	}

	gen := newGenerator(cmd.Context(), cfg)
	srv := server.New(gen, srvCfg)

	// Startup generation mirrors the development bootstrap
	if _, err := generateOnce(cfg, gen); err != nil {
		pterm.Warning.Printfln("Startup generation failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveWatch {
		if cfg.IsProduction() {
			pterm.Warning.Println("--watch ignored: regeneration is disabled in production")
		} else {
			watcher, err := startSchemaWatcher(cfg, regenerateOnChange(gen, cfg.Environment, srvCfg.Options))
			if err != nil {
				return err
			}
			defer watcher.Stop()
		}
	}

	printStartupBanner(cfg, verbosity, srvCfg.Port, serveWatch && !cfg.IsProduction())

	if err := srv.ListenAndServe(ctx); err != nil {
		return errors.Wrap(err, "server failed")
	}
	logger.Infow("Server stopped cleanly")
	pterm.Success.Println("Server stopped cleanly")
	return nil
}
