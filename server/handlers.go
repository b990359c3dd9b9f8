package server

import (
	"net/http"
	"time"

	"github.com/teranos/gentypes/logger"
	"github.com/teranos/gentypes/typegen"
	"github.com/teranos/gentypes/typegen/typescript"
	"github.com/teranos/gentypes/version"
)

// Snapshot is the stats payload served to dashboards
type Snapshot struct {
	typegen.Outcome
	TotalTypes       int    `json:"totalTypes"`
	APITypes         int    `json:"apiTypes"`
	ComponentTypes   int    `json:"componentTypes"`
	OutputLocation   string `json:"outputLocation"`
	SingleFile       bool   `json:"singleFile"`
	HasFilters       bool   `json:"hasFilters"`
	HasExtendedTypes bool   `json:"hasExtendedTypes"`
	IsProduction     bool   `json:"isProduction"`
}

// snapshot combines the last outcome with current model counts.
// Counts come from discovery at read time, so they reflect schemas added since the last run.
func (s *Server) snapshot() Snapshot {
	opts := s.cfg.Options
	snap := Snapshot{
		Outcome:          s.gen.Stats().Current(),
		OutputLocation:   opts.OutputLocation,
		SingleFile:       opts.SingleFile,
		HasFilters:       !opts.Filter.IsEmpty(),
		HasExtendedTypes: opts.ExtendTypes != (typescript.Extensions{}),
		IsProduction:     s.isProduction(),
	}

	counts, err := s.gen.Count(opts.Filter)
	if err != nil {
		s.logger.Warnw("Failed to count models", logger.FieldError, err)
	}
	snap.TotalTypes = counts.Total
	snap.APITypes = counts.API
	snap.ComponentTypes = counts.Component
	return snap
}

func (s *Server) isProduction() bool {
	return s.cfg.Environment == "production"
}

// HandleTypes serves the interface-string map (GET /api/types)
func (s *Server) HandleTypes(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	interfaces, err := s.gen.InterfaceStrings(s.cfg.Options.Filter)
	if err != nil {
		s.logger.Errorw("Failed to build interface strings", logger.FieldError, err)
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, interfaces)
}

// HandleStats serves the last run outcome (GET /api/types/stats)
func (s *Server) HandleStats(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, s.snapshot())
}

// HandleRegenerate runs generation with the current configuration (POST /api/types/regenerate)
func (s *Server) HandleRegenerate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	start := time.Now()
	if err := s.gen.Regenerate(s.cfg.Environment, s.cfg.Options); err != nil {
		status := statusForError(err)
		if status == http.StatusForbidden {
			s.logger.Infow("Regeneration refused",
				logger.FieldEnvironment, s.cfg.Environment)
		}
		writeError(w, status, err.Error())
		return
	}

	s.logger.Infow("Regenerated types on request",
		logger.FieldPath, r.URL.Path,
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	writeJSON(w, http.StatusOK, s.snapshot())
}

// HandleHealth reports liveness and build info (GET /health)
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	info := version.Get()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": info.Version,
		"commit":  info.CommitHash,
		"clients": s.hub.count(),
	})
}
