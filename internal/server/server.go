/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and wires the plan
and image handlers to their collaborators.
*/
package server

import (
	"fmt"
	"net/http"
	"time"

	"FitCoach_V0.1/internal/config"
	"FitCoach_V0.1/internal/imagelookup"
	"FitCoach_V0.1/internal/openrouter"
	"FitCoach_V0.1/internal/plan"
	"FitCoach_V0.1/internal/utility"
)

// Server defines the configuration and dependencies for the HTTP service.
type Server struct {
	cfg *config.Config

	// plans serves plan generation and export.
	plans *plan.Handler

	// images serves image lookup URLs.
	images *imagelookup.Handler

	startTime time.Time
}

// New builds a Server around completer. A nil completer uses the
// configured completion service.
func New(cfg *config.Config, completer plan.Completer) (*Server, error) {
	if completer == nil {
		completer = openrouter.NewClient(cfg, nil)
	}

	var limiter plan.Limiter
	if cfg.PlanRateLimitPerMinute > 0 {
		store, err := utility.NewIPRateLimitStore(cfg.PlanRateLimitPerMinute, utility.DefaultRateLimitEntries)
		if err != nil {
			return nil, fmt.Errorf("failed to create rate limiter: %w", err)
		}
		limiter = store
	}

	return &Server{
		cfg:       cfg,
		plans:     plan.NewHandler(plan.NewGenerator(cfg, completer), limiter),
		images:    imagelookup.NewHandler(cfg.ImageBaseURL),
		startTime: time.Now(),
	}, nil
}

// NewServer returns a configured *http.Server for cfg.
func NewServer(cfg *config.Config) (*http.Server, error) {
	app, err := New(cfg, nil)
	if err != nil {
		return nil, err
	}

	// The write timeout has to outlast the outbound completion call.
	writeTimeout := 30 * time.Second
	if cfg.PlanRequestTimeout > 0 && cfg.PlanRequestTimeout+10*time.Second > writeTimeout {
		writeTimeout = cfg.PlanRequestTimeout + 10*time.Second
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout,
	}

	return server, nil
}
