// Package app wires the comment analysis service together: config,
// stores, the regulations.gov client, the generation bridge, handlers
// and the HTTP server.
package app

import (
	"context"
	"fmt"

	"regulens/internal/gateway/config"
	"regulens/internal/gateway/handler"
	"regulens/internal/gateway/server"
	"regulens/internal/llmbridge"
	"regulens/internal/llmclient"
	"regulens/internal/regsgov"
	"regulens/internal/toolkit"
)

type App struct {
	server *server.Server
	closer func()
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Dependencies
	regsClient, err := regsgov.NewClient(cfg.Regs.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize regulations.gov client: %w", err)
	}
	tools := toolkit.New(regsClient)

	gen, err := llmclient.New(ctx, llmclient.Config{
		Provider: cfg.Model.Provider,
		Host:     cfg.Model.Host,
		Port:     cfg.Model.Port,
		Model:    cfg.Model.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generation client: %w", err)
	}
	bridge := llmbridge.New(gen, tools)

	stores, err := initStores(cfg)
	if err != nil {
		return nil, err
	}

	analysisHandler := handler.NewAnalysisHandler(bridge)
	recordHandler := handler.NewRecordHandler(stores.record)
	archiveHandler := handler.NewArchiveHandler(stores.archive)
	watchHandler := handler.NewWatchHandler(tools)

	// Routing & Server
	mux := server.NewMux(analysisHandler, recordHandler, archiveHandler, watchHandler)
	srv := server.New(cfg.Port, mux)

	return &App{
		server: srv,
		closer: func() {
			_ = gen.Close()
			stores.close()
		},
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if a.closer != nil {
		a.closer()
	}
	return err
}
