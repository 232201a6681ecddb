package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/riveting/internal/config"
	"github.com/aretw0/riveting/internal/search"
	"github.com/aretw0/riveting/pkg/feature"
	"github.com/aretw0/riveting/pkg/mainloop"
	"github.com/aretw0/riveting/pkg/observability"
	"github.com/aretw0/riveting/pkg/store"
	"github.com/prometheus/client_golang/prometheus"
)

// App is a running search feature together with everything it owns.
type App struct {
	Config   config.Config
	Logger   *slog.Logger
	Loop     *mainloop.Loop
	Feature  *search.Feature
	Registry *prometheus.Registry

	closeCatalog func() error
}

// NewApp opens the configured catalog and wires the search feature to it.
// Store activity is counted in Registry and, at debug level, logged.
func NewApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	catalog, closeCatalog, err := NewCatalog(ctx, cfg.Catalog)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	hooks := observability.NewMetrics(registry).Hooks()
	if logger.Enabled(ctx, slog.LevelDebug) {
		hooks = hooks.Merge(observability.LogHooks(logger))
	}

	interactor := search.NewInteractor(search.Loading(), catalog,
		search.WithLogger(logger),
		search.WithStoreOptions(store.WithLogger(logger), store.WithLifecycleHooks(hooks)),
	)

	loop := mainloop.New()
	f := search.NewFeature(interactor, cfg.Tag(),
		feature.WithLoop(loop),
		feature.WithLogger(logger),
	)

	logger.Info("search feature ready", "catalog", cfg.Catalog.Backend, "language", cfg.Tag().String())
	return &App{
		Config:       cfg,
		Logger:       logger,
		Loop:         loop,
		Feature:      f,
		Registry:     registry,
		closeCatalog: closeCatalog,
	}, nil
}

// Close tears the feature down, stops the loop and releases the catalog.
func (a *App) Close() error {
	a.Feature.Close()
	a.Loop.Stop()
	if err := a.closeCatalog(); err != nil {
		return fmt.Errorf("failed to close catalog: %w", err)
	}
	return nil
}
