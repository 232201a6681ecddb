package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aretw0/riveting/internal/logging"
	"github.com/aretw0/riveting/pkg/domain"
	"github.com/aretw0/riveting/pkg/ports"
	"github.com/aretw0/riveting/pkg/store"
	"golang.org/x/text/cases"
)

// FailureMessage is stored in Model.Results when the catalog fails.
const FailureMessage = "Something went wrong, please try again later"

const (
	intentCatalog = "catalog"
	intentSearch  = "search"
)

// Interactor owns the search Domain and handles Actions.
type Interactor struct {
	*store.Store[Domain]
	catalog ports.Catalog
	intents *store.Intents
	logger  *slog.Logger
}

var _ ports.Interactor[Action, Domain] = (*Interactor)(nil)

// Option configures an Interactor.
type Option func(*interactorConfig)

type interactorConfig struct {
	logger    *slog.Logger
	storeOpts []store.Option
}

// WithLogger sets the logger used by the interactor and its store.
func WithLogger(logger *slog.Logger) Option {
	return func(c *interactorConfig) {
		c.logger = logger
	}
}

// WithStoreOptions passes extra options to the underlying store.
func WithStoreOptions(opts ...store.Option) Option {
	return func(c *interactorConfig) {
		c.storeOpts = append(c.storeOpts, opts...)
	}
}

// NewInteractor creates an interactor starting at initial.
func NewInteractor(initial Domain, catalog ports.Catalog, opts ...Option) *Interactor {
	cfg := interactorConfig{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	storeOpts := append([]store.Option{store.WithName("search"), store.WithLogger(cfg.logger)}, cfg.storeOpts...)

	return &Interactor{
		Store:   store.New(initial, storeOpts...),
		catalog: catalog,
		intents: store.NewIntents(),
		logger:  cfg.logger.With("feature", "search"),
	}
}

// Interact applies action. Catalog work runs asynchronously; everything
// else is a synchronous mutation.
func (i *Interactor) Interact(action Action) {
	switch a := action.(type) {
	case Load:
		i.intents.Start(intentCatalog, func() *store.Task {
			return i.UpdateAsync(i.loadAll)
		})

	case UpdateSearchText:
		model, ok := i.Current().CurrentModel()
		if !ok || model.SearchText == a.Text {
			return
		}
		i.Update(func(d Domain) Domain {
			if m, ok := d.CurrentModel(); ok {
				model = m
			}
			model.SearchText = a.Text
			return Loaded(model)
		})

	case ToggleAlert:
		model, ok := i.Current().CurrentModel()
		if !ok {
			return
		}
		i.Update(func(d Domain) Domain {
			if m, ok := d.CurrentModel(); ok {
				model = m
			}
			if a.Open {
				return Alerting(a.Alert, model)
			}
			return Loaded(model)
		})

	case SubmitSearch:
		i.intents.Start(intentSearch, func() *store.Task {
			i.Update(func(d Domain) Domain {
				model, ok := d.CurrentModel()
				if !ok {
					return d
				}
				model.Results = domain.Loading[[]string]()
				return Loaded(model)
			})
			return i.UpdateAsyncThen(i.filter)
		})

	case ClearSearch:
		i.intents.Cancel(intentSearch)
		i.intents.Start(intentCatalog, func() *store.Task {
			return i.UpdateAsync(i.loadAll)
		})

	default:
		i.logger.Warn("unhandled action", "action", action)
	}
}

// Close cancels in-flight catalog work and closes the store.
func (i *Interactor) Close() {
	i.intents.CancelAll()
	i.Store.Close()
}

func (i *Interactor) loadAll(ctx context.Context, d Domain) Domain {
	names, err := i.catalog.Names(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return d
		}
		i.logger.Error("catalog load failed", "err", err)
		return Failed()
	}
	return Loaded(Model{Results: domain.Loaded(names)})
}

// filter queries the catalog off the store lock and merges the results into
// the domain current at commit time, so an alert toggled while the search
// was in flight survives.
func (i *Interactor) filter(ctx context.Context, d Domain) func(Domain) Domain {
	model, ok := d.CurrentModel()
	if !ok {
		return keep
	}
	var results domain.Status[[]string]
	names, err := i.catalog.Names(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return keep
		}
		i.logger.Error("search failed", "query", model.SearchText, "err", err)
		results = domain.Failed[[]string](FailureMessage)
	} else {
		results = domain.Loaded(Match(names, model.SearchText))
	}
	return func(cur Domain) Domain {
		m, ok := cur.CurrentModel()
		if !ok {
			return cur
		}
		m.Results = results
		if cur.Kind == KindAlert {
			return Alerting(cur.Alert, m)
		}
		return Loaded(m)
	}
}

func keep(d Domain) Domain { return d }

// Match returns the names containing query, ignoring case. The result is
// never nil.
func Match(names []string, query string) []string {
	fold := cases.Fold()
	needle := fold.String(query)
	matches := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(fold.String(name), needle) {
			matches = append(matches, name)
		}
	}
	return matches
}
