package ports

import "context"

// Catalog is the data source searched by the example search feature.
// Calls may block (simulated or real I/O) and must honor ctx.
type Catalog interface {
	// Names returns every entry in catalog order.
	Names(ctx context.Context) ([]string, error)
}
