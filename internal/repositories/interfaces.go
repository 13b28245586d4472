package repositories

import (
	"context"

	"produto-lookup-api/internal/models"
)

// ProductStore reads Produto rows over a single open connection
type ProductStore interface {
	// Find runs the one query selected by filter and returns the matching rows.
	// Row order is whatever the database returns.
	Find(ctx context.Context, filter models.Filter) ([]models.Row, error)

	// Close releases the underlying connection
	Close(ctx context.Context) error
}

// Connector opens a fresh ProductStore for one invocation
type Connector interface {
	Connect(ctx context.Context) (ProductStore, error)
}

// ConnectorFunc adapts a function to the Connector interface
type ConnectorFunc func(ctx context.Context) (ProductStore, error)

// Connect calls f(ctx)
func (f ConnectorFunc) Connect(ctx context.Context) (ProductStore, error) {
	return f(ctx)
}
