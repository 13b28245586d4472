package services

import (
	"context"

	"produto-lookup-api/internal/models"
)

// ProductService defines the interface for product lookups
type ProductService interface {
	// Lookup runs the query selected by filter on a connection opened for this call only.
	// The connection is released before Lookup returns, whatever the outcome.
	Lookup(ctx context.Context, filter models.Filter) ([]models.Row, error)
}
