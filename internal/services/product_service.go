package services

import (
	"context"
	"fmt"

	"produto-lookup-api/internal/models"
	"produto-lookup-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// productService implements the ProductService interface
type productService struct {
	connector repositories.Connector
	logger    *logrus.Logger
}

// NewProductService creates a new product service instance
func NewProductService(connector repositories.Connector, logger *logrus.Logger) ProductService {
	if logger == nil {
		logger = logrus.New()
	}
	return &productService{
		connector: connector,
		logger:    logger,
	}
}

// Lookup opens a connection, runs the query and always releases the connection,
// including when the store panics.
func (s *productService) Lookup(ctx context.Context, filter models.Filter) (rows []models.Row, err error) {
	if !filter.IsQueryable() {
		return nil, repositories.ErrNoFilter
	}

	defer func() {
		if r := recover(); r != nil {
			rows = nil
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	store, err := s.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := store.Close(context.WithoutCancel(ctx)); closeErr != nil {
			s.logger.WithError(closeErr).Warn("Failed to release database connection")
		}
	}()

	return store.Find(ctx, filter)
}
