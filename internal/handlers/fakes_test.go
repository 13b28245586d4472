package handlers

import (
	"context"
	"io"

	"produto-lookup-api/internal/models"
	"produto-lookup-api/internal/repositories"
	"produto-lookup-api/internal/services"

	"github.com/sirupsen/logrus"
)

type fakeStore struct {
	rows     []models.Row
	findErr  error
	closeErr error
	panicMsg string

	filters []models.Filter
	closed  int
}

func (s *fakeStore) Find(ctx context.Context, filter models.Filter) ([]models.Row, error) {
	s.filters = append(s.filters, filter)
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.rows, s.findErr
}

func (s *fakeStore) Close(ctx context.Context) error {
	s.closed++
	return s.closeErr
}

type fakeConnector struct {
	store      *fakeStore
	connectErr error
	calls      int
}

func (c *fakeConnector) Connect(ctx context.Context) (repositories.ProductStore, error) {
	c.calls++
	if c.connectErr != nil {
		return nil, c.connectErr
	}
	return c.store, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestHandler(connector repositories.Connector) *ProductHandler {
	logger := quietLogger()
	return NewProductHandler(services.NewProductService(connector, logger), logger)
}
