package postgres

import (
	"context"
	"fmt"
	"time"

	"produto-lookup-api/internal/models"
	"produto-lookup-api/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

// conn is the subset of *pgx.Conn the product store needs
type conn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close(ctx context.Context) error
}

// ProductStore reads Produto rows over a single connection
type ProductStore struct {
	conn   conn
	logger *logrus.Logger
	closed bool
}

// NewProductStore wraps an open connection
func NewProductStore(c conn, logger *logrus.Logger) *ProductStore {
	if logger == nil {
		logger = logrus.New()
	}
	return &ProductStore{
		conn:   c,
		logger: logger,
	}
}

// Find runs the query selected by filter and returns normalized rows
func (s *ProductStore) Find(ctx context.Context, filter models.Filter) ([]models.Row, error) {
	query, args, err := BuildProductQuery(filter)
	if err != nil {
		return nil, err
	}

	if s.closed {
		return nil, repositories.QueryError("find", ProductTable, fmt.Errorf("connection already closed"))
	}

	start := time.Now()
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		s.logQuery(filter, query, args, time.Since(start), 0, err)
		return nil, withSQLState(repositories.QueryError("find", ProductTable, err), err)
	}

	collected, err := pgx.CollectRows(rows, pgx.RowToMap)
	s.logQuery(filter, query, args, time.Since(start), len(collected), err)
	if err != nil {
		return nil, withSQLState(repositories.QueryError("fetch", ProductTable, err), err)
	}

	result := make([]models.Row, 0, len(collected))
	for _, row := range collected {
		result = append(result, models.NormalizeRow(row))
	}

	return result, nil
}

// Close closes the connection. Calling it more than once is a no-op.
func (s *ProductStore) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.conn.Close(ctx); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	s.logger.Debug("Database connection closed")
	return nil
}

func (s *ProductStore) logQuery(filter models.Filter, query string, args []any, duration time.Duration, rowCount int, err error) {
	fields := logrus.Fields{
		"table":    ProductTable,
		"filter":   filter.Kind.String(),
		"query":    query,
		"args":     args,
		"duration": duration,
		"rows":     rowCount,
	}

	if err != nil {
		fields["error"] = err.Error()
		s.logger.WithFields(fields).Debug("Query failed")
		return
	}

	s.logger.WithFields(fields).Debug("Query executed")
}
