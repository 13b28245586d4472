package postgres

import (
	"context"
	"fmt"
	"time"

	"produto-lookup-api/internal/config"
	"produto-lookup-api/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

// Connector opens one pgx connection per invocation
type Connector struct {
	connConfig *pgx.ConnConfig
	logger     *logrus.Logger
}

// NewConnector creates a connector for the given database configuration
func NewConnector(cfg *config.DatabaseConfig, logger *logrus.Logger) (*Connector, error) {
	if logger == nil {
		logger = logrus.New()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	connConfig, err := pgx.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database connection string: %w", err)
	}

	if cfg.ConnectTimeout > 0 {
		connConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	return &Connector{
		connConfig: connConfig,
		logger:     logger,
	}, nil
}

// Connect establishes a new connection and wraps it in a ProductStore
func (c *Connector) Connect(ctx context.Context) (repositories.ProductStore, error) {
	start := time.Now()
	conn, err := pgx.ConnectConfig(ctx, c.connConfig.Copy())
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"host":     c.connConfig.Host,
			"database": c.connConfig.Database,
			"error":    err.Error(),
		}).Debug("Database connection failed")
		return nil, withSQLState(repositories.ConnectionError(err), err)
	}

	c.logger.WithFields(logrus.Fields{
		"host":     c.connConfig.Host,
		"database": c.connConfig.Database,
		"duration": time.Since(start),
	}).Debug("Database connection established")

	return NewProductStore(conn, c.logger), nil
}
