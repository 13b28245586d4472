package server

import (
	"fmt"

	"produto-lookup-api/internal/config"
	"produto-lookup-api/internal/handlers"
	"produto-lookup-api/internal/repositories"
	"produto-lookup-api/internal/repositories/postgres"
	"produto-lookup-api/internal/services"

	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies.
// It carries configuration only; database connections are opened per request.
type Container struct {
	Config         *config.Config
	Serverless     *config.ServerlessConfig
	Logger         *logrus.Logger
	Connector      repositories.Connector
	ProductService services.ProductService
	ProductHandler *handlers.ProductHandler
}

// NewContainer wires the application against PostgreSQL
func NewContainer(cfg *config.Config) (*Container, error) {
	serverless := config.LoadServerlessConfig()
	logger := config.NewLogger(cfg, serverless)

	connector, err := postgres.NewConnector(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connector: %w", err)
	}

	return NewContainerWithConnector(cfg, serverless, logger, connector)
}

// NewContainerWithConnector wires the application against any connector
func NewContainerWithConnector(cfg *config.Config, serverless *config.ServerlessConfig, logger *logrus.Logger, connector repositories.Connector) (*Container, error) {
	serviceContainer, err := services.NewServiceContainer(connector, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	return &Container{
		Config:         cfg,
		Serverless:     serverless,
		Logger:         logger,
		Connector:      connector,
		ProductService: serviceContainer.ProductService,
		ProductHandler: handlers.NewProductHandler(serviceContainer.ProductService, logger),
	}, nil
}
