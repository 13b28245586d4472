package services

import (
	"fmt"

	"produto-lookup-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	ProductService ProductService
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(connector repositories.Connector, logger *logrus.Logger) (*ServiceContainer, error) {
	if connector == nil {
		return nil, fmt.Errorf("connector cannot be nil")
	}

	return &ServiceContainer{
		ProductService: NewProductService(connector, logger),
	}, nil
}
