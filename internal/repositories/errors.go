package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrConnection is returned when the database connection fails
	ErrConnection = errors.New("database connection error")

	// ErrQuery is returned when executing a query or reading its rows fails
	ErrQuery = errors.New("query error")

	// ErrNoFilter is returned when a lookup has no criteria to query by
	ErrNoFilter = errors.New("no filter provided")
)

// RepositoryError represents a repository-specific error with additional context
type RepositoryError struct {
	Op      string // Operation that failed
	Entity  string // Entity type
	ID      string // Entity ID (if applicable)
	Code    string // SQLSTATE reported by the server, if any
	Err     error  // Underlying error
	Message string // Human-readable message
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.ID != "" {
		return fmt.Sprintf("%s %s operation failed for ID %s: %v", e.Entity, e.Op, e.ID, e.Err)
	}

	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Err:    err,
	}
}

// ConnectionError creates a "connection" repository error
func ConnectionError(err error) *RepositoryError {
	return &RepositoryError{
		Op:      "connect",
		Entity:  "database",
		Err:     errors.Join(ErrConnection, err),
		Message: fmt.Sprintf("database connection failed: %v", err),
	}
}

// QueryError creates a "query" repository error for the given entity
func QueryError(op, entity string, err error) *RepositoryError {
	return &RepositoryError{
		Op:      op,
		Entity:  entity,
		Err:     errors.Join(ErrQuery, err),
		Message: fmt.Sprintf("%s %s failed: %v", entity, op, err),
	}
}

// IsConnection checks if an error is a "connection" error
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsQuery checks if an error is a "query" error
func IsQuery(err error) bool {
	return errors.Is(err, ErrQuery)
}

// IsNoFilter checks if an error is a "no filter" error
func IsNoFilter(err error) bool {
	return errors.Is(err, ErrNoFilter)
}

// ErrorCode returns the SQLSTATE carried by a repository error, if any
func ErrorCode(err error) string {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return repoErr.Code
	}
	return ""
}
