package postgres

import (
	"errors"

	"produto-lookup-api/internal/repositories"

	"github.com/jackc/pgx/v5/pgconn"
)

// withSQLState copies the SQLSTATE of a server error onto repoErr
func withSQLState(repoErr *repositories.RepositoryError, err error) *repositories.RepositoryError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		repoErr.Code = pgErr.Code
	}
	return repoErr
}
