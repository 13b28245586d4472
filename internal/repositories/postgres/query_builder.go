package postgres

import (
	"strings"

	"produto-lookup-api/internal/models"
	"produto-lookup-api/internal/repositories"
)

// ProductTable is the table every lookup reads from
const ProductTable = "Produto"

const (
	selectProduct = "SELECT * FROM " + ProductTable + " WHERE "

	queryByID              = selectProduct + "id = $1"
	queryByNameAndCategory = selectProduct + `nome ILIKE $1 ESCAPE '\' AND categoria_id = $2`
	queryByName            = selectProduct + `nome ILIKE $1 ESCAPE '\'`
	queryByCategory        = selectProduct + "categoria_id = $1"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BuildProductQuery selects the statement and arguments for a filter.
// User input only ever travels as a bind argument.
func BuildProductQuery(filter models.Filter) (string, []any, error) {
	switch filter.Kind {
	case models.FilterByID:
		return queryByID, []any{filter.ID}, nil
	case models.FilterByNameAndCategory:
		return queryByNameAndCategory, []any{ContainsPattern(filter.Nome), filter.Categoria}, nil
	case models.FilterByName:
		return queryByName, []any{ContainsPattern(filter.Nome)}, nil
	case models.FilterByCategory:
		return queryByCategory, []any{filter.Categoria}, nil
	default:
		return "", nil, repositories.ErrNoFilter
	}
}

// ContainsPattern builds an ILIKE pattern matching value anywhere in the column.
// LIKE wildcards inside value are escaped so they match literally.
func ContainsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}
