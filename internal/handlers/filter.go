package handlers

import (
	"strings"

	"produto-lookup-api/internal/models"
	"produto-lookup-api/pkg/lambda"
)

// ProductPathPrefix is the path under which a trailing segment is read as a product id
const ProductPathPrefix = "/produto/"

// Query parameter names recognized by the lookup
const (
	QueryParamNome      = "nome"
	QueryParamCategoria = "categoria"
)

// ExtractFilter derives the lookup filter from a request.
// An id taken from the path wins over any query parameters. Nothing is validated here.
func ExtractFilter(req *lambda.Request) models.Filter {
	if id, ok := pathID(req.Path); ok {
		return models.NewFilter(&id, nil, nil)
	}

	var nome, categoria *string
	if value, ok := req.QueryParam(QueryParamNome); ok {
		nome = &value
	}
	if value, ok := req.QueryParam(QueryParamCategoria); ok {
		categoria = &value
	}

	return models.NewFilter(nil, nome, categoria)
}

// pathID returns the trailing segment of a /produto/{value} path verbatim
func pathID(path string) (string, bool) {
	if !strings.HasPrefix(path, ProductPathPrefix) {
		return "", false
	}

	id := path[strings.LastIndex(path, "/")+1:]
	if id == "" {
		return "", false
	}
	return id, true
}
