package postgres

import (
	"strings"
	"testing"

	"produto-lookup-api/internal/models"
	"produto-lookup-api/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProductQuery(t *testing.T) {
	tests := []struct {
		name     string
		filter   models.Filter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "by id",
			filter:   models.Filter{Kind: models.FilterByID, ID: "9"},
			wantSQL:  "SELECT * FROM Produto WHERE id = $1",
			wantArgs: []any{"9"},
		},
		{
			name:     "by name and category",
			filter:   models.Filter{Kind: models.FilterByNameAndCategory, Nome: "wid", Categoria: "2"},
			wantSQL:  `SELECT * FROM Produto WHERE nome ILIKE $1 ESCAPE '\' AND categoria_id = $2`,
			wantArgs: []any{"%wid%", "2"},
		},
		{
			name:     "by name",
			filter:   models.Filter{Kind: models.FilterByName, Nome: "wid"},
			wantSQL:  `SELECT * FROM Produto WHERE nome ILIKE $1 ESCAPE '\'`,
			wantArgs: []any{"%wid%"},
		},
		{
			name:     "by category",
			filter:   models.Filter{Kind: models.FilterByCategory, Categoria: "2"},
			wantSQL:  "SELECT * FROM Produto WHERE categoria_id = $1",
			wantArgs: []any{"2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := BuildProductQuery(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildProductQuery_NoFilter(t *testing.T) {
	sql, args, err := BuildProductQuery(models.Filter{Kind: models.FilterNone})

	assert.Empty(t, sql)
	assert.Nil(t, args)
	assert.True(t, repositories.IsNoFilter(err))
}

func TestBuildProductQuery_UserInputNeverReachesSQL(t *testing.T) {
	hostile := []string{
		`'; DROP TABLE Produto; --`,
		`%' OR '1'='1`,
		`a;b`,
		`1 OR 1=1`,
	}

	for _, value := range hostile {
		for _, filter := range []models.Filter{
			{Kind: models.FilterByID, ID: value},
			{Kind: models.FilterByName, Nome: value},
			{Kind: models.FilterByCategory, Categoria: value},
			{Kind: models.FilterByNameAndCategory, Nome: value, Categoria: value},
		} {
			sql, args, err := BuildProductQuery(filter)
			require.NoError(t, err)
			assert.NotContains(t, sql, value)
			assert.NotEmpty(t, args)
		}
	}
}

func TestContainsPattern(t *testing.T) {
	tests := map[string]string{
		"wid":      "%wid%",
		"":         "%%",
		"50%":      `%50\%%`,
		"a_b":      `%a\_b%`,
		`c:\temp`:  `%c:\\temp%`,
		"it's; ok": "%it's; ok%",
	}

	for input, want := range tests {
		got := ContainsPattern(input)
		assert.Equal(t, want, got, "input %q", input)
		assert.True(t, strings.HasPrefix(got, "%") && strings.HasSuffix(got, "%"))
	}
}
