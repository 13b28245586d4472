package postgres

import (
	"context"
	"errors"
	"io"
	"math/big"
	"testing"

	"produto-lookup-api/internal/models"
	"produto-lookup-api/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRows serves canned values through the pgx.Rows interface
type fakeRows struct {
	columns []string
	values  [][]any
	err     error

	pos    int
	closed bool
}

func (r *fakeRows) Close()                        { r.closed = true }
func (r *fakeRows) Err() error                    { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) RawValues() [][]byte           { return nil }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fields := make([]pgconn.FieldDescription, len(r.columns))
	for i, name := range r.columns {
		fields[i] = pgconn.FieldDescription{Name: name}
	}
	return fields
}

func (r *fakeRows) Next() bool {
	if r.closed || r.pos >= len(r.values) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	return r.values[r.pos-1], nil
}

func (r *fakeRows) Scan(dest ...any) error {
	if len(dest) == 1 {
		if scanner, ok := dest[0].(pgx.RowScanner); ok {
			return scanner.ScanRow(r)
		}
	}
	return errors.New("fakeRows only supports RowScanner destinations")
}

type fakeConn struct {
	rows     *fakeRows
	queryErr error
	closeErr error

	sql    string
	args   []any
	closed int
}

func (c *fakeConn) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.sql = sql
	c.args = args
	if c.queryErr != nil {
		return nil, c.queryErr
	}
	return c.rows, nil
}

func (c *fakeConn) Close(ctx context.Context) error {
	c.closed++
	return c.closeErr
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestProductStore_Find(t *testing.T) {
	rows := &fakeRows{
		columns: []string{"id", "nome", "categoria_id", "preco"},
		values: [][]any{
			{int32(9), "Widget", int32(2), pgtype.Numeric{Int: big.NewInt(1999), Exp: -2, Valid: true}},
		},
	}
	conn := &fakeConn{rows: rows}
	store := NewProductStore(conn, testLogger())

	got, err := store.Find(context.Background(), models.Filter{Kind: models.FilterByID, ID: "9"})

	require.NoError(t, err)
	assert.Equal(t, []models.Row{
		{"id": int32(9), "nome": "Widget", "categoria_id": int32(2), "preco": 19.99},
	}, got)
	assert.Equal(t, queryByID, conn.sql)
	assert.Equal(t, []any{"9"}, conn.args)
	assert.True(t, rows.closed)
}

func TestProductStore_FindNoRows(t *testing.T) {
	conn := &fakeConn{rows: &fakeRows{columns: []string{"id"}}}
	store := NewProductStore(conn, testLogger())

	got, err := store.Find(context.Background(), models.Filter{Kind: models.FilterByCategory, Categoria: "2"})

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, queryByCategory, conn.sql)
}

func TestProductStore_FindNoFilterSkipsQuery(t *testing.T) {
	conn := &fakeConn{}
	store := NewProductStore(conn, testLogger())

	_, err := store.Find(context.Background(), models.Filter{Kind: models.FilterNone})

	assert.True(t, repositories.IsNoFilter(err))
	assert.Empty(t, conn.sql)
}

func TestProductStore_QueryErrorCarriesSQLState(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type integer: "abc"`}
	conn := &fakeConn{queryErr: pgErr}
	store := NewProductStore(conn, testLogger())

	_, err := store.Find(context.Background(), models.Filter{Kind: models.FilterByID, ID: "abc"})

	require.Error(t, err)
	assert.True(t, repositories.IsQuery(err))
	assert.Equal(t, "22P02", repositories.ErrorCode(err))
	assert.Contains(t, err.Error(), "invalid input syntax")
	assert.ErrorIs(t, err, pgErr)
}

func TestProductStore_FetchError(t *testing.T) {
	rows := &fakeRows{columns: []string{"id"}, err: errors.New("unexpected EOF")}
	store := NewProductStore(&fakeConn{rows: rows}, testLogger())

	_, err := store.Find(context.Background(), models.Filter{Kind: models.FilterByName, Nome: "wid"})

	require.Error(t, err)
	assert.True(t, repositories.IsQuery(err))
	assert.Contains(t, err.Error(), "unexpected EOF")
}

func TestProductStore_Close(t *testing.T) {
	conn := &fakeConn{}
	store := NewProductStore(conn, testLogger())

	require.NoError(t, store.Close(context.Background()))
	require.NoError(t, store.Close(context.Background()))
	assert.Equal(t, 1, conn.closed)

	_, err := store.Find(context.Background(), models.Filter{Kind: models.FilterByID, ID: "9"})
	assert.True(t, repositories.IsQuery(err))
}

func TestProductStore_CloseError(t *testing.T) {
	store := NewProductStore(&fakeConn{closeErr: errors.New("broken pipe")}, testLogger())

	err := store.Close(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
