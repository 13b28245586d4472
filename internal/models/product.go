package models

import (
	"math"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Column names of the Produto table used for filtering
const (
	ColumnID          = "id"
	ColumnNome        = "nome"
	ColumnCategoriaID = "categoria_id"
)

// Row is a single Produto row keyed by column name.
// The table is owned elsewhere, so every column is passed through.
type Row map[string]any

// NormalizeRows applies NormalizeRow to every row
func NormalizeRows(rows []Row) []Row {
	normalized := make([]Row, 0, len(rows))
	for _, row := range rows {
		normalized = append(normalized, NormalizeRow(row))
	}
	return normalized
}

// NormalizeRow returns a copy of row safe for JSON encoding.
// Fixed-point decimals become float64 whatever the column; other values are kept as is.
func NormalizeRow(row Row) Row {
	if row == nil {
		return nil
	}

	out := make(Row, len(row))
	for column, value := range row {
		out[column] = NormalizeValue(value)
	}
	return out
}

// NormalizeValue converts decimal-typed values to float64.
// NULL, NaN and infinite values, decimal or float, have no JSON number form and become nil.
func NormalizeValue(value any) any {
	switch v := value.(type) {
	case pgtype.Numeric:
		return numericToFloat(v)
	case *pgtype.Numeric:
		if v == nil {
			return nil
		}
		return numericToFloat(*v)
	case decimal.Decimal:
		return v.InexactFloat64()
	case *decimal.Decimal:
		if v == nil {
			return nil
		}
		return v.InexactFloat64()
	case float64:
		return finiteOrNil(v)
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return nil
		}
		return v
	case decimal.NullDecimal:
		if !v.Valid {
			return nil
		}
		return v.Decimal.InexactFloat64()
	default:
		return value
	}
}

func numericToFloat(n pgtype.Numeric) any {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return nil
	}

	return finiteOrNil(decimal.NewFromBigInt(n.Int, n.Exp).InexactFloat64())
}

func finiteOrNil(f float64) any {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return f
}
