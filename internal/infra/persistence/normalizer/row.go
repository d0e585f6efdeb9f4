// Package normalizer maps raw result rows onto typed domain records.
package normalizer

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Row is one result row keyed by upper-cased column label.
type Row map[string]any

// NewRow pairs column labels with scanned values. Labels are upper-cased so lookups do not
// depend on how the driver reports them.
func NewRow(columns []string, values []any) Row {
	row := make(Row, len(columns))
	for i, column := range columns {
		if i >= len(values) {
			break
		}
		v := values[i]
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		row[strings.ToUpper(column)] = v
	}

	return row
}

func (r Row) value(column string) any {
	return r[strings.ToUpper(column)]
}

// Int64 returns the column as an integer, nil for NULL or an unconvertible value.
func (r Row) Int64(column string) *int64 {
	var out int64
	switch v := r.value(column).(type) {
	case int64:
		out = v
	case int32:
		out = int64(v)
	case int:
		out = int64(v)
	case int16:
		out = int64(v)
	case float64:
		out = int64(v)
	case bool:
		if v {
			out = 1
		}
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		out = d.IntPart()
	case decimal.Decimal:
		out = v.IntPart()
	default:
		return nil
	}

	return &out
}

// Float64 returns the column as a float, nil for NULL or an unconvertible value.
func (r Row) Float64(column string) *float64 {
	var out float64
	switch v := r.value(column).(type) {
	case float64:
		out = v
	case float32:
		out = float64(v)
	case int64:
		out = float64(v)
	case int32:
		out = float64(v)
	case int:
		out = float64(v)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		out = d.InexactFloat64()
	case decimal.Decimal:
		out = v.InexactFloat64()
	default:
		return nil
	}

	return &out
}

// Decimal returns the column as an exact decimal, nil for NULL or an unconvertible value.
func (r Row) Decimal(column string) *decimal.Decimal {
	var out decimal.Decimal
	switch v := r.value(column).(type) {
	case decimal.Decimal:
		out = v
	case float64:
		out = decimal.NewFromFloat(v)
	case int64:
		out = decimal.NewFromInt(v)
	case int:
		out = decimal.NewFromInt(int64(v))
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		out = d
	default:
		return nil
	}

	return &out
}

// String returns the column as text. Dates are rendered as YYYY-MM-DD.
func (r Row) String(column string) *string {
	var out string
	switch v := r.value(column).(type) {
	case string:
		out = v
	case time.Time:
		out = v.Format(dateLayout)
	case int64:
		out = strconv.FormatInt(v, 10)
	case float64:
		out = strconv.FormatFloat(v, 'f', -1, 64)
	case decimal.Decimal:
		out = v.String()
	default:
		return nil
	}

	return &out
}

// Bool treats non-zero numbers as true.
func (r Row) Bool(column string) *bool {
	var out bool
	switch v := r.value(column).(type) {
	case bool:
		out = v
	case int64:
		out = v != 0
	case int32:
		out = v != 0
	case int:
		out = v != 0
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil
		}
		out = parsed
	default:
		return nil
	}

	return &out
}

// Time returns a timestamp column, nil for NULL.
func (r Row) Time(column string) *time.Time {
	v, ok := r.value(column).(time.Time)
	if !ok {
		return nil
	}

	return &v
}
