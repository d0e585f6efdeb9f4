// Package querybuilder assembles the parameterized read queries of the analytics store from
// optional filter criteria.
package querybuilder

import (
	"fmt"

	"locinsight/internal/domain/entity"
	"locinsight/internal/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

// Query is a SQL statement with its positional arguments.
type Query struct {
	SQL  string
	Args []any
}

// builder uses question mark placeholders; gorm rebinds them for the postgres driver.
func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func toQuery(b sq.SelectBuilder) (Query, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return Query{}, errors.Wrap(err, "build query")
	}

	return Query{SQL: sql, Args: args}, nil
}

// level is one step of a parent-first filter hierarchy.
type level struct {
	column  string
	value   any
	present bool
}

func idLevel(column string, v *int64) level {
	if v == nil {
		return level{column: column}
	}

	return level{column: column, value: *v, present: true}
}

func codeLevel(column string, v *string) level {
	if v == nil || *v == "" {
		return level{column: column}
	}

	return level{column: column, value: *v, present: true}
}

// cascade emits one equality per level, walking down from the top and stopping at the first
// absent level. A child value without its parent is ignored.
func cascade(levels ...level) []sq.Sqlizer {
	var conds []sq.Sqlizer
	for _, l := range levels {
		if !l.present {
			break
		}
		conds = append(conds, sq.Eq{l.column: l.value})
	}

	return conds
}

func regionCascade(cityCol, districtCol, subCol string, f entity.FilterCriteria) []sq.Sqlizer {
	return cascade(
		idLevel(cityCol, f.City),
		idLevel(districtCol, f.District),
		idLevel(subCol, f.SubDistrict),
	)
}

// periodCondition compares column with every period: one equality for a single period,
// otherwise an OR group with arguments in input order.
func periodCondition(column string, periods []string) []sq.Sqlizer {
	switch len(periods) {
	case 0:
		return nil
	case 1:
		return []sq.Sqlizer{sq.Eq{column: periods[0]}}
	}

	group := make(sq.Or, 0, len(periods))
	for _, p := range periods {
		group = append(group, sq.Eq{column: p})
	}

	return []sq.Sqlizer{group}
}

func atLeast(column string, v decimal.Decimal) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf("%s >= CAST(? AS NUMERIC)", column), v.String())
}

func atMost(column string, v decimal.Decimal) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf("%s <= CAST(? AS NUMERIC)", column), v.String())
}

// rangeCondition emits the bounds that are present and nothing for absent ones.
func rangeCondition(column string, minV, maxV *decimal.Decimal) []sq.Sqlizer {
	var conds []sq.Sqlizer
	if minV != nil {
		conds = append(conds, atLeast(column, *minV))
	}
	if maxV != nil {
		conds = append(conds, atMost(column, *maxV))
	}

	return conds
}

// regionMatch matches a region exactly, a NULL id matching only NULL.
func regionMatch(cityCol, districtCol, subCol string, r entity.Region) sq.Eq {
	return sq.Eq{
		cityCol:     nullable(r.CityID),
		districtCol: nullable(r.DistrictID),
		subCol:      nullable(r.SubDistrictID),
	}
}

func nullable(v *int64) any {
	if v == nil {
		return nil
	}

	return *v
}

func where(b sq.SelectBuilder, groups ...[]sq.Sqlizer) sq.SelectBuilder {
	for _, conds := range groups {
		for _, c := range conds {
			b = b.Where(c)
		}
	}

	return b
}
