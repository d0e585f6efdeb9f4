package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"locinsight/config"
	"locinsight/internal/errors"
	"locinsight/internal/infra/persistence/normalizer"
	"locinsight/internal/infra/persistence/querybuilder"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// queryExecutor runs built queries under a server-side statement timeout.
type queryExecutor struct {
	db               *gorm.DB
	statementTimeout time.Duration
}

func newQueryExecutor(db *gorm.DB, timeout time.Duration) *queryExecutor {
	return &queryExecutor{db: db, statementTimeout: timeout}
}

// rows executes q and returns every result row. SET LOCAL scopes the timeout to the wrapping
// transaction, so it never leaks into pooled connections.
func (e *queryExecutor) rows(ctx context.Context, q querybuilder.Query) ([]normalizer.Row, error) {
	var out []normalizer.Row

	err := e.db.WithContext(ctx).Clauses(dbresolver.Read).Transaction(func(tx *gorm.DB) error {
		if ms := e.statementTimeout.Milliseconds(); ms > 0 {
			if err := tx.Exec(fmt.Sprintf("SET LOCAL statement_timeout = %d", ms)).Error; err != nil {
				return errors.Wrap(err, "set statement timeout")
			}
		}

		result, err := tx.Raw(q.SQL, q.Args...).Rows()
		if err != nil {
			return errors.Wrap(err, "run query")
		}
		defer result.Close()

		out, err = scan(result)

		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// first returns the first row of q, or ok false when q matched nothing.
func (e *queryExecutor) first(ctx context.Context, q querybuilder.Query) (normalizer.Row, bool, error) {
	rows, err := e.rows(ctx, q)
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}

	return rows[0], true, nil
}

func scan(result *sql.Rows) ([]normalizer.Row, error) {
	columns, err := result.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "read columns")
	}

	var out []normalizer.Row
	for result.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := result.Scan(dest...); err != nil {
			return nil, errors.Wrap(err, "scan row")
		}
		out = append(out, normalizer.NewRow(columns, values))
	}
	if err := result.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate rows")
	}

	return out, nil
}

const defaultStatementTimeout = 240 * time.Second

func statementTimeout(cfg *config.Config) time.Duration {
	if cfg == nil || cfg.Database == nil || cfg.Database.StatementTimeout <= 0 {
		return defaultStatementTimeout
	}

	return cfg.Database.StatementTimeout
}
