package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"locinsight/config"
	"locinsight/internal/domain/lifecycle"
	"locinsight/internal/errors"
	"locinsight/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// ReportDB is the connection of the report database that holds reports, content and thumbnails.
type ReportDB struct {
	*gorm.DB
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the primary PostgreSQL client.
func New(params Params) (*gorm.DB, error) {
	return open(params, params.Config.Postgres, "primary")
}

// NewReportDB creates the report database client. Without a reportPostgres section the primary
// connection serves the report tables.
func NewReportDB(params Params, primary *gorm.DB) (*ReportDB, error) {
	if params.Config.ReportPostgres == nil {
		return &ReportDB{DB: primary}, nil
	}

	db, err := open(params, params.Config.ReportPostgres, "report")
	if err != nil {
		return nil, err
	}

	return &ReportDB{DB: db}, nil
}

func open(params Params, conn *pgLib.DBConn, name string) (*gorm.DB, error) {
	db, err := pgLib.New(conn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create PostgreSQL client %s", name)
	}
	if err := registerMetricsCallbacks(db); err != nil {
		return nil, errors.Wrapf(err, "failed to register metrics callbacks on %s", name)
	}
	db = db.Session(&gorm.Session{
		// Explicit transactions only, via txManager.Execute and the query executor.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get PostgreSQL sql.DB %s", name)
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	logger := params.Logger.With(slog.String("database", name))

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping PostgreSQL %s", name)
			}

			go monitorDBPool(monitorCtx, logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

const queryStartedKey = "locinsight:query_started"

// registerMetricsCallbacks times every statement gorm runs.
func registerMetricsCallbacks(db *gorm.DB) error {
	before := func(tx *gorm.DB) {
		tx.InstanceSet(queryStartedKey, time.Now())
	}
	after := func(operation string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			v, ok := tx.InstanceGet(queryStartedKey)
			if !ok {
				return
			}
			started, ok := v.(time.Time)
			if !ok {
				return
			}
			table := tx.Statement.Table
			if table == "" {
				table = "raw"
			}
			failed := tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound)
			metrics.ObserveQuery(operation, table, failed, time.Since(started))
		}
	}

	cb := db.Callback()
	registrations := []error{
		cb.Create().Before("gorm:create").Register("metrics:before_create", before),
		cb.Create().After("gorm:create").Register("metrics:after_create", after("create")),
		cb.Query().Before("gorm:query").Register("metrics:before_query", before),
		cb.Query().After("gorm:query").Register("metrics:after_query", after("query")),
		cb.Update().Before("gorm:update").Register("metrics:before_update", before),
		cb.Update().After("gorm:update").Register("metrics:after_update", after("update")),
		cb.Delete().Before("gorm:delete").Register("metrics:before_delete", before),
		cb.Delete().After("gorm:delete").Register("metrics:after_delete", after("delete")),
		cb.Row().Before("gorm:row").Register("metrics:before_row", before),
		cb.Row().After("gorm:row").Register("metrics:after_row", after("row")),
		cb.Raw().Before("gorm:raw").Register("metrics:before_raw", before),
		cb.Raw().After("gorm:raw").Register("metrics:after_raw", after("raw")),
	}
	for _, err := range registrations {
		if err != nil {
			return err
		}
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
