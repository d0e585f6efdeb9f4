package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"locinsight/config"
	"locinsight/internal/domain/repository"
)

func ptr[T any](v T) *T { return &v }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Database: &config.DatabaseConfig{StatementTimeout: time.Second, RegistrationRetries: 2},
		CMS:      &config.CMSConfig{ThumbnailBaseURL: "http://cdn.test/thumbnail/"},
		Statistic: &config.StatisticConfig{
			InitLimit: 10,
		},
	}
	cfg.Statistic.InitRegion.CityID = 1
	cfg.Statistic.InitRegion.DistrictID = 1
	cfg.Statistic.InitRegion.SubDistrictID = 3

	return cfg
}

// runInTx makes the transaction manager run fn against factory, the way a real transaction would.
func runInTx(factory repository.RepositoryFactory) func(context.Context, func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	}
}

