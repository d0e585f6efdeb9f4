package usecase

import (
	"context"

	"locinsight/internal/domain/entity"
)

// StatisticUsecase defines the interface for the J-Score statistic views.
type StatisticUsecase interface {
	// ListStatistics returns one statistic view. City and district views fill the parent name
	// their rows lack.
	ListStatistics(ctx context.Context, scope entity.StatisticScope, filter entity.FilterCriteria) ([]*entity.RegionStatistic, error)
	ListNationJScores(ctx context.Context, filter entity.FilterCriteria) ([]*entity.RegionStatistic, error)
	// ListInitStatistics returns the landing view of the configured default region.
	ListInitStatistics(ctx context.Context) ([]*entity.RegionStatistic, error)
}
