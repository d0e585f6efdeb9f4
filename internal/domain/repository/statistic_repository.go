package repository

import (
	"context"

	"locinsight/internal/domain/entity"
	"locinsight/internal/errors"
)

// ErrStatisticNotFound is returned when no statistic row matches a single-row lookup.
var ErrStatisticNotFound = errors.New("statistic not found")

// StatisticRepository reads J-Score statistics.
type StatisticRepository interface {
	// FindJScores returns composite J-Score rows filtered by region cascade, periods and J-Score bounds.
	FindJScores(ctx context.Context, filter entity.FilterCriteria) ([]*entity.RegionStatistic, error)

	// FindSimilarityAnchor returns the first composite J-Score row for the filter's region and periods.
	FindSimilarityAnchor(ctx context.Context, filter entity.FilterCriteria) (*entity.RegionStatistic, error)

	// FindInWindow returns composite J-Score rows of every region inside the window.
	FindInWindow(ctx context.Context, window entity.Window, periods []string) ([]*entity.RegionStatistic, error)

	// FindScoped returns every target item of one statistic view.
	FindScoped(ctx context.Context, scope entity.StatisticScope, filter entity.FilterCriteria) ([]*entity.RegionStatistic, error)

	// FindNationJScores returns fully resolved rows of every target item, ignoring periods.
	FindNationJScores(ctx context.Context, filter entity.FilterCriteria) ([]*entity.RegionStatistic, error)

	// FindInit returns the summary rows of one region at the latest reference date.
	FindInit(ctx context.Context, cityID, districtID, subDistrictID int64, limit int) ([]*entity.RegionStatistic, error)

	// FindParentNames maps sub-district ids to the parent name a city or district view lacks.
	FindParentNames(ctx context.Context, scope entity.StatisticScope, id int64) (map[int64]string, error)
}
