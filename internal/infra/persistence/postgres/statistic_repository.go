package postgres

import (
	"context"

	"locinsight/config"
	"locinsight/internal/domain/entity"
	"locinsight/internal/domain/repository"
	"locinsight/internal/errors"
	"locinsight/internal/infra/persistence/normalizer"
	"locinsight/internal/infra/persistence/querybuilder"

	"gorm.io/gorm"
)

// statisticRepository reads loc_info_statistics through built queries.
type statisticRepository struct {
	exec *queryExecutor
}

// NewStatisticRepository is the constructor for statisticRepository.
func NewStatisticRepository(db *gorm.DB, cfg *config.Config) repository.StatisticRepository {
	return &statisticRepository{exec: newQueryExecutor(db, statementTimeout(cfg))}
}

func (repo *statisticRepository) FindJScores(ctx context.Context, filter entity.FilterCriteria) ([]*entity.RegionStatistic, error) {
	q, err := querybuilder.JScoreStatistics(filter)
	if err != nil {
		return nil, err
	}

	return repo.list(ctx, q, "failed to find j-score statistics")
}

func (repo *statisticRepository) FindSimilarityAnchor(ctx context.Context, filter entity.FilterCriteria) (*entity.RegionStatistic, error) {
	q, err := querybuilder.SimilarityAnchor(filter)
	if err != nil {
		return nil, err
	}

	row, ok, err := repo.exec.first(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find similarity anchor")
	}
	if !ok {
		return nil, repository.ErrStatisticNotFound
	}

	return normalizer.ToRegionStatistic(row), nil
}

func (repo *statisticRepository) FindInWindow(ctx context.Context, window entity.Window, periods []string) ([]*entity.RegionStatistic, error) {
	q, err := querybuilder.StatisticsInWindow(window, periods)
	if err != nil {
		return nil, err
	}

	return repo.list(ctx, q, "failed to find statistics in window")
}

func (repo *statisticRepository) FindScoped(ctx context.Context, scope entity.StatisticScope, filter entity.FilterCriteria) ([]*entity.RegionStatistic, error) {
	q, err := querybuilder.ScopedStatistics(scope, filter)
	if err != nil {
		return nil, err
	}

	return repo.list(ctx, q, "failed to find scoped statistics")
}

func (repo *statisticRepository) FindNationJScores(ctx context.Context, filter entity.FilterCriteria) ([]*entity.RegionStatistic, error) {
	q, err := querybuilder.NationJScores(filter)
	if err != nil {
		return nil, err
	}

	return repo.list(ctx, q, "failed to find nation j-scores")
}

func (repo *statisticRepository) FindInit(ctx context.Context, cityID, districtID, subDistrictID int64, limit int) ([]*entity.RegionStatistic, error) {
	if limit <= 0 {
		return nil, errors.Errorf("invalid limit %d", limit)
	}

	q, err := querybuilder.InitStatistics(cityID, districtID, subDistrictID, uint64(limit))
	if err != nil {
		return nil, err
	}

	return repo.list(ctx, q, "failed to find init statistics")
}

func (repo *statisticRepository) FindParentNames(ctx context.Context, scope entity.StatisticScope, id int64) (map[int64]string, error) {
	q, err := querybuilder.ParentNames(scope, id)
	if err != nil {
		return nil, err
	}

	rows, err := repo.exec.rows(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find parent names")
	}

	names := make(map[int64]string, len(rows))
	for _, row := range rows {
		if subID, name, ok := normalizer.ToParentName(row); ok {
			names[subID] = name
		}
	}

	return names, nil
}

func (repo *statisticRepository) list(ctx context.Context, q querybuilder.Query, msg string) ([]*entity.RegionStatistic, error) {
	rows, err := repo.exec.rows(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, msg)
	}

	stats := make([]*entity.RegionStatistic, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, normalizer.ToRegionStatistic(row))
	}

	return stats, nil
}
