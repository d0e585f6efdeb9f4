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

// locationRepository reads loc_info through built queries.
type locationRepository struct {
	exec *queryExecutor
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB, cfg *config.Config) repository.LocationRepository {
	return &locationRepository{exec: newQueryExecutor(db, statementTimeout(cfg))}
}

func (repo *locationRepository) FindLocationInfos(ctx context.Context, filter entity.FilterCriteria) ([]*entity.RegionLocationInfo, error) {
	q, err := querybuilder.LocationInfos(filter)
	if err != nil {
		return nil, err
	}

	return repo.list(ctx, q, "failed to find location infos")
}

func (repo *locationRepository) FindLocationInfosForRegion(ctx context.Context, region entity.Region, periods []string) ([]*entity.RegionLocationInfo, error) {
	q, err := querybuilder.LocationInfosForRegion(region, periods)
	if err != nil {
		return nil, err
	}

	return repo.list(ctx, q, "failed to find location infos for region")
}

func (repo *locationRepository) FindLocationInfoByRegion(ctx context.Context, cityID, districtID, subDistrictID int64) (*entity.RegionLocationInfo, error) {
	q, err := querybuilder.LocationInfoByIDs(cityID, districtID, subDistrictID)
	if err != nil {
		return nil, err
	}

	row, ok, err := repo.exec.first(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location info by region")
	}
	if !ok {
		return nil, repository.ErrLocationInfoNotFound
	}

	return normalizer.ToRegionLocationInfo(row), nil
}

func (repo *locationRepository) FindLocationReport(ctx context.Context, subDistrictID int64) (*entity.LocationReport, error) {
	q, err := querybuilder.LocationReport(subDistrictID)
	if err != nil {
		return nil, err
	}

	row, ok, err := repo.exec.first(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location report")
	}
	if !ok {
		return nil, repository.ErrReportNotFound
	}

	return normalizer.ToLocationReport(row), nil
}

func (repo *locationRepository) ListRegions(ctx context.Context) ([]*entity.Region, error) {
	q, err := querybuilder.Regions()
	if err != nil {
		return nil, err
	}

	rows, err := repo.exec.rows(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	regions := make([]*entity.Region, 0, len(rows))
	for _, row := range rows {
		region := normalizer.ToRegion(row)
		regions = append(regions, &region)
	}

	return regions, nil
}

func (repo *locationRepository) ListDataDates(ctx context.Context) ([]string, error) {
	q, err := querybuilder.DataDates()
	if err != nil {
		return nil, err
	}

	rows, err := repo.exec.rows(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list data dates")
	}

	dates := make([]string, 0, len(rows))
	for _, row := range rows {
		if ym := row.String("y_m"); ym != nil {
			dates = append(dates, *ym)
		}
	}

	return dates, nil
}

func (repo *locationRepository) list(ctx context.Context, q querybuilder.Query, msg string) ([]*entity.RegionLocationInfo, error) {
	rows, err := repo.exec.rows(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, msg)
	}

	infos := make([]*entity.RegionLocationInfo, 0, len(rows))
	for _, row := range rows {
		infos = append(infos, normalizer.ToRegionLocationInfo(row))
	}

	return infos, nil
}
