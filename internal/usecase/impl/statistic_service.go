package impl

import (
	"context"
	"log/slog"

	"locinsight/config"
	deliverycontext "locinsight/internal/delivery/context"
	"locinsight/internal/domain/entity"
	domainerrors "locinsight/internal/domain/errors"
	"locinsight/internal/domain/repository"
	"locinsight/internal/usecase"

	"go.uber.org/fx"
)

type statisticService struct {
	statisticRepo repository.StatisticRepository
	cfg           *config.StatisticConfig
	logger        *slog.Logger
}

// StatisticServiceParams holds dependencies for StatisticService, injected by Fx.
type StatisticServiceParams struct {
	fx.In

	StatisticRepo repository.StatisticRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewStatisticService creates a new statistic service instance
func NewStatisticService(params StatisticServiceParams) usecase.StatisticUsecase {
	return &statisticService{
		statisticRepo: params.StatisticRepo,
		cfg:           params.Config.Statistic,
		logger:        params.Logger,
	}
}

func (s *statisticService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *statisticService) ListStatistics(ctx context.Context, scope entity.StatisticScope, filter entity.FilterCriteria) ([]*entity.RegionStatistic, error) {
	var parentID *int64
	switch scope {
	case entity.ScopeNation, entity.ScopeSubDistrict:
	case entity.ScopeCity:
		if filter.City == nil {
			return nil, domainerrors.ErrPreconditionFailed.WithDetails("city is required for the city view")
		}
		parentID = filter.City
	case entity.ScopeDistrict:
		if filter.District == nil {
			return nil, domainerrors.ErrPreconditionFailed.WithDetails("district is required for the district view")
		}
		parentID = filter.District
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown statistic scope " + string(scope))
	}

	rows, err := s.statisticRepo.FindScoped(ctx, scope, filter)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find scoped statistics", nil)
	}

	if parentID == nil {
		return rows, nil
	}

	names, err := s.statisticRepo.FindParentNames(ctx, scope, *parentID)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find parent names", nil)
	}

	for _, row := range rows {
		name := parentName(names, row.SubDistrictID)
		if scope == entity.ScopeCity {
			row.DistrictName = &name
		} else {
			row.CityName = &name
		}
	}

	return rows, nil
}

func parentName(names map[int64]string, subDistrictID *int64) string {
	if subDistrictID == nil {
		return entity.MissingRegionName
	}
	if name, ok := names[*subDistrictID]; ok && name != "" {
		return name
	}

	return entity.MissingRegionName
}

func (s *statisticService) ListNationJScores(ctx context.Context, filter entity.FilterCriteria) ([]*entity.RegionStatistic, error) {
	rows, err := s.statisticRepo.FindNationJScores(ctx, filter)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find nation j-scores", nil)
	}

	return rows, nil
}

func (s *statisticService) ListInitStatistics(ctx context.Context) ([]*entity.RegionStatistic, error) {
	region := s.cfg.InitRegion

	rows, err := s.statisticRepo.FindInit(ctx, region.CityID, region.DistrictID, region.SubDistrictID, s.cfg.InitLimit)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find init statistics", nil)
	}

	return rows, nil
}
