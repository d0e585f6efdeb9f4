package impl

import (
	"context"
	"log/slog"

	deliverycontext "locinsight/internal/delivery/context"
	"locinsight/internal/domain/entity"
	domainerrors "locinsight/internal/domain/errors"
	"locinsight/internal/domain/merge"
	"locinsight/internal/domain/repository"
	"locinsight/internal/usecase"

	"go.uber.org/fx"
)

type locationService struct {
	locationRepo  repository.LocationRepository
	statisticRepo repository.StatisticRepository
	logger        *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo  repository.LocationRepository
	StatisticRepo repository.StatisticRepository
	Logger        *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo:  params.LocationRepo,
		statisticRepo: params.StatisticRepo,
		logger:        params.Logger,
	}
}

func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListLocationInfo fetches both row sets independently and joins them on the region key.
func (s *locationService) ListLocationInfo(ctx context.Context, filter entity.FilterCriteria) ([]*entity.MergedRecord, error) {
	locations, err := s.locationRepo.FindLocationInfos(ctx, filter)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find location infos", nil)
	}

	statistics, err := s.statisticRepo.FindJScores(ctx, filter)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find j-scores", nil)
	}

	return merge.Merge(merge.FromLocations(locations), merge.FromStatistics(statistics)), nil
}

func (s *locationService) ListSimilarLocations(ctx context.Context, filter entity.FilterCriteria) (*entity.SimilarResult, error) {
	anchor, err := s.statisticRepo.FindSimilarityAnchor(ctx, filter)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find similarity anchor", map[error]*domainerrors.BaseError{
			repository.ErrStatisticNotFound: domainerrors.ErrAnchorNotFound,
		})
	}

	window, err := anchor.SimilarityWindow()
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "compute similarity window", map[error]*domainerrors.BaseError{
			entity.ErrAnchorScoreMissing: domainerrors.ErrPreconditionFailed.WithDetails(err.Error()),
		})
	}

	similar, err := s.statisticRepo.FindInWindow(ctx, window, filter.Periods)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find statistics in window", nil)
	}

	records := make([]*entity.MergedRecord, 0, len(similar))
	for _, stat := range similar {
		locations, err := s.locationRepo.FindLocationInfosForRegion(ctx, stat.Region, filter.Periods)
		if err != nil {
			return nil, translate(ctx, s.log(ctx), err, "find location infos for region", nil)
		}

		for _, loc := range locations {
			info, score := loc.LocationInfo, stat.Statistic
			records = append(records, &entity.MergedRecord{
				Region:       loc.Region,
				LocationInfo: &info,
				Statistic:    &score,
			})
		}
	}

	s.log(ctx).Debug("Similar locations resolved",
		slog.String("window_min", window.Min.String()),
		slog.String("window_max", window.Max.String()),
		slog.Int("regions", len(similar)),
		slog.Int("records", len(records)))

	return &entity.SimilarResult{Anchor: anchor, Window: window, Records: records}, nil
}

func (s *locationService) ListRegions(ctx context.Context) ([]*entity.Region, error) {
	regions, err := s.locationRepo.ListRegions(ctx)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "list regions", nil)
	}

	return regions, nil
}

func (s *locationService) ListDataDates(ctx context.Context) ([]string, error) {
	dates, err := s.locationRepo.ListDataDates(ctx)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "list data dates", nil)
	}

	return dates, nil
}

func (s *locationService) GetLocationInfoByRegion(ctx context.Context, cityID, districtID, subDistrictID int64) (*entity.RegionLocationInfo, error) {
	info, err := s.locationRepo.FindLocationInfoByRegion(ctx, cityID, districtID, subDistrictID)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find location info by region", map[error]*domainerrors.BaseError{
			repository.ErrLocationInfoNotFound: domainerrors.ErrRegionNotFound,
		})
	}

	return info, nil
}

func (s *locationService) GetReport(ctx context.Context, subDistrictID int64) (*entity.LocationReport, error) {
	report, err := s.locationRepo.FindLocationReport(ctx, subDistrictID)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find location report", map[error]*domainerrors.BaseError{
			repository.ErrReportNotFound: domainerrors.ErrNotFound.WithDetails("no report for this sub-district"),
		})
	}

	return report, nil
}
