package usecase

import (
	"context"

	"locinsight/internal/domain/entity"
)

// LocationUsecase defines the interface for the location metric views.
type LocationUsecase interface {
	// ListLocationInfo joins the filtered location snapshots with the composite J-Score of each region.
	ListLocationInfo(ctx context.Context, filter entity.FilterCriteria) ([]*entity.MergedRecord, error)
	// ListSimilarLocations lists the regions whose composite J-Score lies within 10% of the filter's region.
	ListSimilarLocations(ctx context.Context, filter entity.FilterCriteria) (*entity.SimilarResult, error)
	ListRegions(ctx context.Context) ([]*entity.Region, error)
	ListDataDates(ctx context.Context) ([]string, error)
	GetLocationInfoByRegion(ctx context.Context, cityID, districtID, subDistrictID int64) (*entity.RegionLocationInfo, error)
	GetReport(ctx context.Context, subDistrictID int64) (*entity.LocationReport, error)
}
