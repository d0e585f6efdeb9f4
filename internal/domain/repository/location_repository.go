// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"locinsight/internal/domain/entity"
	"locinsight/internal/errors"
)

// Domain-specific errors for location metrics.
var (
	// ErrLocationInfoNotFound is returned when a region has no location snapshot.
	ErrLocationInfoNotFound = errors.New("location info not found")
	// ErrReportNotFound is returned when a sub-district has no report metrics.
	ErrReportNotFound = errors.New("location report not found")
)

// LocationRepository reads the per sub-district metric snapshots.
type LocationRepository interface {
	// FindLocationInfos returns the snapshots matching the region cascade, periods and metric bounds.
	FindLocationInfos(ctx context.Context, filter entity.FilterCriteria) ([]*entity.RegionLocationInfo, error)

	// FindLocationInfosForRegion returns the snapshots of exactly one region. A nil id matches only NULL.
	FindLocationInfosForRegion(ctx context.Context, region entity.Region, periods []string) ([]*entity.RegionLocationInfo, error)

	// FindLocationInfoByRegion returns the latest snapshot of a fully resolved region.
	FindLocationInfoByRegion(ctx context.Context, cityID, districtID, subDistrictID int64) (*entity.RegionLocationInfo, error)

	// FindLocationReport returns the latest report metrics of a sub-district.
	FindLocationReport(ctx context.Context, subDistrictID int64) (*entity.LocationReport, error)

	// ListRegions lists every sub-district with its parents.
	ListRegions(ctx context.Context) ([]*entity.Region, error)

	// ListDataDates lists the distinct snapshot periods in ascending order.
	ListDataDates(ctx context.Context) ([]string, error)
}
