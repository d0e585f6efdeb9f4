package impl

import (
	"context"
	"testing"

	"locinsight/internal/domain/entity"
	domainerrors "locinsight/internal/domain/errors"
	"locinsight/internal/domain/repository"
	"locinsight/internal/errors"
	mockRepo "locinsight/internal/mocks/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLocationService(t *testing.T) (*locationService, *mockRepo.MockLocationRepository, *mockRepo.MockStatisticRepository) {
	t.Helper()

	locationRepo := mockRepo.NewMockLocationRepository(t)
	statisticRepo := mockRepo.NewMockStatisticRepository(t)

	svc := NewLocationService(LocationServiceParams{
		LocationRepo:  locationRepo,
		StatisticRepo: statisticRepo,
		Logger:        testLogger(),
	}).(*locationService)

	return svc, locationRepo, statisticRepo
}

func testRegion(city, district, sub int64) entity.Region {
	return entity.Region{CityID: ptr(city), DistrictID: ptr(district), SubDistrictID: ptr(sub)}
}

func TestLocationService_ListLocationInfo_MergesOnRegion(t *testing.T) {
	svc, locationRepo, statisticRepo := newTestLocationService(t)
	ctx := context.Background()
	filter := entity.FilterCriteria{City: ptr(int64(1)), Periods: []string{"2024-06"}}

	locationRepo.EXPECT().FindLocationInfos(ctx, filter).Return([]*entity.RegionLocationInfo{
		{Region: testRegion(1, 2, 3), LocationInfo: entity.LocationInfo{Shop: ptr(int64(10))}},
		{Region: testRegion(1, 2, 4), LocationInfo: entity.LocationInfo{Shop: ptr(int64(20))}},
	}, nil)
	statisticRepo.EXPECT().FindJScores(ctx, filter).Return([]*entity.RegionStatistic{
		{Region: testRegion(1, 2, 4), Statistic: entity.Statistic{JScore: ptr(7.5)}},
	}, nil)

	records, err := svc.ListLocationInfo(ctx, filter)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, int64(4), *records[0].SubDistrictID)
	assert.Equal(t, int64(20), *records[0].Shop)
	assert.Equal(t, 7.5, *records[0].JScore)
}

func TestLocationService_ListLocationInfo_DatabaseError(t *testing.T) {
	svc, locationRepo, _ := newTestLocationService(t)
	ctx := context.Background()

	locationRepo.EXPECT().FindLocationInfos(ctx, mock.Anything).Return(nil, errors.New("canceling statement due to statement timeout"))

	_, err := svc.ListLocationInfo(ctx, entity.FilterCriteria{})

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "DATABASE_ERROR", appErr.ErrorCode())
	assert.NotContains(t, appErr.Message(), "statement timeout")
}

func TestLocationService_ListSimilarLocations(t *testing.T) {
	svc, locationRepo, statisticRepo := newTestLocationService(t)
	ctx := context.Background()
	periods := []string{"2024-06"}
	filter := entity.FilterCriteria{City: ptr(int64(1)), District: ptr(int64(2)), SubDistrict: ptr(int64(3)), Periods: periods}
	anchor := &entity.RegionStatistic{Region: testRegion(1, 2, 3), Statistic: entity.Statistic{JScoreNonOutliers: ptr(100.0)}}

	statisticRepo.EXPECT().FindSimilarityAnchor(ctx, filter).Return(anchor, nil)
	statisticRepo.EXPECT().
		FindInWindow(ctx, mock.MatchedBy(func(w entity.Window) bool {
			return w.Min.Equal(decimal.NewFromInt(90)) && w.Max.Equal(decimal.NewFromInt(110))
		}), periods).
		Return([]*entity.RegionStatistic{
			{Region: testRegion(1, 2, 3), Statistic: entity.Statistic{JScoreNonOutliers: ptr(100.0)}},
			{Region: testRegion(5, 6, 7), Statistic: entity.Statistic{JScoreNonOutliers: ptr(91.0)}},
		}, nil)
	locationRepo.EXPECT().FindLocationInfosForRegion(ctx, testRegion(1, 2, 3), periods).
		Return([]*entity.RegionLocationInfo{{Region: testRegion(1, 2, 3), LocationInfo: entity.LocationInfo{YM: ptr("2024-06")}}}, nil)
	locationRepo.EXPECT().FindLocationInfosForRegion(ctx, testRegion(5, 6, 7), periods).
		Return([]*entity.RegionLocationInfo{
			{Region: testRegion(5, 6, 7), LocationInfo: entity.LocationInfo{YM: ptr("2024-06"), Shop: ptr(int64(3))}},
			{Region: testRegion(5, 6, 7), LocationInfo: entity.LocationInfo{YM: ptr("2024-06"), Shop: ptr(int64(4))}},
		}, nil)

	result, err := svc.ListSimilarLocations(ctx, filter)
	require.NoError(t, err)

	assert.Equal(t, anchor, result.Anchor)
	assert.True(t, result.Window.Contains(decimal.NewFromInt(90)))
	assert.True(t, result.Window.Contains(decimal.NewFromInt(110)))
	require.Len(t, result.Records, 3)
	assert.Equal(t, 91.0, *result.Records[1].JScoreNonOutliers)
	assert.Equal(t, int64(4), *result.Records[2].Shop)
}

func TestLocationService_ListSimilarLocations_NoAnchor(t *testing.T) {
	svc, _, statisticRepo := newTestLocationService(t)
	ctx := context.Background()

	statisticRepo.EXPECT().FindSimilarityAnchor(ctx, mock.Anything).Return(nil, repository.ErrStatisticNotFound)

	_, err := svc.ListSimilarLocations(ctx, entity.FilterCriteria{})
	assert.ErrorIs(t, err, domainerrors.ErrAnchorNotFound)
	statisticRepo.AssertNotCalled(t, "FindInWindow", mock.Anything, mock.Anything, mock.Anything)
}

func TestLocationService_ListSimilarLocations_AnchorWithoutScore(t *testing.T) {
	svc, _, statisticRepo := newTestLocationService(t)
	ctx := context.Background()

	statisticRepo.EXPECT().FindSimilarityAnchor(ctx, mock.Anything).
		Return(&entity.RegionStatistic{Region: testRegion(1, 2, 3)}, nil)

	_, err := svc.ListSimilarLocations(ctx, entity.FilterCriteria{})
	assert.ErrorIs(t, err, domainerrors.ErrPreconditionFailed)
}

func TestLocationService_GetLocationInfoByRegion_NotFound(t *testing.T) {
	svc, locationRepo, _ := newTestLocationService(t)
	ctx := context.Background()

	locationRepo.EXPECT().FindLocationInfoByRegion(ctx, int64(1), int64(2), int64(3)).Return(nil, repository.ErrLocationInfoNotFound)

	_, err := svc.GetLocationInfoByRegion(ctx, 1, 2, 3)
	assert.ErrorIs(t, err, domainerrors.ErrRegionNotFound)
}

func TestLocationService_GetReport(t *testing.T) {
	svc, locationRepo, _ := newTestLocationService(t)
	ctx := context.Background()
	report := &entity.LocationReport{Resident: ptr(int64(1000))}

	locationRepo.EXPECT().FindLocationReport(ctx, int64(3)).Return(report, nil).Once()
	locationRepo.EXPECT().FindLocationReport(ctx, int64(4)).Return(nil, repository.ErrReportNotFound).Once()

	got, err := svc.GetReport(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, report, got)

	_, err = svc.GetReport(ctx, 4)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
