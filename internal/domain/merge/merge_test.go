package merge

import (
	"testing"

	"locinsight/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func region(city, district, sub int64) entity.Region {
	return entity.Region{CityID: ptr(city), DistrictID: ptr(district), SubDistrictID: ptr(sub)}
}

func location(r entity.Region, shop int64) *entity.MergedRecord {
	return &entity.MergedRecord{Region: r, LocationInfo: &entity.LocationInfo{Shop: ptr(shop)}}
}

func statistic(r entity.Region, score float64) *entity.MergedRecord {
	return &entity.MergedRecord{Region: r, Statistic: &entity.Statistic{JScore: ptr(score)}}
}

func TestMerge_ShorterSideDrives(t *testing.T) {
	shared := region(1, 1, 1)
	onlyA := region(1, 1, 2)

	a := []*entity.MergedRecord{location(shared, 10), location(onlyA, 20)}
	b := []*entity.MergedRecord{
		statistic(region(2, 1, 1), 1),
		statistic(shared, 7.5),
		statistic(region(2, 1, 2), 2),
		statistic(region(2, 1, 3), 3),
		statistic(region(2, 1, 4), 4),
	}

	got := Merge(a, b)

	require.Len(t, got, 2)
	require.NotNil(t, got[0].LocationInfo)
	require.NotNil(t, got[0].Statistic)
	assert.Equal(t, int64(10), *got[0].Shop)
	assert.Equal(t, 7.5, *got[0].JScore)

	assert.Same(t, a[1], got[1])
	assert.Nil(t, got[1].Statistic)
}

func TestMerge_SwappingDrivingSideKeepsMatches(t *testing.T) {
	shared := region(1, 1, 1)
	locations := []*entity.MergedRecord{location(shared, 10), location(region(1, 1, 2), 20), location(region(1, 1, 3), 30)}
	stats := []*entity.MergedRecord{statistic(shared, 5)}

	forward := Merge(locations, stats)
	backward := Merge(stats, locations)

	require.Len(t, forward, 1)
	require.Len(t, backward, 1)
	assert.Equal(t, forward[0].Key(), backward[0].Key())
	assert.Equal(t, *forward[0].Shop, *backward[0].Shop)
	assert.Equal(t, *forward[0].JScore, *backward[0].JScore)
}

func TestMerge_TieLetsFirstArgumentDrive(t *testing.T) {
	a := []*entity.MergedRecord{location(region(1, 1, 1), 10)}
	b := []*entity.MergedRecord{statistic(region(9, 9, 9), 1)}

	got := Merge(a, b)

	require.Len(t, got, 1)
	assert.Same(t, a[0], got[0])
}

func TestMerge_FirstMatchWins(t *testing.T) {
	shared := region(1, 1, 1)
	a := []*entity.MergedRecord{location(shared, 10)}
	b := []*entity.MergedRecord{statistic(shared, 1), statistic(shared, 2)}

	got := Merge(a, b)

	require.Len(t, got, 1)
	assert.Equal(t, 1.0, *got[0].JScore)
}

func TestMerge_NonDrivingValuesWinOnCollision(t *testing.T) {
	shared := region(1, 1, 1)
	named := shared
	named.CityName = ptr("서울특별시")

	a := []*entity.MergedRecord{location(shared, 10)}
	b := []*entity.MergedRecord{location(named, 99), statistic(region(2, 2, 2), 1)}

	got := Merge(a, b)

	require.Len(t, got, 1)
	assert.Equal(t, int64(99), *got[0].Shop)
	assert.Equal(t, "서울특별시", *got[0].CityName)
}

func TestMerge_NullKeysMatch(t *testing.T) {
	cityLevel := entity.Region{CityID: ptr(int64(1)), SubDistrictID: ptr(int64(3))}

	got := Merge(
		[]*entity.MergedRecord{location(cityLevel, 10)},
		[]*entity.MergedRecord{statistic(cityLevel, 4), statistic(region(1, 1, 3), 8)},
	)

	require.Len(t, got, 1)
	assert.Equal(t, 4.0, *got[0].JScore)
}

func TestMerge_EmptyInputs(t *testing.T) {
	b := []*entity.MergedRecord{statistic(region(1, 1, 1), 1)}

	assert.Equal(t, b, Merge(nil, b))
	assert.Equal(t, b, Merge(b, nil))
	assert.Empty(t, Merge(nil, nil))
}

func TestFromLocationsAndStatistics(t *testing.T) {
	r := region(1, 2, 3)
	locs := FromLocations([]*entity.RegionLocationInfo{{Region: r, LocationInfo: entity.LocationInfo{Shop: ptr(int64(4))}}})
	stats := FromStatistics([]*entity.RegionStatistic{{Region: r, Statistic: entity.Statistic{JScore: ptr(2.0)}}})

	require.Len(t, locs, 1)
	require.Len(t, stats, 1)
	assert.Nil(t, locs[0].Statistic)
	assert.Nil(t, stats[0].LocationInfo)
	assert.Equal(t, int64(4), *locs[0].Shop)
	assert.Equal(t, 2.0, *stats[0].JScore)
}
