package querybuilder

import (
	"strings"
	"testing"

	"locinsight/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)

	return &d
}

func TestLocationInfos_DistrictWithoutCityOmitsRegion(t *testing.T) {
	q, err := LocationInfos(entity.FilterCriteria{District: ptr(int64(5)), SubDistrict: ptr(int64(9))})
	require.NoError(t, err)

	assert.NotContains(t, q.SQL, "loc_info.city_id = ?")
	assert.NotContains(t, q.SQL, "loc_info.district_id = ?")
	assert.NotContains(t, q.SQL, "loc_info.sub_district_id = ?")
	assert.NotContains(t, q.SQL, "WHERE")
	assert.Empty(t, q.Args)
}

func TestLocationInfos_RegionCascade(t *testing.T) {
	tests := []struct {
		name     string
		filter   entity.FilterCriteria
		wantArgs []any
	}{
		{
			name:     "city only",
			filter:   entity.FilterCriteria{City: ptr(int64(1))},
			wantArgs: []any{int64(1)},
		},
		{
			name:     "city and district",
			filter:   entity.FilterCriteria{City: ptr(int64(1)), District: ptr(int64(2))},
			wantArgs: []any{int64(1), int64(2)},
		},
		{
			name:     "full path",
			filter:   entity.FilterCriteria{City: ptr(int64(1)), District: ptr(int64(2)), SubDistrict: ptr(int64(3))},
			wantArgs: []any{int64(1), int64(2), int64(3)},
		},
		{
			name:     "sub district without district stops at city",
			filter:   entity.FilterCriteria{City: ptr(int64(1)), SubDistrict: ptr(int64(3))},
			wantArgs: []any{int64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := LocationInfos(tt.filter)
			require.NoError(t, err)

			assert.Equal(t, tt.wantArgs, q.Args)
			assert.Contains(t, q.SQL, "loc_info.city_id = ?")
		})
	}
}

func TestLocationInfos_Periods(t *testing.T) {
	t.Run("single period is an equality", func(t *testing.T) {
		q, err := LocationInfos(entity.FilterCriteria{Periods: []string{"2024-06"}})
		require.NoError(t, err)

		assert.Contains(t, q.SQL, "WHERE loc_info.y_m = ?")
		assert.NotContains(t, q.SQL, " OR ")
		assert.Equal(t, []any{"2024-06"}, q.Args)
	})

	t.Run("multiple periods are an OR group in input order", func(t *testing.T) {
		periods := []string{"2024-06", "2023-12", "2024-03"}

		q, err := LocationInfos(entity.FilterCriteria{Periods: periods})
		require.NoError(t, err)

		assert.Equal(t, len(periods), strings.Count(q.SQL, "loc_info.y_m = ?"))
		assert.Contains(t, q.SQL, "(loc_info.y_m = ? OR loc_info.y_m = ? OR loc_info.y_m = ?)")
		assert.Equal(t, []any{"2024-06", "2023-12", "2024-03"}, q.Args)
	})
}

func TestLocationInfos_Bounds(t *testing.T) {
	q, err := LocationInfos(entity.FilterCriteria{
		Bounds: map[entity.Metric]entity.Bound{
			entity.MetricApartPrice: {Max: dec("90000")},
			entity.MetricShop:       {Min: dec("10"), Max: dec("200")},
			entity.MetricIncome:     {},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, q.SQL, "loc_info.shop >= CAST(? AS NUMERIC)")
	assert.Contains(t, q.SQL, "loc_info.shop <= CAST(? AS NUMERIC)")
	assert.Contains(t, q.SQL, "loc_info.apart_price <= CAST(? AS NUMERIC)")
	assert.NotContains(t, q.SQL, "loc_info.apart_price >=")
	assert.NotContains(t, q.SQL, "loc_info.income >=")
	assert.NotContains(t, q.SQL, "loc_info.income <=")
	assert.Equal(t, []any{"10", "200", "90000"}, q.Args)
}

func TestLocationInfosForRegion_MatchesNullIDs(t *testing.T) {
	q, err := LocationInfosForRegion(entity.Region{CityID: ptr(int64(1)), SubDistrictID: ptr(int64(3))}, []string{"2024-06"})
	require.NoError(t, err)

	assert.Contains(t, q.SQL, "loc_info.city_id = ?")
	assert.Contains(t, q.SQL, "loc_info.district_id IS NULL")
	assert.Contains(t, q.SQL, "loc_info.sub_district_id = ?")
	assert.Equal(t, []any{int64(1), int64(3), "2024-06"}, q.Args)
}

func TestLocationReport(t *testing.T) {
	q, err := LocationReport(42)
	require.NoError(t, err)

	assert.Equal(t, "SELECT resident, work_pop, house, shop, income FROM loc_info WHERE sub_district_id = ? ORDER BY y_m DESC LIMIT 1", q.SQL)
	assert.Equal(t, []any{int64(42)}, q.Args)
}

func TestDataDates(t *testing.T) {
	q, err := DataDates()
	require.NoError(t, err)

	assert.Equal(t, "SELECT y_m FROM loc_info GROUP BY y_m ORDER BY y_m", q.SQL)
}
