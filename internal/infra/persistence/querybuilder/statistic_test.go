package querybuilder

import (
	"strings"
	"testing"

	"locinsight/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJScoreStatistics(t *testing.T) {
	q, err := JScoreStatistics(entity.FilterCriteria{
		City:      ptr(int64(1)),
		Periods:   []string{"2024-06", "2024-03"},
		JScoreMin: dec("1.5"),
		JScoreMax: dec("8"),
	})
	require.NoError(t, err)

	assert.Contains(t, q.SQL, "FROM loc_info_statistics li")
	assert.Contains(t, q.SQL, "li.target_item = ?")
	assert.Contains(t, q.SQL, "(li.ref_date = ? OR li.ref_date = ?)")
	assert.Contains(t, q.SQL, "li.j_score_non_outliers >= CAST(? AS NUMERIC)")
	assert.Contains(t, q.SQL, "li.j_score_non_outliers <= CAST(? AS NUMERIC)")
	assert.Equal(t, []any{entity.CompositeScoreItem, int64(1), "2024-06", "2024-03", "1.5", "8"}, q.Args)
}

func TestSimilarityAnchor_TakesFirstRow(t *testing.T) {
	q, err := SimilarityAnchor(entity.FilterCriteria{City: ptr(int64(1)), District: ptr(int64(2)), SubDistrict: ptr(int64(3))})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(q.SQL, "LIMIT 1"))
	assert.Equal(t, []any{entity.CompositeScoreItem, int64(1), int64(2), int64(3)}, q.Args)
}

func TestStatisticsInWindow_IsInclusiveAndRegionFree(t *testing.T) {
	w := entity.Window{Min: decimal.NewFromInt(90), Max: decimal.NewFromInt(110)}

	q, err := StatisticsInWindow(w, []string{"2024-06"})
	require.NoError(t, err)

	assert.NotContains(t, q.SQL, "li.city_id = ?")
	assert.Contains(t, q.SQL, "li.j_score_non_outliers >= CAST(? AS NUMERIC)")
	assert.Contains(t, q.SQL, "li.j_score_non_outliers <= CAST(? AS NUMERIC)")
	assert.Equal(t, []any{entity.CompositeScoreItem, "2024-06", "90", "110"}, q.Args)
}

func TestScopedStatistics_NullPatterns(t *testing.T) {
	filter := entity.FilterCriteria{
		City:        ptr(int64(1)),
		District:    ptr(int64(2)),
		SubDistrict: ptr(int64(3)),
		Periods:     []string{"2024-06"},
	}

	t.Run("nation ignores region filters", func(t *testing.T) {
		q, err := ScopedStatistics(entity.ScopeNation, filter)
		require.NoError(t, err)

		assert.Contains(t, q.SQL, "li.city_id IS NOT NULL")
		assert.Contains(t, q.SQL, "li.district_id IS NOT NULL")
		assert.Contains(t, q.SQL, "li.sub_district_id IS NOT NULL")
		assert.Equal(t, []any{"2024-06"}, q.Args)
	})

	t.Run("city reads district-less rows filtered by city only", func(t *testing.T) {
		q, err := ScopedStatistics(entity.ScopeCity, filter)
		require.NoError(t, err)

		assert.Contains(t, q.SQL, "li.district_id IS NULL")
		assert.Contains(t, q.SQL, "li.city_id = ?")
		assert.NotContains(t, q.SQL, "li.district_id = ?")
		assert.Equal(t, []any{int64(1), "2024-06"}, q.Args)
	})

	t.Run("district reads city-less rows filtered by district only", func(t *testing.T) {
		q, err := ScopedStatistics(entity.ScopeDistrict, filter)
		require.NoError(t, err)

		assert.Contains(t, q.SQL, "li.city_id IS NULL")
		assert.Contains(t, q.SQL, "li.district_id = ?")
		assert.NotContains(t, q.SQL, "li.city_id = ?")
		assert.Equal(t, []any{int64(2), "2024-06"}, q.Args)
	})

	t.Run("sub district cascades", func(t *testing.T) {
		q, err := ScopedStatistics(entity.ScopeSubDistrict, entity.FilterCriteria{District: ptr(int64(2))})
		require.NoError(t, err)

		assert.NotContains(t, q.SQL, "li.district_id = ?")
		assert.Empty(t, q.Args)
	})

	t.Run("unknown scope fails", func(t *testing.T) {
		_, err := ScopedStatistics(entity.StatisticScope("planet"), filter)
		assert.Error(t, err)
	})
}

func TestNationJScores_IgnoresPeriods(t *testing.T) {
	q, err := NationJScores(entity.FilterCriteria{City: ptr(int64(1)), Periods: []string{"2024-06"}})
	require.NoError(t, err)

	assert.NotContains(t, q.SQL, "li.ref_date = ?")
	assert.Equal(t, []any{int64(1)}, q.Args)
}

func TestInitStatistics(t *testing.T) {
	q, err := InitStatistics(1, 1, 3, 10)
	require.NoError(t, err)

	assert.Contains(t, q.SQL, "li.ref_date = (SELECT MAX(ref_date) FROM loc_info_statistics)")
	assert.True(t, strings.HasSuffix(q.SQL, "LIMIT 10"))
	assert.Equal(t, []any{int64(1), int64(1), int64(3)}, q.Args)
}

func TestParentNames(t *testing.T) {
	q, err := ParentNames(entity.ScopeCity, 11)
	require.NoError(t, err)
	assert.Contains(t, q.SQL, "district.district_name AS name")
	assert.Contains(t, q.SQL, "sd.city_id = ?")
	assert.Equal(t, []any{int64(11)}, q.Args)

	q, err = ParentNames(entity.ScopeDistrict, 22)
	require.NoError(t, err)
	assert.Contains(t, q.SQL, "city.city_name AS name")
	assert.Contains(t, q.SQL, "sd.district_id = ?")

	_, err = ParentNames(entity.ScopeNation, 1)
	assert.Error(t, err)
}
