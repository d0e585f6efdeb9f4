package querybuilder

import (
	"locinsight/internal/domain/entity"
	"locinsight/internal/errors"

	sq "github.com/Masterminds/squirrel"
)

var scoreColumns = []string{
	"city.city_name AS city_name",
	"district.district_name AS district_name",
	"sub_district.sub_district_name AS sub_district_name",
	"li.city_id AS city_id",
	"li.district_id AS district_id",
	"li.sub_district_id AS sub_district_id",
	"li.j_score_rank",
	"li.j_score_per",
	"li.j_score",
	"li.j_score_per_non_outliers",
	"li.j_score_non_outliers",
	"li.ref_date",
}

var summaryColumns = []string{
	"li.target_item",
	"li.avg_val",
	"li.med_val",
	"li.std_val",
	"li.max_val",
	"li.min_val",
}

func statisticBase(columns ...string) sq.SelectBuilder {
	return builder().
		Select(columns...).
		From("loc_info_statistics li").
		LeftJoin("city ON li.city_id = city.city_id").
		LeftJoin("district ON li.district_id = district.district_id").
		LeftJoin("sub_district ON li.sub_district_id = sub_district.sub_district_id")
}

func compositeScore() []sq.Sqlizer {
	return []sq.Sqlizer{sq.Eq{"li.target_item": entity.CompositeScoreItem}}
}

func statisticRegionCascade(f entity.FilterCriteria) []sq.Sqlizer {
	return regionCascade("li.city_id", "li.district_id", "li.sub_district_id", f)
}

// JScoreStatistics selects composite J-Score rows by region cascade, periods and J-Score bounds.
func JScoreStatistics(f entity.FilterCriteria) (Query, error) {
	return toQuery(where(statisticBase(scoreColumns...),
		compositeScore(),
		statisticRegionCascade(f),
		periodCondition("li.ref_date", f.Periods),
		rangeCondition("li.j_score_non_outliers", f.JScoreMin, f.JScoreMax),
	))
}

// SimilarityAnchor selects the composite J-Score row the similarity window is derived from.
func SimilarityAnchor(f entity.FilterCriteria) (Query, error) {
	return toQuery(where(statisticBase(scoreColumns...),
		compositeScore(),
		statisticRegionCascade(f),
		periodCondition("li.ref_date", f.Periods),
	).Limit(1))
}

// StatisticsInWindow selects composite J-Score rows of any region whose outlier-excluded score
// lies inside w, bounds included.
func StatisticsInWindow(w entity.Window, periods []string) (Query, error) {
	return toQuery(where(statisticBase(scoreColumns...),
		compositeScore(),
		periodCondition("li.ref_date", periods),
		[]sq.Sqlizer{atLeast("li.j_score_non_outliers", w.Min), atMost("li.j_score_non_outliers", w.Max)},
	))
}

// levelPattern encodes an aggregation level as the null pattern of the region ids.
func levelPattern(l entity.AggregationLevel) ([]sq.Sqlizer, error) {
	switch l {
	case entity.LevelSubDistrict:
		return []sq.Sqlizer{sq.NotEq{"li.city_id": nil, "li.district_id": nil, "li.sub_district_id": nil}}, nil
	case entity.LevelCity:
		return []sq.Sqlizer{sq.NotEq{"li.city_id": nil, "li.sub_district_id": nil}, sq.Eq{"li.district_id": nil}}, nil
	case entity.LevelDistrict:
		return []sq.Sqlizer{sq.Eq{"li.city_id": nil}, sq.NotEq{"li.district_id": nil, "li.sub_district_id": nil}}, nil
	default:
		return nil, errors.Errorf("unknown aggregation level %q", l)
	}
}

// ScopedStatistics selects every target item of one statistic view.
//
// The nation view applies no region filter. The sub-district view cascades city > district >
// sub-district. The city and district views read aggregates whose other parent id is NULL, so they
// filter on their own level only.
func ScopedStatistics(scope entity.StatisticScope, f entity.FilterCriteria) (Query, error) {
	pattern, err := levelPattern(scope.Level())
	if err != nil {
		return Query{}, err
	}

	var regionConds []sq.Sqlizer
	switch scope {
	case entity.ScopeCity:
		regionConds = cascade(idLevel("li.city_id", f.City))
	case entity.ScopeDistrict:
		regionConds = cascade(idLevel("li.district_id", f.District))
	case entity.ScopeSubDistrict:
		regionConds = statisticRegionCascade(f)
	}

	columns := append(append([]string{}, scoreColumns...), summaryColumns...)

	return toQuery(where(statisticBase(columns...),
		pattern,
		regionConds,
		periodCondition("li.ref_date", f.Periods),
	))
}

// NationJScores selects fully resolved J-Score rows of every target item, region cascade only.
func NationJScores(f entity.FilterCriteria) (Query, error) {
	pattern, err := levelPattern(entity.LevelSubDistrict)
	if err != nil {
		return Query{}, err
	}

	columns := append(append([]string{}, scoreColumns...), "li.target_item")

	return toQuery(where(statisticBase(columns...),
		pattern,
		statisticRegionCascade(f),
	))
}

// InitStatistics selects the summary rows of one region at the latest reference date.
func InitStatistics(cityID, districtID, subDistrictID int64, limit uint64) (Query, error) {
	columns := append(append([]string{}, scoreColumns...), summaryColumns...)

	return toQuery(statisticBase(columns...).
		Where(sq.Eq{
			"li.city_id":         cityID,
			"li.district_id":     districtID,
			"li.sub_district_id": subDistrictID,
		}).
		Where("li.ref_date = (SELECT MAX(ref_date) FROM loc_info_statistics)").
		Limit(limit))
}

// ParentNames maps sub-districts to the name of the parent the given view lacks: district
// names for a city, city names for a district.
func ParentNames(scope entity.StatisticScope, id int64) (Query, error) {
	switch scope {
	case entity.ScopeCity:
		return toQuery(builder().
			Select("sd.sub_district_id AS sub_district_id", "district.district_name AS name").
			From("sub_district sd").
			Join("district ON sd.district_id = district.district_id").
			Where(sq.Eq{"sd.city_id": id}))
	case entity.ScopeDistrict:
		return toQuery(builder().
			Select("sd.sub_district_id AS sub_district_id", "city.city_name AS name").
			From("sub_district sd").
			Join("city ON sd.city_id = city.city_id").
			Where(sq.Eq{"sd.district_id": id}))
	default:
		return Query{}, errors.Errorf("scope %q has no parent name mapping", scope)
	}
}
