package querybuilder

import (
	"locinsight/internal/domain/entity"

	sq "github.com/Masterminds/squirrel"
)

var locationColumns = []string{
	"city.city_name AS city_name",
	"district.district_name AS district_name",
	"sub_district.sub_district_name AS sub_district_name",
	"loc_info.city_id AS city_id",
	"loc_info.district_id AS district_id",
	"loc_info.sub_district_id AS sub_district_id",
	"loc_info.loc_info_id",
	"loc_info.shop",
	"loc_info.move_pop",
	"loc_info.sales",
	"loc_info.work_pop",
	"loc_info.income",
	"loc_info.spend",
	"loc_info.house",
	"loc_info.resident",
	"loc_info.apart_price",
	"loc_info.y_m",
}

func locationBase() sq.SelectBuilder {
	return builder().
		Select(locationColumns...).
		From("loc_info").
		LeftJoin("city ON loc_info.city_id = city.city_id").
		LeftJoin("district ON loc_info.district_id = district.district_id").
		LeftJoin("sub_district ON loc_info.sub_district_id = sub_district.sub_district_id")
}

// LocationInfos selects location metrics filtered by region cascade, periods and metric bounds.
func LocationInfos(f entity.FilterCriteria) (Query, error) {
	var bounds []sq.Sqlizer
	for _, m := range entity.Metrics {
		b, ok := f.Bound(m)
		if !ok {
			continue
		}
		bounds = append(bounds, rangeCondition("loc_info."+string(m), b.Min, b.Max)...)
	}

	return toQuery(where(locationBase(),
		regionCascade("loc_info.city_id", "loc_info.district_id", "loc_info.sub_district_id", f),
		periodCondition("loc_info.y_m", f.Periods),
		bounds,
	))
}

// LocationInfosForRegion selects the location rows of exactly one region for the given periods.
func LocationInfosForRegion(r entity.Region, periods []string) (Query, error) {
	return toQuery(where(locationBase(),
		[]sq.Sqlizer{regionMatch("loc_info.city_id", "loc_info.district_id", "loc_info.sub_district_id", r)},
		periodCondition("loc_info.y_m", periods),
	))
}

// LocationInfoByIDs selects the first location row of a fully resolved region.
func LocationInfoByIDs(cityID, districtID, subDistrictID int64) (Query, error) {
	return toQuery(locationBase().
		Where(sq.Eq{
			"loc_info.city_id":         cityID,
			"loc_info.district_id":     districtID,
			"loc_info.sub_district_id": subDistrictID,
		}).
		OrderBy("loc_info.y_m DESC").
		Limit(1))
}

// LocationReport selects the latest report metrics of a sub-district.
func LocationReport(subDistrictID int64) (Query, error) {
	return toQuery(builder().
		Select("resident", "work_pop", "house", "shop", "income").
		From("loc_info").
		Where(sq.Eq{"sub_district_id": subDistrictID}).
		OrderBy("y_m DESC").
		Limit(1))
}

// Regions lists every sub-district with its parents.
func Regions() (Query, error) {
	return toQuery(builder().
		Select(
			"city.city_name AS city_name",
			"city.city_id AS city_id",
			"district.district_name AS district_name",
			"district.district_id AS district_id",
			"sub_district.sub_district_name AS sub_district_name",
			"sub_district.sub_district_id AS sub_district_id",
		).
		From("sub_district").
		Join("city ON sub_district.city_id = city.city_id").
		Join("district ON sub_district.district_id = district.district_id").
		OrderBy("city.city_id", "district.district_id", "sub_district.sub_district_id"))
}

// DataDates lists the distinct location periods.
func DataDates() (Query, error) {
	return toQuery(builder().
		Select("y_m").
		From("loc_info").
		GroupBy("y_m").
		OrderBy("y_m"))
}
