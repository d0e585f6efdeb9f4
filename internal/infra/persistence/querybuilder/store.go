package querybuilder

import (
	"fmt"

	"locinsight/internal/domain/entity"

	sq "github.com/Masterminds/squirrel"
)

var storeColumns = []string{
	"local_store.store_business_number",
	"local_store.store_name",
	"local_store.branch_name",
	"local_store.road_name_address",
	"local_store.large_category_name",
	"local_store.medium_category_name",
	"local_store.small_category_name",
	"local_store.industry_name",
	"local_store.building_name",
	"local_store.new_postal_code",
	"local_store.dong_info",
	"local_store.floor_info",
	"local_store.unit_info",
	"local_store.local_year",
	"local_store.local_quarter",
	"city.city_name AS city_name",
	"district.district_name AS district_name",
	"sub_district.sub_district_name AS sub_district_name",
}

var tagColumns = map[entity.PromoTag]string{
	entity.TagKTMyShop: "local_store.ktmyshop",
	entity.TagJSam:     "local_store.jsam",
	entity.TagPulmuone: "local_store.pulmuone",
}

func tagConditions(tags []entity.PromoTag) []sq.Sqlizer {
	var conds []sq.Sqlizer
	seen := make(map[entity.PromoTag]bool, len(tags))
	for _, tag := range tags {
		column, ok := tagColumns[tag]
		if !ok || seen[tag] {
			continue
		}
		seen[tag] = true
		conds = append(conds, sq.Expr(fmt.Sprintf("%s = 1", column)))
	}

	return conds
}

func storeNameCondition(f entity.FilterCriteria) []sq.Sqlizer {
	if !f.PushesStoreName() {
		return nil
	}

	return []sq.Sqlizer{sq.Eq{"local_store.store_name": *f.StoreName}}
}

func storeRegionCascade(f entity.FilterCriteria) []sq.Sqlizer {
	return regionCascade("local_store.city_id", "local_store.district_id", "local_store.sub_district_id", f)
}

// Stores selects existing stores matching the filter, ordered by name.
//
// Catalog 1 filters categories by business catalog ids and requires every selected tag.
// Other catalogs filter by the store's own category codes and accept any selected tag.
// A contains-mode name filter is not applied here.
func Stores(f entity.FilterCriteria) (Query, error) {
	if f.UsesBusinessCatalog() {
		return businessCatalogStores(f)
	}

	var tags []sq.Sqlizer
	if conds := tagConditions(f.Tags); len(conds) > 0 {
		tags = []sq.Sqlizer{sq.Or(conds)}
	}

	columns := append(append([]string{}, storeColumns...), "local_store.ktmyshop", "local_store.jsam")

	b := builder().
		Select(columns...).
		From("local_store").
		Join("city ON local_store.city_id = city.city_id").
		Join("district ON local_store.district_id = district.district_id").
		Join("sub_district ON local_store.sub_district_id = sub_district.sub_district_id").
		Where(sq.Eq{"local_store.is_exist": 1})

	return toQuery(where(b,
		tags,
		storeRegionCascade(f),
		cascade(
			codeLevel("local_store.large_category_code", f.MainCategory),
			codeLevel("local_store.medium_category_code", f.SubCategory),
			codeLevel("local_store.small_category_code", f.DetailCategory),
		),
		storeNameCondition(f),
	).OrderBy("local_store.store_name"))
}

func businessCatalogStores(f entity.FilterCriteria) (Query, error) {
	columns := append(append([]string{}, storeColumns...),
		"biz_main_category.biz_main_category_name",
		"biz_sub_category.biz_sub_category_name",
		"biz_detail_category.biz_detail_category_name",
	)

	b := builder().
		Select(columns...).
		Distinct().
		From("local_store").
		Join("city ON local_store.city_id = city.city_id").
		Join("district ON local_store.district_id = district.district_id").
		Join("sub_district ON local_store.sub_district_id = sub_district.sub_district_id").
		Join("business_area_category ON local_store.small_category_code = business_area_category.detail_category_code").
		Join("detail_category_mapping ON business_area_category.business_area_category_id = detail_category_mapping.business_area_category_id").
		Join("biz_detail_category ON detail_category_mapping.rep_id = biz_detail_category.biz_detail_category_id").
		Join("biz_sub_category ON biz_detail_category.biz_sub_category_id = biz_sub_category.biz_sub_category_id").
		Join("biz_main_category ON biz_sub_category.biz_main_category_id = biz_main_category.biz_main_category_id").
		Where(sq.Eq{"local_store.is_exist": 1})

	return toQuery(where(b,
		tagConditions(f.Tags),
		storeRegionCascade(f),
		cascade(
			codeLevel("biz_main_category.biz_main_category_id", f.MainCategory),
			codeLevel("biz_sub_category.biz_sub_category_id", f.SubCategory),
			codeLevel("biz_detail_category.biz_detail_category_id", f.DetailCategory),
		),
		storeNameCondition(f),
	).OrderBy("local_store.store_name"))
}

// StoreExists selects a marker row when a store with the same region, category path and
// name is already registered.
func StoreExists(identity entity.StoreIdentity) (Query, error) {
	return toQuery(builder().
		Select("1 AS found").
		From("local_store").
		Where(sq.Eq{
			"city_id":              identity.CityID,
			"district_id":          identity.DistrictID,
			"sub_district_id":      identity.SubDistrictID,
			"large_category_code":  identity.LargeCategoryCode,
			"medium_category_code": identity.MediumCategoryCode,
			"small_category_code":  identity.SmallCategoryCode,
			"store_name":           identity.StoreName,
		}).
		Limit(1))
}

// businessNumberPattern matches identifiers issued by this service.
const businessNumberPattern = "^" + entity.BusinessNumberPrefix + "[0-9]+$"

// LatestBusinessNumber selects the highest issued identifier. It orders by length first so
// JS10000 sorts after JS9999.
func LatestBusinessNumber() (Query, error) {
	return toQuery(builder().
		Select("store_business_number").
		From("local_store").
		Where("store_business_number ~ ?", businessNumberPattern).
		OrderBy("LENGTH(store_business_number) DESC", "store_business_number DESC").
		Limit(1))
}

// BusinessCategoryRef resolves a local category name of a catalog to its representative
// business detail category.
func BusinessCategoryRef(referenceID int, smallCategoryName string) (Query, error) {
	return toQuery(builder().
		Select(
			"bac.business_area_category_id",
			"dcm.rep_id",
			"bdc.biz_detail_category_name",
		).
		From("business_area_category bac").
		Join("detail_category_mapping dcm ON dcm.business_area_category_id = bac.business_area_category_id").
		Join("biz_detail_category bdc ON dcm.rep_id = bdc.biz_detail_category_id").
		Where(sq.Eq{"bac.reference_id": referenceID, "bac.detail_category_name": smallCategoryName}).
		Limit(1))
}

// CategoryNamesByDetailID selects the main, sub and detail names of a business detail category.
func CategoryNamesByDetailID(detailID int64) (Query, error) {
	return toQuery(builder().
		Select(
			"bmc.biz_main_category_name",
			"bsc.biz_sub_category_name",
			"bdc.biz_detail_category_name",
		).
		From("biz_detail_category bdc").
		Join("biz_sub_category bsc ON bsc.biz_sub_category_id = bdc.biz_sub_category_id").
		Join("biz_main_category bmc ON bsc.biz_main_category_id = bmc.biz_main_category_id").
		Where(sq.Eq{"bdc.biz_detail_category_id": detailID}))
}

var risingMenuColumns = []string{
	"market_size", "average_sales", "average_payment", "usage_count",
	"avg_profit_per_mon", "avg_profit_per_tue", "avg_profit_per_wed", "avg_profit_per_thu",
	"avg_profit_per_fri", "avg_profit_per_sat", "avg_profit_per_sun",
	"avg_profit_per_06_09", "avg_profit_per_09_12", "avg_profit_per_12_15", "avg_profit_per_15_18",
	"avg_profit_per_18_21", "avg_profit_per_21_24", "avg_profit_per_24_06",
	"avg_client_per_m_20", "avg_client_per_m_30", "avg_client_per_m_40", "avg_client_per_m_50", "avg_client_per_m_60",
	"avg_client_per_f_20", "avg_client_per_f_30", "avg_client_per_f_40", "avg_client_per_f_50", "avg_client_per_f_60",
	"top_menu_1", "top_menu_2", "top_menu_3", "top_menu_4", "top_menu_5",
}

// RisingMenu selects the commercial district profile of a business detail category in a sub-district.
func RisingMenu(subDistrictID, bizDetailCategoryID int64) (Query, error) {
	return toQuery(builder().
		Select(risingMenuColumns...).
		From("commercial_district").
		Where(sq.Eq{"sub_district_id": subDistrictID, "biz_detail_category_id": bizDetailCategoryID}).
		Limit(1))
}
