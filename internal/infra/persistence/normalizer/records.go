package normalizer

import (
	"locinsight/internal/domain/entity"
)

// ToRegion reads the region ids and names of a row.
func ToRegion(r Row) entity.Region {
	return entity.Region{
		CityID:          r.Int64("city_id"),
		CityName:        r.String("city_name"),
		DistrictID:      r.Int64("district_id"),
		DistrictName:    r.String("district_name"),
		SubDistrictID:   r.Int64("sub_district_id"),
		SubDistrictName: r.String("sub_district_name"),
	}
}

// ToLocationInfo reads the metric snapshot columns of a loc_info row.
func ToLocationInfo(r Row) *entity.LocationInfo {
	return &entity.LocationInfo{
		LocInfoID:  r.Int64("loc_info_id"),
		YM:         r.String("y_m"),
		Shop:       r.Int64("shop"),
		MovePop:    r.Int64("move_pop"),
		Sales:      r.Float64("sales"),
		WorkPop:    r.Int64("work_pop"),
		Income:     r.Float64("income"),
		Spend:      r.Float64("spend"),
		House:      r.Int64("house"),
		Resident:   r.Int64("resident"),
		ApartPrice: r.Float64("apart_price"),
	}
}

func ToRegionLocationInfo(r Row) *entity.RegionLocationInfo {
	return &entity.RegionLocationInfo{Region: ToRegion(r), LocationInfo: *ToLocationInfo(r)}
}

func ToLocationReport(r Row) *entity.LocationReport {
	return &entity.LocationReport{
		Resident: r.Int64("resident"),
		WorkPop:  r.Int64("work_pop"),
		House:    r.Int64("house"),
		Shop:     r.Int64("shop"),
		Income:   r.Float64("income"),
	}
}

// ToStatistic reads the J-Score columns of a loc_info_statistics row. Summary columns that the
// query did not select stay nil.
func ToStatistic(r Row) *entity.Statistic {
	return &entity.Statistic{
		TargetItem:           r.String("target_item"),
		RefDate:              r.String("ref_date"),
		AvgVal:               r.Float64("avg_val"),
		MedVal:               r.Float64("med_val"),
		StdVal:               r.Float64("std_val"),
		MaxVal:               r.Float64("max_val"),
		MinVal:               r.Float64("min_val"),
		JScore:               r.Float64("j_score"),
		JScoreRank:           r.Int64("j_score_rank"),
		JScorePer:            r.Float64("j_score_per"),
		JScorePerNonOutliers: r.Float64("j_score_per_non_outliers"),
		JScoreNonOutliers:    r.Float64("j_score_non_outliers"),
	}
}

func ToRegionStatistic(r Row) *entity.RegionStatistic {
	return &entity.RegionStatistic{Region: ToRegion(r), Statistic: *ToStatistic(r)}
}

// ToParentName reads a (sub_district_id, name) pair. ok is false when the id is NULL.
func ToParentName(r Row) (subDistrictID int64, name string, ok bool) {
	id := r.Int64("sub_district_id")
	if id == nil {
		return 0, "", false
	}
	if n := r.String("name"); n != nil {
		name = *n
	}

	return *id, name, true
}

func ToStoreListing(r Row) *entity.StoreListing {
	return &entity.StoreListing{
		BusinessNumber:        r.String("store_business_number"),
		StoreName:             r.String("store_name"),
		BranchName:            r.String("branch_name"),
		RoadNameAddress:       r.String("road_name_address"),
		LargeCategoryName:     r.String("large_category_name"),
		MediumCategoryName:    r.String("medium_category_name"),
		SmallCategoryName:     r.String("small_category_name"),
		IndustryName:          r.String("industry_name"),
		BuildingName:          r.String("building_name"),
		NewPostalCode:         r.String("new_postal_code"),
		DongInfo:              r.String("dong_info"),
		FloorInfo:             r.String("floor_info"),
		UnitInfo:              r.String("unit_info"),
		LocalYear:             r.Int64("local_year"),
		LocalQuarter:          r.Int64("local_quarter"),
		KTMyShop:              r.Bool("ktmyshop"),
		JSam:                  r.Bool("jsam"),
		CityName:              r.String("city_name"),
		DistrictName:          r.String("district_name"),
		SubDistrictName:       r.String("sub_district_name"),
		BizMainCategoryName:   r.String("biz_main_category_name"),
		BizSubCategoryName:    r.String("biz_sub_category_name"),
		BizDetailCategoryName: r.String("biz_detail_category_name"),
	}
}

// ToBusinessCategoryRef returns nil when the mapping ids are missing.
func ToBusinessCategoryRef(r Row) *entity.BusinessCategoryRef {
	areaID := r.Int64("business_area_category_id")
	repID := r.Int64("rep_id")
	if areaID == nil || repID == nil {
		return nil
	}

	ref := &entity.BusinessCategoryRef{BusinessAreaCategoryID: *areaID, RepID: *repID}
	if name := r.String("biz_detail_category_name"); name != nil {
		ref.DetailCategoryName = *name
	}

	return ref
}

func ToCategoryNames(r Row) entity.CategoryNames {
	return entity.CategoryNames{
		Large:  deref(r.String("biz_main_category_name")),
		Medium: deref(r.String("biz_sub_category_name")),
		Small:  deref(r.String("biz_detail_category_name")),
	}
}

func ToRisingMenu(r Row) *entity.RisingMenu {
	menu := &entity.RisingMenu{
		MarketSize:     r.Int64("market_size"),
		AverageSales:   r.Int64("average_sales"),
		AveragePayment: r.Int64("average_payment"),
		UsageCount:     r.Int64("usage_count"),

		ProfitPerMon: r.Float64("avg_profit_per_mon"),
		ProfitPerTue: r.Float64("avg_profit_per_tue"),
		ProfitPerWed: r.Float64("avg_profit_per_wed"),
		ProfitPerThu: r.Float64("avg_profit_per_thu"),
		ProfitPerFri: r.Float64("avg_profit_per_fri"),
		ProfitPerSat: r.Float64("avg_profit_per_sat"),
		ProfitPerSun: r.Float64("avg_profit_per_sun"),

		ProfitPer0609: r.Float64("avg_profit_per_06_09"),
		ProfitPer0912: r.Float64("avg_profit_per_09_12"),
		ProfitPer1215: r.Float64("avg_profit_per_12_15"),
		ProfitPer1518: r.Float64("avg_profit_per_15_18"),
		ProfitPer1821: r.Float64("avg_profit_per_18_21"),
		ProfitPer2124: r.Float64("avg_profit_per_21_24"),
		ProfitPer2406: r.Float64("avg_profit_per_24_06"),

		ClientPerM20: r.Float64("avg_client_per_m_20"),
		ClientPerM30: r.Float64("avg_client_per_m_30"),
		ClientPerM40: r.Float64("avg_client_per_m_40"),
		ClientPerM50: r.Float64("avg_client_per_m_50"),
		ClientPerM60: r.Float64("avg_client_per_m_60"),
		ClientPerF20: r.Float64("avg_client_per_f_20"),
		ClientPerF30: r.Float64("avg_client_per_f_30"),
		ClientPerF40: r.Float64("avg_client_per_f_40"),
		ClientPerF50: r.Float64("avg_client_per_f_50"),
		ClientPerF60: r.Float64("avg_client_per_f_60"),
	}

	menu.TopMenus = make([]string, 0, 5)
	for _, column := range []string{"top_menu_1", "top_menu_2", "top_menu_3", "top_menu_4", "top_menu_5"} {
		if name := r.String(column); name != nil && *name != "" {
			menu.TopMenus = append(menu.TopMenus, *name)
		}
	}

	return menu
}

// ToBusinessNumber reads the store identifier column, empty when NULL.
func ToBusinessNumber(r Row) string {
	return deref(r.String("store_business_number"))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
