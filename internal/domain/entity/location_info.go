package entity

// LocationInfo is the per sub-district metric snapshot of one period.
type LocationInfo struct {
	LocInfoID  *int64   `json:"loc_info_id,omitempty"`
	YM         *string  `json:"y_m"`
	Shop       *int64   `json:"shop"`
	MovePop    *int64   `json:"move_pop"`
	Sales      *float64 `json:"sales"`
	WorkPop    *int64   `json:"work_pop"`
	Income     *float64 `json:"income"`
	Spend      *float64 `json:"spend"`
	House      *int64   `json:"house"`
	Resident   *int64   `json:"resident"`
	ApartPrice *float64 `json:"apart_price"`
}

// RegionLocationInfo is a location snapshot with its region.
type RegionLocationInfo struct {
	Region
	LocationInfo
}

// LocationReport is the short metric summary shown on a store report.
type LocationReport struct {
	Resident *int64   `json:"resident"`
	WorkPop  *int64   `json:"work_pop"`
	House    *int64   `json:"house"`
	Shop     *int64   `json:"shop"`
	Income   *float64 `json:"income"`
}
