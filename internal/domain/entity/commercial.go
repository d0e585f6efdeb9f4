package entity

// RisingMenu is the commercial district profile of one business category in a sub-district.
type RisingMenu struct {
	MarketSize     *int64 `json:"market_size"`
	AverageSales   *int64 `json:"average_sales"`
	AveragePayment *int64 `json:"average_payment"`
	UsageCount     *int64 `json:"usage_count"`

	// Average profit share per weekday.
	ProfitPerMon *float64 `json:"avg_profit_per_mon"`
	ProfitPerTue *float64 `json:"avg_profit_per_tue"`
	ProfitPerWed *float64 `json:"avg_profit_per_wed"`
	ProfitPerThu *float64 `json:"avg_profit_per_thu"`
	ProfitPerFri *float64 `json:"avg_profit_per_fri"`
	ProfitPerSat *float64 `json:"avg_profit_per_sat"`
	ProfitPerSun *float64 `json:"avg_profit_per_sun"`

	// Average profit share per time slot.
	ProfitPer0609 *float64 `json:"avg_profit_per_06_09"`
	ProfitPer0912 *float64 `json:"avg_profit_per_09_12"`
	ProfitPer1215 *float64 `json:"avg_profit_per_12_15"`
	ProfitPer1518 *float64 `json:"avg_profit_per_15_18"`
	ProfitPer1821 *float64 `json:"avg_profit_per_18_21"`
	ProfitPer2124 *float64 `json:"avg_profit_per_21_24"`
	ProfitPer2406 *float64 `json:"avg_profit_per_24_06"`

	// Client share per gender and age band.
	ClientPerM20 *float64 `json:"avg_client_per_m_20"`
	ClientPerM30 *float64 `json:"avg_client_per_m_30"`
	ClientPerM40 *float64 `json:"avg_client_per_m_40"`
	ClientPerM50 *float64 `json:"avg_client_per_m_50"`
	ClientPerM60 *float64 `json:"avg_client_per_m_60"`
	ClientPerF20 *float64 `json:"avg_client_per_f_20"`
	ClientPerF30 *float64 `json:"avg_client_per_f_30"`
	ClientPerF40 *float64 `json:"avg_client_per_f_40"`
	ClientPerF50 *float64 `json:"avg_client_per_f_50"`
	ClientPerF60 *float64 `json:"avg_client_per_f_60"`

	TopMenus []string `json:"top_menus"`
}

// BusinessCategoryRef is the representative business detail category of a local category.
type BusinessCategoryRef struct {
	BusinessAreaCategoryID int64
	RepID                  int64
	DetailCategoryName     string
}
