package model

// LocalStoreModel mirrors the 'local_store' table. Flag columns hold 0 or 1.
type LocalStoreModel struct {
	StoreBusinessNumber string  `gorm:"column:store_business_number;type:varchar(20);primaryKey"`
	StoreName           string  `gorm:"column:store_name;type:varchar(255);not null"`
	CityID              int64   `gorm:"column:city_id;not null"`
	DistrictID          int64   `gorm:"column:district_id;not null"`
	SubDistrictID       int64   `gorm:"column:sub_district_id;not null"`
	ReferenceID         int     `gorm:"column:reference_id"`
	LargeCategoryCode   string  `gorm:"column:large_category_code;type:varchar(20)"`
	MediumCategoryCode  string  `gorm:"column:medium_category_code;type:varchar(20)"`
	SmallCategoryCode   string  `gorm:"column:small_category_code;type:varchar(20)"`
	LargeCategoryName   string  `gorm:"column:large_category_name;type:varchar(100)"`
	MediumCategoryName  string  `gorm:"column:medium_category_name;type:varchar(100)"`
	SmallCategoryName   string  `gorm:"column:small_category_name;type:varchar(100)"`
	RoadNameAddress     string  `gorm:"column:road_name_address;type:varchar(255)"`
	Longitude           float64 `gorm:"column:longitude"`
	Latitude            float64 `gorm:"column:latitude"`
	KTMyShop            int     `gorm:"column:ktmyshop;not null;default:0"`
	JSam                int     `gorm:"column:jsam;not null;default:0"`
	Pulmuone            int     `gorm:"column:pulmuone;not null;default:0"`
	IsExist             int     `gorm:"column:is_exist;not null;default:1"`
}

// TableName explicitly sets the table name for GORM.
func (LocalStoreModel) TableName() string {
	return "local_store"
}

// BusinessAreaCategoryModel mirrors the 'business_area_category' table, one row per local leaf category.
type BusinessAreaCategoryModel struct {
	BusinessAreaCategoryID int64  `gorm:"column:business_area_category_id;primaryKey"`
	ReferenceID            int    `gorm:"column:reference_id"`
	MainCategoryCode       string `gorm:"column:main_category_code"`
	MainCategoryName       string `gorm:"column:main_category_name"`
	SubCategoryCode        string `gorm:"column:sub_category_code"`
	SubCategoryName        string `gorm:"column:sub_category_name"`
	DetailCategoryCode     string `gorm:"column:detail_category_code"`
	DetailCategoryName     string `gorm:"column:detail_category_name"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessAreaCategoryModel) TableName() string {
	return "business_area_category"
}
