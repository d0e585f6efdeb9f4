package model

import "time"

// ReportModel mirrors the 'report' table of the report database.
type ReportModel struct {
	StoreBusinessNumber string    `gorm:"column:store_business_number;type:varchar(20);primaryKey"`
	StoreName           string    `gorm:"column:store_name;type:varchar(255)"`
	RoadName            string    `gorm:"column:road_name;type:varchar(255)"`
	CityID              int64     `gorm:"column:city_id"`
	DistrictID          int64     `gorm:"column:district_id"`
	SubDistrictID       int64     `gorm:"column:sub_district_id"`
	LargeCategoryName   string    `gorm:"column:large_category_name;type:varchar(100)"`
	MediumCategoryName  string    `gorm:"column:medium_category_name;type:varchar(100)"`
	SmallCategoryName   string    `gorm:"column:small_category_name;type:varchar(100)"`
	Longitude           float64   `gorm:"column:longitude"`
	Latitude            float64   `gorm:"column:latitude"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "report"
}

// LocalStoreContentModel mirrors the 'local_store_content' table. Status is filled by the database on insert.
type LocalStoreContentModel struct {
	LocalStoreContentID int64     `gorm:"column:local_store_content_id;primaryKey;autoIncrement"`
	StoreBusinessNumber string    `gorm:"column:store_business_number;type:varchar(20);not null"`
	Title               string    `gorm:"column:title;type:varchar(255)"`
	Content             string    `gorm:"column:content;type:text"`
	Status              string    `gorm:"column:status;type:varchar(1)"`
	CreatedAt           time.Time `gorm:"column:created_at"`
}

// TableName explicitly sets the table name for GORM.
func (LocalStoreContentModel) TableName() string {
	return "local_store_content"
}

// LocalStoreContentImageModel mirrors the 'local_store_content_image' table.
type LocalStoreContentImageModel struct {
	LocalStoreContentImageID  int64  `gorm:"column:local_store_content_image_id;primaryKey;autoIncrement"`
	LocalStoreContentID       int64  `gorm:"column:local_store_content_id;not null;index"`
	LocalStoreContentImageURL string `gorm:"column:local_store_content_image_url;type:varchar(500)"`
}

// TableName explicitly sets the table name for GORM.
func (LocalStoreContentImageModel) TableName() string {
	return "local_store_content_image"
}

// ThumbnailModel mirrors the 'thumbnail' table.
type ThumbnailModel struct {
	ThumbnailID int64  `gorm:"column:thumbnail_id;primaryKey;autoIncrement"`
	CategoryID  int64  `gorm:"column:category_id;not null"`
	DesignID    int64  `gorm:"column:design_id;not null"`
	Prompt      string `gorm:"column:prompt;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ThumbnailModel) TableName() string {
	return "thumbnail"
}

// ThumbnailPathModel mirrors the 'thumbnail_path' table.
type ThumbnailPathModel struct {
	ThumbnailPathID int64  `gorm:"column:thumbnail_path_id;primaryKey;autoIncrement"`
	ThumbnailID     int64  `gorm:"column:thumbnail_id;not null;index"`
	ImagePath       string `gorm:"column:image_path;type:varchar(500)"`
}

// TableName explicitly sets the table name for GORM.
func (ThumbnailPathModel) TableName() string {
	return "thumbnail_path"
}

// ReportModels lists the models stored in the report database.
func ReportModels() []any {
	return []any{
		&ReportModel{},
		&LocalStoreContentModel{},
		&LocalStoreContentImageModel{},
		&ThumbnailModel{},
		&ThumbnailPathModel{},
	}
}
