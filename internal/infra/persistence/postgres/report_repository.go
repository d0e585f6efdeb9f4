package postgres

import (
	"context"
	"time"

	"locinsight/internal/domain/entity"
	"locinsight/internal/domain/repository"
	"locinsight/internal/errors"
	"locinsight/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reportRepository struct {
	db *gorm.DB
}

func newReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// SaveStoreReport upserts on the business number so a repeated copy refreshes the row.
func (repo *reportRepository) SaveStoreReport(ctx context.Context, store *entity.Store) error {
	reportM := &model.ReportModel{
		StoreBusinessNumber: store.BusinessNumber,
		StoreName:           store.StoreName,
		RoadName:            store.RoadNameAddress,
		CityID:              store.CityID,
		DistrictID:          store.DistrictID,
		SubDistrictID:       store.SubDistrictID,
		LargeCategoryName:   store.Categories.Large,
		MediumCategoryName:  store.Categories.Medium,
		SmallCategoryName:   store.Categories.Small,
		Longitude:           store.Location.Lon(),
		Latitude:            store.Location.Lat(),
		UpdatedAt:           time.Now(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store_business_number"}},
			UpdateAll: true,
		}).
		Create(reportM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save store report")
	}

	return nil
}
