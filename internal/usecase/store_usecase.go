package usecase

import (
	"context"

	"locinsight/internal/domain/entity"
)

// StoreUsecase defines the interface for store search and registration.
type StoreUsecase interface {
	ListStores(ctx context.Context, filter entity.FilterCriteria) ([]*entity.StoreListing, error)
	GetStoreSummary(ctx context.Context, businessNumber string) (*entity.StoreSummary, error)
	// RegisterStore adds a store unless an identical one exists. A repeated registration is
	// reported through the outcome, not as an error.
	RegisterStore(ctx context.Context, registration entity.StoreRegistration) (*entity.RegistrationResult, error)
	GetCategoryNames(ctx context.Context, detailCategoryID int64) (*entity.CategoryNames, error)
	GetRisingMenu(ctx context.Context, subDistrictID int64, referenceID int, smallCategoryName string) (*entity.RisingMenu, error)
	// CopyStoreToReport writes a registered store into the report database.
	CopyStoreToReport(ctx context.Context, businessNumber string) error
}
