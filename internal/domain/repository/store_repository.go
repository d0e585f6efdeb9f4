package repository

import (
	"context"

	"locinsight/internal/domain/entity"
	"locinsight/internal/errors"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
	// ErrCategoryNotFound is returned when a category code or id has no mapping.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrRisingMenuNotFound is returned when a sub-district has no commercial profile for a category.
	ErrRisingMenuNotFound = errors.New("rising menu not found")
	// ErrDuplicateBusinessNumber is returned when another writer took the business number first.
	ErrDuplicateBusinessNumber = errors.New("business number already taken")
)

// StoreRepository defines the interface for local store operations.
type StoreRepository interface {
	// FindStores returns existing stores matching the filter, ordered by name.
	// A contains-mode name filter is left to the caller.
	FindStores(ctx context.Context, filter entity.FilterCriteria) ([]*entity.StoreListing, error)

	// ExistsStore reports whether a store with the same region, category path and name exists.
	ExistsStore(ctx context.Context, identity entity.StoreIdentity) (bool, error)

	// FindCategoryNames resolves the names of a category path from its leaf code.
	FindCategoryNames(ctx context.Context, smallCategoryCode string) (*entity.CategoryNames, error)

	// NextBusinessNumber returns the number following the highest issued one.
	NextBusinessNumber(ctx context.Context) (entity.BusinessNumber, error)

	// CreateStore inserts a store. Returns ErrDuplicateBusinessNumber on a number conflict.
	CreateStore(ctx context.Context, store *entity.Store) error

	// FindStore returns a store by business number.
	FindStore(ctx context.Context, businessNumber string) (*entity.Store, error)

	// FindStoreSummary returns the name and address of a store.
	FindStoreSummary(ctx context.Context, businessNumber string) (*entity.StoreSummary, error)

	// FindStoreCategory returns the category names of a store.
	FindStoreCategory(ctx context.Context, businessNumber string) (*entity.StoreCategory, error)

	// FindCategoryNamesByDetailID resolves a business detail category to its main, sub and detail names.
	FindCategoryNamesByDetailID(ctx context.Context, detailID int64) (*entity.CategoryNames, error)

	// FindBusinessCategoryRef resolves a local category name of a catalog to its representative detail category.
	FindBusinessCategoryRef(ctx context.Context, referenceID int, smallCategoryName string) (*entity.BusinessCategoryRef, error)

	// FindRisingMenu returns the commercial profile of a business detail category in a sub-district.
	FindRisingMenu(ctx context.Context, subDistrictID, bizDetailCategoryID int64) (*entity.RisingMenu, error)
}
