package postgres

import (
	"context"

	"locinsight/config"
	"locinsight/internal/domain/entity"
	"locinsight/internal/domain/repository"
	"locinsight/internal/errors"
	"locinsight/internal/infra/persistence/model"
	"locinsight/internal/infra/persistence/normalizer"
	"locinsight/internal/infra/persistence/querybuilder"

	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

// storeRepository implements the domain.StoreRepository interface using GORM.
type storeRepository struct {
	db   *gorm.DB
	exec *queryExecutor
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB, cfg *config.Config) repository.StoreRepository {
	return newStoreRepository(db, cfg)
}

func newStoreRepository(db *gorm.DB, cfg *config.Config) *storeRepository {
	return &storeRepository{db: db, exec: newQueryExecutor(db, statementTimeout(cfg))}
}

func (repo *storeRepository) FindStores(ctx context.Context, filter entity.FilterCriteria) ([]*entity.StoreListing, error) {
	q, err := querybuilder.Stores(filter)
	if err != nil {
		return nil, err
	}

	rows, err := repo.exec.rows(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stores")
	}

	stores := make([]*entity.StoreListing, 0, len(rows))
	for _, row := range rows {
		stores = append(stores, normalizer.ToStoreListing(row))
	}

	return stores, nil
}

func (repo *storeRepository) ExistsStore(ctx context.Context, identity entity.StoreIdentity) (bool, error) {
	q, err := querybuilder.StoreExists(identity)
	if err != nil {
		return false, err
	}

	_, found, err := repo.exec.first(ctx, q)
	if err != nil {
		return false, errors.Wrap(err, "failed to check store existence")
	}

	return found, nil
}

func (repo *storeRepository) FindCategoryNames(ctx context.Context, smallCategoryCode string) (*entity.CategoryNames, error) {
	var categoryM model.BusinessAreaCategoryModel
	err := repo.db.WithContext(ctx).
		Where("detail_category_code = ?", smallCategoryCode).
		Take(&categoryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category names")
	}

	return &entity.CategoryNames{
		Large:  categoryM.MainCategoryName,
		Medium: categoryM.SubCategoryName,
		Small:  categoryM.DetailCategoryName,
	}, nil
}

func (repo *storeRepository) NextBusinessNumber(ctx context.Context) (entity.BusinessNumber, error) {
	q, err := querybuilder.LatestBusinessNumber()
	if err != nil {
		return entity.BusinessNumber{}, err
	}

	row, found, err := repo.exec.first(ctx, q)
	if err != nil {
		return entity.BusinessNumber{}, errors.Wrap(err, "failed to find latest business number")
	}
	if !found {
		return entity.BusinessNumber{}.Next(), nil
	}

	latest, err := entity.ParseBusinessNumber(normalizer.ToBusinessNumber(row))
	if err != nil {
		return entity.BusinessNumber{}, err
	}

	return latest.Next(), nil
}

func (repo *storeRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	storeM := toLocalStoreModel(store)
	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err, localStoreBusinessNumberKey) {
			return errors.Wrapf(repository.ErrDuplicateBusinessNumber, "business number %s", store.BusinessNumber)
		}

		return errors.Wrap(err, "failed to create store")
	}

	return nil
}

func (repo *storeRepository) FindStore(ctx context.Context, businessNumber string) (*entity.Store, error) {
	storeM, err := repo.take(ctx, businessNumber)
	if err != nil {
		return nil, err
	}

	return toStoreDomain(storeM), nil
}

func (repo *storeRepository) FindStoreSummary(ctx context.Context, businessNumber string) (*entity.StoreSummary, error) {
	storeM, err := repo.take(ctx, businessNumber, "store_business_number", "store_name", "road_name_address")
	if err != nil {
		return nil, err
	}

	return &entity.StoreSummary{
		BusinessNumber:  storeM.StoreBusinessNumber,
		StoreName:       storeM.StoreName,
		RoadNameAddress: storeM.RoadNameAddress,
	}, nil
}

func (repo *storeRepository) FindStoreCategory(ctx context.Context, businessNumber string) (*entity.StoreCategory, error) {
	storeM, err := repo.take(ctx, businessNumber,
		"store_business_number", "large_category_name", "medium_category_name", "small_category_name")
	if err != nil {
		return nil, err
	}

	return &entity.StoreCategory{
		BusinessNumber: storeM.StoreBusinessNumber,
		CategoryNames: entity.CategoryNames{
			Large:  storeM.LargeCategoryName,
			Medium: storeM.MediumCategoryName,
			Small:  storeM.SmallCategoryName,
		},
	}, nil
}

func (repo *storeRepository) take(ctx context.Context, businessNumber string, columns ...string) (*model.LocalStoreModel, error) {
	query := repo.db.WithContext(ctx)
	if len(columns) > 0 {
		query = query.Select(columns)
	}

	var storeM model.LocalStoreModel
	if err := query.Where("store_business_number = ?", businessNumber).Take(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return &storeM, nil
}

func (repo *storeRepository) FindCategoryNamesByDetailID(ctx context.Context, detailID int64) (*entity.CategoryNames, error) {
	q, err := querybuilder.CategoryNamesByDetailID(detailID)
	if err != nil {
		return nil, err
	}

	row, ok, err := repo.exec.first(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category names by detail id")
	}
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	names := normalizer.ToCategoryNames(row)

	return &names, nil
}

func (repo *storeRepository) FindBusinessCategoryRef(ctx context.Context, referenceID int, smallCategoryName string) (*entity.BusinessCategoryRef, error) {
	q, err := querybuilder.BusinessCategoryRef(referenceID, smallCategoryName)
	if err != nil {
		return nil, err
	}

	row, ok, err := repo.exec.first(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business category")
	}
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	ref := normalizer.ToBusinessCategoryRef(row)
	if ref == nil {
		return nil, repository.ErrCategoryNotFound
	}

	return ref, nil
}

func (repo *storeRepository) FindRisingMenu(ctx context.Context, subDistrictID, bizDetailCategoryID int64) (*entity.RisingMenu, error) {
	q, err := querybuilder.RisingMenu(subDistrictID, bizDetailCategoryID)
	if err != nil {
		return nil, err
	}

	row, ok, err := repo.exec.first(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find rising menu")
	}
	if !ok {
		return nil, repository.ErrRisingMenuNotFound
	}

	return normalizer.ToRisingMenu(row), nil
}

func toLocalStoreModel(store *entity.Store) *model.LocalStoreModel {
	return &model.LocalStoreModel{
		StoreBusinessNumber: store.BusinessNumber,
		StoreName:           store.StoreName,
		CityID:              store.CityID,
		DistrictID:          store.DistrictID,
		SubDistrictID:       store.SubDistrictID,
		ReferenceID:         store.ReferenceID,
		LargeCategoryCode:   store.LargeCategoryCode,
		MediumCategoryCode:  store.MediumCategoryCode,
		SmallCategoryCode:   store.SmallCategoryCode,
		LargeCategoryName:   store.Categories.Large,
		MediumCategoryName:  store.Categories.Medium,
		SmallCategoryName:   store.Categories.Small,
		RoadNameAddress:     store.RoadNameAddress,
		Longitude:           store.Location.Lon(),
		Latitude:            store.Location.Lat(),
		KTMyShop:            flag(store.KTMyShop),
		JSam:                flag(store.JSam),
		Pulmuone:            flag(store.Pulmuone),
		IsExist:             1,
	}
}

func toStoreDomain(storeM *model.LocalStoreModel) *entity.Store {
	return &entity.Store{
		BusinessNumber:     storeM.StoreBusinessNumber,
		StoreName:          storeM.StoreName,
		CityID:             storeM.CityID,
		DistrictID:         storeM.DistrictID,
		SubDistrictID:      storeM.SubDistrictID,
		ReferenceID:        storeM.ReferenceID,
		LargeCategoryCode:  storeM.LargeCategoryCode,
		MediumCategoryCode: storeM.MediumCategoryCode,
		SmallCategoryCode:  storeM.SmallCategoryCode,
		Categories: entity.CategoryNames{
			Large:  storeM.LargeCategoryName,
			Medium: storeM.MediumCategoryName,
			Small:  storeM.SmallCategoryName,
		},
		RoadNameAddress: storeM.RoadNameAddress,
		Location:        orb.Point{storeM.Longitude, storeM.Latitude},
		KTMyShop:        storeM.KTMyShop == 1,
		JSam:            storeM.JSam == 1,
		Pulmuone:        storeM.Pulmuone == 1,
	}
}

func flag(v bool) int {
	if v {
		return 1
	}

	return 0
}
