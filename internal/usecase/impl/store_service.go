package impl

import (
	"context"
	"log/slog"
	"time"

	"locinsight/config"
	deliverycontext "locinsight/internal/delivery/context"
	"locinsight/internal/domain/entity"
	domainerrors "locinsight/internal/domain/errors"
	"locinsight/internal/domain/repository"
	"locinsight/internal/domain/service"
	"locinsight/internal/errors"
	"locinsight/internal/usecase"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/fx"
)

type storeService struct {
	txManager  repository.TransactionManager
	storeRepo  repository.StoreRepository
	geocoder   service.Geocoder
	maxRetries int
	newBackOff func() backoff.BackOff
	logger     *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	StoreRepo repository.StoreRepository
	Geocoder  service.Geocoder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewStoreService creates a new store service instance
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		txManager:  params.TxManager,
		storeRepo:  params.StoreRepo,
		geocoder:   params.Geocoder,
		maxRetries: params.Config.Database.RegistrationRetries,
		newBackOff: allocationBackOff,
		logger:     params.Logger,
	}
}

func allocationBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond

	return b
}

func (s *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListStores applies a contains-mode name filter after the fetch.
func (s *storeService) ListStores(ctx context.Context, filter entity.FilterCriteria) ([]*entity.StoreListing, error) {
	stores, err := s.storeRepo.FindStores(ctx, filter)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find stores", nil)
	}

	if filter.PushesStoreName() || filter.StoreName == nil {
		return stores, nil
	}

	matched := make([]*entity.StoreListing, 0, len(stores))
	for _, store := range stores {
		if filter.MatchesStoreName(store.StoreName) {
			matched = append(matched, store)
		}
	}

	return matched, nil
}

func (s *storeService) GetStoreSummary(ctx context.Context, businessNumber string) (*entity.StoreSummary, error) {
	summary, err := s.storeRepo.FindStoreSummary(ctx, businessNumber)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find store summary", map[error]*domainerrors.BaseError{
			repository.ErrStoreNotFound: domainerrors.ErrStoreNotFound,
		})
	}

	return summary, nil
}

// RegisterStore runs the duplicate check, geocoding and category lookup outside any transaction;
// only the number allocation and insert are transactional and retried on a number conflict.
func (s *storeService) RegisterStore(ctx context.Context, registration entity.StoreRegistration) (*entity.RegistrationResult, error) {
	logger := s.log(ctx).With(slog.String("store_name", registration.StoreName))

	exists, err := s.storeRepo.ExistsStore(ctx, registration.StoreIdentity())
	if err != nil {
		return nil, translate(ctx, logger, err, "check store existence", nil)
	}
	if exists {
		logger.Info("Store already registered")

		return &entity.RegistrationResult{Outcome: entity.OutcomeAlreadyRegistered}, nil
	}

	location, err := s.geocoder.Geocode(ctx, registration.RoadName)
	if err != nil {
		logger.Warn("Failed to geocode road address", slog.String("road_name", registration.RoadName), slog.Any("error", err))

		return nil, err
	}

	names, err := s.storeRepo.FindCategoryNames(ctx, registration.SmallCategoryCode)
	if err != nil {
		return nil, translate(ctx, logger, err, "find category names", map[error]*domainerrors.BaseError{
			repository.ErrCategoryNotFound: domainerrors.ErrCategoryNotFound,
		})
	}

	store := &entity.Store{
		StoreName:          registration.StoreName,
		CityID:             registration.CityID,
		DistrictID:         registration.DistrictID,
		SubDistrictID:      registration.SubDistrictID,
		ReferenceID:        registration.ReferenceID,
		LargeCategoryCode:  registration.LargeCategoryCode,
		MediumCategoryCode: registration.MediumCategoryCode,
		SmallCategoryCode:  registration.SmallCategoryCode,
		Categories:         *names,
		RoadNameAddress:    registration.RoadName,
		Location:           location,
		KTMyShop:           registration.HasTag(entity.TagKTMyShop),
		JSam:               registration.HasTag(entity.TagJSam),
		Pulmuone:           registration.HasTag(entity.TagPulmuone),
	}

	if err := s.allocateAndCreate(ctx, store); err != nil {
		if errors.Is(err, repository.ErrDuplicateBusinessNumber) {
			logger.Error("Business number allocation kept conflicting", slog.Int("retries", s.maxRetries))

			return nil, domainerrors.ErrBusinessNumberExhausted
		}

		return nil, translate(ctx, logger, err, "create store", nil)
	}

	logger.Info("Store registered", slog.String("business_number", store.BusinessNumber))

	return &entity.RegistrationResult{Outcome: entity.OutcomeRegistered, BusinessNumber: store.BusinessNumber}, nil
}

func (s *storeService) allocateAndCreate(ctx context.Context, store *entity.Store) error {
	attempt := 0
	operation := func() error {
		attempt++

		err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			storeRepo := repoFactory.NewStoreRepository()

			next, err := storeRepo.NextBusinessNumber(ctx)
			if err != nil {
				return err
			}
			store.BusinessNumber = next.String()

			return storeRepo.CreateStore(ctx, store)
		})
		if err == nil {
			return nil
		}
		if errors.Is(err, repository.ErrDuplicateBusinessNumber) {
			s.log(ctx).Warn("Business number taken, retrying",
				slog.String("business_number", store.BusinessNumber), slog.Int("attempt", attempt))

			return err
		}

		return backoff.Permanent(err)
	}

	// WithMaxRetries treats 0 as unbounded.
	retries := max(s.maxRetries, 1)
	policy := backoff.WithContext(backoff.WithMaxRetries(s.newBackOff(), uint64(retries)), ctx)

	return backoff.Retry(operation, policy)
}

func (s *storeService) GetCategoryNames(ctx context.Context, detailCategoryID int64) (*entity.CategoryNames, error) {
	names, err := s.storeRepo.FindCategoryNamesByDetailID(ctx, detailCategoryID)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find category names by detail id", map[error]*domainerrors.BaseError{
			repository.ErrCategoryNotFound: domainerrors.ErrCategoryNotFound,
		})
	}

	return names, nil
}

func (s *storeService) GetRisingMenu(ctx context.Context, subDistrictID int64, referenceID int, smallCategoryName string) (*entity.RisingMenu, error) {
	ref, err := s.storeRepo.FindBusinessCategoryRef(ctx, referenceID, smallCategoryName)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find business category", map[error]*domainerrors.BaseError{
			repository.ErrCategoryNotFound: domainerrors.ErrCategoryNotFound,
		})
	}

	menu, err := s.storeRepo.FindRisingMenu(ctx, subDistrictID, ref.RepID)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find rising menu", map[error]*domainerrors.BaseError{
			repository.ErrRisingMenuNotFound: domainerrors.ErrNotFound.WithDetails("no commercial profile for this category"),
		})
	}

	return menu, nil
}

func (s *storeService) CopyStoreToReport(ctx context.Context, businessNumber string) error {
	store, err := s.storeRepo.FindStore(ctx, businessNumber)
	if err != nil {
		return translate(ctx, s.log(ctx), err, "find store", map[error]*domainerrors.BaseError{
			repository.ErrStoreNotFound: domainerrors.ErrStoreNotFound,
		})
	}

	err = s.txManager.ExecuteOnReport(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewReportRepository().SaveStoreReport(ctx, store)
	})
	if err != nil {
		return translate(ctx, s.log(ctx), err, "save store report", nil)
	}

	s.log(ctx).Info("Store copied to report", slog.String("business_number", businessNumber))

	return nil
}
