package impl

import (
	"context"
	"testing"

	"locinsight/internal/domain/entity"
	domainerrors "locinsight/internal/domain/errors"
	"locinsight/internal/domain/repository"
	"locinsight/internal/errors"
	mockRepo "locinsight/internal/mocks/repository"
	mockService "locinsight/internal/mocks/service"

	"github.com/cenkalti/backoff/v4"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	storeRepo *mockRepo.MockStoreRepository
	geocoder  *mockService.MockGeocoder
}

func newTestStoreService(t *testing.T) (*storeService, storeServiceMocks) {
	t.Helper()

	m := storeServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		storeRepo: mockRepo.NewMockStoreRepository(t),
		geocoder:  mockService.NewMockGeocoder(t),
	}

	svc := NewStoreService(StoreServiceParams{
		TxManager: m.txManager,
		StoreRepo: m.storeRepo,
		Geocoder:  m.geocoder,
		Config:    testConfig(),
		Logger:    testLogger(),
	}).(*storeService)
	svc.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }

	return svc, m
}

func testRegistration() entity.StoreRegistration {
	return entity.StoreRegistration{
		CityID:             1,
		DistrictID:         2,
		SubDistrictID:      3,
		ReferenceID:        3,
		LargeCategoryCode:  "I2",
		MediumCategoryCode: "I212",
		SmallCategoryCode:  "I21201",
		StoreName:          "김밥천국",
		RoadName:           "서울특별시 강남구 테헤란로 152",
		Selected:           []string{"KT_MYSHOP", "pulmuone"},
	}
}

func businessNumber(t *testing.T, s string) entity.BusinessNumber {
	t.Helper()

	n, err := entity.ParseBusinessNumber(s)
	require.NoError(t, err)

	return n
}

var testNames = &entity.CategoryNames{Large: "음식", Medium: "분식", Small: "김밥"}

func TestStoreService_RegisterStore_Success(t *testing.T) {
	svc, m := newTestStoreService(t)
	ctx := context.Background()
	reg := testRegistration()
	point := orb.Point{127.0363, 37.5001}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txStoreRepo := mockRepo.NewMockStoreRepository(t)

	m.storeRepo.EXPECT().ExistsStore(ctx, reg.StoreIdentity()).Return(false, nil)
	m.geocoder.EXPECT().Geocode(ctx, reg.RoadName).Return(point, nil)
	m.storeRepo.EXPECT().FindCategoryNames(ctx, "I21201").Return(testNames, nil)
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(runInTx(factory))
	factory.EXPECT().NewStoreRepository().Return(txStoreRepo)
	txStoreRepo.EXPECT().NextBusinessNumber(ctx).Return(businessNumber(t, "JS0012").Next(), nil)
	txStoreRepo.EXPECT().
		CreateStore(ctx, mock.MatchedBy(func(store *entity.Store) bool {
			return store.BusinessNumber == "JS0013" &&
				store.Location == point &&
				store.Categories == *testNames &&
				store.KTMyShop && store.Pulmuone && !store.JSam
		})).
		Return(nil)

	result, err := svc.RegisterStore(ctx, reg)
	require.NoError(t, err)

	assert.True(t, result.Success())
	assert.Equal(t, entity.OutcomeRegistered, result.Outcome)
	assert.Equal(t, "JS0013", result.BusinessNumber)
}

func TestStoreService_RegisterStore_FirstStoreGetsJS0001(t *testing.T) {
	svc, m := newTestStoreService(t)
	ctx := context.Background()
	reg := testRegistration()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txStoreRepo := mockRepo.NewMockStoreRepository(t)

	m.storeRepo.EXPECT().ExistsStore(ctx, reg.StoreIdentity()).Return(false, nil)
	m.geocoder.EXPECT().Geocode(ctx, reg.RoadName).Return(orb.Point{127, 37}, nil)
	m.storeRepo.EXPECT().FindCategoryNames(ctx, "I21201").Return(testNames, nil)
	m.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(runInTx(factory))
	factory.EXPECT().NewStoreRepository().Return(txStoreRepo)
	txStoreRepo.EXPECT().NextBusinessNumber(ctx).Return(entity.BusinessNumber{}.Next(), nil)
	txStoreRepo.EXPECT().CreateStore(ctx, mock.AnythingOfType("*entity.Store")).Return(nil)

	result, err := svc.RegisterStore(ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, "JS0001", result.BusinessNumber)
}

func TestStoreService_RegisterStore_AlreadyRegistered(t *testing.T) {
	svc, m := newTestStoreService(t)
	ctx := context.Background()
	reg := testRegistration()

	m.storeRepo.EXPECT().ExistsStore(ctx, reg.StoreIdentity()).Return(true, nil)

	result, err := svc.RegisterStore(ctx, reg)
	require.NoError(t, err)

	assert.False(t, result.Success())
	assert.Equal(t, entity.OutcomeAlreadyRegistered, result.Outcome)
	assert.Empty(t, result.BusinessNumber)
	m.geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	m.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestStoreService_RegisterStore_GeocodeFailureWritesNothing(t *testing.T) {
	tests := []struct {
		name    string
		geocode error
	}{
		{name: "lookup rejected", geocode: domainerrors.ErrGeocodeLookupFailed.WithDetails("status 500")},
		{name: "payload unparsable", geocode: domainerrors.ErrCoordinatesUnparsable.WithDetails("missing point")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestStoreService(t)
			ctx := context.Background()
			reg := testRegistration()

			m.storeRepo.EXPECT().ExistsStore(ctx, reg.StoreIdentity()).Return(false, nil)
			m.geocoder.EXPECT().Geocode(ctx, reg.RoadName).Return(orb.Point{}, tt.geocode)

			result, err := svc.RegisterStore(ctx, reg)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.geocode)

			m.storeRepo.AssertNotCalled(t, "FindCategoryNames", mock.Anything, mock.Anything)
			m.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestStoreService_RegisterStore_UnknownCategory(t *testing.T) {
	svc, m := newTestStoreService(t)
	ctx := context.Background()
	reg := testRegistration()

	m.storeRepo.EXPECT().ExistsStore(ctx, reg.StoreIdentity()).Return(false, nil)
	m.geocoder.EXPECT().Geocode(ctx, reg.RoadName).Return(orb.Point{127, 37}, nil)
	m.storeRepo.EXPECT().FindCategoryNames(ctx, "I21201").Return(nil, repository.ErrCategoryNotFound)

	_, err := svc.RegisterStore(ctx, reg)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	m.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestStoreService_RegisterStore_RetriesOnNumberConflict(t *testing.T) {
	svc, m := newTestStoreService(t)
	ctx := context.Background()
	reg := testRegistration()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txStoreRepo := mockRepo.NewMockStoreRepository(t)
	conflict := errors.Wrapf(repository.ErrDuplicateBusinessNumber, "business number %s", "JS0013")

	m.storeRepo.EXPECT().ExistsStore(ctx, reg.StoreIdentity()).Return(false, nil)
	m.geocoder.EXPECT().Geocode(ctx, reg.RoadName).Return(orb.Point{127, 37}, nil)
	m.storeRepo.EXPECT().FindCategoryNames(ctx, "I21201").Return(testNames, nil)
	m.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(runInTx(factory)).Times(2)
	factory.EXPECT().NewStoreRepository().Return(txStoreRepo).Times(2)
	txStoreRepo.EXPECT().NextBusinessNumber(ctx).Return(businessNumber(t, "JS0013"), nil).Once()
	txStoreRepo.EXPECT().NextBusinessNumber(ctx).Return(businessNumber(t, "JS0014"), nil).Once()
	txStoreRepo.EXPECT().CreateStore(ctx, mock.AnythingOfType("*entity.Store")).Return(conflict).Once()
	txStoreRepo.EXPECT().CreateStore(ctx, mock.AnythingOfType("*entity.Store")).Return(nil).Once()

	result, err := svc.RegisterStore(ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, "JS0014", result.BusinessNumber)
}

func TestStoreService_RegisterStore_ConflictRetriesExhausted(t *testing.T) {
	svc, m := newTestStoreService(t)
	ctx := context.Background()
	reg := testRegistration()

	m.storeRepo.EXPECT().ExistsStore(ctx, reg.StoreIdentity()).Return(false, nil)
	m.geocoder.EXPECT().Geocode(ctx, reg.RoadName).Return(orb.Point{127, 37}, nil)
	m.storeRepo.EXPECT().FindCategoryNames(ctx, "I21201").Return(testNames, nil)
	// One attempt plus two retries.
	m.txManager.EXPECT().Execute(ctx, mock.Anything).Return(repository.ErrDuplicateBusinessNumber).Times(3)

	_, err := svc.RegisterStore(ctx, reg)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNumberExhausted)
}

func TestStoreService_RegisterStore_OtherWriteErrorsAreNotRetried(t *testing.T) {
	svc, m := newTestStoreService(t)
	ctx := context.Background()
	reg := testRegistration()
	dbErr := errors.New("connection reset")

	m.storeRepo.EXPECT().ExistsStore(ctx, reg.StoreIdentity()).Return(false, nil)
	m.geocoder.EXPECT().Geocode(ctx, reg.RoadName).Return(orb.Point{127, 37}, nil)
	m.storeRepo.EXPECT().FindCategoryNames(ctx, "I21201").Return(testNames, nil)
	m.txManager.EXPECT().Execute(ctx, mock.Anything).Return(dbErr).Once()

	_, err := svc.RegisterStore(ctx, reg)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "DATABASE_ERROR", appErr.ErrorCode())
	assert.ErrorIs(t, err, dbErr)
}

func TestStoreService_ListStores_ContainsModeFiltersAfterFetch(t *testing.T) {
	svc, m := newTestStoreService(t)
	ctx := context.Background()
	filter := entity.FilterCriteria{StoreName: ptr("김밥"), MatchMode: entity.MatchContains}

	m.storeRepo.EXPECT().FindStores(ctx, filter).Return([]*entity.StoreListing{
		{StoreName: ptr("김밥천국 강남점")},
		{StoreName: ptr("떡볶이집")},
		{StoreName: nil},
		{StoreName: ptr("참치김밥")},
	}, nil)

	stores, err := svc.ListStores(ctx, filter)
	require.NoError(t, err)

	require.Len(t, stores, 2)
	assert.Equal(t, "김밥천국 강남점", *stores[0].StoreName)
	assert.Equal(t, "참치김밥", *stores[1].StoreName)
}

func TestStoreService_ListStores_NameWithoutModeFiltersAfterFetch(t *testing.T) {
	svc, m := newTestStoreService(t)
	ctx := context.Background()
	filter := entity.FilterCriteria{StoreName: ptr("커피")}

	m.storeRepo.EXPECT().FindStores(ctx, filter).Return([]*entity.StoreListing{
		{StoreName: ptr("커피빈 역삼점")},
		{StoreName: ptr("김밥천국")},
		{StoreName: ptr("메가커피")},
	}, nil)

	stores, err := svc.ListStores(ctx, filter)
	require.NoError(t, err)

	require.Len(t, stores, 2)
	assert.Equal(t, "커피빈 역삼점", *stores[0].StoreName)
	assert.Equal(t, "메가커피", *stores[1].StoreName)
}

func TestStoreService_ListStores_ExactModeReturnsRepositoryRows(t *testing.T) {
	svc, m := newTestStoreService(t)
	ctx := context.Background()
	filter := entity.FilterCriteria{StoreName: ptr("김밥천국"), MatchMode: entity.MatchExact}
	rows := []*entity.StoreListing{{StoreName: ptr("김밥천국")}}

	m.storeRepo.EXPECT().FindStores(ctx, filter).Return(rows, nil)

	stores, err := svc.ListStores(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, rows, stores)
}

func TestStoreService_GetRisingMenu(t *testing.T) {
	svc, m := newTestStoreService(t)
	ctx := context.Background()
	menu := &entity.RisingMenu{MarketSize: ptr(int64(1200)), TopMenus: []string{"김밥", "라면"}}

	m.storeRepo.EXPECT().FindBusinessCategoryRef(ctx, 3, "김밥").
		Return(&entity.BusinessCategoryRef{BusinessAreaCategoryID: 11, RepID: 77, DetailCategoryName: "김밥"}, nil)
	m.storeRepo.EXPECT().FindRisingMenu(ctx, int64(42), int64(77)).Return(menu, nil)

	got, err := svc.GetRisingMenu(ctx, 42, 3, "김밥")
	require.NoError(t, err)
	assert.Equal(t, menu, got)
}

func TestStoreService_GetRisingMenu_NotFound(t *testing.T) {
	svc, m := newTestStoreService(t)
	ctx := context.Background()

	m.storeRepo.EXPECT().FindBusinessCategoryRef(ctx, 3, "김밥").Return(nil, repository.ErrCategoryNotFound)

	_, err := svc.GetRisingMenu(ctx, 42, 3, "김밥")
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestStoreService_CopyStoreToReport(t *testing.T) {
	svc, m := newTestStoreService(t)
	ctx := context.Background()
	store := &entity.Store{BusinessNumber: "JS0013", StoreName: "김밥천국"}

	factory := mockRepo.NewMockRepositoryFactory(t)
	reportRepo := mockRepo.NewMockReportRepository(t)

	m.storeRepo.EXPECT().FindStore(ctx, "JS0013").Return(store, nil)
	m.txManager.EXPECT().ExecuteOnReport(ctx, mock.Anything).RunAndReturn(runInTx(factory))
	factory.EXPECT().NewReportRepository().Return(reportRepo)
	reportRepo.EXPECT().SaveStoreReport(ctx, store).Return(nil)

	require.NoError(t, svc.CopyStoreToReport(ctx, "JS0013"))
}

func TestStoreService_CopyStoreToReport_UnknownStore(t *testing.T) {
	svc, m := newTestStoreService(t)
	ctx := context.Background()

	m.storeRepo.EXPECT().FindStore(ctx, "JS9999").Return(nil, repository.ErrStoreNotFound)

	err := svc.CopyStoreToReport(ctx, "JS9999")
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
	m.txManager.AssertNotCalled(t, "ExecuteOnReport", mock.Anything, mock.Anything)
}
