package handler

import (
	"net/http"
	"testing"

	"locinsight/internal/domain/entity"
	domainerrors "locinsight/internal/domain/errors"
	"locinsight/internal/errors"
	mockUsecase "locinsight/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const addStoreBody = `{
	"city_id": 1, "district_id": 2, "sub_district_id": 3, "reference_id": 1,
	"large_category_code": "I2", "medium_category_code": "I201", "small_category_code": "I20101",
	"store_name": "카페 온", "road_name": "서울특별시 강남구 테헤란로 1", "selected": ["KT_MYSHOP"]
}`

func newStoreTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockStoreUsecase) {
	uc := mockUsecase.NewMockStoreUsecase(t)
	h := NewStoreHandler(StoreHandlerParams{StoreUC: uc, Logger: testLogger()})

	e := newTestEcho()
	e.POST("/loc/store/select/store/list", h.ListStores)
	e.POST("/loc/store/select/init/content", h.GetStoreSummary)
	e.POST("/loc/store/add", h.RegisterStore)
	e.GET("/loc/store/categories/:detailId", h.GetCategoryNames)
	e.GET("/loc/store/rising-menu", h.GetRisingMenu)
	e.POST("/loc/store/copy", h.CopyStoreToReport)

	return e, uc
}

func TestStoreHandler_RegisterStore(t *testing.T) {
	t.Run("new store answers 201", func(t *testing.T) {
		e, uc := newStoreTestServer(t)

		uc.EXPECT().RegisterStore(mock.Anything, mock.MatchedBy(func(r entity.StoreRegistration) bool {
			return r.CityID == 1 && r.SmallCategoryCode == "I20101" && r.StoreName == "카페 온" &&
				r.HasTag(entity.TagKTMyShop) && !r.HasTag(entity.TagJSam)
		})).Return(&entity.RegistrationResult{Outcome: entity.OutcomeRegistered, BusinessNumber: "JS0013"}, nil).Once()

		rec := doRequest(e, http.MethodPost, "/loc/store/add", addStoreBody)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"number":"JS0013"`)
		assert.Contains(t, rec.Body.String(), `"outcome":"registered"`)
	})

	t.Run("repeated registration answers 200", func(t *testing.T) {
		e, uc := newStoreTestServer(t)

		uc.EXPECT().RegisterStore(mock.Anything, mock.Anything).
			Return(&entity.RegistrationResult{Outcome: entity.OutcomeAlreadyRegistered}, nil).Once()

		rec := doRequest(e, http.MethodPost, "/loc/store/add", addStoreBody)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"outcome":"already_registered"`)
	})

	t.Run("missing fields never reach the usecase", func(t *testing.T) {
		e, _ := newStoreTestServer(t)

		rec := doRequest(e, http.MethodPost, "/loc/store/add", `{"city_id":1,"store_name":"x"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, rec.Body.String(), "road_name: required")
	})

	t.Run("geocoder failure maps to 502", func(t *testing.T) {
		e, uc := newStoreTestServer(t)

		uc.EXPECT().RegisterStore(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrGeocodeLookupFailed.WithDetails("status 500")).Once()

		rec := doRequest(e, http.MethodPost, "/loc/store/add", addStoreBody)

		requireErrorCode(t, rec, http.StatusBadGateway, "GEOCODE_LOOKUP_FAILED")
		assert.Nil(t, decodeEnvelope(t, rec).Error.Details)
	})
}

func TestStoreHandler_ListStores(t *testing.T) {
	t.Run("LIKE maps to contains and options to tags", func(t *testing.T) {
		e, uc := newStoreTestServer(t)

		uc.EXPECT().ListStores(mock.Anything, mock.MatchedBy(func(f entity.FilterCriteria) bool {
			return f.MatchMode == entity.MatchContains && *f.StoreName == "카페" &&
				assert.ObjectsAreEqual([]entity.PromoTag{entity.TagKTMyShop, entity.TagJSam}, f.Tags) &&
				*f.Reference == 1 && *f.MainCategory == "10"
		})).Return([]*entity.StoreListing{{StoreName: ptr("카페 온")}}, nil).Once()

		rec := doRequest(e, http.MethodPost, "/loc/store/select/store/list",
			`{"storeName":"카페","matchType":"like","reference":1,"mainCategory":"10","selectedOptions":["KT_MYSHOP","jsam"]}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), "카페 온")
	})

	t.Run("store name without match type is a contains search", func(t *testing.T) {
		e, uc := newStoreTestServer(t)

		uc.EXPECT().ListStores(mock.Anything, mock.MatchedBy(func(f entity.FilterCriteria) bool {
			return f.MatchMode == entity.MatchContains && *f.StoreName == "커피" &&
				!f.PushesStoreName() && f.Tags == nil
		})).Return([]*entity.StoreListing{}, nil).Once()

		rec := doRequest(e, http.MethodPost, "/loc/store/select/store/list", `{"city":1,"storeName":"커피"}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("equals sign maps to exact", func(t *testing.T) {
		e, uc := newStoreTestServer(t)

		uc.EXPECT().ListStores(mock.Anything, mock.MatchedBy(func(f entity.FilterCriteria) bool {
			return f.MatchMode == entity.MatchExact && f.PushesStoreName()
		})).Return([]*entity.StoreListing{}, nil).Once()

		rec := doRequest(e, http.MethodPost, "/loc/store/select/store/list", `{"storeName":"커피빈","matchType":"="}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown match type", func(t *testing.T) {
		e, _ := newStoreTestServer(t)

		rec := doRequest(e, http.MethodPost, "/loc/store/select/store/list", `{"matchType":"REGEXP"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("unknown option", func(t *testing.T) {
		e, _ := newStoreTestServer(t)

		rec := doRequest(e, http.MethodPost, "/loc/store/select/store/list", `{"selectedOptions":["coupang"]}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("driver errors are not leaked", func(t *testing.T) {
		e, uc := newStoreTestServer(t)

		uc.EXPECT().ListStores(mock.Anything, mock.Anything).
			Return(nil, errors.New("pq: relation local_store does not exist")).Once()

		rec := doRequest(e, http.MethodPost, "/loc/store/select/store/list", `{}`)

		requireErrorCode(t, rec, http.StatusInternalServerError, "INTERNAL_ERROR")
		assert.NotContains(t, rec.Body.String(), "local_store")
	})
}

func TestStoreHandler_GetStoreSummary(t *testing.T) {
	t.Run("query parameter", func(t *testing.T) {
		e, uc := newStoreTestServer(t)

		uc.EXPECT().GetStoreSummary(mock.Anything, "JS0001").
			Return(&entity.StoreSummary{BusinessNumber: "JS0001", StoreName: "카페 온"}, nil).Once()

		rec := doRequest(e, http.MethodPost, "/loc/store/select/init/content?store_business_number=JS0001", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"store_business_number":"JS0001"`)
	})

	t.Run("body", func(t *testing.T) {
		e, uc := newStoreTestServer(t)

		uc.EXPECT().GetStoreSummary(mock.Anything, "JS0002").
			Return(&entity.StoreSummary{BusinessNumber: "JS0002"}, nil).Once()

		rec := doRequest(e, http.MethodPost, "/loc/store/select/init/content", `{"store_business_number":"JS0002"}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown store", func(t *testing.T) {
		e, uc := newStoreTestServer(t)

		uc.EXPECT().GetStoreSummary(mock.Anything, "JS9999").Return(nil, domainerrors.ErrStoreNotFound).Once()

		rec := doRequest(e, http.MethodPost, "/loc/store/select/init/content", `{"store_business_number":"JS9999"}`)

		requireErrorCode(t, rec, http.StatusNotFound, "STORE_NOT_FOUND")
	})
}

func TestStoreHandler_GetCategoryNames(t *testing.T) {
	e, uc := newStoreTestServer(t)

	uc.EXPECT().GetCategoryNames(mock.Anything, int64(31)).
		Return(&entity.CategoryNames{Large: "음식", Medium: "카페", Small: "커피"}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/loc/store/categories/31", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"small_category_name":"커피"`)
}

func TestStoreHandler_GetRisingMenu(t *testing.T) {
	e, uc := newStoreTestServer(t)

	uc.EXPECT().GetRisingMenu(mock.Anything, int64(3), 1, "커피").
		Return(&entity.RisingMenu{MarketSize: ptr(int64(900)), TopMenus: []string{"아메리카노"}}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/loc/store/rising-menu?sub_district_id=3&reference_id=1&small_category_name=%EC%BB%A4%ED%94%BC", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"market_size":900`)
}

func TestStoreHandler_CopyStoreToReport(t *testing.T) {
	t.Run("copied", func(t *testing.T) {
		e, uc := newStoreTestServer(t)

		uc.EXPECT().CopyStoreToReport(mock.Anything, "JS0001").Return(nil).Once()

		rec := doRequest(e, http.MethodPost, "/loc/store/copy", `{"store_business_number":"JS0001"}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing number", func(t *testing.T) {
		e, _ := newStoreTestServer(t)

		rec := doRequest(e, http.MethodPost, "/loc/store/copy", `{}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}
