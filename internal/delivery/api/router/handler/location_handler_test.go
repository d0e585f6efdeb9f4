package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"locinsight/internal/domain/entity"
	domainerrors "locinsight/internal/domain/errors"
	mockUsecase "locinsight/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocationTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockLocationUsecase) {
	uc := mockUsecase.NewMockLocationUsecase(t)
	h := NewLocationHandler(LocationHandlerParams{LocationUC: uc, Logger: testLogger()})

	e := newTestEcho()
	e.POST("/loc/info/select/list", h.ListLocationInfo)
	e.POST("/loc/info/select/similar", h.ListSimilarLocations)
	e.GET("/loc/info/dates", h.ListDataDates)
	e.GET("/loc/info/by-ids", h.GetLocationInfoByRegion)
	e.GET("/loc/info/report/:subDistrictId", h.GetReport)

	return e, uc
}

func TestLocationHandler_ListLocationInfo(t *testing.T) {
	e, uc := newLocationTestServer(t)

	body := `{"city":1,"district":2,"selectedOptions":["202406","202407"],"shopMin":10,"apartPriceMax":"5.5","jScoreMin":3}`

	uc.EXPECT().ListLocationInfo(mock.Anything, mock.MatchedBy(func(f entity.FilterCriteria) bool {
		shop, hasShop := f.Bound(entity.MetricShop)
		apart, hasApart := f.Bound(entity.MetricApartPrice)
		_, hasSales := f.Bound(entity.MetricSales)

		return *f.City == 1 && *f.District == 2 && f.SubDistrict == nil &&
			assert.ObjectsAreEqual([]string{"202406", "202407"}, f.Periods) &&
			hasShop && shop.Min.Equal(decimal.NewFromInt(10)) && shop.Max == nil &&
			hasApart && apart.Min == nil && apart.Max.Equal(decimal.RequireFromString("5.5")) &&
			!hasSales && f.JScoreMin.Equal(decimal.NewFromInt(3)) && f.JScoreMax == nil
	})).Return([]*entity.MergedRecord{
		{Region: entity.Region{CityID: ptr(int64(1))}, Statistic: &entity.Statistic{JScore: ptr(7.5)}},
	}, nil).Once()

	rec := doRequest(e, http.MethodPost, "/loc/info/select/list", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var records []map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &records))
	require.Len(t, records, 1)
	assert.EqualValues(t, 1, records[0]["city_id"])
	assert.EqualValues(t, 7.5, records[0]["j_score"])
	assert.NotContains(t, records[0], "shop")
}

func TestLocationHandler_ListLocationInfo_MalformedBody(t *testing.T) {
	e, _ := newLocationTestServer(t)

	rec := doRequest(e, http.MethodPost, "/loc/info/select/list", `{"shopMin":"ten"}`)

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestLocationHandler_ListSimilarLocations_MissingAnchor(t *testing.T) {
	e, uc := newLocationTestServer(t)

	uc.EXPECT().ListSimilarLocations(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrAnchorNotFound).Once()

	rec := doRequest(e, http.MethodPost, "/loc/info/select/similar", `{"subDistrict":3}`)

	requireErrorCode(t, rec, http.StatusUnprocessableEntity, "ANCHOR_NOT_FOUND")
}

func TestLocationHandler_ListDataDates(t *testing.T) {
	e, uc := newLocationTestServer(t)

	uc.EXPECT().ListDataDates(mock.Anything).Return([]string{"202405", "202406"}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/loc/info/dates", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var dates []string
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &dates))
	assert.Equal(t, []string{"202405", "202406"}, dates)
}

func TestLocationHandler_GetLocationInfoByRegion(t *testing.T) {
	t.Run("binds query ids", func(t *testing.T) {
		e, uc := newLocationTestServer(t)

		uc.EXPECT().GetLocationInfoByRegion(mock.Anything, int64(1), int64(2), int64(3)).
			Return(&entity.RegionLocationInfo{LocationInfo: entity.LocationInfo{Shop: ptr(int64(42))}}, nil).Once()

		rec := doRequest(e, http.MethodGet, "/loc/info/by-ids?city_id=1&district_id=2&sub_district_id=3", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"shop":42`)
	})

	t.Run("missing id is rejected before the usecase", func(t *testing.T) {
		e, _ := newLocationTestServer(t)

		rec := doRequest(e, http.MethodGet, "/loc/info/by-ids?city_id=1&district_id=2", "")

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, rec.Body.String(), "sub_district_id")
	})

	t.Run("unknown region", func(t *testing.T) {
		e, uc := newLocationTestServer(t)

		uc.EXPECT().GetLocationInfoByRegion(mock.Anything, int64(1), int64(2), int64(3)).
			Return(nil, domainerrors.ErrRegionNotFound).Once()

		rec := doRequest(e, http.MethodGet, "/loc/info/by-ids?city_id=1&district_id=2&sub_district_id=3", "")

		requireErrorCode(t, rec, http.StatusNotFound, "REGION_NOT_FOUND")
	})
}

func TestLocationHandler_GetReport(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, uc := newLocationTestServer(t)

		uc.EXPECT().GetReport(mock.Anything, int64(7)).
			Return(&entity.LocationReport{Resident: ptr(int64(1200))}, nil).Once()

		rec := doRequest(e, http.MethodGet, "/loc/info/report/7", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"resident":1200`)
	})

	t.Run("not found keeps details", func(t *testing.T) {
		e, uc := newLocationTestServer(t)

		uc.EXPECT().GetReport(mock.Anything, int64(7)).
			Return(nil, domainerrors.ErrNotFound.WithDetails("sub_district 7")).Once()

		rec := doRequest(e, http.MethodGet, "/loc/info/report/7", "")

		requireErrorCode(t, rec, http.StatusNotFound, "NOT_FOUND")
		assert.Equal(t, "sub_district 7", decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("non numeric id", func(t *testing.T) {
		e, _ := newLocationTestServer(t)

		rec := doRequest(e, http.MethodGet, "/loc/info/report/abc", "")

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}
