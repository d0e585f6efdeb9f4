package handler

import (
	"log/slog"
	"net/http"

	"locinsight/internal/delivery/api/response"
	deliverycontext "locinsight/internal/delivery/context"
	"locinsight/internal/domain/entity"
	"locinsight/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler serves store search and registration.
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// AddStoreRequest represents the request body for registering a store
type AddStoreRequest struct {
	CityID             int64    `json:"city_id" validate:"required,gt=0"`
	DistrictID         int64    `json:"district_id" validate:"required,gt=0"`
	SubDistrictID      int64    `json:"sub_district_id" validate:"required,gt=0"`
	ReferenceID        int      `json:"reference_id" validate:"required"`
	LargeCategoryCode  string   `json:"large_category_code" validate:"required"`
	MediumCategoryCode string   `json:"medium_category_code" validate:"required"`
	SmallCategoryCode  string   `json:"small_category_code" validate:"required"`
	StoreName          string   `json:"store_name" validate:"required"`
	RoadName           string   `json:"road_name" validate:"required"`
	Selected           []string `json:"selected"`
}

// CategoryDetailRequest addresses a business detail category.
type CategoryDetailRequest struct {
	DetailCategoryID int64 `param:"detailId" validate:"required,gt=0"`
}

// RisingMenuRequest selects the commercial district profile of a category.
type RisingMenuRequest struct {
	SubDistrictID     int64  `query:"sub_district_id" validate:"required,gt=0"`
	ReferenceID       int    `query:"reference_id" validate:"required"`
	SmallCategoryName string `query:"small_category_name" validate:"required"`
}

// ListStores handles POST /loc/store/select/store/list
func (h *StoreHandler) ListStores(c echo.Context) error {
	var req StoreFilterRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	filter, err := req.ToCriteria()
	if err != nil {
		return err
	}

	stores, err := h.storeUC.ListStores(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stores)
}

// GetStoreSummary handles POST /loc/store/select/init/content. The business number
// may come as a query parameter or in the body.
func (h *StoreHandler) GetStoreSummary(c echo.Context) error {
	var req BusinessNumberRequest
	if bn := c.QueryParam("store_business_number"); bn != "" {
		req.BusinessNumber = bn
	} else if err := bindRequest(c, &req); err != nil {
		return err
	}

	summary, err := h.storeUC.GetStoreSummary(c.Request().Context(), req.BusinessNumber)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, summary)
}

// RegisterStore handles POST /loc/store/add. A repeated registration answers 200
// with the already_registered outcome.
func (h *StoreHandler) RegisterStore(c echo.Context) error {
	var req AddStoreRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	result, err := h.storeUC.RegisterStore(c.Request().Context(), entity.StoreRegistration{
		CityID:             req.CityID,
		DistrictID:         req.DistrictID,
		SubDistrictID:      req.SubDistrictID,
		ReferenceID:        req.ReferenceID,
		LargeCategoryCode:  req.LargeCategoryCode,
		MediumCategoryCode: req.MediumCategoryCode,
		SmallCategoryCode:  req.SmallCategoryCode,
		StoreName:          req.StoreName,
		RoadName:           req.RoadName,
		Selected:           req.Selected,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !result.Success() {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Info("Store already registered", slog.String("store_name", req.StoreName))

		return response.OK(c, result)
	}

	return response.Success(c, http.StatusCreated, result)
}

// GetCategoryNames handles GET /loc/store/categories/:detailId
func (h *StoreHandler) GetCategoryNames(c echo.Context) error {
	var req CategoryDetailRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	names, err := h.storeUC.GetCategoryNames(c.Request().Context(), req.DetailCategoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, names)
}

// GetRisingMenu handles GET /loc/store/rising-menu
func (h *StoreHandler) GetRisingMenu(c echo.Context) error {
	var req RisingMenuRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	menu, err := h.storeUC.GetRisingMenu(c.Request().Context(), req.SubDistrictID, req.ReferenceID, req.SmallCategoryName)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, menu)
}

// CopyStoreToReport handles POST /loc/store/copy
func (h *StoreHandler) CopyStoreToReport(c echo.Context) error {
	var req BusinessNumberRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	if err := h.storeUC.CopyStoreToReport(c.Request().Context(), req.BusinessNumber); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"store_business_number": req.BusinessNumber})
}
