package handler

import (
	"log/slog"

	"locinsight/internal/delivery/api/response"
	"locinsight/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler serves the location metric views.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// RegionIDsRequest addresses one sub-district by its full region key.
type RegionIDsRequest struct {
	CityID        int64 `query:"city_id" validate:"required,gt=0"`
	DistrictID    int64 `query:"district_id" validate:"required,gt=0"`
	SubDistrictID int64 `query:"sub_district_id" validate:"required,gt=0"`
}

// SubDistrictRequest addresses one sub-district by id.
type SubDistrictRequest struct {
	SubDistrictID int64 `param:"subDistrictId" validate:"required,gt=0"`
}

// ListLocationInfo handles POST /loc/info/select/list
func (h *LocationHandler) ListLocationInfo(c echo.Context) error {
	var req LocationFilterRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	records, err := h.locationUC.ListLocationInfo(c.Request().Context(), req.ToCriteria())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, records)
}

// ListSimilarLocations handles POST /loc/info/select/similar
func (h *LocationHandler) ListSimilarLocations(c echo.Context) error {
	var req LocationFilterRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	result, err := h.locationUC.ListSimilarLocations(c.Request().Context(), req.ToCriteria())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}

// ListRegions handles GET /loc/info/regions
func (h *LocationHandler) ListRegions(c echo.Context) error {
	regions, err := h.locationUC.ListRegions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, regions)
}

// ListDataDates handles GET /loc/info/dates
func (h *LocationHandler) ListDataDates(c echo.Context) error {
	dates, err := h.locationUC.ListDataDates(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, dates)
}

// GetLocationInfoByRegion handles GET /loc/info/by-ids
func (h *LocationHandler) GetLocationInfoByRegion(c echo.Context) error {
	var req RegionIDsRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	info, err := h.locationUC.GetLocationInfoByRegion(c.Request().Context(), req.CityID, req.DistrictID, req.SubDistrictID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, info)
}

// GetReport handles GET /loc/info/report/:subDistrictId
func (h *LocationHandler) GetReport(c echo.Context) error {
	var req SubDistrictRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	report, err := h.locationUC.GetReport(c.Request().Context(), req.SubDistrictID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, report)
}
