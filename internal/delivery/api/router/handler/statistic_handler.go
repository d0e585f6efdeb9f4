package handler

import (
	"log/slog"

	"locinsight/internal/delivery/api/response"
	"locinsight/internal/domain/entity"
	"locinsight/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StatisticHandlerParams holds dependencies for StatisticHandler, injected by Fx.
type StatisticHandlerParams struct {
	fx.In

	StatisticUC usecase.StatisticUsecase
	Logger      *slog.Logger
}

// StatisticHandler serves the J-Score statistic views.
type StatisticHandler struct {
	statisticUC usecase.StatisticUsecase
	logger      *slog.Logger
}

// NewStatisticHandler is the constructor for StatisticHandler
func NewStatisticHandler(params StatisticHandlerParams) *StatisticHandler {
	return &StatisticHandler{
		statisticUC: params.StatisticUC,
		logger:      params.Logger,
	}
}

// ListScope returns the handler of one statistic view.
func (h *StatisticHandler) ListScope(scope entity.StatisticScope) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LocationFilterRequest
		if err := bindRequest(c, &req); err != nil {
			return err
		}

		stats, err := h.statisticUC.ListStatistics(c.Request().Context(), scope, req.ToCriteria())
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.OK(c, stats)
	}
}

// ListNationJScores handles POST /loc/info/stat/nation/j-score
func (h *StatisticHandler) ListNationJScores(c echo.Context) error {
	var req LocationFilterRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	stats, err := h.statisticUC.ListNationJScores(c.Request().Context(), req.ToCriteria())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stats)
}

// ListInitStatistics handles GET /loc/info/stat/init
func (h *StatisticHandler) ListInitStatistics(c echo.Context) error {
	stats, err := h.statisticUC.ListInitStatistics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stats)
}
