// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"locinsight/internal/delivery/api/middleware"
	"locinsight/internal/delivery/api/router/handler"
	"locinsight/internal/domain/entity"
	"locinsight/internal/domain/service"
	"locinsight/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler  *handler.LocationHandler
	StatisticHandler *handler.StatisticHandler
	StoreHandler     *handler.StoreHandler
	ContentHandler   *handler.ContentHandler
	CMSHandler       *handler.CMSHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler  *handler.LocationHandler
	statisticHandler *handler.StatisticHandler
	storeHandler     *handler.StoreHandler
	contentHandler   *handler.ContentHandler
	cmsHandler       *handler.CMSHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:  params.LocationHandler,
		statisticHandler: params.StatisticHandler,
		storeHandler:     params.StoreHandler,
		contentHandler:   params.ContentHandler,
		cmsHandler:       params.CMSHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	operatorOnly := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(service.OperatorRole),
	}

	// Location metric views
	infoGroup := e.Group("/loc/info")
	{
		infoGroup.POST("/select/list", r.locationHandler.ListLocationInfo)
		infoGroup.POST("/select/similar", r.locationHandler.ListSimilarLocations)
		infoGroup.GET("/regions", r.locationHandler.ListRegions)
		infoGroup.GET("/dates", r.locationHandler.ListDataDates)
		infoGroup.GET("/by-ids", r.locationHandler.GetLocationInfoByRegion)
		infoGroup.GET("/report/:subDistrictId", r.locationHandler.GetReport)
	}

	// J-Score statistic views
	statGroup := e.Group("/loc/info/stat")
	{
		statGroup.POST("/nation", r.statisticHandler.ListScope(entity.ScopeNation))
		statGroup.POST("/city", r.statisticHandler.ListScope(entity.ScopeCity))
		statGroup.POST("/district", r.statisticHandler.ListScope(entity.ScopeDistrict))
		statGroup.POST("/sub-district", r.statisticHandler.ListScope(entity.ScopeSubDistrict))
		statGroup.POST("/nation/j-score", r.statisticHandler.ListNationJScores)
		statGroup.GET("/init", r.statisticHandler.ListInitStatistics)
	}

	// Store search and registration
	storeGroup := e.Group("/loc/store")
	{
		storeGroup.POST("/select/store/list", r.storeHandler.ListStores)
		storeGroup.POST("/select/init/content", r.storeHandler.GetStoreSummary)
		storeGroup.GET("/categories/:detailId", r.storeHandler.GetCategoryNames)
		storeGroup.GET("/rising-menu", r.storeHandler.GetRisingMenu)
		storeGroup.POST("/add", r.storeHandler.RegisterStore, operatorOnly...)
		storeGroup.POST("/copy", r.storeHandler.CopyStoreToReport, operatorOnly...)
	}

	// Store content
	contentGroup := e.Group("/store/content")
	{
		contentGroup.POST("", r.contentHandler.CreateContent)
		contentGroup.GET("", r.contentHandler.ListContents)
		contentGroup.GET("/:id", r.contentHandler.GetContent)
		contentGroup.PATCH("/:id/status", r.contentHandler.UpdateStatus)
		contentGroup.DELETE("/:id", r.contentHandler.DeleteContent)
		contentGroup.PUT("/:id", r.contentHandler.UpdateContent)
		contentGroup.GET("/category/:businessNumber", r.contentHandler.GetStoreCategory)
	}

	// CMS assets
	cmsGroup := e.Group("/cms", operatorOnly...)
	{
		cmsGroup.POST("/thumbnail/insert", r.cmsHandler.InsertThumbnails)
	}
}
