package handler

import (
	"log/slog"
	"net/http"

	"locinsight/internal/delivery/api/response"
	"locinsight/internal/domain/entity"
	"locinsight/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

// ContentHandler serves editorial content about stores.
type ContentHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// CreateContentRequest represents the request body for writing content
type CreateContentRequest struct {
	BusinessNumber string   `json:"store_business_number" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Body           string   `json:"content" validate:"required"`
	Images         []string `json:"images" validate:"omitempty,dive,required,url"`
}

// ContentIDRequest addresses one content row.
type ContentIDRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

// UpdateStatusRequest represents the request body for changing a publication status
type UpdateStatusRequest struct {
	ID     int64  `param:"id" validate:"required,gt=0"`
	Status string `json:"status" validate:"required,max=1"`
}

// UpdateContentRequest represents the request body for editing content
type UpdateContentRequest struct {
	ID           int64    `param:"id" validate:"required,gt=0"`
	Title        string   `json:"title" validate:"required"`
	Body         string   `json:"content" validate:"required"`
	RemoveImages []string `json:"remove_images" validate:"omitempty,dive,required"`
	AddImages    []string `json:"add_images" validate:"omitempty,dive,required,url"`
}

// StoreCategoryRequest addresses the store of a content row.
type StoreCategoryRequest struct {
	BusinessNumber string `param:"businessNumber" validate:"required"`
}

// CreateContent handles POST /store/content
func (h *ContentHandler) CreateContent(c echo.Context) error {
	var req CreateContentRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	id, err := h.contentUC.CreateContent(c.Request().Context(), &usecase.CreateContentInput{
		BusinessNumber: req.BusinessNumber,
		Title:          req.Title,
		Body:           req.Body,
		ImageURLs:      req.Images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"local_store_content_id": id})
}

// ListContents handles GET /store/content
func (h *ContentHandler) ListContents(c echo.Context) error {
	contents, err := h.contentUC.ListContents(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, contents)
}

// GetContent handles GET /store/content/:id
func (h *ContentHandler) GetContent(c echo.Context) error {
	var req ContentIDRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	content, err := h.contentUC.GetContent(c.Request().Context(), req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, content)
}

// UpdateStatus handles PATCH /store/content/:id/status
func (h *ContentHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	if err := h.contentUC.UpdateStatus(c.Request().Context(), req.ID, entity.ContentStatus(req.Status)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteContent handles DELETE /store/content/:id
func (h *ContentHandler) DeleteContent(c echo.Context) error {
	var req ContentIDRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	if err := h.contentUC.DeleteContent(c.Request().Context(), req.ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateContent handles PUT /store/content/:id
func (h *ContentHandler) UpdateContent(c echo.Context) error {
	var req UpdateContentRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	listing, err := h.contentUC.UpdateContent(c.Request().Context(), req.ID, &entity.ContentUpdate{
		Title:        req.Title,
		Body:         req.Body,
		RemoveImages: req.RemoveImages,
		AddImages:    req.AddImages,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, listing)
}

// GetStoreCategory handles GET /store/content/category/:businessNumber
func (h *ContentHandler) GetStoreCategory(c echo.Context) error {
	var req StoreCategoryRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	category, err := h.contentUC.GetStoreCategory(c.Request().Context(), req.BusinessNumber)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, category)
}
