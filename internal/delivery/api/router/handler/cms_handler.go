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

// CMSHandlerParams holds dependencies for CMSHandler, injected by Fx.
type CMSHandlerParams struct {
	fx.In

	CMSUC  usecase.CMSUsecase
	Logger *slog.Logger
}

// CMSHandler registers generated CMS assets.
type CMSHandler struct {
	cmsUC  usecase.CMSUsecase
	logger *slog.Logger
}

// NewCMSHandler is the constructor for CMSHandler
func NewCMSHandler(params CMSHandlerParams) *CMSHandler {
	return &CMSHandler{
		cmsUC:  params.CMSUC,
		logger: params.Logger,
	}
}

// StylePromptRequest is the prompts rendered with one design.
type StylePromptRequest struct {
	DesignID int64    `json:"designId" validate:"required,gt=0"`
	Prompts  []string `json:"prompts" validate:"required,min=1,dive,required"`
}

// ThumbnailInsertRequest represents the request body for registering thumbnails
type ThumbnailInsertRequest struct {
	CategoryID int64                `json:"categoryId" validate:"required,gt=0"`
	Styles     []StylePromptRequest `json:"styles" validate:"required,min=1,dive"`
}

// InsertThumbnails handles POST /cms/thumbnail/insert
func (h *CMSHandler) InsertThumbnails(c echo.Context) error {
	var req ThumbnailInsertRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	styles := make([]entity.ThumbnailStyle, 0, len(req.Styles))
	for _, style := range req.Styles {
		styles = append(styles, entity.ThumbnailStyle{DesignID: style.DesignID, Prompts: style.Prompts})
	}

	inserted, err := h.cmsUC.InsertThumbnails(c.Request().Context(), entity.ThumbnailRequest{
		CategoryID: req.CategoryID,
		Styles:     styles,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]int{"inserted": inserted})
}
