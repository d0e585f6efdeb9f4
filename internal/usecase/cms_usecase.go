package usecase

import (
	"context"

	"locinsight/internal/domain/entity"
)

// CMSUsecase defines the interface for CMS asset registration.
type CMSUsecase interface {
	// InsertThumbnails stores every prompt of the request with its image path and returns how many were stored.
	InsertThumbnails(ctx context.Context, request entity.ThumbnailRequest) (int, error)
}
