package usecase

import (
	"context"

	"locinsight/internal/domain/entity"
)

// CreateContentInput represents the input for writing content about a store.
type CreateContentInput struct {
	BusinessNumber string
	Title          string
	Body           string
	ImageURLs      []string
}

// ContentUsecase defines the interface for store content management.
type ContentUsecase interface {
	CreateContent(ctx context.Context, input *CreateContentInput) (int64, error)
	ListContents(ctx context.Context) ([]*entity.ContentListing, error)
	GetContent(ctx context.Context, id int64) (*entity.ContentDetail, error)
	UpdateStatus(ctx context.Context, id int64, status entity.ContentStatus) error
	// DeleteContent marks content as deleted. The row is kept.
	DeleteContent(ctx context.Context, id int64) error
	// UpdateContent applies update and returns the refreshed listing.
	UpdateContent(ctx context.Context, id int64, update *entity.ContentUpdate) (*entity.ContentListing, error)
	GetStoreCategory(ctx context.Context, businessNumber string) (*entity.StoreCategory, error)
}
