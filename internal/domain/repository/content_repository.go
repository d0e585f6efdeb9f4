package repository

import (
	"context"

	"locinsight/internal/domain/entity"
	"locinsight/internal/errors"
)

var (
	// ErrContentNotFound is returned when content is not found or an update touched no rows.
	ErrContentNotFound = errors.New("content not found")
	// ErrImageNotFound is returned when none of the images to remove exist.
	ErrImageNotFound = errors.New("content image not found")
)

// ContentRepository manages store content and its images in the report database.
type ContentRepository interface {
	// CreateContent inserts content and returns its id. The status is left to the database default.
	CreateContent(ctx context.Context, content *entity.Content) (int64, error)

	AddImages(ctx context.Context, contentID int64, urls []string) error

	// RemoveImages deletes the listed images. Returns ErrImageNotFound when nothing was deleted.
	RemoveImages(ctx context.Context, contentID int64, urls []string) error

	FindImages(ctx context.Context, contentID int64) ([]string, error)

	FindContent(ctx context.Context, id int64) (*entity.Content, error)

	// FindListing returns content joined with the report row of its store.
	FindListing(ctx context.Context, id int64) (*entity.ContentListing, error)

	// ListContents lists content that is not deleted, joined with the report row of its store.
	ListContents(ctx context.Context) ([]*entity.ContentListing, error)

	// UpdateStatus returns ErrContentNotFound when no row changed.
	UpdateStatus(ctx context.Context, id int64, status entity.ContentStatus) error

	// UpdateContent replaces title and body. Returns ErrContentNotFound when no row changed.
	UpdateContent(ctx context.Context, id int64, title, body string) error
}
