package repository

import (
	"context"

	"locinsight/internal/domain/entity"
)

// ThumbnailRepository stores generated thumbnails in the report database.
type ThumbnailRepository interface {
	// CreateThumbnail inserts the prompt row and the path row of one thumbnail.
	CreateThumbnail(ctx context.Context, thumbnail *entity.Thumbnail) error
}
