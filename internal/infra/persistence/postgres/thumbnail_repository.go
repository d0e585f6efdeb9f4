package postgres

import (
	"context"

	"locinsight/internal/domain/entity"
	"locinsight/internal/domain/repository"
	"locinsight/internal/errors"
	"locinsight/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type thumbnailRepository struct {
	db *gorm.DB
}

func newThumbnailRepository(db *gorm.DB) repository.ThumbnailRepository {
	return &thumbnailRepository{db: db}
}

// CreateThumbnail inserts the prompt first so the path row can reference its id.
func (repo *thumbnailRepository) CreateThumbnail(ctx context.Context, thumbnail *entity.Thumbnail) error {
	thumbnailM := &model.ThumbnailModel{
		CategoryID: thumbnail.CategoryID,
		DesignID:   thumbnail.DesignID,
		Prompt:     thumbnail.Prompt,
	}
	if err := repo.db.WithContext(ctx).Create(thumbnailM).Error; err != nil {
		return errors.Wrap(err, "failed to create thumbnail")
	}

	pathM := &model.ThumbnailPathModel{
		ThumbnailID: thumbnailM.ThumbnailID,
		ImagePath:   thumbnail.ImagePath,
	}
	if err := repo.db.WithContext(ctx).Create(pathM).Error; err != nil {
		return errors.Wrap(err, "failed to create thumbnail path")
	}

	return nil
}
