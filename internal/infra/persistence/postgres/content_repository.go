package postgres

import (
	"context"
	"time"

	"locinsight/internal/domain/entity"
	"locinsight/internal/domain/repository"
	"locinsight/internal/errors"
	"locinsight/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// contentRepository implements the domain.ContentRepository interface on the report database.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *ReportDB) repository.ContentRepository {
	return newContentRepository(db.DB)
}

func newContentRepository(db *gorm.DB) *contentRepository {
	return &contentRepository{db: db}
}

// contentListingRow is the scan target of the content and report join.
type contentListingRow struct {
	LocalStoreContentID int64
	StoreBusinessNumber string
	StoreName           *string
	RoadName            *string
	Title               string
	Content             string
	Status              string
	CreatedAt           time.Time
}

func (r contentListingRow) toDomain() *entity.ContentListing {
	return &entity.ContentListing{
		Content: entity.Content{
			ID:             r.LocalStoreContentID,
			BusinessNumber: r.StoreBusinessNumber,
			Title:          r.Title,
			Body:           r.Content,
			Status:         entity.ContentStatus(r.Status),
			CreatedAt:      r.CreatedAt,
		},
		StoreName: r.StoreName,
		RoadName:  r.RoadName,
	}
}

func (repo *contentRepository) CreateContent(ctx context.Context, content *entity.Content) (int64, error) {
	contentM := &model.LocalStoreContentModel{
		StoreBusinessNumber: content.BusinessNumber,
		Title:               content.Title,
		Content:             content.Body,
	}

	if err := repo.db.WithContext(ctx).Omit("status").Create(contentM).Error; err != nil {
		return 0, errors.Wrap(err, "failed to create content")
	}

	return contentM.LocalStoreContentID, nil
}

func (repo *contentRepository) AddImages(ctx context.Context, contentID int64, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	images := make([]*model.LocalStoreContentImageModel, 0, len(urls))
	for _, url := range urls {
		images = append(images, &model.LocalStoreContentImageModel{
			LocalStoreContentID:       contentID,
			LocalStoreContentImageURL: url,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&images).Error; err != nil {
		return errors.Wrap(err, "failed to add content images")
	}

	return nil
}

func (repo *contentRepository) RemoveImages(ctx context.Context, contentID int64, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Where("local_store_content_id = ? AND local_store_content_image_url IN ?", contentID, urls).
		Delete(&model.LocalStoreContentImageModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove content images")
	}
	if result.RowsAffected == 0 {
		return repository.ErrImageNotFound
	}

	return nil
}

func (repo *contentRepository) FindImages(ctx context.Context, contentID int64) ([]string, error) {
	var urls []string
	err := repo.db.WithContext(ctx).
		Model(&model.LocalStoreContentImageModel{}).
		Where("local_store_content_id = ?", contentID).
		Order("local_store_content_image_id").
		Pluck("local_store_content_image_url", &urls).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find content images")
	}

	return urls, nil
}

func (repo *contentRepository) FindContent(ctx context.Context, id int64) (*entity.Content, error) {
	var contentM model.LocalStoreContentModel
	if err := repo.db.WithContext(ctx).Where("local_store_content_id = ?", id).Take(&contentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find content")
	}

	return &entity.Content{
		ID:             contentM.LocalStoreContentID,
		BusinessNumber: contentM.StoreBusinessNumber,
		Title:          contentM.Title,
		Body:           contentM.Content,
		Status:         entity.ContentStatus(contentM.Status),
		CreatedAt:      contentM.CreatedAt,
	}, nil
}

func (repo *contentRepository) listingQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("local_store_content ls").
		Select("ls.local_store_content_id, ls.store_business_number, r.store_name, r.road_name, " +
			"ls.title, ls.content, ls.status, ls.created_at").
		Joins("JOIN report r ON r.store_business_number = ls.store_business_number")
}

func (repo *contentRepository) FindListing(ctx context.Context, id int64) (*entity.ContentListing, error) {
	var rows []contentListingRow
	if err := repo.listingQuery(ctx).Where("ls.local_store_content_id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find content listing")
	}
	if len(rows) == 0 {
		return nil, repository.ErrContentNotFound
	}

	return rows[0].toDomain(), nil
}

func (repo *contentRepository) ListContents(ctx context.Context) ([]*entity.ContentListing, error) {
	var rows []contentListingRow
	err := repo.listingQuery(ctx).
		Where("ls.status <> ?", string(entity.ContentStatusDeleted)).
		Order("ls.local_store_content_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contents")
	}

	listings := make([]*entity.ContentListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, row.toDomain())
	}

	return listings, nil
}

func (repo *contentRepository) UpdateStatus(ctx context.Context, id int64, status entity.ContentStatus) error {
	return repo.update(ctx, id, map[string]any{"status": string(status)}, "failed to update content status")
}

func (repo *contentRepository) UpdateContent(ctx context.Context, id int64, title, body string) error {
	return repo.update(ctx, id, map[string]any{"title": title, "content": body}, "failed to update content")
}

func (repo *contentRepository) update(ctx context.Context, id int64, values map[string]any, msg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocalStoreContentModel{}).
		Where("local_store_content_id = ?", id).
		Updates(values)
	if result.Error != nil {
		return errors.Wrap(result.Error, msg)
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}
