package impl

import (
	"context"
	"log/slog"

	deliverycontext "locinsight/internal/delivery/context"
	"locinsight/internal/domain/entity"
	domainerrors "locinsight/internal/domain/errors"
	"locinsight/internal/domain/repository"
	"locinsight/internal/usecase"

	"go.uber.org/fx"
)

type contentService struct {
	txManager   repository.TransactionManager
	contentRepo repository.ContentRepository
	storeRepo   repository.StoreRepository
	logger      *slog.Logger
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ContentRepo repository.ContentRepository
	StoreRepo   repository.StoreRepository
	Logger      *slog.Logger
}

// NewContentService creates a new content service instance
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		txManager:   params.TxManager,
		contentRepo: params.ContentRepo,
		storeRepo:   params.StoreRepo,
		logger:      params.Logger,
	}
}

func (s *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

var contentErrors = map[error]*domainerrors.BaseError{
	repository.ErrContentNotFound: domainerrors.ErrContentNotFound,
	repository.ErrImageNotFound:   domainerrors.ErrImageNotFound,
}

func (s *contentService) CreateContent(ctx context.Context, input *usecase.CreateContentInput) (int64, error) {
	var id int64
	err := s.txManager.ExecuteOnReport(ctx, func(repoFactory repository.RepositoryFactory) error {
		contentRepo := repoFactory.NewContentRepository()

		var err error
		id, err = contentRepo.CreateContent(ctx, &entity.Content{
			BusinessNumber: input.BusinessNumber,
			Title:          input.Title,
			Body:           input.Body,
		})
		if err != nil {
			return err
		}

		return contentRepo.AddImages(ctx, id, input.ImageURLs)
	})
	if err != nil {
		return 0, translate(ctx, s.log(ctx), err, "create content", nil)
	}

	s.log(ctx).Info("Content created", slog.Int64("content_id", id), slog.Int("images", len(input.ImageURLs)))

	return id, nil
}

func (s *contentService) ListContents(ctx context.Context) ([]*entity.ContentListing, error) {
	contents, err := s.contentRepo.ListContents(ctx)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "list contents", nil)
	}

	return contents, nil
}

func (s *contentService) GetContent(ctx context.Context, id int64) (*entity.ContentDetail, error) {
	content, err := s.contentRepo.FindContent(ctx, id)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find content", contentErrors)
	}

	images, err := s.contentRepo.FindImages(ctx, id)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find content images", nil)
	}

	return &entity.ContentDetail{Content: *content, Images: images}, nil
}

func (s *contentService) UpdateStatus(ctx context.Context, id int64, status entity.ContentStatus) error {
	if err := s.contentRepo.UpdateStatus(ctx, id, status); err != nil {
		return translate(ctx, s.log(ctx), err, "update content status", contentErrors)
	}

	return nil
}

func (s *contentService) DeleteContent(ctx context.Context, id int64) error {
	return s.UpdateStatus(ctx, id, entity.ContentStatusDeleted)
}

// UpdateContent rolls back the text change when an image to remove does not exist.
func (s *contentService) UpdateContent(ctx context.Context, id int64, update *entity.ContentUpdate) (*entity.ContentListing, error) {
	err := s.txManager.ExecuteOnReport(ctx, func(repoFactory repository.RepositoryFactory) error {
		contentRepo := repoFactory.NewContentRepository()

		if err := contentRepo.UpdateContent(ctx, id, update.Title, update.Body); err != nil {
			return err
		}
		if err := contentRepo.RemoveImages(ctx, id, update.RemoveImages); err != nil {
			return err
		}

		return contentRepo.AddImages(ctx, id, update.AddImages)
	})
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "update content", contentErrors)
	}

	listing, err := s.contentRepo.FindListing(ctx, id)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find content listing", contentErrors)
	}

	return listing, nil
}

func (s *contentService) GetStoreCategory(ctx context.Context, businessNumber string) (*entity.StoreCategory, error) {
	category, err := s.storeRepo.FindStoreCategory(ctx, businessNumber)
	if err != nil {
		return nil, translate(ctx, s.log(ctx), err, "find store category", map[error]*domainerrors.BaseError{
			repository.ErrStoreNotFound: domainerrors.ErrStoreNotFound,
		})
	}

	return category, nil
}
