package impl

import (
	"context"
	"log/slog"

	"locinsight/config"
	deliverycontext "locinsight/internal/delivery/context"
	"locinsight/internal/domain/entity"
	"locinsight/internal/domain/repository"
	"locinsight/internal/usecase"

	"go.uber.org/fx"
)

type cmsService struct {
	txManager        repository.TransactionManager
	thumbnailBaseURL string
	logger           *slog.Logger
}

// CMSServiceParams holds dependencies for CMSService, injected by Fx.
type CMSServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCMSService creates a new CMS service instance
func NewCMSService(params CMSServiceParams) usecase.CMSUsecase {
	return &cmsService{
		txManager:        params.TxManager,
		thumbnailBaseURL: params.Config.CMS.ThumbnailBaseURL,
		logger:           params.Logger,
	}
}

// InsertThumbnails stores all thumbnails in one transaction; a failure stores none.
func (s *cmsService) InsertThumbnails(ctx context.Context, request entity.ThumbnailRequest) (int, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	thumbnails := request.Expand(s.thumbnailBaseURL)

	err := s.txManager.ExecuteOnReport(ctx, func(repoFactory repository.RepositoryFactory) error {
		thumbnailRepo := repoFactory.NewThumbnailRepository()
		for i := range thumbnails {
			if err := thumbnailRepo.CreateThumbnail(ctx, &thumbnails[i]); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, translate(ctx, logger, err, "insert thumbnails", nil)
	}

	logger.Info("Thumbnails inserted", slog.Int64("category_id", request.CategoryID), slog.Int("count", len(thumbnails)))

	return len(thumbnails), nil
}
