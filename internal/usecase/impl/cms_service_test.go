package impl

import (
	"context"
	"testing"

	"locinsight/internal/domain/entity"
	"locinsight/internal/errors"
	mockRepo "locinsight/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCMSService_InsertThumbnails(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	thumbnailRepo := mockRepo.NewMockThumbnailRepository(t)
	svc := NewCMSService(CMSServiceParams{TxManager: txManager, Config: testConfig(), Logger: testLogger()})
	ctx := context.Background()

	request := entity.ThumbnailRequest{
		CategoryID: 3,
		Styles: []entity.ThumbnailStyle{
			{DesignID: 1, Prompts: []string{"밝은", "따뜻한"}},
			{DesignID: 2, Prompts: []string{"모던"}},
		},
	}

	var paths []string
	txManager.EXPECT().ExecuteOnReport(ctx, mock.Anything).RunAndReturn(runInTx(factory))
	factory.EXPECT().NewThumbnailRepository().Return(thumbnailRepo)
	thumbnailRepo.EXPECT().CreateThumbnail(ctx, mock.AnythingOfType("*entity.Thumbnail")).
		Run(func(_ context.Context, thumbnail *entity.Thumbnail) {
			paths = append(paths, thumbnail.ImagePath)
		}).
		Return(nil).
		Times(3)

	count, err := svc.InsertThumbnails(ctx, request)
	require.NoError(t, err)

	assert.Equal(t, 3, count)
	assert.Equal(t, []string{
		"http://cdn.test/thumbnail/3/1/thumbnail_1_thumb.jpg",
		"http://cdn.test/thumbnail/3/1/thumbnail_2_thumb.jpg",
		"http://cdn.test/thumbnail/3/2/thumbnail_1_thumb.jpg",
	}, paths)
}

func TestCMSService_InsertThumbnails_FailureStoresNothing(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewCMSService(CMSServiceParams{TxManager: txManager, Config: testConfig(), Logger: testLogger()})
	ctx := context.Background()

	txManager.EXPECT().ExecuteOnReport(ctx, mock.Anything).Return(errors.New("insert failed"))

	count, err := svc.InsertThumbnails(ctx, entity.ThumbnailRequest{
		CategoryID: 3,
		Styles:     []entity.ThumbnailStyle{{DesignID: 1, Prompts: []string{"밝은"}}},
	})
	assert.Error(t, err)
	assert.Zero(t, count)
}
