package impl

import (
	"context"
	"testing"

	"locinsight/internal/domain/entity"
	domainerrors "locinsight/internal/domain/errors"
	"locinsight/internal/domain/repository"
	mockRepo "locinsight/internal/mocks/repository"
	"locinsight/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contentServiceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	contentRepo *mockRepo.MockContentRepository
	storeRepo   *mockRepo.MockStoreRepository
	factory     *mockRepo.MockRepositoryFactory
	txContent   *mockRepo.MockContentRepository
}

func newTestContentService(t *testing.T) (usecase.ContentUsecase, contentServiceMocks) {
	t.Helper()

	m := contentServiceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		contentRepo: mockRepo.NewMockContentRepository(t),
		storeRepo:   mockRepo.NewMockStoreRepository(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		txContent:   mockRepo.NewMockContentRepository(t),
	}

	svc := NewContentService(ContentServiceParams{
		TxManager:   m.txManager,
		ContentRepo: m.contentRepo,
		StoreRepo:   m.storeRepo,
		Logger:      testLogger(),
	})

	return svc, m
}

func TestContentService_CreateContent(t *testing.T) {
	svc, m := newTestContentService(t)
	ctx := context.Background()
	urls := []string{"http://img/1.jpg", "http://img/2.jpg"}

	m.txManager.EXPECT().ExecuteOnReport(ctx, mock.Anything).RunAndReturn(runInTx(m.factory))
	m.factory.EXPECT().NewContentRepository().Return(m.txContent)
	m.txContent.EXPECT().
		CreateContent(ctx, &entity.Content{BusinessNumber: "JS0013", Title: "오픈", Body: "본문"}).
		Return(int64(5), nil)
	m.txContent.EXPECT().AddImages(ctx, int64(5), urls).Return(nil)

	id, err := svc.CreateContent(ctx, &usecase.CreateContentInput{
		BusinessNumber: "JS0013",
		Title:          "오픈",
		Body:           "본문",
		ImageURLs:      urls,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestContentService_GetContent(t *testing.T) {
	svc, m := newTestContentService(t)
	ctx := context.Background()
	content := &entity.Content{ID: 5, Title: "오픈"}

	m.contentRepo.EXPECT().FindContent(ctx, int64(5)).Return(content, nil)
	m.contentRepo.EXPECT().FindImages(ctx, int64(5)).Return([]string{"a.jpg"}, nil)

	detail, err := svc.GetContent(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "오픈", detail.Title)
	assert.Equal(t, []string{"a.jpg"}, detail.Images)
}

func TestContentService_GetContent_NotFound(t *testing.T) {
	svc, m := newTestContentService(t)
	ctx := context.Background()

	m.contentRepo.EXPECT().FindContent(ctx, int64(5)).Return(nil, repository.ErrContentNotFound)

	_, err := svc.GetContent(ctx, 5)
	assert.ErrorIs(t, err, domainerrors.ErrContentNotFound)
}

func TestContentService_DeleteContent_IsSoft(t *testing.T) {
	svc, m := newTestContentService(t)
	ctx := context.Background()

	m.contentRepo.EXPECT().UpdateStatus(ctx, int64(5), entity.ContentStatusDeleted).Return(nil).Once()
	m.contentRepo.EXPECT().UpdateStatus(ctx, int64(6), entity.ContentStatusDeleted).Return(repository.ErrContentNotFound).Once()

	require.NoError(t, svc.DeleteContent(ctx, 5))
	assert.ErrorIs(t, svc.DeleteContent(ctx, 6), domainerrors.ErrContentNotFound)
}

func TestContentService_UpdateContent(t *testing.T) {
	svc, m := newTestContentService(t)
	ctx := context.Background()
	update := &entity.ContentUpdate{
		Title:        "새 제목",
		Body:         "새 본문",
		RemoveImages: []string{"old.jpg"},
		AddImages:    []string{"new.jpg"},
	}
	listing := &entity.ContentListing{Content: entity.Content{ID: 5, Title: "새 제목"}, StoreName: ptr("김밥천국")}

	m.txManager.EXPECT().ExecuteOnReport(ctx, mock.Anything).RunAndReturn(runInTx(m.factory))
	m.factory.EXPECT().NewContentRepository().Return(m.txContent)
	m.txContent.EXPECT().UpdateContent(ctx, int64(5), "새 제목", "새 본문").Return(nil)
	m.txContent.EXPECT().RemoveImages(ctx, int64(5), []string{"old.jpg"}).Return(nil)
	m.txContent.EXPECT().AddImages(ctx, int64(5), []string{"new.jpg"}).Return(nil)
	m.contentRepo.EXPECT().FindListing(ctx, int64(5)).Return(listing, nil)

	got, err := svc.UpdateContent(ctx, 5, update)
	require.NoError(t, err)
	assert.Equal(t, listing, got)
}

func TestContentService_UpdateContent_MissingImageAbortsUpdate(t *testing.T) {
	svc, m := newTestContentService(t)
	ctx := context.Background()
	update := &entity.ContentUpdate{Title: "t", Body: "b", RemoveImages: []string{"ghost.jpg"}}

	m.txManager.EXPECT().ExecuteOnReport(ctx, mock.Anything).RunAndReturn(runInTx(m.factory))
	m.factory.EXPECT().NewContentRepository().Return(m.txContent)
	m.txContent.EXPECT().UpdateContent(ctx, int64(5), "t", "b").Return(nil)
	m.txContent.EXPECT().RemoveImages(ctx, int64(5), []string{"ghost.jpg"}).Return(repository.ErrImageNotFound)

	_, err := svc.UpdateContent(ctx, 5, update)
	assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)
	m.txContent.AssertNotCalled(t, "AddImages", mock.Anything, mock.Anything, mock.Anything)
	m.contentRepo.AssertNotCalled(t, "FindListing", mock.Anything, mock.Anything)
}

func TestContentService_GetStoreCategory(t *testing.T) {
	svc, m := newTestContentService(t)
	ctx := context.Background()
	category := &entity.StoreCategory{BusinessNumber: "JS0013", CategoryNames: *testNames}

	m.storeRepo.EXPECT().FindStoreCategory(ctx, "JS0013").Return(category, nil).Once()
	m.storeRepo.EXPECT().FindStoreCategory(ctx, "JS9999").Return(nil, repository.ErrStoreNotFound).Once()

	got, err := svc.GetStoreCategory(ctx, "JS0013")
	require.NoError(t, err)
	assert.Equal(t, category, got)

	_, err = svc.GetStoreCategory(ctx, "JS9999")
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}
