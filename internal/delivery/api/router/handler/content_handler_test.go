package handler

import (
	"net/http"
	"testing"

	"locinsight/internal/domain/entity"
	domainerrors "locinsight/internal/domain/errors"
	mockUsecase "locinsight/internal/mocks/usecase"
	"locinsight/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContentTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockContentUsecase) {
	uc := mockUsecase.NewMockContentUsecase(t)
	h := NewContentHandler(ContentHandlerParams{ContentUC: uc, Logger: testLogger()})

	e := newTestEcho()
	e.POST("/store/content", h.CreateContent)
	e.GET("/store/content", h.ListContents)
	e.GET("/store/content/:id", h.GetContent)
	e.PATCH("/store/content/:id/status", h.UpdateStatus)
	e.DELETE("/store/content/:id", h.DeleteContent)
	e.PUT("/store/content/:id", h.UpdateContent)
	e.GET("/store/content/category/:businessNumber", h.GetStoreCategory)

	return e, uc
}

func TestContentHandler_CreateContent(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e, uc := newContentTestServer(t)

		uc.EXPECT().CreateContent(mock.Anything, &usecase.CreateContentInput{
			BusinessNumber: "JS0001",
			Title:          "오픈",
			Body:           "본문",
			ImageURLs:      []string{"https://cdn.test/a.jpg"},
		}).Return(int64(12), nil).Once()

		rec := doRequest(e, http.MethodPost, "/store/content",
			`{"store_business_number":"JS0001","title":"오픈","content":"본문","images":["https://cdn.test/a.jpg"]}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{"local_store_content_id":12}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("image must be a url", func(t *testing.T) {
		e, _ := newContentTestServer(t)

		rec := doRequest(e, http.MethodPost, "/store/content",
			`{"store_business_number":"JS0001","title":"t","content":"b","images":["not a url"]}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestContentHandler_GetContent(t *testing.T) {
	e, uc := newContentTestServer(t)

	uc.EXPECT().GetContent(mock.Anything, int64(12)).Return(&entity.ContentDetail{
		Content: entity.Content{ID: 12, BusinessNumber: "JS0001", Title: "오픈"},
		Images:  []string{"https://cdn.test/a.jpg"},
	}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/store/content/12", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"images":["https://cdn.test/a.jpg"]`)
}

func TestContentHandler_UpdateStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		e, uc := newContentTestServer(t)

		uc.EXPECT().UpdateStatus(mock.Anything, int64(12), entity.ContentStatus("S")).Return(nil).Once()

		rec := doRequest(e, http.MethodPatch, "/store/content/12/status", `{"status":"S"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown content", func(t *testing.T) {
		e, uc := newContentTestServer(t)

		uc.EXPECT().UpdateStatus(mock.Anything, int64(99), entity.ContentStatus("S")).
			Return(domainerrors.ErrContentNotFound).Once()

		rec := doRequest(e, http.MethodPatch, "/store/content/99/status", `{"status":"S"}`)

		requireErrorCode(t, rec, http.StatusNotFound, "CONTENT_NOT_FOUND")
	})

	t.Run("missing status", func(t *testing.T) {
		e, _ := newContentTestServer(t)

		rec := doRequest(e, http.MethodPatch, "/store/content/12/status", `{}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestContentHandler_DeleteContent(t *testing.T) {
	e, uc := newContentTestServer(t)

	uc.EXPECT().DeleteContent(mock.Anything, int64(12)).Return(nil).Once()

	rec := doRequest(e, http.MethodDelete, "/store/content/12", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestContentHandler_UpdateContent(t *testing.T) {
	t.Run("returns refreshed listing", func(t *testing.T) {
		e, uc := newContentTestServer(t)

		uc.EXPECT().UpdateContent(mock.Anything, int64(12), &entity.ContentUpdate{
			Title:        "수정",
			Body:         "본문",
			RemoveImages: []string{"https://cdn.test/a.jpg"},
			AddImages:    []string{"https://cdn.test/b.jpg"},
		}).Return(&entity.ContentListing{
			Content:   entity.Content{ID: 12, Title: "수정"},
			StoreName: ptr("카페 온"),
		}, nil).Once()

		rec := doRequest(e, http.MethodPut, "/store/content/12",
			`{"title":"수정","content":"본문","remove_images":["https://cdn.test/a.jpg"],"add_images":["https://cdn.test/b.jpg"]}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"store_name":"카페 온"`)
	})

	t.Run("removed image not found", func(t *testing.T) {
		e, uc := newContentTestServer(t)

		uc.EXPECT().UpdateContent(mock.Anything, int64(12), mock.Anything).
			Return(nil, domainerrors.ErrImageNotFound).Once()

		rec := doRequest(e, http.MethodPut, "/store/content/12",
			`{"title":"수정","content":"본문","remove_images":["https://cdn.test/x.jpg"]}`)

		requireErrorCode(t, rec, http.StatusNotFound, "IMAGE_NOT_FOUND")
	})
}

func TestContentHandler_GetStoreCategory(t *testing.T) {
	e, uc := newContentTestServer(t)

	uc.EXPECT().GetStoreCategory(mock.Anything, "JS0001").Return(&entity.StoreCategory{
		BusinessNumber: "JS0001",
		CategoryNames:  entity.CategoryNames{Large: "음식", Medium: "카페", Small: "커피"},
	}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/store/content/category/JS0001", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"large_category_name":"음식"`)
}
