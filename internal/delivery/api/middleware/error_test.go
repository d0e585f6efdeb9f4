package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "locinsight/internal/domain/errors"
	"locinsight/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		mustNotLeak string
	}{
		{
			name:       "app error with details",
			err:        errors.Wrap(domainerrors.ErrStoreNotFound.WithDetails("JS0042"), "find store"),
			wantStatus: http.StatusNotFound,
			wantCode:   "STORE_NOT_FOUND",
		},
		{
			name:        "database error hides the driver message",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "list stores"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "DATABASE_ERROR",
			mustNotLeak: "connection refused",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:        "unknown error",
			err:         errors.New("nil pointer in report mapper"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			mustNotLeak: "report mapper",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/loc/info/regions", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.wantCode+`"`)
			if tt.mustNotLeak != "" {
				assert.NotContains(t, rec.Body.String(), tt.mustNotLeak)
			}
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusAccepted)

	NewErrorMiddleware(discardLogger()).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
