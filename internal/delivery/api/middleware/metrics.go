package middleware

import (
	"net/http"
	"time"

	domainerrors "locinsight/internal/domain/errors"
	"locinsight/internal/errors"
	"locinsight/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records request count and latency per registered route.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = statusOf(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}

// statusOf predicts the status the error handler will write for err.
func statusOf(err error) int {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
