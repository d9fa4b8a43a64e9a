package middleware

import (
	"net/http"
	"rfmInsights/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler collapses every unhandled error into a generic response
// so no internal detail reaches the caller. The detail goes to the log.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}

	logger.Error("request failed",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", code,
		"error", err,
	)

	var resErr error
	if c.Request().Method == http.MethodHead {
		resErr = c.NoContent(code)
	} else {
		resErr = c.JSON(code, map[string]string{"message": http.StatusText(code)})
	}
	if resErr != nil {
		logger.Error("failed to write error response", resErr)
	}
}
