package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thenoetrevino/todolist/internal/models"
)

// Error codes carried in the error body
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeBadRequest    = "BAD_REQUEST"
	CodeInternal      = "INTERNAL_ERROR"
)

// ErrorBody is the JSON shape of every error response
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failed request
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// classify maps an error onto an HTTP status and error code
func classify(err error) (int, string, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, models.ErrInvalid):
		return http.StatusBadRequest, CodeValidation, err.Error()
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, CodeNotFound, err.Error()
	case errors.Is(err, models.ErrAlreadyExists):
		return http.StatusConflict, CodeAlreadyExists, err.Error()
	case errors.As(err, &httpErr):
		return httpErr.Code, httpCode(httpErr.Code), fmt.Sprint(httpErr.Message)
	default:
		return http.StatusInternalServerError, CodeInternal, http.StatusText(http.StatusInternalServerError)
	}
}

func httpCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusInternalServerError:
		return CodeInternal
	}
	return fmt.Sprintf("HTTP_%d", status)
}

// errorHandler writes the error body for a failed request. Unexpected errors
// are logged; their details never reach the client.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, message := classify(err)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, ErrorBody{Error: ErrorDetail{Code: code, Message: message}})
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
