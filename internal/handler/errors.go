package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusTooManyRequests:     "too many requests",
	http.StatusInternalServerError: "something went wrong",
}

// ErrorHandler renders errors as ErrorResponse. Causes attached to an
// echo.HTTPError are logged and never sent to the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if he.Internal != nil {
			c.Logger().Errorf("%s %s: %d: %v", c.Request().Method, c.Path(), code, he.Internal)
		}
	} else {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}

	message, ok := errorMessages[code]
	if !ok {
		message = strings.ToLower(http.StatusText(code))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, ErrorResponse{
			Success: false,
			Error:   code,
			Message: message,
		})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

// fail maps a service error onto a status code. Failures without a more
// specific kind get the endpoint's fallback status.
func fail(err error, fallback int) error {
	code := fallback
	switch service.KindOf(err) {
	case service.KindBadRequest:
		code = http.StatusBadRequest
	case service.KindNotFound:
		code = http.StatusNotFound
	case service.KindUnprocessable:
		code = http.StatusUnprocessableEntity
	}
	return echo.NewHTTPError(code).SetInternal(err)
}

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
}
