package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var (
	errEmptyBody   = errors.New("request body is empty")
	errContentType = errors.New("request body must be JSON")
	errTrailing    = errors.New("request body has trailing data")
)

// StrictBinder decodes JSON request bodies, rejecting unknown fields,
// trailing data and non-JSON content types.
type StrictBinder struct{}

// Bind implements echo.Binder
func (StrictBinder) Bind(i any, c echo.Context) error {
	req := c.Request()
	if ctype := req.Header.Get(echo.HeaderContentType); ctype != "" && !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(errContentType)
	}
	if req.Body == nil {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(errEmptyBody)
	}

	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(i); err != nil {
		if errors.Is(err, io.EOF) {
			err = errEmptyBody
		}
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(errTrailing)
	}
	return nil
}

// Validator adapts go-playground/validator to echo.Validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new request validator
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// bind decodes and validates a request body
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err)
	}
	return nil
}
