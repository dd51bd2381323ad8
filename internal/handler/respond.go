package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/apperrors"
	"github.com/iliyamo/hotel-reservation/internal/logging"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// statusOf maps an error kind to its HTTP status.
func statusOf(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindInvalidRange:
		return http.StatusUnprocessableEntity
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": "..."} with the status matching
// its kind.  Errors without a kind are logged and reported as 500 with a
// generic message.
func respondError(c echo.Context, err error) error {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		logging.FromContext(c.Request().Context()).Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("request failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	body := echo.Map{"error": appErr.Message}
	if appErr.Kind == apperrors.KindNotFound && appErr.Entity != "" {
		body["entity"] = appErr.Entity
		if appErr.ID != 0 {
			body["id"] = appErr.ID
		}
	}
	return c.JSON(statusOf(appErr.Kind), body)
}

// bind decodes the request body into dst and validates it.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return apperrors.Validation("invalid request body", err)
	}
	return c.Validate(dst)
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("invalid "+name, err)
	}
	return id, nil
}

// pathInt parses an integer path parameter such as a year or month.
func pathInt(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, apperrors.Validation("invalid "+name, err)
	}
	return n, nil
}

// parseDate parses a YYYY-MM-DD value; field names the input in errors.
func parseDate(value, field string) (time.Time, error) {
	d, err := time.Parse(model.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.Validation(field+" must be a YYYY-MM-DD date", err)
	}
	return d, nil
}

// parseRange parses the two bounds of a half-open date range.
func parseRange(start, end string) (model.DateRange, error) {
	rng, err := model.ParseDateRange(start, end)
	if err != nil {
		return model.DateRange{}, apperrors.Validation("start_date and end_date must be YYYY-MM-DD dates", err)
	}
	return rng, nil
}
