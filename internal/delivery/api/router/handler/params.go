package handler

import (
	"strings"
	"time"

	"plantcare/internal/delivery/api/middleware"
	"plantcare/internal/delivery/api/response"
	"plantcare/internal/delivery/api/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

var errInvalidDate = errors.New("date must be YYYY-MM-DD or RFC 3339")

// bindAndValidate binds the body into req and runs struct validation, writing a 400 on failure.
// A false return means the response has already been written.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, validator.Describe(err))
	}

	return true, nil
}

// requireUser returns the authenticated user ID or writes a 401.
func requireUser(c echo.Context) (uuid.UUID, bool, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, false, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, true, nil
}

// pathUUID parses the named path parameter or writes a 400.
func pathUUID(c echo.Context, name, what string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid "+what+" ID")
	}

	return id, true, nil
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp. Calendar dates are UTC midnight.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Time{}, errors.Wrapf(errInvalidDate, "parse %q", s)
}

// parseOptionalDate parses s unless it is nil or blank.
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}

	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// pageQuery reads page and limit query parameters. Missing values stay zero for the usecase defaults.
func pageQuery(c echo.Context) (page, limit int, err error) {
	err = echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("limit", &limit).
		BindError()

	return page, limit, err
}
