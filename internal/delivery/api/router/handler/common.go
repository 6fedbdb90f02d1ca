package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pageParams reads limit/offset query parameters, clamping them to sane bounds.
func pageParams(c echo.Context) (limit, offset int, err error) {
	limit = defaultPageSize
	err = echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError()
	if err != nil {
		return 0, 0, err
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)
	offset = max(offset, 0)

	return limit, offset, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

type messageResponse struct {
	Message string `json:"message"`
}

func message(text string) messageResponse {
	return messageResponse{Message: text}
}
