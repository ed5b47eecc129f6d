package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses a positive int64 path parameter.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// queryID parses a positive int64 query parameter.
func queryID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.QueryParam(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
