package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cedarhouse/restaurant-api/internal/api/middleware"
)

// actorID returns the user id injected by the Auth middleware. Its absence
// means the route was mounted without the middleware.
func actorID(c echo.Context) (int64, error) {
	id, _ := c.Get(middleware.ContextUserID).(int64)
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
	}
	return id, nil
}

// pathID parses the :id route parameter. Ok is false when the value cannot
// name a row.
func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
