package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tanglome/content-api/internal/api/middleware"
	"github.com/tanglome/content-api/internal/core/ports"
)

// callerFrom converts the authenticated user on the context into the caller
// identity the services expect. Anonymous requests yield a zero Caller.
func callerFrom(c echo.Context) ports.Caller {
	user := middleware.CurrentUser(c)
	if user == nil {
		return ports.Caller{}
	}
	return ports.Caller{ID: user.ID, Name: user.Name, Role: user.Role}
}
