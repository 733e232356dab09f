package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RuanParreira/arquitetura-cebola/internal/api/middleware"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
)

// ctxActor extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both the user id and
// the role must be present, otherwise the token never went through the
// middleware and the request is rejected outright.
func ctxActor(c echo.Context) (domain.Actor, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	if userID == "" || role == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Actor{ID: userID, Role: role}, nil
}
