package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxActorID extracts the authenticated user id injected by the Auth
// middleware. An empty id means the middleware did not run or the token
// carried no identity; either way the request cannot be attributed to an
// actor and is rejected with 401 before any service call.
func ctxActorID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
