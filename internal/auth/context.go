package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// OwnerID returns the authenticated user's id from the request context.
// The JWT middleware stores the parsed token under "user"; a request that
// reaches a secured handler without valid claims reports false.
func OwnerID(c echo.Context) (uint, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}
