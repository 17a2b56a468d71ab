package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velocar/rental-system/internal/core/domain"
)

// ctxPrincipal rebuilds the authenticated Principal from the claims the Auth
// middleware injected. Both claims must be present; a token that parses but
// lacks either one is operationally unusable and gets a 401.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Principal{UserID: userID, Role: role}, nil
}
