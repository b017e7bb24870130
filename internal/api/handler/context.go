package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimw "github.com/cargotrack/cargo-api/internal/api/middleware"
	"github.com/cargotrack/cargo-api/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A missing
// identity means the route was registered without the middleware — treat it as
// unauthorized rather than proceeding anonymously.
func ctxIdentity(c echo.Context) (*ports.TokenClaims, error) {
	userID, _ := c.Get(apimw.CtxUserID).(string)
	username, _ := c.Get(apimw.CtxUsername).(string)
	if userID == "" || username == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return &ports.TokenClaims{UserID: userID, Username: username}, nil
}
