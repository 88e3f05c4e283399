package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/dummyjson/internal/service"
	"github.com/Skotchmaster/dummyjson/internal/transport"
	"github.com/Skotchmaster/dummyjson/pkg/logging"
	middleware "github.com/Skotchmaster/dummyjson/pkg/middleware/auth"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func CreateCookie(name, value, path string, exp time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  exp,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := bindBody(c, &req); err != nil {
		return badBody(l, "login_failed", err)
	}

	session, err := h.Svc.Login(ctx, req.Username, req.Password, time.Duration(req.ExpiresInMins)*time.Minute)
	if err != nil {
		return fail(l, "login_failed", err)
	}

	c.SetCookie(CreateCookie("accessToken", session.Token, "/", session.ExpiresAt))

	l.Info("login_success", "user_id", session.User.ID)
	return c.JSON(http.StatusOK, transport.NewLoginResponse(session))
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.me")

	id, ok := c.Get(middleware.UserIDKey).(int)
	if !ok {
		l.Warn("me_failed", "status", 401, "reason", "no user in context")
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication Problem")
	}

	user, err := h.Svc.CurrentUser(ctx, id)
	if err != nil {
		return fail(l, "me_failed", err)
	}
	return c.JSON(http.StatusOK, user)
}
