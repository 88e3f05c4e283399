package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/dummyjson/pkg/tokens"
)

const (
	UserIDKey   = "user_id"
	UsernameKey = "username"
)

type JWTMiddleware struct {
	JWTSecret []byte
}

func NewJWTMiddleware(secret []byte) *JWTMiddleware {
	return &JWTMiddleware{JWTSecret: secret}
}

// RequireAuth accepts a bearer token or an accessToken cookie.
func (m *JWTMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if raw == "" {
			if ck, err := c.Cookie("accessToken"); err == nil {
				raw = ck.Value
			}
		}
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication Problem")
		}

		claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid/Expired Token!")
		}
		id, err := claims.UserID()
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid/Expired Token!")
		}

		c.Set(UserIDKey, id)
		c.Set(UsernameKey, claims.Username)
		return next(c)
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
