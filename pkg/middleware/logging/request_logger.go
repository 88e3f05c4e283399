package loggingmw

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/dummyjson/pkg/logging"
)

// Entry is one completed request as handed to a Sink.
type Entry struct {
	RequestID string
	Method    string
	Route     string
	Path      string
	Status    int
	Duration  time.Duration
	RemoteIP  string
	UserAgent string
	Error     string
}

// Sink receives completed requests. Record must not block.
type Sink interface {
	Record(e Entry)
}

func RequestLogger(base *slog.Logger, sink Sink) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := base.With(
				"method", c.Request().Method,
				"path", c.Path(),
				"url", c.Request().URL.Path,
				"remote_ip", c.RealIP(),
			)
			if rid != "" {
				l = l.With("request_id", rid)
				c.Response().Header().Set(echo.HeaderXRequestID, rid)
			}

			req := c.Request().WithContext(logging.IntoContext(c.Request().Context(), l))
			c.SetRequest(req)

			start := time.Now()
			err := next(c)
			dur := time.Since(start)

			if err != nil {
				c.Error(err)
			}
			status := c.Response().Status

			switch {
			case err != nil || status >= 500:
				l.Error("request completed", "status", status, "duration_ms", dur.Milliseconds(), "error", errStr(err))
			case status >= 400:
				l.Warn("request completed", "status", status, "duration_ms", dur.Milliseconds())
			default:
				l.Info("request completed", "status", status, "duration_ms", dur.Milliseconds(), "bytes", c.Response().Size)
			}

			if sink != nil {
				sink.Record(Entry{
					RequestID: rid,
					Method:    c.Request().Method,
					Route:     c.Path(),
					Path:      c.Request().URL.Path,
					Status:    status,
					Duration:  dur,
					RemoteIP:  c.RealIP(),
					UserAgent: c.Request().UserAgent(),
					Error:     errStr(err),
				})
			}
			return nil
		}
	}
}

func errStr(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%v", err)
}
