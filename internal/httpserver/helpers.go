package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/dummyjson/internal/query"
	"github.com/Skotchmaster/dummyjson/internal/service"
)

func parseID(c echo.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}

func listOptions(c echo.Context) query.Options {
	return query.ParseOptions(c.QueryParams())
}

func selection(c echo.Context) []string {
	return query.SplitSelect(c.QueryParam("select"))
}

// bindBody decodes the request body only, so path params never leak into
// the overlay.
func bindBody(c echo.Context, dst any) error {
	return new(echo.DefaultBinder).BindBody(c, dst)
}

func bindMap(c echo.Context) (map[string]any, error) {
	body := map[string]any{}
	if err := bindBody(c, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func badID(l *slog.Logger, event string, err error) error {
	l.Warn(event, "status", 400, "reason", "id is not an integer", "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
}

func badBody(l *slog.Logger, event string, err error) error {
	l.Warn(event, "status", 400, "reason", "invalid body", "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
}

// fail maps service errors onto HTTP errors and logs them once.
func fail(l *slog.Logger, event string, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		l.Warn(event, "status", 404, "reason", "not found", "error", err)
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidation):
		l.Warn(event, "status", 400, "reason", "invalid request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		l.Error(event, "status", 500, "reason", "cannot compute result", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot compute result")
	}
}
