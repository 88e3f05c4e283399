package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/dummyjson/internal/repo"
	"github.com/Skotchmaster/dummyjson/internal/service"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	E       *echo.Echo
	Catalog *repo.Catalog
	Auth    *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cat, err := repo.LoadCatalog(repo.Embedded())
	require.NoError(t, err)

	now := func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	products := &service.ProductService{Catalog: cat, Now: now}
	carts := &service.CartService{Catalog: cat, Now: now}
	users := &service.UserService{Catalog: cat, Now: now}
	posts := &service.PostService{Catalog: cat, Now: now}
	todos := &service.TodoService{Catalog: cat, Now: now, Rand: func(int) int { return 0 }}
	auth := &service.AuthService{Catalog: cat, Secret: testSecret, TTL: time.Hour}

	e := echo.New()
	Register(e, &Deps{
		ProductHandler: &ProductHTTP{Svc: products},
		CartHandler:    &CartHTTP{Svc: carts},
		UserHandler:    &UserHTTP{Svc: users, Carts: carts, Posts: posts, Todos: todos},
		PostHandler:    &PostHTTP{Svc: posts},
		TodoHandler:    &TodoHTTP{Svc: todos},
		AuthHandler:    &AuthHTTP{Svc: auth},
		JWTSecret:      testSecret,
	})

	return &testEnv{E: e, Catalog: cat, Auth: auth}
}

func (env *testEnv) do(method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func itoa(n int) string { return strconv.Itoa(n) }
